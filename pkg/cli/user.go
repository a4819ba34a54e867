package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/ghfetch/pkg/cli/config"
	"github.com/m-mizutani/ghfetch/pkg/domain/model"
	"github.com/m-mizutani/ghfetch/pkg/domain/types"
	"github.com/m-mizutani/ghfetch/pkg/infra"
	"github.com/m-mizutani/ghfetch/pkg/usecase"
	"github.com/m-mizutani/ghfetch/pkg/utils/logging"
)

func userCommand() *cli.Command {
	var github config.GitHub

	return &cli.Command{
		Name:      "user",
		Aliases:   []string{"u"},
		Usage:     "Fetch a single user by login",
		ArgsUsage: "<login>",
		Flags:     slice.Flatten(github.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.Wrap(types.ErrInvalidOption, "exactly one login argument is required")
			}
			login := types.Login(c.Args().First())

			logging.From(ctx).Info("fetching user",
				slog.Any("login", login),
				slog.Any("GitHub", github),
			)

			client, err := github.New(ctx)
			if err != nil {
				return err
			}

			uc := usecase.New(infra.New(infra.WithGitHub(client)))

			user, err := uc.FetchUser(ctx, &model.FetchUserInput{Login: login})
			if err != nil {
				return err
			}

			return printJSON(user)
		},
	}
}
