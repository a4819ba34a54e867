package cli

import (
	"context"
	"log/slog"
	"strconv"

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

func reposCommand() *cli.Command {
	var github config.GitHub

	return &cli.Command{
		Name:      "repos",
		Aliases:   []string{"r"},
		Usage:     "Fetch all public repositories of a user by numeric ID",
		ArgsUsage: "<user-id>",
		Flags:     slice.Flatten(github.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.Wrap(types.ErrInvalidOption, "exactly one user-id argument is required")
			}

			userID, err := strconv.ParseInt(c.Args().First(), 10, 64)
			if err != nil {
				return goerr.Wrap(types.ErrInvalidOption, "user-id must be an integer",
					goerr.V("value", c.Args().First()),
				)
			}

			logging.From(ctx).Info("fetching public repos",
				slog.Int64("userID", userID),
				slog.Any("GitHub", github),
			)

			client, err := github.New(ctx)
			if err != nil {
				return err
			}

			uc := usecase.New(infra.New(infra.WithGitHub(client)))

			repos, err := uc.FetchUserRepos(ctx, &model.FetchUserReposInput{
				UserID: types.UserID(userID),
			})
			if err != nil {
				return err
			}

			return printJSON(repos)
		},
	}
}
