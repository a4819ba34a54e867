package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/ghfetch/pkg/cli/config"
	"github.com/m-mizutani/ghfetch/pkg/domain/model"
	"github.com/m-mizutani/ghfetch/pkg/domain/types"
	"github.com/m-mizutani/ghfetch/pkg/infra"
	"github.com/m-mizutani/ghfetch/pkg/usecase"
	"github.com/m-mizutani/ghfetch/pkg/utils/logging"
)

func usersCommand() *cli.Command {
	var (
		github config.GitHub
		since  int64
	)

	return &cli.Command{
		Name:    "users",
		Aliases: []string{"ls"},
		Usage:   "List users after an ID cursor (one page per call)",
		Flags: slice.Flatten([]cli.Flag{
			&cli.Int64Flag{
				Name:        "since",
				Usage:       "List users with an ID greater than this value",
				Aliases:     []string{"s"},
				Sources:     cli.EnvVars("GHFETCH_SINCE"),
				Destination: &since,
			},
		}, github.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.From(ctx).Info("listing users",
				slog.Int64("since", since),
				slog.Any("GitHub", github),
			)

			client, err := github.New(ctx)
			if err != nil {
				return err
			}

			uc := usecase.New(infra.New(infra.WithGitHub(client)))

			users, err := uc.ListUsersSince(ctx, &model.ListUsersSinceInput{
				Since: types.UserID(since),
			})
			if err != nil {
				return err
			}

			return printJSON(users)
		},
	}
}
