package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/ghfetch/pkg/domain/model"
	"github.com/m-mizutani/ghfetch/pkg/domain/types"
	"github.com/m-mizutani/ghfetch/pkg/utils/logging"
)

// FetchUserRepos fetches all public repositories of a user. The full list
// replaces any previously stored snapshot; a failed fetch leaves the stored
// snapshot untouched.
func (x *UseCase) FetchUserRepos(ctx context.Context, input *model.FetchUserReposInput) ([]*model.Repository, error) {
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	repos, err := x.clients.GitHub().GetPublicRepos(ctx, input.UserID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch public repos",
			goerr.V("userID", input.UserID),
		)
	}

	if repo := x.clients.Snapshot(); repo != nil {
		if err := repo.SaveRepositories(ctx, input.UserID, repos); err != nil {
			return nil, goerr.Wrap(err, "failed to store fetched repos",
				goerr.V("userID", input.UserID),
			)
		}
	}

	logging.From(ctx).Info("fetched public repos",
		slog.Any("userID", input.UserID),
		slog.Int("count", len(repos)),
	)

	return repos, nil
}
