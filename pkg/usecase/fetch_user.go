package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/ghfetch/pkg/domain/model"
	"github.com/m-mizutani/ghfetch/pkg/domain/types"
	"github.com/m-mizutani/ghfetch/pkg/utils/logging"
)

// FetchUser fetches a single user by login and, when a snapshot repository
// is configured, stores the result for the serve mode.
func (x *UseCase) FetchUser(ctx context.Context, input *model.FetchUserInput) (*model.User, error) {
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := x.clients.GitHub().GetUserByLogin(ctx, input.Login)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch user",
			goerr.V("login", input.Login),
		)
	}

	if repo := x.clients.Snapshot(); repo != nil {
		if err := repo.CreateOrUpdateUser(ctx, user); err != nil {
			return nil, goerr.Wrap(err, "failed to store fetched user",
				goerr.V("login", input.Login),
			)
		}
	}

	logging.From(ctx).Info("fetched user",
		slog.Any("login", user.Login),
		slog.Any("id", user.ID),
	)

	return user, nil
}
