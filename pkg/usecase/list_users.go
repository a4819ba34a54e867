package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/ghfetch/pkg/domain/model"
	"github.com/m-mizutani/ghfetch/pkg/domain/types"
	"github.com/m-mizutani/ghfetch/pkg/utils/logging"
)

// ListUsersSince lists users after the given ID cursor. The API returns a
// single page per call; the last returned ID is the caller's next cursor.
func (x *UseCase) ListUsersSince(ctx context.Context, input *model.ListUsersSinceInput) ([]*model.User, error) {
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	users, err := x.clients.GitHub().GetUsersSince(ctx, input.Since)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list users",
			goerr.V("since", input.Since),
		)
	}

	logging.From(ctx).Info("listed users",
		slog.Any("since", input.Since),
		slog.Int("count", len(users)),
	)

	return users, nil
}

// RateLimit reports the latest rate-limit state observed by the client. A
// zero value is returned when no client is configured.
func (x *UseCase) RateLimit(ctx context.Context) model.RateLimit {
	if x.clients.GitHub() == nil {
		return model.RateLimit{}
	}
	return x.clients.GitHub().RateLimit()
}
