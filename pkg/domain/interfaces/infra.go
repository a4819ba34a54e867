package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub

import (
	"context"

	"github.com/m-mizutani/ghfetch/pkg/domain/model"
	"github.com/m-mizutani/ghfetch/pkg/domain/types"
)

// GitHub is the fetch surface of the GitHub REST API client. Every method
// returns either the requested value or a typed failure; no method recovers
// beyond the client's own retry policy.
type GitHub interface {
	GetLogin(ctx context.Context, userID types.UserID) (types.Login, error)
	GetUserByLogin(ctx context.Context, login types.Login) (*model.User, error)
	GetUsersSince(ctx context.Context, sinceID types.UserID) ([]*model.User, error)
	GetPublicRepos(ctx context.Context, userID types.UserID) ([]*model.Repository, error)

	RateLimit() model.RateLimit
}
