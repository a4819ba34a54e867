package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/ghfetch/pkg/domain/model"
)

type UseCase interface {
	FetchUser(ctx context.Context, input *model.FetchUserInput) (*model.User, error)
	FetchUserRepos(ctx context.Context, input *model.FetchUserReposInput) ([]*model.Repository, error)
	ListUsersSince(ctx context.Context, input *model.ListUsersSinceInput) ([]*model.User, error)
	RateLimit(ctx context.Context) model.RateLimit
}
