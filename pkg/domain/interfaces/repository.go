package interfaces

import (
	"context"

	"github.com/m-mizutani/ghfetch/pkg/domain/model"
	"github.com/m-mizutani/ghfetch/pkg/domain/types"
)

//go:generate moq -out ../mock/snapshot_repository_mock.go -pkg mock . SnapshotRepository

// SnapshotRepository stores the latest fetched view of users and their
// public repositories. It is a cache for the serve mode, not a system of
// record; durable storage is a consumer concern.
type SnapshotRepository interface {
	CreateOrUpdateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, login types.Login) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)

	SaveRepositories(ctx context.Context, userID types.UserID, repos []*model.Repository) error
	ListRepositories(ctx context.Context, userID types.UserID) ([]*model.Repository, error)
}
