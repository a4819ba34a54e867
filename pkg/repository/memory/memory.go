package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/ghfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/ghfetch/pkg/domain/model"
	"github.com/m-mizutani/ghfetch/pkg/domain/types"
	"github.com/m-mizutani/ghfetch/pkg/repository"
)

// New creates a new in-memory snapshot repository
func New() interfaces.SnapshotRepository {
	return &snapshotRepository{
		users: make(map[types.Login]*model.User),
		repos: make(map[types.UserID][]*model.Repository),
	}
}

type snapshotRepository struct {
	mu    sync.RWMutex
	users map[types.Login]*model.User
	repos map[types.UserID][]*model.Repository
}

func (r *snapshotRepository) CreateOrUpdateUser(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.Login] = copyUser(user)

	return nil
}

func (r *snapshotRepository) GetUser(ctx context.Context, login types.Login) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[login]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "user not found",
			goerr.V("login", login),
		)
	}

	return copyUser(user), nil
}

func (r *snapshotRepository) ListUsers(ctx context.Context) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*model.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, copyUser(user))
	}

	return users, nil
}

// SaveRepositories replaces the stored repository list of a user with the
// given snapshot.
func (r *snapshotRepository) SaveRepositories(ctx context.Context, userID types.UserID, repos []*model.Repository) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := make([]*model.Repository, len(repos))
	for i, repo := range repos {
		copied[i] = copyRepository(repo)
	}
	r.repos[userID] = copied

	return nil
}

func (r *snapshotRepository) ListRepositories(ctx context.Context, userID types.UserID) ([]*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.repos[userID]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "no repositories stored for user",
			goerr.V("userID", userID),
		)
	}

	repos := make([]*model.Repository, len(stored))
	for i, repo := range stored {
		repos[i] = copyRepository(repo)
	}

	return repos, nil
}

func copyUser(user *model.User) *model.User {
	copied := *user
	return &copied
}

func copyRepository(repo *model.Repository) *model.Repository {
	copied := *repo
	return &copied
}
