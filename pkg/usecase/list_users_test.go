package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/ghfetch/pkg/domain/mock"
	"github.com/m-mizutani/ghfetch/pkg/domain/model"
	"github.com/m-mizutani/ghfetch/pkg/domain/types"
	"github.com/m-mizutani/ghfetch/pkg/infra"
	"github.com/m-mizutani/ghfetch/pkg/usecase"
)

func TestListUsersSince(t *testing.T) {
	t.Run("passes the cursor through", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			GetUsersSinceFunc: func(ctx context.Context, since types.UserID) ([]*model.User, error) {
				gt.V(t, since).Equal(types.UserID(46))
				return []*model.User{
					{ID: 47, Login: "alice"},
					{ID: 48, Login: "bob"},
				}, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

		users := gt.R1(uc.ListUsersSince(context.Background(), &model.ListUsersSinceInput{
			Since: 46,
		})).NoError(t)

		gt.V(t, len(users)).Equal(2)
		gt.V(t, users[0].ID).Equal(types.UserID(47))
	})

	t.Run("empty result is not a failure", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			GetUsersSinceFunc: func(ctx context.Context, since types.UserID) ([]*model.User, error) {
				return []*model.User{}, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

		users := gt.R1(uc.ListUsersSince(context.Background(), &model.ListUsersSinceInput{})).NoError(t)
		gt.V(t, len(users)).Equal(0)
	})

	t.Run("negative cursor is rejected before any call", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

		_, err := uc.ListUsersSince(context.Background(), &model.ListUsersSinceInput{
			Since: -1,
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
		gt.V(t, len(mockGH.GetUsersSinceCalls())).Equal(0)
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("passes through the client snapshot", func(t *testing.T) {
		want := model.RateLimit{
			Limit:     5000,
			Remaining: 4999,
			ResetAt:   time.Unix(1700000000, 0),
		}
		mockGH := &mock.GitHubMock{
			RateLimitFunc: func() model.RateLimit {
				return want
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

		gt.V(t, uc.RateLimit(context.Background())).Equal(want)
	})

	t.Run("zero value without a client", func(t *testing.T) {
		uc := usecase.New(infra.New())
		gt.V(t, uc.RateLimit(context.Background())).Equal(model.RateLimit{})
	})
}
