package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/ghfetch/pkg/controller/server"
	"github.com/m-mizutani/ghfetch/pkg/domain/mock"
	"github.com/m-mizutani/ghfetch/pkg/domain/model"
	"github.com/m-mizutani/ghfetch/pkg/domain/types"
	"github.com/m-mizutani/ghfetch/pkg/infra"
	"github.com/m-mizutani/ghfetch/pkg/usecase"
)

func TestRouterSmokeTests(t *testing.T) {
	t.Run("GET /health returns 200", func(t *testing.T) {
		clients := infra.New()
		uc := usecase.New(clients)
		srv := server.New(uc)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal("ok")
	})
}

func TestGetUser(t *testing.T) {
	t.Run("returns the fetched user as JSON", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			FetchUserFunc: func(ctx context.Context, input *model.FetchUserInput) (*model.User, error) {
				gt.V(t, input.Login).Equal(types.Login("octocat"))
				return &model.User{
					ID:    583231,
					Type:  "User",
					Login: "octocat",
				}, nil
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/api/users/octocat", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Header().Get("Content-Type")).Equal("application/json")

		var user model.User
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		gt.V(t, user.ID).Equal(types.UserID(583231))
		gt.V(t, user.Login).Equal(types.Login("octocat"))
		gt.V(t, len(mockUC.FetchUserCalls())).Equal(1)
	})

	t.Run("unknown user answers 404", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			FetchUserFunc: func(ctx context.Context, input *model.FetchUserInput) (*model.User, error) {
				return nil, goerr.Wrap(types.ErrNotFound, "unexpected response")
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/api/users/ghost", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("upstream failure answers 502", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			FetchUserFunc: func(ctx context.Context, input *model.FetchUserInput) (*model.User, error) {
				return nil, goerr.Wrap(types.ErrBadGateway, "unexpected response")
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/api/users/octocat", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusBadGateway)
	})
}

func TestListUsers(t *testing.T) {
	t.Run("passes the since cursor", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListUsersSinceFunc: func(ctx context.Context, input *model.ListUsersSinceInput) ([]*model.User, error) {
				gt.V(t, input.Since).Equal(types.UserID(46))
				return []*model.User{
					{ID: 47, Login: "alice"},
				}, nil
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/api/users?since=46", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)

		var users []*model.User
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
		gt.V(t, len(users)).Equal(1)
		gt.V(t, users[0].Login).Equal(types.Login("alice"))
	})

	t.Run("missing since defaults to zero", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListUsersSinceFunc: func(ctx context.Context, input *model.ListUsersSinceInput) ([]*model.User, error) {
				gt.V(t, input.Since).Equal(types.UserID(0))
				return nil, nil
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
	})

	t.Run("non-integer since answers 400", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/api/users?since=banana", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.V(t, len(mockUC.ListUsersSinceCalls())).Equal(0)
	})
}

func TestGetUserRepos(t *testing.T) {
	t.Run("returns repositories for the user id", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			FetchUserReposFunc: func(ctx context.Context, input *model.FetchUserReposInput) ([]*model.Repository, error) {
				gt.V(t, input.UserID).Equal(types.UserID(583231))
				return []*model.Repository{
					{ID: 1, OwnerID: 583231, Name: "hello-world", FullName: "octocat/hello-world"},
				}, nil
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/api/user/583231/repos", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)

		var repos []*model.Repository
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &repos))
		gt.V(t, len(repos)).Equal(1)
		gt.V(t, repos[0].FullName).Equal("octocat/hello-world")
	})

	t.Run("non-integer id answers 400", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/api/user/octocat/repos", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.V(t, len(mockUC.FetchUserReposCalls())).Equal(0)
	})
}

func TestGetRateLimit(t *testing.T) {
	mockUC := &mock.UseCaseMock{
		RateLimitFunc: func(ctx context.Context) model.RateLimit {
			return model.RateLimit{
				Limit:     5000,
				Remaining: 4999,
				ResetAt:   time.Unix(1700000000, 0).UTC(),
			}
		},
	}
	srv := server.New(mockUC)

	req := httptest.NewRequest(http.MethodGet, "/api/ratelimit", nil)
	rec := httptest.NewRecorder()

	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusOK)

	var rl model.RateLimit
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rl))
	gt.V(t, rl.Limit).Equal(5000)
	gt.V(t, rl.Remaining).Equal(4999)
}
