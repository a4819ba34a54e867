package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/ghfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/ghfetch/pkg/domain/model"
	"github.com/m-mizutani/ghfetch/pkg/domain/types"
	"github.com/m-mizutani/ghfetch/pkg/utils/errutil"
	"github.com/m-mizutani/ghfetch/pkg/utils/logging"
)

// Server is a read-only HTTP facade over the fetch usecases. Every route
// answers JSON; failures surface the client's error taxonomy as a status
// code plus message.
type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

// errorStatus maps the client failure taxonomy to the status this facade
// answers with. Upstream 4xx pass through; everything else is 502 because
// the upstream, not this server, failed.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, types.ErrInvalidOption):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, types.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, types.ErrBadRequest), errors.Is(err, types.ErrClient):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func handleError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	errutil.HandleError(r.Context(), msg, err)
	writeJSON(w, errorStatus(err), map[string]string{"error": err.Error()})
}

func New(uc interfaces.UseCase) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/users", func(w http.ResponseWriter, r *http.Request) {
			since, err := parseID(r.URL.Query().Get("since"))
			if err != nil {
				handleError(w, r, "invalid since parameter", err)
				return
			}

			users, err := uc.ListUsersSince(r.Context(), &model.ListUsersSinceInput{
				Since: since,
			})
			if err != nil {
				handleError(w, r, "fail to list users", err)
				return
			}

			writeJSON(w, http.StatusOK, users)
		})

		r.Get("/users/{login}", func(w http.ResponseWriter, r *http.Request) {
			user, err := uc.FetchUser(r.Context(), &model.FetchUserInput{
				Login: types.Login(chi.URLParam(r, "login")),
			})
			if err != nil {
				handleError(w, r, "fail to fetch user", err)
				return
			}

			writeJSON(w, http.StatusOK, user)
		})

		r.Get("/user/{id}/repos", func(w http.ResponseWriter, r *http.Request) {
			userID, err := parseID(chi.URLParam(r, "id"))
			if err != nil {
				handleError(w, r, "invalid user id", err)
				return
			}

			repos, err := uc.FetchUserRepos(r.Context(), &model.FetchUserReposInput{
				UserID: userID,
			})
			if err != nil {
				handleError(w, r, "fail to fetch repos", err)
				return
			}

			writeJSON(w, http.StatusOK, repos)
		})

		r.Get("/ratelimit", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, uc.RateLimit(r.Context()))
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

func parseID(s string) (types.UserID, error) {
	if s == "" {
		return 0, nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(types.ErrInvalidOption, "id must be an integer", goerr.V("value", s))
	}

	return types.UserID(n), nil
}
