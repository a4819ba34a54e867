package githubapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/m-mizutani/ghfetch/pkg/domain/model"
	"github.com/m-mizutani/ghfetch/pkg/domain/types"
	"github.com/m-mizutani/ghfetch/pkg/utils/logging"
)

// userRecord mirrors the wire shape of a user object. Unknown fields are
// ignored on decode.
type userRecord struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

func (x userRecord) toModel() *model.User {
	return &model.User{
		ID:        types.UserID(x.ID),
		Type:      types.AccountType(x.Type),
		Login:     types.Login(x.Login),
		AvatarURL: x.AvatarURL,
	}
}

// GetLogin fetches a user by numeric ID and returns only its login name.
func (x *Client) GetLogin(ctx context.Context, userID types.UserID) (types.Login, error) {
	record, err := withRetry(ctx, x, func(ctx context.Context) (userRecord, error) {
		return get[userRecord](ctx, x, fmt.Sprintf("/user/%d", userID), nil)
	})
	if err != nil {
		return "", err
	}

	return types.Login(record.Login), nil
}

// GetUserByLogin fetches a single user by account name.
func (x *Client) GetUserByLogin(ctx context.Context, login types.Login) (*model.User, error) {
	record, err := withRetry(ctx, x, func(ctx context.Context) (userRecord, error) {
		return get[userRecord](ctx, x, "/users/"+url.PathEscape(string(login)), nil)
	})
	if err != nil {
		return nil, err
	}

	return record.toModel(), nil
}

// GetUsersSince lists users with an ID greater than sinceID. The endpoint
// answers at most one page per call and the next cursor is the last
// returned ID, so this issues exactly one request.
func (x *Client) GetUsersSince(ctx context.Context, sinceID types.UserID) ([]*model.User, error) {
	query := url.Values{
		"since": []string{strconv.FormatInt(int64(sinceID), 10)},
	}

	records, err := withRetry(ctx, x, func(ctx context.Context) ([]userRecord, error) {
		return get[[]userRecord](ctx, x, "/users", query)
	})
	if err != nil {
		return nil, err
	}

	users := make([]*model.User, len(records))
	for i, record := range records {
		users[i] = record.toModel()
	}

	logging.From(ctx).Debug("listed users",
		slog.Any("since", sinceID),
		slog.Int("count", len(users)),
	)

	return users, nil
}
