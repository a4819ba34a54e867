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

// repoRecord mirrors the wire shape of a repository object. Nullable
// fields keep pointer types so absence survives the mapping.
type repoRecord struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Owner    struct {
		ID int64 `json:"id"`
	} `json:"owner"`
	Description     *string `json:"description"`
	Fork            bool    `json:"fork"`
	Homepage        *string `json:"homepage"`
	Language        *string `json:"language"`
	StargazersCount int     `json:"stargazers_count"`
}

func (x repoRecord) toModel() *model.Repository {
	return &model.Repository{
		ID:              types.RepoID(x.ID),
		OwnerID:         types.UserID(x.Owner.ID),
		Name:            x.Name,
		FullName:        x.FullName,
		Description:     x.Description,
		Fork:            x.Fork,
		Homepage:        x.Homepage,
		StargazersCount: x.StargazersCount,
		Language:        x.Language,
	}
}

// GetPublicRepos lists every public repository of a user, walking the
// paginated endpoint until a short page. Each page fetch carries its own
// retry budget.
func (x *Client) GetPublicRepos(ctx context.Context, userID types.UserID) ([]*model.Repository, error) {
	path := fmt.Sprintf("/user/%d/repos", userID)

	records, err := paginateAll(ctx, x.pageSize, func(ctx context.Context, page int) ([]repoRecord, error) {
		return withRetry(ctx, x, func(ctx context.Context) ([]repoRecord, error) {
			query := url.Values{
				"page":     []string{strconv.Itoa(page)},
				"per_page": []string{strconv.Itoa(x.pageSize)},
			}
			return get[[]repoRecord](ctx, x, path, query)
		})
	})
	if err != nil {
		return nil, err
	}

	repos := make([]*model.Repository, len(records))
	for i, record := range records {
		repos[i] = record.toModel()
	}

	logging.From(ctx).Debug("listed public repos",
		slog.Any("userID", userID),
		slog.Int("count", len(repos)),
	)

	return repos, nil
}
