package config

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/ghfetch/pkg/domain/types"
	"github.com/m-mizutani/ghfetch/pkg/infra/githubapi"
)

type GitHub struct {
	token    types.GitHubToken `masq:"secret"`
	baseURL  string
	pageSize int64
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("GHFETCH_GITHUB_TOKEN"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL",
			Category:    "GitHub",
			Value:       "https://api.github.com",
			Sources:     cli.EnvVars("GHFETCH_GITHUB_BASE_URL"),
			Destination: &x.baseURL,
		},
		&cli.Int64Flag{
			Name:        "github-page-size",
			Usage:       "Page size for paginated listings",
			Category:    "GitHub",
			Value:       100,
			Sources:     cli.EnvVars("GHFETCH_GITHUB_PAGE_SIZE"),
			Destination: &x.pageSize,
		},
	}
}

func (x GitHub) New(ctx context.Context) (*githubapi.Client, error) {
	return githubapi.New(ctx, x.token,
		githubapi.WithBaseURL(x.baseURL),
		githubapi.WithPageSize(int(x.pageSize)),
	)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("Token.len", len(x.token)),
		slog.String("BaseURL", x.baseURL),
		slog.Int64("PageSize", x.pageSize),
	)
}
