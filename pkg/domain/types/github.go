package types

import "log/slog"

type (
	// UserID is a GitHub user's numeric identifier. Owner IDs arrive from
	// the API as 64-bit integers; UserID keeps the full width.
	UserID int64

	// RepoID is a GitHub repository's numeric identifier.
	RepoID int64

	// Login is a GitHub account name, e.g. "m-mizutani".
	Login string

	// AccountType is the `type` field of a user record, e.g. "User" or
	// "Organization".
	AccountType string

	// GitHubToken is a personal access token used as the bearer credential.
	GitHubToken string
)

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}
