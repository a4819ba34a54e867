package model

import (
	"github.com/m-mizutani/ghfetch/pkg/domain/types"
)

// Repository represents a GitHub repository owned by a user
type Repository struct {
	ID              types.RepoID `json:"id"`
	OwnerID         types.UserID `json:"owner_id"`
	Name            string       `json:"name"`
	FullName        string       `json:"full_name"`
	Description     *string      `json:"description,omitempty"`
	Fork            bool         `json:"fork"`
	Homepage        *string      `json:"homepage,omitempty"`
	StargazersCount int          `json:"stargazers_count"`
	Language        *string      `json:"language,omitempty"`
}
