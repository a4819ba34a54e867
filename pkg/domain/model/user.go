package model

import (
	"github.com/m-mizutani/ghfetch/pkg/domain/types"
)

// User represents a GitHub user account
type User struct {
	ID        types.UserID      `json:"id"`
	Type      types.AccountType `json:"type"`
	Login     types.Login       `json:"login"`
	AvatarURL string            `json:"avatar_url"`
}
