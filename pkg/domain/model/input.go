package model

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/ghfetch/pkg/domain/types"
)

type FetchUserInput struct {
	Login types.Login
}

func (x *FetchUserInput) Validate() error {
	if x.Login == "" {
		return goerr.Wrap(types.ErrInvalidOption, "login is empty")
	}
	return nil
}

type FetchUserReposInput struct {
	UserID types.UserID
}

func (x *FetchUserReposInput) Validate() error {
	if x.UserID <= 0 {
		return goerr.Wrap(types.ErrInvalidOption, "userID must be positive",
			goerr.V("userID", x.UserID),
		)
	}
	return nil
}

type ListUsersSinceInput struct {
	Since types.UserID
}

func (x *ListUsersSinceInput) Validate() error {
	if x.Since < 0 {
		return goerr.Wrap(types.ErrInvalidOption, "since must not be negative",
			goerr.V("since", x.Since),
		)
	}
	return nil
}
