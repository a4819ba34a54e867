package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/ghfetch/pkg/domain/model"
	"github.com/m-mizutani/ghfetch/pkg/domain/types"
)

func TestFetchUserInput(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		input := &model.FetchUserInput{Login: "octocat"}
		gt.NoError(t, input.Validate())
	})

	t.Run("empty login", func(t *testing.T) {
		input := &model.FetchUserInput{}
		err := input.Validate()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestFetchUserReposInput(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		input := &model.FetchUserReposInput{UserID: 583231}
		gt.NoError(t, input.Validate())
	})

	t.Run("zero user id", func(t *testing.T) {
		input := &model.FetchUserReposInput{}
		err := input.Validate()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("negative user id", func(t *testing.T) {
		input := &model.FetchUserReposInput{UserID: -1}
		gt.Error(t, input.Validate())
	})
}

func TestListUsersSinceInput(t *testing.T) {
	t.Run("zero cursor is valid", func(t *testing.T) {
		input := &model.ListUsersSinceInput{}
		gt.NoError(t, input.Validate())
	})

	t.Run("positive cursor is valid", func(t *testing.T) {
		input := &model.ListUsersSinceInput{Since: 46}
		gt.NoError(t, input.Validate())
	})

	t.Run("negative cursor", func(t *testing.T) {
		input := &model.ListUsersSinceInput{Since: -1}
		err := input.Validate()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
