package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/ghfetch/pkg/domain/mock"
	"github.com/m-mizutani/ghfetch/pkg/infra"
	"github.com/m-mizutani/ghfetch/pkg/repository/memory"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		// GitHub and Snapshot should be nil without configuration
		gt.V(t, clients.GitHub()).Equal(nil)
		gt.V(t, clients.Snapshot()).Equal(nil)
	})

	t.Run("WithGitHub option sets GitHub client", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		clients := infra.New(infra.WithGitHub(mockGH))
		gt.V(t, clients.GitHub()).Equal(mockGH)
	})

	t.Run("WithSnapshot option sets snapshot repository", func(t *testing.T) {
		repo := memory.New()
		clients := infra.New(infra.WithSnapshot(repo))
		gt.V(t, clients.Snapshot()).Equal(repo)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		repo := memory.New()

		clients := infra.New(
			infra.WithGitHub(mockGH),
			infra.WithSnapshot(repo),
		)

		gt.V(t, clients.GitHub()).Equal(mockGH)
		gt.V(t, clients.Snapshot()).Equal(repo)
	})
}
