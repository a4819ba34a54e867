package infra

import (
	"github.com/m-mizutani/ghfetch/pkg/domain/interfaces"
)

type Clients struct {
	github   interfaces.GitHub
	snapshot interfaces.SnapshotRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}

func (x *Clients) Snapshot() interfaces.SnapshotRepository {
	return x.snapshot
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithSnapshot(repo interfaces.SnapshotRepository) Option {
	return func(x *Clients) {
		x.snapshot = repo
	}
}
