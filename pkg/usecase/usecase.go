package usecase

import (
	"context"
	"time"

	"github.com/secmon-lab/offboard/pkg/domain/interfaces"
	"github.com/secmon-lab/offboard/pkg/domain/model"
	"github.com/secmon-lab/offboard/pkg/infra"
)

type UseCase struct {
	clients        *infra.Clients
	perPage        int
	concurrency    int
	requestTimeout time.Duration
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithPerPage sets the page size of the organization repository listing
func WithPerPage(perPage int) Option {
	return func(x *UseCase) {
		x.perPage = perPage
	}
}

// WithConcurrency sets the maximum number of repositories enriched at once
func WithConcurrency(n int) Option {
	return func(x *UseCase) {
		x.concurrency = n
	}
}

// WithRequestTimeout bounds every GitHub API call. Zero disables the bound.
func WithRequestTimeout(d time.Duration) Option {
	return func(x *UseCase) {
		x.requestTimeout = d
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:        clients,
		perPage:        model.DefaultPerPage,
		concurrency:    model.DefaultConcurrency,
		requestTimeout: model.DefaultRequestTimeout,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

func callWithTimeout[T any](ctx context.Context, timeout time.Duration, f func(ctx context.Context) (T, error)) (T, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return f(ctx)
}
