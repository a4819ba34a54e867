package githubapi

import (
	"context"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/m-mizutani/ghfetch/pkg/domain/model"
)

const headerRateLimitRemaining = "X-RateLimit-Remaining"

// rateLimitTracker holds the latest rate-limit state observed from the API.
// One instance per client, shared by every call the client makes. Writes
// are plain atomic stores with last-writer-wins semantics; a caller that
// needs read-then-act admission control must synchronize on its own.
type rateLimitTracker struct {
	limit     atomic.Int64
	remaining atomic.Int64
	reset     atomic.Int64
}

// observe records the remaining count carried on a response, regardless of
// its status code. Responses without the header (or with a malformed value)
// are ignored.
func (x *rateLimitTracker) observe(header http.Header) {
	v := header.Get(headerRateLimitRemaining)
	if v == "" {
		return
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return
	}
	x.remaining.Store(n)
}

func (x *rateLimitTracker) snapshot() model.RateLimit {
	return model.RateLimit{
		Limit:     int(x.limit.Load()),
		Remaining: int(x.remaining.Load()),
		ResetAt:   time.Unix(x.reset.Load(), 0),
	}
}

type rateLimitResource struct {
	Limit     int64 `json:"limit"`
	Remaining int64 `json:"remaining"`
	Reset     int64 `json:"reset"`
}

type rateLimitRecord struct {
	Resources struct {
		Core rateLimitResource `json:"core"`
	} `json:"resources"`
}

// bootstrapRateLimit initializes the tracker from the dedicated status
// endpoint. Called once at construction.
func (x *Client) bootstrapRateLimit(ctx context.Context) error {
	record, err := withRetry(ctx, x, func(ctx context.Context) (rateLimitRecord, error) {
		return get[rateLimitRecord](ctx, x, "/rate_limit", nil)
	})
	if err != nil {
		return err
	}

	core := record.Resources.Core
	x.rateLimit.limit.Store(core.Limit)
	x.rateLimit.remaining.Store(core.Remaining)
	x.rateLimit.reset.Store(core.Reset)

	return nil
}
