package githubapi

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
)

// paginateAll drains an offset-paginated collection. Pages are requested
// strictly in order starting at 1; a page shorter than pageSize (empty
// included) is the exhaustion signal, since the API never reports a total
// count. Any page failure aborts the whole run and accumulated results are
// dropped.
func paginateAll[T any](ctx context.Context, pageSize int, fetchPage func(ctx context.Context, page int) ([]T, error)) ([]T, error) {
	var all []T

	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, goerr.Wrap(err, "canceled during pagination", goerr.V("page", page))
		}

		items, err := fetchPage(ctx, page)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to fetch page", goerr.V("page", page))
		}

		all = append(all, items...)
		if len(items) < pageSize {
			return all, nil
		}
	}
}
