package githubapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/ghfetch/pkg/domain/types"
	"github.com/m-mizutani/ghfetch/pkg/utils/safe"
)

// get issues a single authenticated GET request and decodes the JSON body
// into T. Rate-limit headers are recorded whatever the status code is, so
// the tracker stays current even across failures. Methods cannot take type
// parameters, so get is a package function over *Client.
func get[T any](ctx context.Context, x *Client, path string, query url.Values) (T, error) {
	var zero T

	reqURL := x.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return zero, goerr.Wrap(err, "failed to build request", goerr.V("url", reqURL))
	}
	req.Header.Set("Authorization", "bearer "+string(x.token))
	req.Header.Set("Accept", "application/json")

	resp, err := x.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return zero, goerr.Wrap(types.ErrTimeout, "no response before timeout", goerr.V("path", path))
		}
		return zero, goerr.Wrap(err, "failed to send request", goerr.V("path", path))
	}
	defer safe.Close(resp.Body)

	x.rateLimit.observe(resp.Header)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return zero, goerr.Wrap(types.ErrTimeout, "response body timed out", goerr.V("path", path))
		}
		return zero, goerr.Wrap(err, "failed to read response body", goerr.V("path", path))
	}

	if err := statusToError(resp.StatusCode, path, body); err != nil {
		return zero, err
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return zero, goerr.Wrap(types.ErrDeserialize, "failed to decode response body",
			goerr.V("path", path),
			goerr.V("body", string(body)),
		)
	}

	return out, nil
}

// statusToError maps an HTTP status to the failure taxonomy. 2xx is
// success. Named codes get their own sentinel; the rest of each family
// falls through to the family sentinel.
func statusToError(code int, path string, body []byte) error {
	var base error

	switch {
	case code >= 200 && code < 300:
		return nil
	case code >= 300 && code < 400:
		base = types.ErrRedirection
	case code == http.StatusBadRequest:
		base = types.ErrBadRequest
	case code == http.StatusUnauthorized:
		base = types.ErrUnauthorized
	case code == http.StatusForbidden:
		base = types.ErrForbidden
	case code == http.StatusNotFound:
		base = types.ErrNotFound
	case code >= 400 && code < 500:
		base = types.ErrClient
	case code == http.StatusInternalServerError:
		base = types.ErrInternalServer
	case code == http.StatusBadGateway:
		base = types.ErrBadGateway
	case code == http.StatusServiceUnavailable:
		base = types.ErrServiceUnavailable
	default:
		base = types.ErrServer
	}

	return goerr.Wrap(base, "request failed",
		goerr.V("status_code", code),
		goerr.V("path", path),
		goerr.V("body", string(body)),
	)
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded)
}
