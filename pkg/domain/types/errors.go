package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")

	// ErrTimeout means the request timed out before any HTTP status was
	// received. Retryable.
	ErrTimeout = goerr.New("request timeout")

	// ErrDeserialize means the response body could not be decoded into the
	// expected shape.
	ErrDeserialize = goerr.New("failed to deserialize response")

	// ErrRedirection covers all 3xx responses.
	ErrRedirection = goerr.New("redirection response")

	// 4xx family. ErrClient covers 4xx codes without a named variant.
	ErrBadRequest   = goerr.New("bad request")
	ErrUnauthorized = goerr.New("unauthorized")
	ErrForbidden    = goerr.New("forbidden")
	ErrNotFound     = goerr.New("not found")
	ErrClient       = goerr.New("client error")

	// 5xx family. ErrBadGateway is kept distinct from ErrServer because it
	// is the only 5xx the retry policy considers transient. ErrServer
	// covers 5xx codes without a named variant.
	ErrInternalServer     = goerr.New("internal server error")
	ErrBadGateway         = goerr.New("bad gateway")
	ErrServiceUnavailable = goerr.New("service unavailable")
	ErrServer             = goerr.New("server error")
)
