package invoicegen

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "invoicegen")

type apiKeyKey struct{}

// ContextWithAPIKey returns ctx carrying an API key that takes precedence
// over Config.APIKey for requests made with it.
func ContextWithAPIKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, apiKeyKey{}, key)
}

// APIKeyFromContext returns the key set by ContextWithAPIKey, if not empty.
func APIKeyFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(apiKeyKey{}).(string)
	return v, ok && v != ""
}

var (
	// ErrUnauthorized matches APIError with status 401 or 403.
	ErrUnauthorized  = errors.New("invoice generator unauthorized")
	ErrRateLimited   = errors.New("invoice generator rate limit exceeded")
	ErrNoAPIKey      = errors.New("API key is required, get one at https://apiverve.com")
	ErrNoDownloadURL = errors.New("response has no download URL")
	ErrCircuitOpen   = errors.New("invoice generator circuit breaker open")
)

// APIError is an error reported by the remote service.
type APIError struct {
	Status    int    // HTTP status, 200 when the body itself reported failure
	Message   string // error text returned by the service
	Body      string // raw body, for diagnostics
	RequestID string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("invoice generator returned http status %d: %s", e.Status, e.Message)
}

// Is lets errors.Is match status-based sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	case ErrRateLimited:
		return e.Status == http.StatusTooManyRequests
	}
	return false
}

func newAPIError(status int, body []byte, requestID string) *APIError {
	msg := http.StatusText(status)

	var er ErrorResponse
	if len(body) > 0 {
		if err := er.UnmarshalJSON(body); err == nil && er.Error != "" {
			msg = er.Error
		}
	}

	return &APIError{
		Status:    status,
		Message:   msg,
		Body:      string(body),
		RequestID: requestID,
	}
}
