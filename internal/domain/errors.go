package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Classified error sentinels. Transport and API failures are classified once
// at the system boundary and surfaced to consumers as one of these categories.
var (
	// ErrBusy indicates a submission was rejected because another request is
	// already in flight on the same session.
	ErrBusy = errors.New("another request is already in flight")

	// ErrAuth indicates rejected credentials on login.
	ErrAuth = errors.New("invalid email or password")

	// ErrRateLimited indicates the backend returned HTTP 429.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrServer indicates a 5xx response from the backend.
	ErrServer = errors.New("server error")

	// ErrNetwork indicates no response was received at all.
	ErrNetwork = errors.New("network error")

	// ErrUnknown covers everything that resists classification.
	ErrUnknown = errors.New("unknown error")

	// ErrInvalidSession indicates an attempt to persist a session that could
	// never satisfy the store's validity guarantee.
	ErrInvalidSession = errors.New("session is missing required fields or already expired")
)

// Error codes the backend is known to emit and the client maps to fields.
const (
	CodeEmailAlreadyRegistered = "EMAIL_ALREADY_REGISTERED"
	CodeXUsernameNotFound      = "X_USERNAME_NOT_FOUND"
	CodeValidationError        = "VALIDATION_ERROR"

	// CodeNetworkError is the client-side sentinel code for failures where no
	// response was received. Such errors carry HTTPStatus 0.
	CodeNetworkError = "NETWORK_ERROR"
)

// APIError is the normalized shape of every non-2xx backend response.
// It is produced exactly once, by the API adapter, and never thrown past
// that boundary as an unhandled fault.
type APIError struct {
	Code       string
	Message    string
	Details    map[string]interface{}
	HTTPStatus int
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// IsNetwork reports whether no response was received.
func (e *APIError) IsNetwork() bool {
	return e.HTTPStatus == 0 && e.Code == CodeNetworkError
}

// IsRateLimited reports whether the backend throttled the request.
func (e *APIError) IsRateLimited() bool {
	return e.HTTPStatus == http.StatusTooManyRequests
}

// IsServerError reports whether the backend failed with a 5xx.
func (e *APIError) IsServerError() bool {
	return e.HTTPStatus >= http.StatusInternalServerError
}

// ValidationError is a local, pre-network, field-scoped failure. It never
// reaches the transport layer.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConflictError is a field-scoped conflict reported by the backend, such as a
// duplicate email on registration.
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError is a field-scoped lookup failure reported by the backend,
// such as an unknown X handle on registration.
type NotFoundError struct {
	Field   string
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Classify maps a transport-layer failure into the finite category set, in
// priority order: 429, 5xx, no-response, structured API error with a message,
// unknown. Local validation errors and already-classified values pass through
// unchanged. Classify(nil) is nil.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return err
	}
	if errors.Is(err, ErrBusy) || errors.Is(err, ErrAuth) ||
		errors.Is(err, ErrRateLimited) || errors.Is(err, ErrServer) ||
		errors.Is(err, ErrNetwork) || errors.Is(err, ErrUnknown) {
		return err
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.IsRateLimited():
			return fmt.Errorf("%w: %s", ErrRateLimited, apiErr.Message)
		case apiErr.IsServerError():
			return fmt.Errorf("%w: %s", ErrServer, apiErr.Message)
		case apiErr.IsNetwork():
			return fmt.Errorf("%w: %s", ErrNetwork, apiErr.Message)
		case apiErr.Message != "":
			return apiErr
		}
	}

	return fmt.Errorf("%w: %v", ErrUnknown, err)
}
