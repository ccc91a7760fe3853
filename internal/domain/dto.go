package domain

import "time"

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// RegisterCommand struct - Domain request DTO for account creation
	RegisterCommand struct {
		Email                string `validate:"required,email"`
		Password             string `validate:"required,min=8,strongpassword"`
		PasswordConfirmation string `validate:"required,eqfield=Password"`
		XUsername            string `validate:"required,xhandle"`
	}

	// RegisterResult struct - Domain response DTO for account creation.
	// Registration does not return a session expiry, so no Session is
	// persisted from it; the caller logs in afterwards.
	RegisterResult struct {
		UserID       string
		Email        string
		XUsername    string
		XDisplayName string
		CreatedAt    time.Time
		SessionToken string
	}

	// LoginCommand struct - Domain request DTO for authentication
	LoginCommand struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required"`
	}

	// CreateQACommand struct - Domain request DTO for submitting a question.
	// DateFrom and DateTo bound the feed window; when both are set DateFrom
	// must not be after DateTo.
	CreateQACommand struct {
		Question string `validate:"required,max=2000"`
		DateFrom *time.Time
		DateTo   *time.Time
	}
)

// RequestStatus is the lifecycle of the single pending request a QA session
// tracks.
type RequestStatus int

const (
	RequestIdle RequestStatus = iota
	RequestInFlight
	RequestSucceeded
	RequestFailed
)

func (s RequestStatus) String() string {
	switch s {
	case RequestIdle:
		return "idle"
	case RequestInFlight:
		return "in_flight"
	case RequestSucceeded:
		return "succeeded"
	case RequestFailed:
		return "failed"
	default:
		return "unknown"
	}
}
