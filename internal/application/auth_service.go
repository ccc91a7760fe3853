package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sopeal/AskYourFeed/internal/domain"
	"github.com/sopeal/AskYourFeed/internal/ports/input"
	"github.com/sopeal/AskYourFeed/internal/ports/output"
	"github.com/sopeal/AskYourFeed/pkg/validator"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure AuthService implements the input port
var _ input.AuthService = (*AuthService)(nil)

// AuthService struct - Application service implementing account use cases and
// the navigation gate. The session store is an explicit dependency, never
// ambient global state.
type AuthService struct {
	api      output.FeedQAAPI
	sessions output.SessionStore
	validate validator.Validator
}

// NewAuthService func - Creates new auth service
func NewAuthService(api output.FeedQAAPI, sessions output.SessionStore, validate validator.Validator) *AuthService {
	return &AuthService{
		api:      api,
		sessions: sessions,
		validate: validate,
	}
}

// Register func - Use case: Create a new account.
// Local validation failures are field-scoped and never reach the network.
// Registration does not persist a session; the response carries no expiry,
// and a session without a valid expiry must never enter the store.
func (s *AuthService) Register(ctx context.Context, cmd domain.RegisterCommand) (*domain.RegisterResult, error) {
	if err := s.validate.ValidateStruct(cmd); err != nil {
		return nil, asValidationError(err)
	}

	result, err := s.api.Register(ctx, cmd)
	if err != nil {
		logrus.Errorf("Registration failed: %v", err)
		return nil, mapRegisterError(err)
	}

	logrus.Infof("Registered account %s for X user @%s", result.Email, result.XUsername)
	return result, nil
}

// Login func - Use case: Authenticate and persist the session.
func (s *AuthService) Login(ctx context.Context, cmd domain.LoginCommand) (*domain.Session, error) {
	if err := s.validate.ValidateStruct(cmd); err != nil {
		return nil, asValidationError(err)
	}

	session, err := s.api.Login(ctx, cmd)
	if err != nil {
		logrus.Errorf("Login failed: %v", err)
		return nil, mapLoginError(err)
	}

	if err := s.sessions.Save(session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	logrus.Infof("Logged in as %s", session.Email)
	return session, nil
}

// Logout func - Use case: Drop the persisted session.
func (s *AuthService) Logout() error {
	return s.sessions.Clear()
}

// CurrentSession func - Returns the valid session, or nil when logged out.
func (s *AuthService) CurrentSession() (*domain.Session, error) {
	return s.sessions.Load()
}

// Decide func - Use case: Gate a navigation target against the current
// session. Evaluated fresh on every call; the session can expire between
// navigations, so decisions are never cached.
func (s *AuthService) Decide(route domain.RouteKind) domain.RouteDecision {
	session, err := s.sessions.Load()
	valid := err == nil && session != nil

	switch route {
	case domain.RouteProtected:
		if !valid {
			return domain.Redirect(domain.TargetLogin)
		}
	case domain.RouteAuthOnly:
		if valid {
			return domain.Redirect(domain.TargetHome)
		}
	}
	return domain.Allow()
}

// mapRegisterError attaches known backend error codes to their form fields.
func mapRegisterError(err error) error {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case domain.CodeEmailAlreadyRegistered:
			return &domain.ConflictError{Field: "email", Message: apiErr.Message}
		case domain.CodeXUsernameNotFound:
			return &domain.NotFoundError{Field: "x_username", Message: apiErr.Message}
		case domain.CodeValidationError:
			return &domain.ValidationError{Field: firstDetailField(apiErr.Details), Message: apiErr.Message}
		}
	}
	return domain.Classify(err)
}

// mapLoginError turns a 401 into the bad-credentials category; everything
// else follows the standard classification.
func mapLoginError(err error) error {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatus == http.StatusUnauthorized {
			return fmt.Errorf("%w", domain.ErrAuth)
		}
		if apiErr.Code == domain.CodeValidationError {
			return &domain.ValidationError{Field: firstDetailField(apiErr.Details), Message: apiErr.Message}
		}
	}
	return domain.Classify(err)
}

func firstDetailField(details map[string]interface{}) string {
	for field := range details {
		return field
	}
	return "form"
}
