package input

import (
	"context"

	"github.com/sopeal/AskYourFeed/internal/domain"
)

// AuthService interface - Input port (use case)
// Account lifecycle plus the navigation gate. Decide must be pure given the
// current session store state; the decision is never cached across calls
// because the session can expire between navigations.
type AuthService interface {
	Register(ctx context.Context, cmd domain.RegisterCommand) (*domain.RegisterResult, error)
	Login(ctx context.Context, cmd domain.LoginCommand) (*domain.Session, error)
	Logout() error
	CurrentSession() (*domain.Session, error)
	Decide(route domain.RouteKind) domain.RouteDecision
}
