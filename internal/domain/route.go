package domain

// RouteKind classifies a navigation target for the auth gate.
type RouteKind int

const (
	// RoutePublic is reachable with or without a session.
	RoutePublic RouteKind = iota
	// RouteProtected requires a valid session.
	RouteProtected
	// RouteAuthOnly is for login/register screens, reachable only without a
	// session.
	RouteAuthOnly
)

// RouteTarget names a redirect destination.
type RouteTarget string

const (
	TargetLogin RouteTarget = "login"
	TargetHome  RouteTarget = "home"
)

// RouteDecision is the outcome of evaluating a route against the current
// session state.
type RouteDecision struct {
	Allowed    bool
	RedirectTo RouteTarget
}

// Allow grants navigation.
func Allow() RouteDecision {
	return RouteDecision{Allowed: true}
}

// Redirect denies navigation and names the target to go to instead.
func Redirect(target RouteTarget) RouteDecision {
	return RouteDecision{RedirectTo: target}
}
