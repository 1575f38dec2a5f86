package navigation

import (
	"github.com/MKhiriev/nurse-notes/internal/onboarding"
	"github.com/MKhiriev/nurse-notes/internal/session"
)

// Inputs is everything the guard looks at.
type Inputs struct {
	Onboarding onboarding.Status
	Session    session.Snapshot
	Route      Route
}

// Equal compares inputs by value.
func (in Inputs) Equal(other Inputs) bool {
	return in.Onboarding == other.Onboarding &&
		in.Session.Equal(other.Session) &&
		in.Route.Equal(other.Route)
}

// Ready is the join of both hydrations: neither store is loading and both
// have resolved their tri-state.
func Ready(in Inputs) bool {
	if in.Onboarding.Loading || in.Session.Loading {
		return false
	}
	if _, known := in.Session.IsAuthenticated(); !known {
		return false
	}
	_, known := in.Onboarding.HasSeen.Bool()
	return known
}

// Action is what the guard should do.
type Action int8

const (
	ActionNone Action = iota
	ActionRedirect
	ActionDelayedRedirect
)

func (a Action) String() string {
	switch a {
	case ActionRedirect:
		return "redirect"
	case ActionDelayedRedirect:
		return "delayed-redirect"
	default:
		return "none"
	}
}

// Decision is the outcome of [Decide].
type Decision struct {
	Action Action
	Target string
}

var none = Decision{Action: ActionNone}

// Decide applies the redirect table to ready inputs. Rows are checked top to
// bottom and the first match wins:
//
//	seen   authed  route            action
//	false  *       != onboarding    redirect /onboarding
//	false  *       onboarding       none
//	true   *       onboarding       none
//	true   true    login            delayed redirect /(tabs)
//	true   true    not home tree    redirect /(tabs)
//	true   true    home tree        none
//	true   false   home tree        redirect /login
//	true   false   anything else    none
//
// Decide does not check readiness; see [Ready].
func Decide(in Inputs) Decision {
	seen, _ := in.Onboarding.HasSeen.Bool()
	authed, _ := in.Session.IsAuthenticated()
	first := in.Route.First()

	switch {
	case !seen && first != RouteOnboarding:
		return Decision{Action: ActionRedirect, Target: PathOnboarding}
	case first == RouteOnboarding:
		return none
	case authed && first == RouteLogin:
		return Decision{Action: ActionDelayedRedirect, Target: PathHome}
	case authed && !in.Route.InHome():
		return Decision{Action: ActionRedirect, Target: PathHome}
	case !authed && in.Route.InHome():
		return Decision{Action: ActionRedirect, Target: PathLogin}
	default:
		return none
	}
}
