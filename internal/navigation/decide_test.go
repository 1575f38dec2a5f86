package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/nurse-notes/internal/onboarding"
	"github.com/MKhiriev/nurse-notes/internal/session"
	"github.com/MKhiriev/nurse-notes/models"
)

var (
	seen    = onboarding.Status{HasSeen: onboarding.Yes}
	notSeen = onboarding.Status{HasSeen: onboarding.No}

	signedIn  = session.Snapshot{State: session.StateAuthenticated, User: &models.UserProfile{ID: "u-1"}}
	signedOut = session.Snapshot{State: session.StateUnauthenticated}
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name string
		in   Inputs
		want Decision
	}{
		{name: "not seen, signed out, home", in: Inputs{notSeen, signedOut, Route{RouteHome}}, want: Decision{ActionRedirect, PathOnboarding}},
		{name: "not seen, signed in, home", in: Inputs{notSeen, signedIn, Route{RouteHome, "notes"}}, want: Decision{ActionRedirect, PathOnboarding}},
		{name: "not seen, login", in: Inputs{notSeen, signedOut, Route{RouteLogin}}, want: Decision{ActionRedirect, PathOnboarding}},
		{name: "not seen, root", in: Inputs{notSeen, signedOut, nil}, want: Decision{ActionRedirect, PathOnboarding}},
		{name: "not seen, onboarding", in: Inputs{notSeen, signedIn, Route{RouteOnboarding}}, want: none},
		{name: "seen, signed in, onboarding", in: Inputs{seen, signedIn, Route{RouteOnboarding}}, want: none},
		{name: "seen, signed out, onboarding", in: Inputs{seen, signedOut, Route{RouteOnboarding}}, want: none},
		{name: "seen, signed in, login", in: Inputs{seen, signedIn, Route{RouteLogin}}, want: Decision{ActionDelayedRedirect, PathHome}},
		{name: "seen, signed in, root", in: Inputs{seen, signedIn, nil}, want: Decision{ActionRedirect, PathHome}},
		{name: "seen, signed in, unknown route", in: Inputs{seen, signedIn, Route{"settings"}}, want: Decision{ActionRedirect, PathHome}},
		{name: "seen, signed in, home", in: Inputs{seen, signedIn, Route{RouteHome}}, want: none},
		{name: "seen, signed in, home child", in: Inputs{seen, signedIn, Route{RouteHome, "profile"}}, want: none},
		{name: "seen, signed out, home", in: Inputs{seen, signedOut, Route{RouteHome}}, want: Decision{ActionRedirect, PathLogin}},
		{name: "seen, signed out, home child", in: Inputs{seen, signedOut, Route{RouteHome, "notes"}}, want: Decision{ActionRedirect, PathLogin}},
		{name: "seen, signed out, login", in: Inputs{seen, signedOut, Route{RouteLogin}}, want: none},
		{name: "seen, signed out, other route", in: Inputs{seen, signedOut, Route{"settings"}}, want: none},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.in))
		})
	}
}

func TestReady(t *testing.T) {
	tests := []struct {
		name string
		in   Inputs
		want bool
	}{
		{name: "both resolved", in: Inputs{Onboarding: seen, Session: signedOut}, want: true},
		{name: "onboarding loading", in: Inputs{Onboarding: onboarding.Status{HasSeen: onboarding.Unknown, Loading: true}, Session: signedOut}},
		{name: "session loading", in: Inputs{Onboarding: seen, Session: session.Snapshot{State: session.StateUnknown, Loading: true}}},
		{name: "session unknown but not loading", in: Inputs{Onboarding: seen, Session: session.Snapshot{State: session.StateUnknown}}},
		{name: "onboarding unknown but not loading", in: Inputs{Onboarding: onboarding.Status{HasSeen: onboarding.Unknown}, Session: signedIn}},
		{name: "both loading", in: Inputs{
			Onboarding: onboarding.Status{Loading: true},
			Session:    session.Snapshot{Loading: true},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ready(tt.in))
		})
	}
}

func TestRoute(t *testing.T) {
	assert.Equal(t, Route{"(tabs)", "notes"}, ParseRoute("/(tabs)/notes"))
	assert.Equal(t, Route{"login"}, ParseRoute("login/"))
	assert.Empty(t, ParseRoute("/"))

	assert.Equal(t, "", Route(nil).First())
	assert.True(t, Route{RouteHome, "profile"}.InHome())
	assert.False(t, Route{RouteLogin}.InHome())
	assert.Equal(t, "/(tabs)/profile", Route{RouteHome, "profile"}.String())
	assert.True(t, ParseRoute(PathHome).Equal(Route{RouteHome}))
}
