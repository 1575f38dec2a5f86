package tui

import "github.com/MKhiriev/nurse-notes/models"

// NavigateTo replaces the current route with Path.
type NavigateTo struct {
	Path string
}

// onboardingCheckedMsg and sessionRestoredMsg report the end of a
// hydration. The state itself is read back from the stores.
type onboardingCheckedMsg struct{}

type sessionRestoredMsg struct{}

type signInResultMsg struct {
	user models.UserProfile
	err  error
}

type signedOutMsg struct{}

type profileRefreshedMsg struct {
	err error
}

type healthCheckedMsg struct {
	available bool
}
