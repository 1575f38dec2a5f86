package navigation

import (
	"slices"
	"strings"
)

// Top-level route labels. They are compared as opaque strings.
const (
	RouteOnboarding = "onboarding"
	RouteLogin      = "login"
	RouteHome       = "(tabs)"
)

// Redirect targets.
const (
	PathOnboarding = "/onboarding"
	PathLogin      = "/login"
	PathHome       = "/(tabs)"
)

// Route is the current location as ordered path segments.
type Route []string

// ParseRoute splits a slash separated path into segments.
func ParseRoute(path string) Route {
	var r Route
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			r = append(r, seg)
		}
	}
	return r
}

// First returns the first segment, or "" for the root.
func (r Route) First() string {
	if len(r) == 0 {
		return ""
	}
	return r[0]
}

// InHome reports whether r is inside the authenticated home tree.
func (r Route) InHome() bool {
	return r.First() == RouteHome
}

// Equal reports whether both routes have the same segments.
func (r Route) Equal(other Route) bool {
	return slices.Equal(r, other)
}

func (r Route) String() string {
	return "/" + strings.Join(r, "/")
}
