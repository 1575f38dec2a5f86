package adapter

import (
	"regexp"
	"strings"
)

var (
	reURL        = regexp.MustCompile(`(?i)\b[a-z][a-z0-9+.\-]*://[^\s"'<>]+`)
	reAPIPath    = regexp.MustCompile(`(?i)(?:/|\b)api/[^\s"'<>),;\]]*|/api\b`)
	reHealthPath = regexp.MustCompile(`(?i)/health\b[^\s"'<>),;\]]*`)
	reMethodPath = regexp.MustCompile(`\b(GET|POST|PUT|PATCH|DELETE|HEAD|OPTIONS)\s+/[^\s"'<>),;\]]*`)
	reRoutePath  = regexp.MustCompile(`(^|[\s(\["'=])/[A-Za-z0-9_.~%\-]+/[^\s"'<>),;\]]*`)
	reHint       = regexp.MustCompile(`(?is)[\s(\[,;.-]*\bhint\s*:.*$`)
	reEmptyPunct = regexp.MustCompile(`\(\s*\)|\[\s*\]|"\s*"|'\s*'`)
	reSpaces     = regexp.MustCompile(`\s+`)
)

// SanitizeMessage removes absolute URLs, API route paths, the health path,
// any multi-segment path, a path following an HTTP method, and trailing
// "hint:" text from a server supplied message.
func SanitizeMessage(msg string) string {
	msg = reHint.ReplaceAllString(msg, "")
	msg = reURL.ReplaceAllString(msg, " ")
	msg = reAPIPath.ReplaceAllString(msg, " ")
	msg = reHealthPath.ReplaceAllString(msg, " ")
	msg = reMethodPath.ReplaceAllString(msg, "$1 ")
	msg = reRoutePath.ReplaceAllString(msg, "$1 ")
	msg = reEmptyPunct.ReplaceAllString(msg, " ")
	msg = reSpaces.ReplaceAllString(msg, " ")

	return strings.Trim(msg, " :;,-")
}
