// Package stringutil checks contact details before they are rendered as links.
package stringutil

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail checks if s is a valid email address.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// MailtoLink returns a mailto: href for s, or "" when s is not an email
// address. Surrounding whitespace is ignored.
func MailtoLink(s string) string {
	s = strings.TrimSpace(s)
	if !IsValidEmail(s) {
		return ""
	}
	return "mailto:" + s
}
