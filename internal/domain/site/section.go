package site

import (
	"regexp"
	"strings"

	"gym-backend/internal/domain/apperr"
)

var sectionKey = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// NormalizeSection lower-cases a section key and checks it is URL-safe,
// e.g. " Hero " -> "hero".
func NormalizeSection(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if !sectionKey.MatchString(s) {
		return "", apperr.Validation("invalid section %q", raw)
	}
	return s, nil
}
