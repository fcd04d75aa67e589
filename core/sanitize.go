package core

import (
	"regexp"
	"strconv"
	"strings"
)

// Field sanitization for settings saves. Every recognized form field passes
// through one of these before it is written to the option store.

var (
	tagPattern      = regexp.MustCompile(`<[^>]*>`)
	slugDisallowed  = regexp.MustCompile(`[^a-z0-9-]+`)
	slugDashRuns    = regexp.MustCompile(`-{2,}`)
	cssCommentOpen  = "/*"
	cssCommentClose = "*/"
)

// ClampInt parses raw as an integer and clamps it into [min, max].
// Unparseable input falls back to def (which is itself clamped).
func ClampInt(raw string, min, max, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		n = def
	}
	if n < min {
		n = min
	}
	if n > max {
		n = max
	}
	return n
}

// OneOf returns raw when it matches one of the allowed values, otherwise def.
func OneOf(raw string, allowed []string, def string) string {
	raw = strings.TrimSpace(raw)
	for _, v := range allowed {
		if raw == v {
			return v
		}
	}
	return def
}

// YesNo normalizes a boolean-flag field to the literal "yes" or "no".
// Anything other than an affirmative value is "no"; absent input keeps def.
func YesNo(raw string, def string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "on", "1", "true":
		return "yes"
	case "no", "off", "0", "false":
		return "no"
	case "":
		return def
	default:
		return "no"
	}
}

// StripTags removes anything that looks like an HTML/XML tag from free text.
func StripTags(raw string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(raw, ""))
}

// SanitizeSlug lowercases raw and reduces it to [a-z0-9-], collapsing runs of
// dashes. An input that sanitizes to nothing yields def.
func SanitizeSlug(raw, def string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "-")
	s = slugDisallowed.ReplaceAllString(s, "")
	s = slugDashRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return def
	}
	return s
}

// SanitizeCSS strips tags from a free-text CSS blob. Comments are preserved
// but an unterminated comment is closed so the blob cannot swallow whatever
// the page renders after it.
func SanitizeCSS(raw string) string {
	css := StripTags(raw)
	if strings.Count(css, cssCommentOpen) > strings.Count(css, cssCommentClose) {
		css += " " + cssCommentClose
	}
	return css
}
