package mimeutil

import "strings"

// ParseTypeWithoutParameter splits a bare type string such as "text/html"
// into its top-level type and subtype. Both components must be valid HTTP
// tokens; anything else fails with no partial result. Components are returned
// verbatim, not case-normalized.
func ParseTypeWithoutParameter(typeString string) (topLevel, subtype string, ok bool) {
	components := strings.Split(typeString, "/")
	if len(components) != 2 || !IsToken(components[0]) || !IsToken(components[1]) {
		return "", "", false
	}
	return components[0], components[1], true
}

// IsValidTopLevelType reports whether typeString is a registered top-level
// media type, or an experimental one under the x- convention.
func IsValidTopLevelType(typeString string) bool {
	lower := strings.ToLower(typeString)
	for _, t := range legalTopLevelTypes {
		if lower == t {
			return true
		}
	}
	return len(typeString) > 2 && strings.HasPrefix(lower, "x-")
}

// IsToken reports whether s is a valid token per RFC 2616 section 2.2: a
// non-empty sequence of ASCII characters excluding controls and separators.
func IsToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= 31 || c >= 127 || isSeparator(c) {
			return false
		}
	}
	return true
}

func isSeparator(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '"', '/',
		'[', ']', '?', '=', '{', '}', ' ', '\t':
		return true
	}
	return false
}
