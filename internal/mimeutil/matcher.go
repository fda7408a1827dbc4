package mimeutil

import "strings"

// MatchesType reports whether contentType matches a pattern that may use
// basic wildcards:
//
//	application/x-foo
//	application/*
//	application/*+xml
//	*
//
// Base types compare case-insensitively. Every parameter the pattern carries
// must be present in contentType with an identical value; contentType may
// carry extra parameters.
func MatchesType(pattern, contentType string) bool {
	if pattern == "" {
		return false
	}

	basePattern, _, _ := strings.Cut(pattern, ";")
	baseType, _, _ := strings.Cut(contentType, ";")

	if basePattern == "*" || basePattern == "*/*" {
		return matchesParameters(pattern, contentType)
	}

	star := strings.IndexByte(basePattern, '*')
	if star < 0 {
		if len(basePattern) == len(baseType) && strings.EqualFold(basePattern, baseType) {
			return matchesParameters(pattern, contentType)
		}
		return false
	}

	// Length guard prevents the prefix and suffix from overlapping in the
	// tested type.
	if len(baseType) < len(basePattern)-1 {
		return false
	}

	left := basePattern[:star]
	right := basePattern[star+1:]

	if !hasPrefixFold(baseType, left) {
		return false
	}
	if right != "" && !hasSuffixFold(baseType, right) {
		return false
	}

	return matchesParameters(pattern, contentType)
}

// matchesParameters tests MIME parameter equality. Each parameter in the
// pattern must be matched by a parameter in contentType; a pattern without
// parameters matches unconditionally.
//
// Per RFC 2045 parameter keys are case-insensitive while values usually are
// not, so values compare case-sensitively. That can produce false negatives
// for the few attributes with case-insensitive values.
func matchesParameters(pattern, contentType string) bool {
	semicolon := strings.IndexByte(pattern, ';')
	testSemicolon := strings.IndexByte(contentType, ';')
	if semicolon < 0 {
		return true
	}
	if testSemicolon < 0 {
		return false
	}

	patternParams := parseParameters(pattern[semicolon+1:])
	testParams := parseParameters(contentType[testSemicolon+1:])

	if len(patternParams) > len(testParams) {
		return false
	}

	for key, value := range patternParams {
		testValue, ok := testParams[key]
		if !ok || testValue != value {
			return false
		}
	}
	return true
}

// parseParameters splits a ;-separated parameter list into key=value pairs
// with keys lower-cased. A repeated key keeps its last value.
func parseParameters(s string) map[string]string {
	params := make(map[string]string)
	for _, pair := range strings.Split(s, ";") {
		key, value, _ := strings.Cut(pair, "=")
		params[strings.ToLower(key)] = value
	}
	return params
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}
