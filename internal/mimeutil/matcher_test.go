package mimeutil

import "testing"

func TestMatchesType(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		typ     string
		want    bool
	}{
		{"empty pattern", "", "video/mpeg", false},
		{"universal star", "*", "video/mpeg", true},
		{"universal star slash star", "*/*", "video/mpeg", true},
		{"exact match", "video/mpeg", "video/mpeg", true},
		{"exact match case insensitive", "text/html", "TEXT/HTML", true},
		{"exact mismatch", "text/html", "text/plain", false},
		{"subtype wildcard", "video/*", "video/mpeg", true},
		{"subtype wildcard wrong top level", "video/*", "audio/mpeg", false},
		{"wildcard with suffix", "application/*+xml", "application/xhtml+xml", true},
		{"suffix must follow wildcard", "application/*+xml", "application/xml", false},
		{"wildcard matching empty middle", "application/*+xml", "application/+xml", true},
		{"candidate shorter than pattern", "application/*+xml", "application/xm", false},
		{"wildcard case insensitive", "Application/*+XML", "application/xhtml+xml", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesType(tt.pattern, tt.typ); got != tt.want {
				t.Errorf("MatchesType(%q, %q) = %v; want %v", tt.pattern, tt.typ, got, tt.want)
			}
		})
	}
}

func TestMatchesTypeParameters(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		typ     string
		want    bool
	}{
		{"equal parameter", "text/html;charset=utf-8", "text/html;charset=utf-8", true},
		{"value is case sensitive", "text/html;charset=utf-8", "text/html;charset=UTF-8", false},
		{"key is case insensitive", "text/html;Charset=x", "text/html;charset=x", true},
		{"pattern parameter missing from type", "text/html;charset=utf-8", "text/html", false},
		{"type may carry extra parameters", "text/html", "text/html;charset=utf-8", true},
		{"subset with extras", "text/html;a=1;b=2", "text/html;b=2;a=1;c=3", true},
		{"pattern has more keys than type", "text/html;a=1;b=2", "text/html;a=1", false},
		{"wrong value", "text/html;a=1", "text/html;a=2", false},
		{"universal base still checks parameters", "*/*;charset=utf-8", "text/html;charset=utf-8", true},
		{"universal base missing parameter", "*;charset=utf-8", "text/html", false},
		{"wildcard base with parameter", "video/*;q=1", "video/mp4;q=1", true},
		{"repeated pattern key keeps last value", "text/html;a=1;a=2", "text/html;a=2", true},
		{"repeated pattern key drops earlier value", "text/html;a=1;a=2", "text/html;a=1", false},
		{"bare semicolons on both sides", "text/html;", "text/html;", true},
		{"bare semicolon only in pattern", "text/html;", "text/html", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesType(tt.pattern, tt.typ); got != tt.want {
				t.Errorf("MatchesType(%q, %q) = %v; want %v", tt.pattern, tt.typ, got, tt.want)
			}
		})
	}
}
