package mimeutil

import "testing"

func TestParseTypeWithoutParameter(t *testing.T) {
	tests := []struct {
		input    string
		topLevel string
		subtype  string
		ok       bool
	}{
		{"text/html", "text", "html", true},
		{"TEXT/HTML", "TEXT", "HTML", true}, // components returned verbatim
		{"application/xhtml+xml", "application", "xhtml+xml", true},
		{"bogus", "", "", false},
		{"text/", "", "", false},
		{"/html", "", "", false},
		{"text/html/x", "", "", false},
		{"text /html", "", "", false},
		{"text/ht ml", "", "", false},
		{"text/html;charset=utf-8", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topLevel, subtype, ok := ParseTypeWithoutParameter(tt.input)
			if ok != tt.ok || topLevel != tt.topLevel || subtype != tt.subtype {
				t.Errorf("ParseTypeWithoutParameter(%q) = %q, %q, %v; want %q, %q, %v",
					tt.input, topLevel, subtype, ok, tt.topLevel, tt.subtype, tt.ok)
			}
		})
	}
}

func TestIsValidTopLevelType(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"application", true},
		{"audio", true},
		{"example", true},
		{"image", true},
		{"message", true},
		{"model", true},
		{"multipart", true},
		{"text", true},
		{"video", true},
		{"TEXT", true},
		{"X-custom", true},
		{"x-custom", true},
		{"x-", false}, // too short for the experimental convention
		{"xy", false}, // not a literal x- prefix
		{"font", false},
		{"bogus", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidTopLevelType(tt.input); got != tt.want {
				t.Errorf("IsValidTopLevelType(%q) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsToken(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"html", true},
		{"x-custom", true},
		{"xhtml+xml", true},
		{"", false},
		{"te xt", false},
		{"te;xt", false},
		{"te/xt", false},
		{"te\"xt", false},
		{"te\x00xt", false},
		{"te\x7fxt", false},
		{"tëxt", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsToken(tt.input); got != tt.want {
				t.Errorf("IsToken(%q) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}
