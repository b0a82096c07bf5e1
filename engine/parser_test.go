package engine

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"look", "look"},
		{"LOOK  NOTE", "look note"},
		{"  take   note  ", "take note"},
		{"n", "go north"},
		{"north", "go north"},
		{"go n", "go north"},
		{"go north", "go north"},
		{"u", "go up"},
		{"l", "look"},
		{"i", "inventory"},
		{"bag", "inventory"},
		{"inv", "inventory"},
		{"", ""},
		{"   ", ""},
		{"go", "go"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		line   string
		verb   string
		target string
		value  string
	}{
		{"look", "look", "", ""},
		{"take note", "take", "note", ""},
		{"changestate lamp lit", "changestate", "lamp", "lit"},
		{"take small brass key", "take", "small", "brass"},
		{"", "", "", ""},
	}
	for _, tt := range tests {
		verb, target, value := Tokenize(tt.line)
		if verb != tt.verb || target != tt.target || value != tt.value {
			t.Errorf("Tokenize(%q) = (%q, %q, %q), want (%q, %q, %q)",
				tt.line, verb, target, value, tt.verb, tt.target, tt.value)
		}
	}
}
