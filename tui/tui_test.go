package tui

import (
	"strings"
	"testing"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"You are outside a small building.", kindNarrative},
		{"OK.", kindNarrative},
		{"", kindNarrative},
		{"  1) Any news?", kindChoice},
		{"  2) Goodbye.", kindChoice},
		{`"Strange lights in the forest," he mutters.`, kindDialogue},
		{`He said "no".`, kindNarrative}, // quote segment too short
	}
	for _, tt := range tests {
		if got := classifyLine(tt.line); got != tt.want {
			t.Errorf("classifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestContainsQuotedSpeech(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{`"Hello, adventurer. Welcome."`, true},
		{"No quotes here.", false},
		{`"Hi"`, false}, // too short
		{`She says "the crown is lost forever."`, true},
	}
	for _, tt := range tests {
		if got := containsQuotedSpeech(tt.line); got != tt.want {
			t.Errorf("containsQuotedSpeech(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 80, "short"},
		{"hello world", 5, "hello\nworld"},
		{"The great hall stretches before you with its vaulted ceiling.", 30,
			"The great hall stretches\nbefore you with its vaulted\nceiling."},
		{"", 80, ""},
		{"a b c d e", 3, "a b\nc d\ne"},
	}
	for _, tt := range tests {
		if got := wordWrap(tt.text, tt.width); got != tt.want {
			t.Errorf("wordWrap(%q, %d) =\n  %q\nwant:\n  %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestHistoryNavigation(t *testing.T) {
	h := NewHistory(5)
	h.Push("look")
	h.Push("go north")
	h.Push("take key")

	for _, want := range []string{"take key", "go north", "look", "look"} {
		prev, ok := h.Prev()
		if !ok || prev != want {
			t.Fatalf("Prev() = %q (ok=%v), want %q", prev, ok, want)
		}
	}

	next, ok := h.Next()
	if !ok || next != "go north" {
		t.Errorf("Next() = %q (ok=%v), want go north", next, ok)
	}
	h.Next() // take key
	if _, ok := h.Next(); ok {
		t.Error("Next() past the most recent entry should report not ok")
	}
}

func TestHistorySkipsConsecutiveDuplicates(t *testing.T) {
	h := NewHistory(5)
	h.Push("look")
	h.Push("look")
	h.Push("go north")
	h.Push("look")

	if len(h.lines) != 3 {
		t.Errorf("history holds %d entries, want 3", len(h.lines))
	}
}

func TestHistoryBounded(t *testing.T) {
	h := NewHistory(2)
	h.Push("a")
	h.Push("b")
	h.Push("c")

	if len(h.lines) != 2 {
		t.Fatalf("history holds %d entries, want 2", len(h.lines))
	}
	if h.lines[0] != "b" || h.lines[1] != "c" {
		t.Errorf("oldest entry not evicted: %v", h.lines)
	}
}

func TestRenderStatusBar(t *testing.T) {
	m := Model{
		width: 80,
		status: statusSnapshot{
			Room:      "Outside",
			Exits:     []string{"north"},
			Inventory: []string{"a note", "coin x5"},
			Turns:     7,
		},
	}

	bar := m.renderStatusBar()
	for _, want := range []string{"Outside", "Exits: north", "a note", "coin x5", "T:7"} {
		if !strings.Contains(bar, want) {
			t.Errorf("status bar missing %q:\n%s", want, bar)
		}
	}
}

func TestRenderStatusBarFallsBackToCount(t *testing.T) {
	m := Model{
		width: 30,
		status: statusSnapshot{
			Room:      "Outside",
			Exits:     []string{"north"},
			Inventory: []string{"a very long item name", "another very long item name"},
			Turns:     2,
		},
	}

	bar := m.renderStatusBar()
	if !strings.Contains(bar, "Inv: 2") {
		t.Errorf("narrow status bar should show the inventory count:\n%s", bar)
	}
}

func TestChoicePrefix(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"1) Any news?", true},
		{"9) Goodbye.", true},
		{"0) nope", false},
		{"10 items", false},
		{"x) letter", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := choicePrefix(tt.line); got != tt.want {
			t.Errorf("choicePrefix(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
