package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/athell/grimoire/engine"
	"github.com/athell/grimoire/world"
)

// testRealm builds a two-room world with a takeable note.
func testRealm(t *testing.T) *world.Realm {
	t.Helper()

	note := world.NewItem("note", world.ContextDescription{
		Room:      "note-room",
		Look:      "note-look",
		Inventory: "note-inv",
	})

	start := world.NewRoom("start", "Outside", "start-long")
	start.Connections = []world.Connection{
		{Direction: world.North, To: "shed"},
	}
	start.AddItem(note)

	shed := world.NewRoom("shed", "The Shed", "shed-long")
	shed.Connections = []world.Connection{
		{Direction: world.South, To: "start"},
	}

	rooms, err := world.NewRoomRepository([]*world.Room{start, shed})
	if err != nil {
		t.Fatalf("building test world: %v", err)
	}

	texts := world.NewTextRepository(map[string]string{
		"msg-welcome": "Welcome to the test.",
		"msg-bye":     "Be seeing you.",
		"msg-ok":      "OK.",
		"msg-what":    "What?",
		"msg-carrying-the-following": "You are carrying:",
		"msg-not-carrying-anything":  "You aren't carrying anything.",
		"start-long":                 "You stand outside a shed.",
		"shed-long":                  "Dust and cobwebs.",
		"note-room":                  "A note lies here.",
		"note-look":                  "Spidery handwriting.",
		"note-inv":                   "a note",
	})

	return &world.Realm{Title: "Shed Quest", Version: "0.1", Rooms: rooms, Texts: texts}
}

func newTestCLI(t *testing.T, input string) (*CLI, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c := New(testRealm(t))
	c.In = strings.NewReader(input)
	c.Out = &out
	return c, &out
}

func TestRunWelcomeAndStartingRoom(t *testing.T) {
	c, out := newTestCLI(t, "/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Shed Quest") {
		t.Error("realm title missing from banner")
	}
	if !strings.Contains(output, "Welcome to the test.") {
		t.Error("welcome text missing")
	}
	if !strings.Contains(output, "Outside") {
		t.Error("starting room title missing")
	}
	if !strings.Contains(output, "You stand outside a shed.") {
		t.Error("starting room description missing")
	}
	if !strings.Contains(output, "Be seeing you.") {
		t.Error("bye text missing after /quit")
	}
}

func TestRunBasicGameplay(t *testing.T) {
	c, out := newTestCLI(t, "take note\ni\ngo north\nquit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "OK.") {
		t.Error("take confirmation missing")
	}
	if !strings.Contains(output, "You are carrying:") || !strings.Contains(output, "a note") {
		t.Error("inventory listing missing")
	}
	if !strings.Contains(output, "The Shed") {
		t.Error("room title after movement missing")
	}
}

func TestRunSkipsCommentsAndBlankLines(t *testing.T) {
	c, out := newTestCLI(t, "# opening moves\n\ntake note\n/quit\n")
	c.Run()

	if strings.Contains(out.String(), "What?") {
		t.Error("comment or blank line reached the engine")
	}
	if !strings.Contains(out.String(), "OK.") {
		t.Error("command after comment not processed")
	}
}

func TestRunEchoInput(t *testing.T) {
	c, out := newTestCLI(t, "take note\n/quit\n")
	c.EchoInput = true
	c.Run()

	if !strings.Contains(out.String(), "take note") {
		t.Error("input not echoed in script playback mode")
	}
}

func TestRunAgainRepeats(t *testing.T) {
	c, out := newTestCLI(t, "go north\nagain\n/quit\n")
	c.Run()

	// north from the shed fails; the repeat should produce a second
	// shed entry attempt, not a repeat error.
	if strings.Contains(out.String(), "Nothing to repeat.") {
		t.Error("again did not find the previous command")
	}

	c2, out2 := newTestCLI(t, "g\n/quit\n")
	c2.Run()
	if !strings.Contains(out2.String(), "Nothing to repeat.") {
		t.Error("g with no history should report nothing to repeat")
	}
}

func TestMetaState(t *testing.T) {
	c, out := newTestCLI(t, "take note\n/state\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "[Location: start]") {
		t.Errorf("location missing from /state output:\n%s", output)
	}
	if !strings.Contains(output, "note") {
		t.Error("inventory missing from /state output")
	}
}

func TestMetaUnknown(t *testing.T) {
	c, out := newTestCLI(t, "/teapot\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "Unknown command: /teapot") {
		t.Error("unknown meta-command not reported")
	}
}

func TestGetUserChoice(t *testing.T) {
	choices := []engine.Choice{
		{Value: "ask", Text: "Any news?"},
		{Value: "bye", Text: "Goodbye."},
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"by number", "2\n", "bye"},
		{"by value", "ask\n", "ask"},
		{"by value case-insensitive", "BYE\n", "bye"},
		{"out of range number", "7\n", "7"},
		{"unrecognized text", "maybe\n", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newTestCLI(t, tt.input)
			got, ok := c.GetUserChoice(choices)
			if !ok {
				t.Fatal("GetUserChoice reported exhausted input")
			}
			if got != tt.want {
				t.Errorf("GetUserChoice = %q, want %q", got, tt.want)
			}
			if !strings.Contains(out.String(), "1) Any news?") {
				t.Error("menu not printed")
			}
		})
	}
}

func TestGetUserChoiceExhaustedInput(t *testing.T) {
	choices := []engine.Choice{{Value: "bye", Text: "Goodbye."}}

	c, _ := newTestCLI(t, "")
	if _, ok := c.GetUserChoice(choices); ok {
		t.Error("GetUserChoice on empty input should report exhaustion")
	}
}
