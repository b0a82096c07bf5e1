package engine

// TextWithAudioFiles pairs a resolved display string with the ordered text
// keys that produced it. A renderer may map the keys to audio cues; the
// engine never depends on whether playback happens.
type TextWithAudioFiles struct {
	Text      string
	AudioKeys []string
}

// Choice is one selectable entry in a dialog menu.
type Choice struct {
	Value string
	Text  string
}

// UI is the narrow rendering boundary the engine talks to. Both bundled
// frontends (plain terminal and bubbletea) implement it.
type UI interface {
	DisplayWelcomeMessage()
	DisplayRoomTitle(title string)
	DisplayMessage(msg TextWithAudioFiles)
	// DisplayMessageAsync is for renderers that overlap audio playback with
	// the next prompt; plain renderers treat it like DisplayMessage.
	DisplayMessageAsync(msg TextWithAudioFiles)
	// GetUserInput returns the next input line; ok is false when the input
	// source is exhausted or the player asked to leave.
	GetUserInput() (input string, ok bool)
	// GetUserChoice presents a menu and returns the selected Value. An
	// unrecognized selection is returned verbatim; the dialog machine
	// treats it as "stay on the current node". ok is false when the input
	// source is exhausted, which ends the conversation.
	GetUserChoice(choices []Choice) (selection string, ok bool)
}
