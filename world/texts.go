package world

import "sort"

// TextRepository resolves text keys to display strings. A missing key
// resolves to itself so authoring gaps are visible instead of silent.
type TextRepository struct {
	texts map[string]string
}

// NewTextRepository wraps a key→string map.
func NewTextRepository(texts map[string]string) *TextRepository {
	if texts == nil {
		texts = map[string]string{}
	}
	return &TextRepository{texts: texts}
}

// Text resolves a key, returning the key itself when unmapped.
func (t *TextRepository) Text(key string) string {
	if s, ok := t.texts[key]; ok {
		return s
	}
	return key
}

// Has reports whether the key is mapped.
func (t *TextRepository) Has(key string) bool {
	_, ok := t.texts[key]
	return ok
}

// Keys returns all mapped keys in sorted order.
func (t *TextRepository) Keys() []string {
	keys := make([]string, 0, len(t.texts))
	for k := range t.texts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RoomDescription concatenates a room's description with its connection
// descriptions. The short description is used once the room has been
// visited more than once, unless forceLong is set (an explicit "look").
// It returns the resolved text and, in order, the text keys that
// contributed (the renderer maps these to audio cues).
func (t *TextRepository) RoomDescription(room *Room, forceLong bool) (string, []string) {
	key := room.Description
	if !forceLong && room.Visits() > 1 && room.ShortDescription != "" {
		key = room.ShortDescription
	}

	text := t.Text(key)
	keys := []string{key}

	for i := range room.Connections {
		ck := room.Connections[i].Description
		if ck == "" {
			continue
		}
		text += " " + t.Text(ck)
		keys = append(keys, ck)
	}

	return text, keys
}
