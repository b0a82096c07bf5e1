package world

// Realm is a fully loaded, validated world: the room graph plus the text
// key map. It is what the loader hands to the engine.
type Realm struct {
	Title   string
	Version string
	Rooms   *RoomRepository
	Texts   *TextRepository
}
