// Package engine implements the command interpretation and world-state
// mutation core: command dispatch, action triggers, the dialog state
// machine, and the Game facade commands mutate through. All processing is
// strictly turn-based: one input line runs to completion before the next
// is read, so no locking is needed anywhere in the package.
package engine

import "github.com/athell/grimoire/world"

// Player holds the player's mutable session state: the current room and
// the carried inventory.
type Player struct {
	room      *world.Room
	inventory *world.Inventory
}

// Room returns the player's current room.
func (p *Player) Room() *world.Room {
	return p.room
}

// Inventory returns the player's inventory.
func (p *Player) Inventory() *world.Inventory {
	return p.inventory
}

// Game is the aggregate root: it owns the player, the validated room graph,
// and the text repository, and is the sole mutation/query facade commands
// use.
type Game struct {
	rooms  *world.RoomRepository
	texts  *world.TextRepository
	player *Player
	turns  int
}

// NewGame starts a session in the realm's start room. Spawning counts as
// the first visit.
func NewGame(realm *world.Realm) *Game {
	start := realm.Rooms.StartRoom()
	start.Enter()
	return &Game{
		rooms: realm.Rooms,
		texts: realm.Texts,
		player: &Player{
			room:      start,
			inventory: world.NewInventory(),
		},
	}
}

// Player returns the player.
func (g *Game) Player() *Player {
	return g.player
}

// CurrentRoom returns the player's current room.
func (g *Game) CurrentRoom() *world.Room {
	return g.player.room
}

// Rooms returns the room repository.
func (g *Game) Rooms() *world.RoomRepository {
	return g.rooms
}

// Texts returns the text repository.
func (g *Game) Texts() *world.TextRepository {
	return g.texts
}

// MoveTo moves the player into a room, recording the visit.
func (g *Game) MoveTo(room *world.Room) {
	g.player.room = room
	room.Enter()
}

// FindItem resolves a word to a visible item, searching the inventory
// first and then the current room.
func (g *Game) FindItem(word string) *world.Item {
	if it := g.player.inventory.Find(word); it != nil {
		return it
	}
	return g.player.room.FindItem(word)
}

// FindItemIncludingHidden resolves a word to an item regardless of
// visibility, searching the inventory first and then the current room.
func (g *Game) FindItemIncludingHidden(word string) *world.Item {
	if it := g.player.inventory.Find(word); it != nil {
		return it
	}
	return g.player.room.FindItemIncludingHidden(word)
}

// DescribeRoom renders a room's description (short form on revisits unless
// forceLong) with its contributing audio keys.
func (g *Game) DescribeRoom(room *world.Room, forceLong bool) TextWithAudioFiles {
	text, keys := g.texts.RoomDescription(room, forceLong)
	return TextWithAudioFiles{Text: text, AudioKeys: keys}
}

// Message resolves a single text key into a displayable message.
func (g *Game) Message(key string) TextWithAudioFiles {
	return TextWithAudioFiles{Text: g.texts.Text(key), AudioKeys: []string{key}}
}

// Turns returns the number of completed turns.
func (g *Game) Turns() int {
	return g.turns
}

func (g *Game) advanceTurn() {
	g.turns++
}
