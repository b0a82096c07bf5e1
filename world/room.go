package world

import "strings"

// Direction is one of the six cardinal travel directions.
type Direction string

const (
	North Direction = "north"
	East  Direction = "east"
	South Direction = "south"
	West  Direction = "west"
	Up    Direction = "up"
	Down  Direction = "down"
)

var opposites = map[Direction]Direction{
	North: South,
	South: North,
	East:  West,
	West:  East,
	Up:    Down,
	Down:  Up,
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// ParseDirection converts a word into a Direction.
func ParseDirection(word string) (Direction, bool) {
	d := Direction(strings.ToLower(word))
	_, ok := opposites[d]
	return d, ok
}

// Connection is a directed edge from one room to another. It matches either
// its canonical direction token or one of its synonym words ("building"
// meaning "go north").
type Connection struct {
	Direction   Direction
	To          string
	Description string // optional text key
	Words       []string
}

// Matches reports whether word names this connection.
func (c *Connection) Matches(word string) bool {
	if strings.EqualFold(string(c.Direction), word) {
		return true
	}
	for _, w := range c.Words {
		if strings.EqualFold(w, word) {
			return true
		}
	}
	return false
}

// Room is one location in the world graph.
type Room struct {
	Name             string
	Title            string
	Description      string // text key
	ShortDescription string // optional text key, shown after revisits
	Connections      []Connection
	Items            []*Item
	NPCs             []*NPC

	visits int
}

// NewRoom creates an empty room.
func NewRoom(name, title, description string) *Room {
	return &Room{Name: name, Title: title, Description: description}
}

// Enter records a visit to the room.
func (r *Room) Enter() {
	r.visits++
}

// Visits returns how many times the player has entered the room.
func (r *Room) Visits() int {
	return r.visits
}

// ConnectionFor resolves a word (direction token or connection synonym) to
// an outgoing connection.
func (r *Room) ConnectionFor(word string) (*Connection, bool) {
	for i := range r.Connections {
		if r.Connections[i].Matches(word) {
			return &r.Connections[i], true
		}
	}
	return nil, false
}

// ConnectionIn returns the connection leaving in the given direction.
func (r *Room) ConnectionIn(dir Direction) (*Connection, bool) {
	for i := range r.Connections {
		if r.Connections[i].Direction == dir {
			return &r.Connections[i], true
		}
	}
	return nil, false
}

// AddItem places an item in the room. A countable item merges into an
// existing same-named stack instead of appearing twice.
func (r *Room) AddItem(item *Item) {
	if item.Kind == KindCountable {
		for _, existing := range r.Items {
			if existing.Equals(item) && existing.Kind == KindCountable {
				existing.MergeWith(item) //nolint:errcheck // names match by Equals
				return
			}
		}
	}
	r.Items = append(r.Items, item)
}

// RemoveItem removes the item with the given canonical name from the room
// and returns it, or nil when absent.
func (r *Room) RemoveItem(name string) *Item {
	for i, it := range r.Items {
		if it.Name == name {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return it
		}
	}
	return nil
}

// FindItem resolves a word to a visible item in the room.
func (r *Room) FindItem(word string) *Item {
	for _, it := range r.Items {
		if it.Visible && it.Matches(word) {
			return it
		}
	}
	return nil
}

// FindItemIncludingHidden resolves a word to an item in the room whether or
// not it is currently visible.
func (r *Room) FindItemIncludingHidden(word string) *Item {
	for _, it := range r.Items {
		if it.Matches(word) {
			return it
		}
	}
	return nil
}

// FindNPC resolves a word to an NPC present in the room.
func (r *Room) FindNPC(word string) *NPC {
	for _, n := range r.NPCs {
		if n.Matches(word) {
			return n
		}
	}
	return nil
}
