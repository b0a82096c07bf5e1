package world

import (
	"fmt"
	"sort"
	"strings"
)

// StartRoomName is the room every world must define; the player spawns there.
const StartRoomName = "start"

// ValidationError collects all world-integrity errors and warnings found
// during construction, so authors see every problem at once.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// Errorf appends a formatted error.
func (e *ValidationError) Errorf(format string, args ...any) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

// Warnf appends a formatted warning.
func (e *ValidationError) Warnf(format string, args ...any) {
	e.Warnings = append(e.Warnings, fmt.Sprintf(format, args...))
}

// RoomRepository indexes the immutable world graph by room name. It refuses
// construction when the graph is inconsistent: the game must not start with
// a broken world.
type RoomRepository struct {
	rooms map[string]*Room
	names []string // sorted, for deterministic iteration
}

// NewRoomRepository validates and indexes a flat list of rooms.
// Construction fails when any two rooms share a name or title, no room is
// named "start", any two items across all rooms share a name, any two
// movable items share an inventory-description text key, a connection
// targets an unknown room, or a connection has no matching reverse
// connection in the opposite direction.
func NewRoomRepository(rooms []*Room) (*RoomRepository, error) {
	ve := &ValidationError{}

	repo := &RoomRepository{rooms: make(map[string]*Room, len(rooms))}
	titles := map[string]string{}
	for _, room := range rooms {
		if _, dup := repo.rooms[room.Name]; dup {
			ve.Errorf("duplicate room name %q", room.Name)
			continue
		}
		repo.rooms[room.Name] = room
		repo.names = append(repo.names, room.Name)
		if other, dup := titles[room.Title]; dup {
			ve.Errorf("rooms %q and %q share title %q", other, room.Name, room.Title)
		}
		titles[room.Title] = room.Name
	}
	sort.Strings(repo.names)

	if _, ok := repo.rooms[StartRoomName]; !ok {
		ve.Errorf("no room named %q", StartRoomName)
	}

	validateItems(rooms, ve)
	validateConnections(repo, rooms, ve)

	if len(ve.Errors) > 0 {
		return nil, ve
	}
	return repo, nil
}

func validateItems(rooms []*Room, ve *ValidationError) {
	itemRooms := map[string]string{}
	invTexts := map[string]string{}
	for _, room := range rooms {
		for _, it := range room.Items {
			if other, dup := itemRooms[it.Name]; dup {
				ve.Errorf("item %q appears in both %q and %q", it.Name, other, room.Name)
				continue
			}
			itemRooms[it.Name] = room.Name

			if it.Immovable {
				continue
			}
			key := it.Description.Inventory
			if key == "" {
				continue
			}
			if other, dup := invTexts[key]; dup {
				ve.Errorf("movable items %q and %q share inventory description %q", other, it.Name, key)
			}
			invTexts[key] = it.Name
		}
	}
}

func validateConnections(repo *RoomRepository, rooms []*Room, ve *ValidationError) {
	for _, room := range rooms {
		for i := range room.Connections {
			conn := &room.Connections[i]
			target, ok := repo.rooms[conn.To]
			if !ok {
				ve.Errorf("room %q connection %s points to undefined room %q",
					room.Name, conn.Direction, conn.To)
				continue
			}
			reverse, ok := target.ConnectionIn(conn.Direction.Opposite())
			if !ok || reverse.To != room.Name {
				ve.Errorf("room %q connection %s to %q has no reverse %s connection",
					room.Name, conn.Direction, conn.To, conn.Direction.Opposite())
			}
		}
	}
}

// GetRoomByName returns the room or an error when no such room exists.
func (r *RoomRepository) GetRoomByName(name string) (*Room, error) {
	room, ok := r.rooms[name]
	if !ok {
		return nil, fmt.Errorf("room %q not found", name)
	}
	return room, nil
}

// FindRoomByName returns the room and whether it exists.
func (r *RoomRepository) FindRoomByName(name string) (*Room, bool) {
	room, ok := r.rooms[name]
	return room, ok
}

// StartRoom returns the mandatory start room.
func (r *RoomRepository) StartRoom() *Room {
	return r.rooms[StartRoomName]
}

// Rooms returns all rooms in deterministic name order.
func (r *RoomRepository) Rooms() []*Room {
	out := make([]*Room, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.rooms[name])
	}
	return out
}
