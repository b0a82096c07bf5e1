package world

import (
	"strings"
	"testing"
)

// validWorld builds the smallest graph that passes all validation: a start
// room and a second room with matched reverse connections.
func validWorld() []*Room {
	start := NewRoom("start", "Outside", "start-description")
	start.Connections = []Connection{{Direction: North, To: "house"}}
	house := NewRoom("house", "Inside", "house-description")
	house.Connections = []Connection{{Direction: South, To: "start"}}
	return []*Room{start, house}
}

func TestNewRoomRepositoryValid(t *testing.T) {
	repo, err := NewRoomRepository(validWorld())
	if err != nil {
		t.Fatalf("NewRoomRepository: %v", err)
	}
	if repo.StartRoom() == nil || repo.StartRoom().Name != "start" {
		t.Error("StartRoom did not return the start room")
	}
	if _, err := repo.GetRoomByName("house"); err != nil {
		t.Errorf("GetRoomByName(house): %v", err)
	}
	if _, err := repo.GetRoomByName("cellar"); err == nil {
		t.Error("GetRoomByName for an unknown room should fail")
	}
	rooms := repo.Rooms()
	if len(rooms) != 2 || rooms[0].Name != "house" || rooms[1].Name != "start" {
		t.Errorf("Rooms() not in sorted name order: %v", []string{rooms[0].Name, rooms[1].Name})
	}
}

func TestNewRoomRepositoryInvalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(rooms []*Room) []*Room
		wantErr string
	}{
		{
			name: "duplicate room name",
			mutate: func(rooms []*Room) []*Room {
				dup := NewRoom("house", "Also Inside", "house-description-2")
				return append(rooms, dup)
			},
			wantErr: "duplicate room name",
		},
		{
			name: "duplicate room title",
			mutate: func(rooms []*Room) []*Room {
				rooms[1].Title = "Outside"
				return rooms
			},
			wantErr: "share title",
		},
		{
			name: "missing start room",
			mutate: func(rooms []*Room) []*Room {
				rooms[0].Name = "lobby"
				rooms[1].Connections[0].To = "lobby"
				return rooms
			},
			wantErr: `no room named "start"`,
		},
		{
			name: "dangling connection",
			mutate: func(rooms []*Room) []*Room {
				rooms[0].Connections[0].To = "attic"
				return rooms
			},
			wantErr: "undefined room",
		},
		{
			name: "missing reverse connection",
			mutate: func(rooms []*Room) []*Room {
				rooms[1].Connections = nil
				return rooms
			},
			wantErr: "no reverse",
		},
		{
			name: "item in two rooms",
			mutate: func(rooms []*Room) []*Room {
				rooms[0].AddItem(NewItem("lamp", ContextDescription{}))
				rooms[1].AddItem(NewItem("lamp", ContextDescription{}))
				return rooms
			},
			wantErr: "appears in both",
		},
		{
			name: "movable items share inventory description",
			mutate: func(rooms []*Room) []*Room {
				a := NewItem("fork", ContextDescription{Inventory: "inv-cutlery"})
				b := NewItem("spoon", ContextDescription{Inventory: "inv-cutlery"})
				rooms[0].AddItem(a)
				rooms[1].AddItem(b)
				return rooms
			},
			wantErr: "share inventory description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRoomRepository(tt.mutate(validWorld()))
			if err == nil {
				t.Fatal("expected validation error, got none")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestImmovableItemsMayShareInventoryKey(t *testing.T) {
	rooms := validWorld()
	a := NewItem("boulder", ContextDescription{Inventory: "inv-rock"})
	a.Immovable = true
	b := NewItem("pebblewall", ContextDescription{Inventory: "inv-rock"})
	b.Immovable = true
	rooms[0].AddItem(a)
	rooms[1].AddItem(b)

	if _, err := NewRoomRepository(rooms); err != nil {
		t.Errorf("immovable items sharing an inventory key should validate: %v", err)
	}
}
