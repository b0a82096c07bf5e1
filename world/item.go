// Package world defines the game entities (items, rooms, NPCs, dialogs)
// and the repositories that index and validate them. Entities are built
// once at load time and mutated in place for the duration of a session.
package world

import (
	"fmt"
	"strings"
)

// ItemKind discriminates the item variants. A single tagged struct replaces
// an inheritance chain: shared fields live on Item, variant fields are only
// meaningful for their kind.
type ItemKind int

const (
	KindPlain ItemKind = iota
	KindCountable
	KindContainer
)

// ContextDescription holds the text keys used to describe an entity in the
// three places it can appear: listed in a room, looked at directly, and
// listed in the inventory.
type ContextDescription struct {
	Room      string
	Look      string
	Inventory string
}

// overlay returns base with any non-empty fields of over applied on top.
func (base ContextDescription) overlay(over ContextDescription) ContextDescription {
	if over.Room != "" {
		base.Room = over.Room
	}
	if over.Look != "" {
		base.Look = over.Look
	}
	if over.Inventory != "" {
		base.Inventory = over.Inventory
	}
	return base
}

// DescriptionContext selects which slot of a ContextDescription to resolve.
type DescriptionContext int

const (
	RoomContext DescriptionContext = iota
	LookContext
	InventoryContext
)

func (d ContextDescription) slot(ctx DescriptionContext) string {
	switch ctx {
	case LookContext:
		return d.Look
	case InventoryContext:
		return d.Inventory
	default:
		return d.Room
	}
}

// ItemState is one named state of an item's state machine, with optional
// description overrides that apply while the state is current.
type ItemState struct {
	Name        string
	Description ContextDescription
}

// CountDescription is a count-tiered description override for countable
// items. The highest tier whose Count threshold is <= the current count wins.
type CountDescription struct {
	Count       int
	Description ContextDescription
}

// Item is a world object the player can look at, carry, and act on.
type Item struct {
	Name        string
	Words       []string // synonyms
	Kind        ItemKind
	Description ContextDescription
	States      []ItemState
	Visible     bool
	Immovable   bool
	Triggers    []ActionTrigger

	// Countable fields.
	Count int
	Tiers []CountDescription

	// Container fields.
	Open bool

	current string // current state name, "" when stateless
}

// NewItem creates a plain, visible item.
func NewItem(name string, desc ContextDescription) *Item {
	return &Item{Name: name, Kind: KindPlain, Description: desc, Visible: true}
}

// NewCountableItem creates a countable item with the given starting count.
// Counts below zero are clamped to zero.
func NewCountableItem(name string, desc ContextDescription, count int) *Item {
	if count < 0 {
		count = 0
	}
	return &Item{Name: name, Kind: KindCountable, Description: desc, Visible: true, Count: count}
}

// NewContainerItem creates a closed container item.
func NewContainerItem(name string, desc ContextDescription) *Item {
	return &Item{Name: name, Kind: KindContainer, Description: desc, Visible: true}
}

// DeclareStates installs the item's state machine. The current state becomes
// initial if it names a declared state, otherwise the first declared state.
func (it *Item) DeclareStates(states []ItemState, initial string) {
	it.States = states
	it.current = ""
	if len(states) == 0 {
		return
	}
	it.current = states[0].Name
	for _, s := range states {
		if s.Name == initial {
			it.current = initial
			break
		}
	}
}

// CurrentState returns the name of the item's current state, or "" for a
// stateless item.
func (it *Item) CurrentState() string {
	return it.current
}

// SetState moves the item to the named state. It is a no-op returning false
// when the name is not among the declared states or the item is already in
// that state.
func (it *Item) SetState(name string) bool {
	if name == it.current {
		return false
	}
	for _, s := range it.States {
		if s.Name == name {
			it.current = name
			return true
		}
	}
	return false
}

// Matches reports whether word names this item, either by its canonical
// name or one of its synonyms.
func (it *Item) Matches(word string) bool {
	if strings.EqualFold(it.Name, word) {
		return true
	}
	for _, w := range it.Words {
		if strings.EqualFold(w, word) {
			return true
		}
	}
	return false
}

// Equals reports item identity: two items are the same iff their names
// match, regardless of object identity.
func (it *Item) Equals(other *Item) bool {
	return other != nil && it.Name == other.Name
}

// Reveal makes a hidden item visible. Returns false without mutation when
// the item is already visible.
func (it *Item) Reveal() bool {
	if it.Visible {
		return false
	}
	it.Visible = true
	return true
}

// Hide makes a visible item invisible. Returns false without mutation when
// the item is already hidden.
func (it *Item) Hide() bool {
	if !it.Visible {
		return false
	}
	it.Visible = false
	return true
}

// DescriptionKey resolves the text key describing this item in the given
// context, applying count-tier overrides (countable items) and then the
// current state's overrides on top of the base description.
func (it *Item) DescriptionKey(ctx DescriptionContext) string {
	desc := it.Description
	if it.Kind == KindCountable {
		best := -1
		for i, tier := range it.Tiers {
			if tier.Count <= it.Count && (best < 0 || tier.Count >= it.Tiers[best].Count) {
				best = i
			}
		}
		if best >= 0 {
			desc = desc.overlay(it.Tiers[best].Description)
		}
	}
	for _, s := range it.States {
		if s.Name == it.current {
			desc = desc.overlay(s.Description)
			break
		}
	}
	return desc.slot(ctx)
}

// SubtractCount removes n from a countable item's count. It fails without
// mutation when n exceeds the current count or the item is not countable.
func (it *Item) SubtractCount(n int) bool {
	if it.Kind != KindCountable || n < 0 || n > it.Count {
		return false
	}
	it.Count -= n
	return true
}

// MergeWith folds another countable stack of the same name into this one,
// adding its count here and zeroing the donor. The caller is responsible
// for discarding the zeroed donor from its container.
func (it *Item) MergeWith(other *Item) error {
	if it.Kind != KindCountable || other == nil || other.Kind != KindCountable {
		return fmt.Errorf("merge requires two countable items")
	}
	if it.Name != other.Name {
		return fmt.Errorf("cannot merge %q into %q: names differ", other.Name, it.Name)
	}
	it.Count += other.Count
	other.Count = 0
	return nil
}

// Close closes a container item. Returns false when the item is not a
// container or is already closed.
func (it *Item) Close() bool {
	if it.Kind != KindContainer || !it.Open {
		return false
	}
	it.Open = false
	return true
}

// TriggersFor returns the item's action triggers bound to the given verb.
func (it *Item) TriggersFor(verb string) []ActionTrigger {
	var matched []ActionTrigger
	for _, tr := range it.Triggers {
		if strings.EqualFold(tr.Verb, verb) {
			matched = append(matched, tr)
		}
	}
	return matched
}
