package world

// Inventory is the player's item repository.
type Inventory struct {
	items []*Item
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add places an item in the inventory. A countable item merges into an
// existing same-named stack; the zeroed donor is discarded.
func (inv *Inventory) Add(item *Item) {
	if item.Kind == KindCountable {
		for _, existing := range inv.items {
			if existing.Equals(item) && existing.Kind == KindCountable {
				existing.MergeWith(item) //nolint:errcheck // names match by Equals
				return
			}
		}
	}
	inv.items = append(inv.items, item)
}

// Remove removes the item with the given canonical name and returns it, or
// nil when not held.
func (inv *Inventory) Remove(name string) *Item {
	for i, it := range inv.items {
		if it.Name == name {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return it
		}
	}
	return nil
}

// Find resolves a word (name or synonym) to a held item.
func (inv *Inventory) Find(word string) *Item {
	for _, it := range inv.items {
		if it.Matches(word) {
			return it
		}
	}
	return nil
}

// FindByName returns the held item with the given canonical name, or nil.
func (inv *Inventory) FindByName(name string) *Item {
	for _, it := range inv.items {
		if it.Name == name {
			return it
		}
	}
	return nil
}

// Items returns the held items in insertion order.
func (inv *Inventory) Items() []*Item {
	return inv.items
}

// IsEmpty reports whether the player is carrying nothing.
func (inv *Inventory) IsEmpty() bool {
	return len(inv.items) == 0
}
