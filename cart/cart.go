package cart

import (
	"sync"

	"github.com/AutoNateAI/insta-matrix-insights-flow/model"
)

// Cart is the user's working set of selected posts and comments. It holds
// at most one item per (id, type) pair: a hash index enforces membership
// while the ordered list preserves insertion order for display. Cart items
// are snapshots; they survive a corpus clear.
type Cart struct {
	mu    sync.RWMutex
	items []model.CartItem
	index map[string]bool
}

func New() *Cart {
	return &Cart{index: make(map[string]bool)}
}

func key(id, itemType string) string {
	return itemType + ":" + id
}

// Add appends an item unless its (id, type) pair is already present.
// Returns false for duplicates; the caller surfaces the notice.
func (c *Cart) Add(item model.CartItem) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := key(item.ID, item.Type)
	if c.index[k] {
		return false
	}
	c.items = append(c.items, item)
	c.index[k] = true
	return true
}

// Remove drops the entry matching the composite key. Removing an absent
// item is a no-op.
func (c *Cart) Remove(id, itemType string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := key(id, itemType)
	if !c.index[k] {
		return
	}
	delete(c.index, k)

	kept := c.items[:0]
	for _, item := range c.items {
		if !(item.ID == id && item.Type == itemType) {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.index = make(map[string]bool)
}

// Contains reports whether an (id, type) pair is in the cart.
func (c *Cart) Contains(id, itemType string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.index[key(id, itemType)]
}

// Items returns the cart contents in insertion order.
func (c *Cart) Items() []model.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len reports the number of items in the cart.
func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
