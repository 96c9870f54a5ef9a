package cart

import (
	"sort"

	"emy-orders/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

// Entry pairs a frozen catalog snapshot with a quantity. An Entry never
// exists with Quantity < 1; quantity edits that would drop below 1
// remove the entry instead.
type Entry struct {
	Item     catalog.Item `json:"item"`
	Quantity int          `json:"quantity"`
}

// Cart is the session-local selection of items, keyed by item ID.
// All operations are total functions over the current mapping; there
// are no error conditions.
type Cart struct {
	Entries map[string]Entry `json:"entries"`
}

func New() *Cart {
	return &Cart{Entries: make(map[string]Entry)}
}

// Add inserts the item with quantity 1. Adding an item that is already
// present is a no-op: quantity changes only go through SetQuantity.
func (c *Cart) Add(item catalog.Item) {
	if c.Entries == nil {
		c.Entries = make(map[string]Entry)
	}
	if _, ok := c.Entries[item.ID]; ok {
		return
	}
	c.Entries[item.ID] = Entry{Item: item, Quantity: 1}
}

// SetQuantity updates the entry's quantity when q > 0 and removes the
// entry entirely when q <= 0. Unknown IDs are ignored.
func (c *Cart) SetQuantity(itemID string, q int) {
	entry, ok := c.Entries[itemID]
	if !ok {
		return
	}
	if q <= 0 {
		delete(c.Entries, itemID)
		return
	}
	entry.Quantity = q
	c.Entries[itemID] = entry
}

func (c *Cart) Remove(itemID string) {
	delete(c.Entries, itemID)
}

func (c *Cart) Clear() {
	c.Entries = make(map[string]Entry)
}

func (c *Cart) Len() int {
	return len(c.Entries)
}

func (c *Cart) IsEmpty() bool {
	return len(c.Entries) == 0
}

// Total is the sum of unit price times quantity over all entries,
// rounded to 2 decimal places. An empty cart totals 0.00.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range c.Entries {
		line := entry.Item.UnitPrice.Mul(decimal.NewFromInt(int64(entry.Quantity)))
		total = total.Add(line)
	}
	return total.Round(2)
}

// Snapshot returns the entries as a stable ordered sequence (by item ID)
// so checkout requests are deterministic regardless of map iteration.
func (c *Cart) Snapshot() []Entry {
	entries := make([]Entry, 0, len(c.Entries))
	for _, entry := range c.Entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Item.ID < entries[j].Item.ID
	})
	return entries
}
