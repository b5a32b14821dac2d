// cart.go - In-memory shopping cart attached to a login session

package models

import "github.com/shopspring/decimal"

// CartEntry is one line of a cart: a menu item and how many of it.
type CartEntry struct {
	Item     MenuItem
	Quantity int
}

// Subtotal returns price times quantity for this line.
func (e CartEntry) Subtotal() decimal.Decimal {
	return e.Item.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// Cart holds the items a user has picked, in the order they were first
// added. Adding an item that is already present bumps its quantity
// instead of creating a second line. The zero value is an empty cart.
// Cart is not safe for concurrent use; callers synchronize around it.
type Cart struct {
	entries []CartEntry
}

// Add puts one unit of the item into the cart.
func (c *Cart) Add(item MenuItem) {
	for i := range c.entries {
		if c.entries[i].Item.ID == item.ID {
			c.entries[i].Quantity++
			return
		}
	}
	c.entries = append(c.entries, CartEntry{Item: item, Quantity: 1})
}

// Entries returns a copy of the cart lines in insertion order.
func (c *Cart) Entries() []CartEntry {
	out := make([]CartEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Total returns the sum of all line subtotals.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range c.entries {
		total = total.Add(e.Subtotal())
	}
	return total
}

// ItemCount returns the total number of units across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, e := range c.entries {
		count += e.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.entries = nil
}
