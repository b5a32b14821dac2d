// cart_test.go - Tests for the cart value object

package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func menuItem(id uint, name, price string) MenuItem {
	return MenuItem{ID: id, Name: name, Price: decimal.RequireFromString(price)}
}

func TestCartStartsEmpty(t *testing.T) {
	var cart Cart

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.ItemCount())
	assert.Empty(t, cart.Entries())
	assert.True(t, cart.Total().IsZero())
}

func TestCartAddAggregatesQuantity(t *testing.T) {
	burger := menuItem(1, "Burger", "99.00")

	var cart Cart
	cart.Add(burger)
	cart.Add(burger)

	entries := cart.Entries()
	assert.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Quantity)
	assert.Equal(t, 2, cart.ItemCount())
	assert.False(t, cart.IsEmpty())
}

func TestCartKeepsInsertionOrder(t *testing.T) {
	burger := menuItem(1, "Burger", "99.00")
	fries := menuItem(6, "Fries", "49.00")

	var cart Cart
	cart.Add(burger)
	cart.Add(fries)
	cart.Add(burger)

	entries := cart.Entries()
	assert.Len(t, entries, 2)
	assert.Equal(t, "Burger", entries[0].Item.Name)
	assert.Equal(t, 2, entries[0].Quantity)
	assert.Equal(t, "Fries", entries[1].Item.Name)
	assert.Equal(t, 1, entries[1].Quantity)
}

func TestCartTotal(t *testing.T) {
	burger := menuItem(1, "Burger", "99.00")
	fries := menuItem(6, "Fries", "49.00")

	var cart Cart
	cart.Add(burger)
	cart.Add(burger)
	cart.Add(fries)

	assert.True(t, cart.Total().Equal(decimal.RequireFromString("247.00")),
		"expected 247.00, got %s", cart.Total())
}

func TestCartEntrySubtotal(t *testing.T) {
	entry := CartEntry{Item: menuItem(3, "Pasta", "149.00"), Quantity: 3}
	assert.True(t, entry.Subtotal().Equal(decimal.RequireFromString("447.00")))
}

func TestCartClear(t *testing.T) {
	var cart Cart
	cart.Add(menuItem(2, "Pizza", "199.00"))
	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Total().IsZero())
}

func TestCartEntriesReturnsCopy(t *testing.T) {
	var cart Cart
	cart.Add(menuItem(1, "Burger", "99.00"))

	entries := cart.Entries()
	entries[0].Quantity = 100

	assert.Equal(t, 1, cart.Entries()[0].Quantity)
}
