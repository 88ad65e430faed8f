package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/221BLondon/Mymenu/internal/cart"
	"github.com/221BLondon/Mymenu/internal/models"
)

func fixtureItem(id int, name string, price float64) models.MenuItem {
	return models.MenuItem{
		ID:          id,
		Name:        name,
		Price:       price,
		Images:      []string{"https://example.com/" + name + ".jpg"},
		Ingredients: []string{"Salt"},
		Allergens:   []string{},
		Category:    "Main Course",
	}
}

func TestAdd(t *testing.T) {
	curry := fixtureItem(1, "curry", 15.99)
	pizza := fixtureItem(2, "pizza", 13.99)

	t.Run("appends a new line with quantity and comment", func(t *testing.T) {
		lines := cart.Add(nil, curry, 2, "extra spicy")
		assert.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].ID)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, "extra spicy", lines[0].Comment)
	})

	t.Run("adding the same item twice merges into one line", func(t *testing.T) {
		lines := cart.Add(nil, curry, 2, "")
		lines = cart.Add(lines, curry, 3, "")
		assert.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Quantity)
	})

	t.Run("merge keeps the existing comment", func(t *testing.T) {
		lines := cart.Add(nil, curry, 1, "no onions")
		lines = cart.Add(lines, curry, 1, "ignored")
		assert.Equal(t, "no onions", lines[0].Comment)
	})

	t.Run("existing line position is preserved, new lines appended", func(t *testing.T) {
		lines := cart.Add(nil, curry, 1, "")
		lines = cart.Add(lines, pizza, 1, "")
		lines = cart.Add(lines, curry, 1, "")
		assert.Equal(t, 1, lines[0].ID)
		assert.Equal(t, 2, lines[1].ID)
	})

	t.Run("does not mutate the previous state", func(t *testing.T) {
		lines := cart.Add(nil, curry, 1, "")
		_ = cart.Add(lines, curry, 4, "")
		assert.Equal(t, 1, lines[0].Quantity)
	})
}

func TestRemove(t *testing.T) {
	lines := cart.Add(nil, fixtureItem(1, "curry", 15.99), 1, "")
	lines = cart.Add(lines, fixtureItem(2, "pizza", 13.99), 1, "")

	t.Run("removes the matching line", func(t *testing.T) {
		next := cart.Remove(lines, 1)
		assert.Len(t, next, 1)
		assert.Equal(t, 2, next[0].ID)
	})

	t.Run("is a no-op for an absent id", func(t *testing.T) {
		next := cart.Remove(lines, 99)
		assert.Equal(t, lines, next)
	})
}

func TestSetQuantityAndComment(t *testing.T) {
	lines := cart.Add(nil, fixtureItem(1, "curry", 15.99), 1, "")

	next := cart.SetQuantity(lines, 1, 7)
	assert.Equal(t, 7, next[0].Quantity)
	assert.Equal(t, 1, lines[0].Quantity)

	next = cart.SetComment(next, 1, "well done")
	assert.Equal(t, "well done", next[0].Comment)

	next = cart.SetComment(next, 1, "")
	assert.Equal(t, "", next[0].Comment)

	// absent id leaves everything as it was
	assert.Equal(t, next, cart.SetQuantity(next, 42, 3))
}

func TestTotals(t *testing.T) {
	lines := cart.Add(nil, fixtureItem(1, "curry", 15.99), 2, "")
	lines = cart.Add(lines, fixtureItem(2, "pizza", 13.99), 3, "")

	assert.InDelta(t, 2*15.99+3*13.99, cart.Total(lines), 1e-9)
	assert.Equal(t, 5, cart.ItemCount(lines))

	// total is recomputed from the lines, never cached
	lines = cart.SetQuantity(lines, 1, 1)
	assert.InDelta(t, 15.99+3*13.99, cart.Total(lines), 1e-9)
	assert.Equal(t, 0, cart.ItemCount(nil))
	assert.Equal(t, 0.0, cart.Total(nil))
}

func TestSnapshot(t *testing.T) {
	lines := cart.Add(nil, fixtureItem(1, "curry", 15.99), 1, "mild")

	snap := cart.Snapshot(lines)
	lines[0].Quantity = 9
	lines[0].Ingredients[0] = "Pepper"

	assert.Equal(t, 1, snap[0].Quantity)
	assert.Equal(t, "Salt", snap[0].Ingredients[0])
}
