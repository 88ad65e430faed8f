// Package cart holds the cart aggregation rules. Every operation is a pure
// function from (lines, args) to a new line slice; callers own the state and
// swap it for the returned value.
package cart

import "github.com/221BLondon/Mymenu/internal/models"

// Add merges the item into the cart. An existing line for the same item id
// gets its quantity increased in place (comment untouched); otherwise a new
// line is appended. Existing line positions are preserved.
func Add(lines []models.CartLine, item models.MenuItem, quantity int, comment string) []models.CartLine {
	for i, line := range lines {
		if line.ID == item.ID {
			next := make([]models.CartLine, len(lines))
			copy(next, lines)
			next[i].Quantity = line.Quantity + quantity
			return next
		}
	}
	next := make([]models.CartLine, len(lines), len(lines)+1)
	copy(next, lines)
	return append(next, models.CartLine{
		MenuItem: item.Clone(),
		Quantity: quantity,
		Comment:  comment,
	})
}

// Remove filters out the line with the given id. No-op when absent.
func Remove(lines []models.CartLine, id int) []models.CartLine {
	next := make([]models.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.ID != id {
			next = append(next, line)
		}
	}
	return next
}

// SetQuantity replaces the quantity of the line with the given id. The lower
// bound is the caller's concern: the presentation layer clamps to >=1 before
// calling, removal stays an explicit Remove.
func SetQuantity(lines []models.CartLine, id, quantity int) []models.CartLine {
	next := make([]models.CartLine, len(lines))
	copy(next, lines)
	for i := range next {
		if next[i].ID == id {
			next[i].Quantity = quantity
		}
	}
	return next
}

// SetComment replaces the special-instructions text of the line with the
// given id. An empty string means no special instructions.
func SetComment(lines []models.CartLine, id int, comment string) []models.CartLine {
	next := make([]models.CartLine, len(lines))
	copy(next, lines)
	for i := range next {
		if next[i].ID == id {
			next[i].Comment = comment
		}
	}
	return next
}

// Total recomputes the cart total from scratch.
func Total(lines []models.CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// ItemCount is the sum of line quantities, not the number of lines.
func ItemCount(lines []models.CartLine) int {
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}

// Snapshot deep-copies the lines so the result is immune to later cart edits.
func Snapshot(lines []models.CartLine) []models.CartLine {
	next := make([]models.CartLine, len(lines))
	for i, line := range lines {
		next[i] = line.Clone()
	}
	return next
}
