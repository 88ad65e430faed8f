// Package orders keeps the order history: checkout turns a cart snapshot into
// an immutable order, deletion is idempotent.
package orders

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/221BLondon/Mymenu/internal/cart"
	"github.com/221BLondon/Mymenu/internal/models"
)

// ErrNameRequired is reported when checkout is attempted without a customer
// name. The cart and history are left untouched.
var ErrNameRequired = errors.New("name required")

// Place creates an order from the current cart lines and appends it to the
// history. The total is recomputed from the lines at this moment, never taken
// from earlier state, and the stored items are a deep snapshot. The caller
// clears the cart once Place succeeds.
func Place(history []models.Order, lines []models.CartLine, customerName string, now time.Time) ([]models.Order, models.Order, error) {
	if strings.TrimSpace(customerName) == "" {
		return history, models.Order{}, ErrNameRequired
	}
	order := models.Order{
		ID:           strconv.FormatInt(now.UnixNano(), 10),
		CustomerName: customerName,
		Items:        cart.Snapshot(lines),
		Total:        cart.Total(lines),
		Date:         now,
	}
	next := make([]models.Order, len(history), len(history)+1)
	copy(next, history)
	return append(next, order), order, nil
}

// Delete removes the order with the given id from the history. No-op when
// the id is absent.
func Delete(history []models.Order, id string) []models.Order {
	next := make([]models.Order, 0, len(history))
	for _, order := range history {
		if order.ID != id {
			next = append(next, order)
		}
	}
	return next
}
