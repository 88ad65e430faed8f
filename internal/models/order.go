package models

import "time"

// CartLine is one aggregated cart entry, unique per menu item id.
type CartLine struct {
	MenuItem
	Quantity int    `json:"quantity"`
	Comment  string `json:"comment,omitempty"`
}

func (l CartLine) Clone() CartLine {
	l.MenuItem = l.MenuItem.Clone()
	return l
}

// Order is an immutable record of a checkout. Items is a value snapshot of
// the cart at placement time; later cart mutation never touches it.
type Order struct {
	ID           string     `json:"id"`
	CustomerName string     `json:"customerName"`
	Items        []CartLine `json:"items"`
	Total        float64    `json:"total"`
	Date         time.Time  `json:"date"`
}
