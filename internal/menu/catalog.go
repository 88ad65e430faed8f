package menu

import (
	"strings"

	"github.com/221BLondon/Mymenu/internal/models"
)

// Ingredients lists the distinct ingredients across the catalog in
// first-seen order.
func Ingredients(catalog []models.MenuItem) []string {
	return distinct(catalog, func(item models.MenuItem) []string { return item.Ingredients })
}

// Allergens lists the distinct allergens across the catalog in
// first-seen order.
func Allergens(catalog []models.MenuItem) []string {
	return distinct(catalog, func(item models.MenuItem) []string { return item.Allergens })
}

func distinct(catalog []models.MenuItem, values func(models.MenuItem) []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, item := range catalog {
		for _, v := range values(item) {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// SearchStrings keeps the values containing the query, case-insensitively.
// An empty query keeps everything.
func SearchStrings(values []string, query string) []string {
	if query == "" {
		return values
	}
	needle := strings.ToLower(query)
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			out = append(out, v)
		}
	}
	return out
}

// Stats is the admin dashboard summary block.
type Stats struct {
	TotalItems       int     `json:"total_items"`
	AveragePrice     float64 `json:"average_price"`
	TotalIngredients int     `json:"total_ingredients"`
	TotalAllergens   int     `json:"total_allergens"`
}

func Summarize(catalog []models.MenuItem) Stats {
	stats := Stats{
		TotalItems:       len(catalog),
		TotalIngredients: len(Ingredients(catalog)),
		TotalAllergens:   len(Allergens(catalog)),
	}
	if len(catalog) > 0 {
		var sum float64
		for _, item := range catalog {
			sum += item.Price
		}
		stats.AveragePrice = sum / float64(len(catalog))
	}
	return stats
}

// NextID returns the id an appended item should get: one past the highest
// id currently in the catalog.
func NextID(catalog []models.MenuItem) int {
	max := 0
	for _, item := range catalog {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1
}

// AddItem appends the item to the catalog, assigning NextID when the item
// carries no id.
func AddItem(catalog []models.MenuItem, item models.MenuItem) []models.MenuItem {
	if item.ID == 0 {
		item.ID = NextID(catalog)
	}
	next := make([]models.MenuItem, len(catalog), len(catalog)+1)
	copy(next, catalog)
	return append(next, item.Clone())
}

// UpdateItem replaces the item with the given id. The second result reports
// whether the id was present.
func UpdateItem(catalog []models.MenuItem, id int, item models.MenuItem) ([]models.MenuItem, bool) {
	next := make([]models.MenuItem, len(catalog))
	copy(next, catalog)
	for i := range next {
		if next[i].ID == id {
			item.ID = id
			next[i] = item.Clone()
			return next, true
		}
	}
	return next, false
}

// DeleteItem filters out the item with the given id. No-op when absent.
func DeleteItem(catalog []models.MenuItem, id int) []models.MenuItem {
	next := make([]models.MenuItem, 0, len(catalog))
	for _, item := range catalog {
		if item.ID != id {
			next = append(next, item)
		}
	}
	return next
}
