// Package menu implements the catalog-side logic: filtering the menu for the
// storefront and the aggregation/CRUD helpers behind the admin tabs.
package menu

import (
	"strings"

	"github.com/221BLondon/Mymenu/internal/models"
)

// CategoryAll is the sentinel category selector matching every item.
const CategoryAll = "All"

// Filter selects the visible subset of the menu. Zero-valued members match
// everything.
type Filter struct {
	Search      string
	Category    string
	Dietary     []string
	SpicyLevels []int
}

// Apply returns the catalog items matching every active predicate, preserving
// catalog order. It never reorders or ranks.
func Apply(catalog []models.MenuItem, f Filter) []models.MenuItem {
	matched := make([]models.MenuItem, 0, len(catalog))
	for _, item := range catalog {
		if matchesSearch(item, f.Search) &&
			matchesCategory(item, f.Category) &&
			matchesDietary(item, f.Dietary) &&
			matchesSpicy(item, f.SpicyLevels) {
			matched = append(matched, item)
		}
	}
	return matched
}

// matchesSearch is a case-insensitive substring match against name,
// description or any ingredient.
func matchesSearch(item models.MenuItem, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(item.Name), needle) ||
		strings.Contains(strings.ToLower(item.Description), needle) {
		return true
	}
	for _, ingredient := range item.Ingredients {
		if strings.Contains(strings.ToLower(ingredient), needle) {
			return true
		}
	}
	return false
}

func matchesCategory(item models.MenuItem, category string) bool {
	return category == "" || category == CategoryAll || item.Category == category
}

// matchesDietary requires the item to declare every active tag, not just one.
func matchesDietary(item models.MenuItem, dietary []string) bool {
	for _, tag := range dietary {
		found := false
		for _, have := range item.Dietary {
			if have == tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// matchesSpicy passes when the item's rating is one of the active levels.
// Unrated items (level 0) never match an active spicy filter.
func matchesSpicy(item models.MenuItem, levels []int) bool {
	if len(levels) == 0 {
		return true
	}
	for _, level := range levels {
		if item.SpicyLevel == level {
			return true
		}
	}
	return false
}

// Categories lists "All" followed by the distinct categories in catalog
// first-seen order.
func Categories(catalog []models.MenuItem) []string {
	categories := []string{CategoryAll}
	seen := map[string]bool{}
	for _, item := range catalog {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories
}
