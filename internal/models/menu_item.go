package models

// MenuItem is one entry of the menu catalog. Items are treated as values:
// admin edits produce a replacement keyed by the same ID.
type MenuItem struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Video       string   `json:"video,omitempty"`
	Ingredients []string `json:"ingredients"`
	Allergens   []string `json:"allergens"`
	Category    string   `json:"category"`
	// SpicyLevel is 1..3; 0 means the item is not spicy-rated.
	SpicyLevel int `json:"spicyLevel,omitempty"`
	// Dietary is nil when the item declares no dietary tags.
	Dietary []string `json:"dietary,omitempty"`
}

// Clone returns a deep copy so that edits to one copy never leak into another.
func (m MenuItem) Clone() MenuItem {
	m.Images = cloneStrings(m.Images)
	m.Ingredients = cloneStrings(m.Ingredients)
	m.Allergens = cloneStrings(m.Allergens)
	m.Dietary = cloneStrings(m.Dietary)
	return m
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
