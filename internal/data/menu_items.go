// Package data carries the seed catalog and default settings. Both are
// returned as fresh values so per-session edits never bleed across sessions.
package data

import "github.com/221BLondon/Mymenu/internal/models"

// MenuItems returns the seed menu catalog.
func MenuItems() []models.MenuItem {
	return []models.MenuItem{
		{
			ID:          1,
			Name:        "Chicken Curry",
			Description: "Tender chicken pieces cooked in a rich, aromatic curry sauce with traditional Indian spices.",
			Price:       15.99,
			Image:       "https://images.unsplash.com/photo-1565557623262-b51c2513a641?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1565557623262-b51c2513a641?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1585937421612-70a008356fbe?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1516714435131-44d6b64dc6a2?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			},
			Video:       "https://www.youtube.com/embed/dQw4w9WgXcQ",
			Ingredients: []string{"Chicken", "Onions", "Tomatoes", "Ginger", "Garlic", "Garam Masala"},
			Allergens:   []string{"Dairy", "Mustard"},
			Category:    "Main Course",
			SpicyLevel:  2,
		},
		{
			ID:          2,
			Name:        "Margherita Pizza",
			Description: "Classic Italian pizza with fresh mozzarella, tomatoes, and basil on a crispy thin crust.",
			Price:       13.99,
			Image:       "https://images.unsplash.com/photo-1604068549290-dea0e4a305ca?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1604068549290-dea0e4a305ca?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1593560708920-61dd98c46a4e?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1571407970349-bc81e7e96d47?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			},
			Ingredients: []string{"Pizza Dough", "Tomatoes", "Mozzarella", "Basil", "Olive Oil"},
			Allergens:   []string{"Gluten", "Dairy"},
			Category:    "Pizza",
			Dietary:     []string{"vegetarian"},
		},
		{
			ID:          3,
			Name:        "Spicy Thai Basil Tofu",
			Description: "Crispy tofu stir-fried with Thai basil, chilies, and vegetables in a savory sauce.",
			Price:       12.99,
			Image:       "https://images.unsplash.com/photo-1512003867696-6d5ce6835040?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1512003867696-6d5ce6835040?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1587254280184-4d60b8c5f2da?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			},
			Ingredients: []string{"Tofu", "Thai Basil", "Chilies", "Garlic", "Soy Sauce", "Bell Peppers"},
			Allergens:   []string{"Soy"},
			Category:    "Main Course",
			SpicyLevel:  3,
			Dietary:     []string{"vegetarian", "vegan"},
		},
		{
			ID:          4,
			Name:        "Mediterranean Quinoa Bowl",
			Description: "Fresh and healthy bowl with quinoa, roasted vegetables, hummus, and tahini dressing.",
			Price:       14.99,
			Image:       "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1512621776951-a57141f2eefd?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1540420773420-3366772f4999?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			},
			Ingredients: []string{"Quinoa", "Chickpeas", "Sweet Potato", "Kale", "Hummus", "Tahini"},
			Allergens:   []string{"Sesame"},
			Category:    "Bowls",
			Dietary:     []string{"vegetarian", "vegan", "gluten-free"},
		},
		{
			ID:          5,
			Name:        "Classic Beef Burger",
			Description: "Juicy beef patty with lettuce, tomato, cheese, and special sauce on a brioche bun.",
			Price:       16.99,
			Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1568901346375-23c9450c58cd?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1550317138-10000687a72b?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			},
			Ingredients: []string{"Beef Patty", "Brioche Bun", "Lettuce", "Tomato", "Cheddar", "Special Sauce"},
			Allergens:   []string{"Gluten", "Dairy", "Egg"},
			Category:    "Burgers",
		},
		{
			ID:          6,
			Name:        "Green Goddess Salad",
			Description: "Fresh mixed greens with avocado, cucumber, seeds, and herb dressing.",
			Price:       11.99,
			Image:       "https://images.unsplash.com/photo-1540420773420-3366772f4999?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1540420773420-3366772f4999?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1512621776951-a57141f2eefd?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			},
			Ingredients: []string{"Mixed Greens", "Avocado", "Cucumber", "Pumpkin Seeds", "Herbs", "Olive Oil"},
			Allergens:   []string{},
			Category:    "Salads",
			Dietary:     []string{"vegetarian", "vegan", "gluten-free"},
		},
		{
			ID:          7,
			Name:        "Spicy Ramen",
			Description: "Rich pork broth with fresh noodles, chashu pork, soft-boiled egg, and vegetables.",
			Price:       15.99,
			Image:       "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1569718212165-3a8278d5f624?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1591814468924-caf88d1232e1?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			},
			Ingredients: []string{"Ramen Noodles", "Pork Broth", "Chashu Pork", "Egg", "Green Onions", "Bamboo Shoots"},
			Allergens:   []string{"Gluten", "Egg", "Soy"},
			Category:    "Noodles",
			SpicyLevel:  2,
		},
		{
			ID:          8,
			Name:        "Chocolate Lava Cake",
			Description: "Warm chocolate cake with a molten center, served with vanilla ice cream.",
			Price:       8.99,
			Image:       "https://images.unsplash.com/photo-1624353365286-3f8d62daad51?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1624353365286-3f8d62daad51?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1541783245831-57d6fb0926d3?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			},
			Ingredients: []string{"Chocolate", "Flour", "Eggs", "Butter", "Sugar", "Vanilla Ice Cream"},
			Allergens:   []string{"Gluten", "Dairy", "Egg"},
			Category:    "Desserts",
			Dietary:     []string{"vegetarian"},
		},
	}
}
