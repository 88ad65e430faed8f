package data

import "github.com/221BLondon/Mymenu/internal/models"

// DefaultSettings returns the settings a fresh session starts with.
func DefaultSettings() models.RestaurantSettings {
	return models.RestaurantSettings{
		Name:        "Tasty Bites",
		Description: "Delicious food, delivered to your doorstep",
		Logo:        "https://images.unsplash.com/photo-1581349485608-9469926a8e5e?ixlib=rb-1.2.1&auto=format&fit=crop&w=200&q=80",
		Phone:       "+1 (555) 123-4567",
		Email:       "contact@tastybites.com",
		Address:     "123 Foodie Street, Cuisine City, FC 12345",
		OpeningHours: map[string]models.DayHours{
			"monday":    {Open: "09:00", Close: "22:00"},
			"tuesday":   {Open: "09:00", Close: "22:00"},
			"wednesday": {Open: "09:00", Close: "22:00"},
			"thursday":  {Open: "09:00", Close: "22:00"},
			"friday":    {Open: "09:00", Close: "23:00"},
			"saturday":  {Open: "10:00", Close: "23:00"},
			"sunday":    {Open: "10:00", Close: "22:00"},
		},
		SocialLinks: models.SocialLinks{
			Facebook:  "https://facebook.com/tastybites",
			Instagram: "https://instagram.com/tastybites",
			Twitter:   "https://twitter.com/tastybites",
			Website:   "https://tastybites.com",
		},
		Offers: []models.Offer{
			{
				ID:          "1",
				Title:       "Happy Hour Special",
				Description: "20% off on all main courses between 3 PM and 5 PM",
				ValidUntil:  "2024-12-31",
				Image:       "https://images.unsplash.com/photo-1504674900247-0877df9cc836?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
				Code:        "HAPPY20",
			},
			{
				ID:          "2",
				Title:       "Family Weekend",
				Description: "Free dessert with family meals on weekends",
				ValidUntil:  "2024-12-31",
				Image:       "https://images.unsplash.com/photo-1551024601-bec78aea704b?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
				Code:        "FAMSWEET",
			},
		},
		Locations: []models.Location{
			{
				ID:          "1",
				Name:        "Downtown",
				Address:     "123 Foodie Street, Cuisine City, FC 12345",
				Phone:       "+1 (555) 123-4567",
				Coordinates: models.Coordinates{Lat: 40.7128, Lng: -74.0060},
			},
			{
				ID:          "2",
				Name:        "Uptown",
				Address:     "456 Gourmet Avenue, Cuisine City, FC 12346",
				Phone:       "+1 (555) 987-6543",
				Coordinates: models.Coordinates{Lat: 40.7829, Lng: -73.9654},
			},
		},
	}
}
