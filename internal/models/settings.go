package models

// DayHours is one day's opening window, times as "HH:MM" strings.
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Website   string `json:"website,omitempty"`
}

type Offer struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ValidUntil  string `json:"validUntil"`
	Image       string `json:"image,omitempty"`
	Code        string `json:"code,omitempty"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Phone       string      `json:"phone"`
	Coordinates Coordinates `json:"coordinates"`
}

// RestaurantSettings is the single live configuration of a session. The JSON
// field names are the wire format of the export/import code.
type RestaurantSettings struct {
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	Logo         string              `json:"logo"`
	Phone        string              `json:"phone"`
	Email        string              `json:"email"`
	Address      string              `json:"address"`
	OpeningHours map[string]DayHours `json:"openingHours"`
	SocialLinks  SocialLinks         `json:"socialLinks"`
	Offers       []Offer             `json:"offers"`
	Locations    []Location          `json:"locations"`
}

func (s RestaurantSettings) Clone() RestaurantSettings {
	if s.OpeningHours != nil {
		hours := make(map[string]DayHours, len(s.OpeningHours))
		for day, h := range s.OpeningHours {
			hours[day] = h
		}
		s.OpeningHours = hours
	}
	if s.Offers != nil {
		offers := make([]Offer, len(s.Offers))
		copy(offers, s.Offers)
		s.Offers = offers
	}
	if s.Locations != nil {
		locations := make([]Location, len(s.Locations))
		copy(locations, s.Locations)
		s.Locations = locations
	}
	return s
}
