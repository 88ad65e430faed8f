package settings

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/221BLondon/Mymenu/internal/models"
)

// ErrUnknownField is reported for a field name outside the settings shape.
var ErrUnknownField = errors.New("unknown settings field")

// FieldNames is the canonical field order used by diffs and previews.
var FieldNames = []string{
	"name",
	"description",
	"logo",
	"phone",
	"email",
	"address",
	"openingHours",
	"socialLinks",
	"offers",
	"locations",
}

// SetField totally replaces one settings field with the JSON-encoded value.
func SetField(s *models.RestaurantSettings, field string, value json.RawMessage) error {
	switch field {
	case "name":
		return json.Unmarshal(value, &s.Name)
	case "description":
		return json.Unmarshal(value, &s.Description)
	case "logo":
		return json.Unmarshal(value, &s.Logo)
	case "phone":
		return json.Unmarshal(value, &s.Phone)
	case "email":
		return json.Unmarshal(value, &s.Email)
	case "address":
		return json.Unmarshal(value, &s.Address)
	case "openingHours":
		return json.Unmarshal(value, &s.OpeningHours)
	case "socialLinks":
		return json.Unmarshal(value, &s.SocialLinks)
	case "offers":
		return json.Unmarshal(value, &s.Offers)
	case "locations":
		return json.Unmarshal(value, &s.Locations)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
}

func fieldValue(s models.RestaurantSettings, field string) interface{} {
	switch field {
	case "name":
		return s.Name
	case "description":
		return s.Description
	case "logo":
		return s.Logo
	case "phone":
		return s.Phone
	case "email":
		return s.Email
	case "address":
		return s.Address
	case "openingHours":
		return s.OpeningHours
	case "socialLinks":
		return s.SocialLinks
	case "offers":
		return s.Offers
	case "locations":
		return s.Locations
	}
	return nil
}
