package settings

import (
	"fmt"
	"reflect"

	"github.com/221BLondon/Mymenu/internal/models"
)

// FieldDiff is one row of the import preview: current value next to the
// imported one, with a changed flag from deep comparison. For the list
// fields (offers, locations) Entries breaks the imported list out per entry
// so the operator can select individual ids.
type FieldDiff struct {
	Field    string      `json:"field"`
	Current  interface{} `json:"current"`
	Imported interface{} `json:"imported"`
	Changed  bool        `json:"changed"`
	Entries  []EntryDiff `json:"entries,omitempty"`
}

// EntryDiff is a selectable imported entry of a list-valued field.
type EntryDiff struct {
	ID       string      `json:"id"`
	Imported interface{} `json:"imported"`
	// Existing reports whether the current list already has this id; applying
	// it anyway appends a duplicate.
	Existing bool `json:"existing"`
}

// Diff compares the two snapshots field by field, in FieldNames order.
func Diff(current, imported models.RestaurantSettings) []FieldDiff {
	diffs := make([]FieldDiff, 0, len(FieldNames))
	for _, field := range FieldNames {
		cur := fieldValue(current, field)
		imp := fieldValue(imported, field)
		d := FieldDiff{
			Field:    field,
			Current:  cur,
			Imported: imp,
			Changed:  !reflect.DeepEqual(cur, imp),
		}
		switch field {
		case "offers":
			for _, offer := range imported.Offers {
				d.Entries = append(d.Entries, EntryDiff{
					ID:       offer.ID,
					Imported: offer,
					Existing: hasOffer(current.Offers, offer.ID),
				})
			}
		case "locations":
			for _, location := range imported.Locations {
				d.Entries = append(d.Entries, EntryDiff{
					ID:       location.ID,
					Imported: location,
					Existing: hasLocation(current.Locations, location.ID),
				})
			}
		}
		diffs = append(diffs, d)
	}
	return diffs
}

// Selection is the operator's choice of what to take from an import: scalar
// and object fields by name, offers and locations by entry id.
type Selection struct {
	Fields      []string `json:"fields"`
	OfferIDs    []string `json:"offer_ids"`
	LocationIDs []string `json:"location_ids"`
}

// Apply overlays the selected parts of the imported snapshot onto the
// current settings and returns the merged value. Unselected fields are left
// untouched. Selected offers and locations are appended to the current
// lists; ids with no matching imported entry are skipped, and duplicates are
// not removed. Selecting "offers" or "locations" as a field name is an
// error: list fields are selected per entry.
func Apply(current, imported models.RestaurantSettings, sel Selection) (models.RestaurantSettings, error) {
	next := current.Clone()
	for _, field := range sel.Fields {
		switch field {
		case "name":
			next.Name = imported.Name
		case "description":
			next.Description = imported.Description
		case "logo":
			next.Logo = imported.Logo
		case "phone":
			next.Phone = imported.Phone
		case "email":
			next.Email = imported.Email
		case "address":
			next.Address = imported.Address
		case "openingHours":
			next.OpeningHours = imported.Clone().OpeningHours
		case "socialLinks":
			next.SocialLinks = imported.SocialLinks
		case "offers", "locations":
			return models.RestaurantSettings{}, fmt.Errorf("%w: %s is selected per entry id", ErrUnknownField, field)
		default:
			return models.RestaurantSettings{}, fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	for _, id := range sel.OfferIDs {
		for _, offer := range imported.Offers {
			if offer.ID == id {
				next.Offers = append(next.Offers, offer)
				break
			}
		}
	}
	for _, id := range sel.LocationIDs {
		for _, location := range imported.Locations {
			if location.ID == id {
				next.Locations = append(next.Locations, location)
				break
			}
		}
	}
	return next, nil
}

func hasOffer(offers []models.Offer, id string) bool {
	for _, o := range offers {
		if o.ID == id {
			return true
		}
	}
	return false
}

func hasLocation(locations []models.Location, id string) bool {
	for _, l := range locations {
		if l.ID == id {
			return true
		}
	}
	return false
}
