// Package settings holds the restaurant configuration logic: field setters,
// the export/import transport codec, and the selective import reconciliation.
package settings

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"github.com/221BLondon/Mymenu/internal/models"
)

// ErrInvalidImportCode is reported when an import payload is neither a
// base64-encoded JSON settings snapshot nor raw JSON.
var ErrInvalidImportCode = errors.New("invalid import code")

// Encode serializes the settings to JSON and base64-encodes the result into
// a copy-pasteable export code.
func Encode(s models.RestaurantSettings) (string, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Decode accepts either a base64-encoded JSON snapshot or raw JSON text.
// Base64 is attempted first; any failure on that path falls back to parsing
// the input directly. When both fail the result is ErrInvalidImportCode and
// no partial value escapes.
func Decode(code string) (models.RestaurantSettings, error) {
	trimmed := strings.TrimSpace(code)
	if raw, err := base64.StdEncoding.DecodeString(trimmed); err == nil {
		var s models.RestaurantSettings
		if err := json.Unmarshal(raw, &s); err == nil {
			return s, nil
		}
	}
	var s models.RestaurantSettings
	if err := json.Unmarshal([]byte(trimmed), &s); err != nil {
		return models.RestaurantSettings{}, ErrInvalidImportCode
	}
	return s, nil
}
