package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/221BLondon/Mymenu/internal/models"
	"github.com/221BLondon/Mymenu/internal/settings"
	"github.com/221BLondon/Mymenu/internal/state"
)

func GetSettings(c *gin.Context) {
	sess := state.Active.Session(c)
	sess.Lock()
	defer sess.Unlock()

	c.JSON(http.StatusOK, sess.Settings)
}

// UpdateSettingsField totally replaces one settings field; the body is the
// new value as JSON.
func UpdateSettingsField(c *gin.Context) {
	var value json.RawMessage
	if err := c.ShouldBindJSON(&value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sess := state.Active.Session(c)
	sess.Lock()
	defer sess.Unlock()

	if err := settings.SetField(&sess.Settings, c.Param("field"), value); err != nil {
		if errors.Is(err, settings.ErrUnknownField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid value for field"})
		return
	}
	c.JSON(http.StatusOK, sess.Settings)
}

// UpdateSocialLinks replaces the social-links sub-object wholesale.
func UpdateSocialLinks(c *gin.Context) {
	var links models.SocialLinks
	if err := c.ShouldBindJSON(&links); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sess := state.Active.Session(c)
	sess.Lock()
	defer sess.Unlock()

	sess.Settings.SocialLinks = links
	c.JSON(http.StatusOK, sess.Settings)
}

// ExportSettings returns the current settings as a copy-pasteable code.
func ExportSettings(c *gin.Context) {
	sess := state.Active.Session(c)
	sess.Lock()
	defer sess.Unlock()

	code, err := settings.Encode(sess.Settings)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": code})
}

type ImportPreviewRequest struct {
	Code string `json:"code" binding:"required"`
}

// PreviewImport decodes an import code and reports the per-field differences
// against the current settings, without mutating anything.
func PreviewImport(c *gin.Context) {
	var req ImportPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	imported, err := settings.Decode(req.Code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid import code"})
		return
	}

	sess := state.Active.Session(c)
	sess.Lock()
	defer sess.Unlock()

	c.JSON(http.StatusOK, gin.H{"fields": settings.Diff(sess.Settings, imported)})
}

type ImportApplyRequest struct {
	Code        string   `json:"code" binding:"required"`
	Fields      []string `json:"fields"`
	OfferIDs    []string `json:"offer_ids"`
	LocationIDs []string `json:"location_ids"`
}

// ApplyImport overlays the selected fields and list entries of an import
// code onto the current settings. Unselected fields stay as they are; a bad
// code or selection mutates nothing.
func ApplyImport(c *gin.Context) {
	var req ImportApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	imported, err := settings.Decode(req.Code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid import code"})
		return
	}

	sess := state.Active.Session(c)
	sess.Lock()
	defer sess.Unlock()

	next, err := settings.Apply(sess.Settings, imported, settings.Selection{
		Fields:      req.Fields,
		OfferIDs:    req.OfferIDs,
		LocationIDs: req.LocationIDs,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess.Settings = next
	c.JSON(http.StatusOK, sess.Settings)
}
