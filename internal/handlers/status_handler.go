package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/221BLondon/Mymenu/internal/hours"
	"github.com/221BLondon/Mymenu/internal/state"
)

// GetStatus reports whether the restaurant is open right now, with today's
// opening window when one exists.
func GetStatus(c *gin.Context) {
	sess := state.Active.Session(c)
	sess.Lock()
	defer sess.Unlock()

	now := time.Now()
	body := gin.H{"open": hours.IsOpen(sess.Settings, now)}
	if today, ok := hours.Today(sess.Settings, now); ok {
		body["hours"] = today
	}
	c.JSON(http.StatusOK, body)
}
