package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/221BLondon/Mymenu/internal/cart"
	"github.com/221BLondon/Mymenu/internal/models"
	"github.com/221BLondon/Mymenu/internal/state"
)

type AddCartItemRequest struct {
	ID       int    `json:"id" binding:"required"`
	Quantity int    `json:"quantity"`
	Comment  string `json:"comment"`
}

// AddCartItem puts a menu item in the cart. Adding an item already present
// bumps its quantity instead of creating a second line.
func AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be at least 1"})
		return
	}

	sess := state.Active.Session(c)
	sess.Lock()
	defer sess.Unlock()

	item, ok := findItem(sess.Catalog, req.ID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Menu item not found with ID: %d", req.ID)})
		return
	}

	sess.Cart = cart.Add(sess.Cart, item, req.Quantity, req.Comment)
	c.JSON(http.StatusCreated, cartBody(sess.Cart))
}

func GetCart(c *gin.Context) {
	sess := state.Active.Session(c)
	sess.Lock()
	defer sess.Unlock()

	c.JSON(http.StatusOK, cartBody(sess.Cart))
}

// RemoveCartItem drops the line; removing an absent id is a no-op.
func RemoveCartItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	sess := state.Active.Session(c)
	sess.Lock()
	defer sess.Unlock()

	sess.Cart = cart.Remove(sess.Cart, id)
	c.JSON(http.StatusOK, cartBody(sess.Cart))
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// SetCartQuantity replaces a line's quantity. Quantities below 1 are
// rejected here; removal is only ever explicit.
func SetCartQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}
	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be at least 1"})
		return
	}

	sess := state.Active.Session(c)
	sess.Lock()
	defer sess.Unlock()

	sess.Cart = cart.SetQuantity(sess.Cart, id, req.Quantity)
	c.JSON(http.StatusOK, cartBody(sess.Cart))
}

type SetCommentRequest struct {
	// Empty is allowed and means no special instructions.
	Comment string `json:"comment"`
}

func SetCartComment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}
	var req SetCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sess := state.Active.Session(c)
	sess.Lock()
	defer sess.Unlock()

	sess.Cart = cart.SetComment(sess.Cart, id, req.Comment)
	c.JSON(http.StatusOK, cartBody(sess.Cart))
}

func cartBody(lines []models.CartLine) gin.H {
	if lines == nil {
		lines = []models.CartLine{}
	}
	return gin.H{
		"items":      lines,
		"total":      cart.Total(lines),
		"item_count": cart.ItemCount(lines),
	}
}

func findItem(catalog []models.MenuItem, id int) (models.MenuItem, bool) {
	for _, item := range catalog {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}
