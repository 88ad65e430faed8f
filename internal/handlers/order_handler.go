package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/221BLondon/Mymenu/internal/models"
	"github.com/221BLondon/Mymenu/internal/orders"
	"github.com/221BLondon/Mymenu/internal/state"
)

type PlaceOrderRequest struct {
	CustomerName string `json:"customer_name"`
}

// PlaceOrder checks the cart out: it snapshots the lines into a new order,
// appends it to the history and clears the cart. A blank name fails
// validation and leaves both cart and history untouched.
func PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sess := state.Active.Session(c)
	sess.Lock()
	defer sess.Unlock()

	if len(sess.Cart) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}

	history, order, err := orders.Place(sess.Orders, sess.Cart, req.CustomerName, time.Now())
	if err != nil {
		if errors.Is(err, orders.ErrNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sess.Orders = history
	sess.Cart = nil
	c.JSON(http.StatusCreated, gin.H{"message": "order placed successfully", "order": order})
}

func ListOrders(c *gin.Context) {
	sess := state.Active.Session(c)
	sess.Lock()
	defer sess.Unlock()

	history := sess.Orders
	if history == nil {
		history = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": history})
}

// DeleteOrder removes the order from the history. Deleting an unknown id is
// a no-op, so the operation is idempotent.
func DeleteOrder(c *gin.Context) {
	sess := state.Active.Session(c)
	sess.Lock()
	defer sess.Unlock()

	sess.Orders = orders.Delete(sess.Orders, c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
}
