package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/221BLondon/Mymenu/internal/handlers"
	"github.com/221BLondon/Mymenu/internal/models"
	"github.com/221BLondon/Mymenu/internal/state"
)

func setupOrderTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	originalStore := state.Active
	state.SetTestStore(state.NewStore())
	t.Cleanup(func() {
		state.SetTestStore(originalStore)
	})

	r := gin.New()
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte("test-secret-key"))
	r.Use(sessions.Sessions("tastysess", store))

	api := r.Group("/api")
	{
		api.GET("/cart", handlers.GetCart)
		api.POST("/cart/items", handlers.AddCartItem)
		api.POST("/orders", handlers.PlaceOrder)
		api.GET("/orders", handlers.ListOrders)
		api.DELETE("/orders/:id", handlers.DeleteOrder)
	}

	return r
}

func performOrderRequest(router *gin.Engine, method, path string, body interface{}, sessionCookie string) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if sessionCookie != "" {
		req.Header.Set("Cookie", sessionCookie)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestPlaceOrderHandler(t *testing.T) {
	router := setupOrderTestRouter(t)

	recorder := performOrderRequest(router, http.MethodGet, "/api/cart", nil, "")
	sessionCookie := recorder.Header().Get("Set-Cookie")

	seedCart := func(t *testing.T) {
		recorder := performOrderRequest(router, http.MethodPost, "/api/cart/items",
			gin.H{"id": 1, "quantity": 2}, sessionCookie)
		assert.Equal(t, http.StatusCreated, recorder.Code)
	}

	t.Run("rejects checkout of an empty cart", func(t *testing.T) {
		recorder := performOrderRequest(router, http.MethodPost, "/api/orders",
			gin.H{"customer_name": "Ada"}, sessionCookie)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		var response map[string]string
		json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.Equal(t, "cart is empty", response["error"])
	})

	t.Run("rejects a whitespace-only name and keeps the cart", func(t *testing.T) {
		seedCart(t)

		recorder := performOrderRequest(router, http.MethodPost, "/api/orders",
			gin.H{"customer_name": "   "}, sessionCookie)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		var response map[string]string
		json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.Equal(t, "name required", response["error"])

		recorder = performOrderRequest(router, http.MethodGet, "/api/cart", nil, sessionCookie)
		assert.Equal(t, 2, decodeCart(t, recorder).ItemCount)

		recorder = performOrderRequest(router, http.MethodGet, "/api/orders", nil, sessionCookie)
		var list struct {
			Orders []models.Order `json:"orders"`
		}
		json.Unmarshal(recorder.Body.Bytes(), &list)
		assert.Empty(t, list.Orders)
	})

	t.Run("successful checkout appends one order and clears the cart", func(t *testing.T) {
		recorder := performOrderRequest(router, http.MethodPost, "/api/orders",
			gin.H{"customer_name": "Ada"}, sessionCookie)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var response struct {
			Message string       `json:"message"`
			Order   models.Order `json:"order"`
		}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "order placed successfully", response.Message)
		assert.Equal(t, "Ada", response.Order.CustomerName)
		assert.NotEmpty(t, response.Order.ID)
		assert.Len(t, response.Order.Items, 1)
		assert.InDelta(t, 2*15.99, response.Order.Total, 1e-9)

		recorder = performOrderRequest(router, http.MethodGet, "/api/cart", nil, sessionCookie)
		assert.Equal(t, 0, decodeCart(t, recorder).ItemCount)

		recorder = performOrderRequest(router, http.MethodGet, "/api/orders", nil, sessionCookie)
		var list struct {
			Orders []models.Order `json:"orders"`
		}
		json.Unmarshal(recorder.Body.Bytes(), &list)
		assert.Len(t, list.Orders, 1)
	})

	t.Run("orders are unaffected by cart edits after checkout", func(t *testing.T) {
		seedCart(t)

		recorder := performOrderRequest(router, http.MethodGet, "/api/orders", nil, sessionCookie)
		var list struct {
			Orders []models.Order `json:"orders"`
		}
		json.Unmarshal(recorder.Body.Bytes(), &list)
		assert.Len(t, list.Orders, 1)
		assert.Equal(t, 2, list.Orders[0].Items[0].Quantity)
	})

	t.Run("deleting an order is idempotent", func(t *testing.T) {
		recorder := performOrderRequest(router, http.MethodGet, "/api/orders", nil, sessionCookie)
		var list struct {
			Orders []models.Order `json:"orders"`
		}
		json.Unmarshal(recorder.Body.Bytes(), &list)
		assert.Len(t, list.Orders, 1)
		orderID := list.Orders[0].ID

		recorder = performOrderRequest(router, http.MethodDelete, "/api/orders/"+orderID, nil, sessionCookie)
		assert.Equal(t, http.StatusOK, recorder.Code)

		recorder = performOrderRequest(router, http.MethodDelete, "/api/orders/"+orderID, nil, sessionCookie)
		assert.Equal(t, http.StatusOK, recorder.Code)

		recorder = performOrderRequest(router, http.MethodGet, "/api/orders", nil, sessionCookie)
		json.Unmarshal(recorder.Body.Bytes(), &list)
		assert.Empty(t, list.Orders)
	})
}
