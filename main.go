package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/221BLondon/Mymenu/configs"
	"github.com/221BLondon/Mymenu/internal/handlers"
	"github.com/221BLondon/Mymenu/internal/state"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := configs.LoadServerConfig()
	gin.SetMode(cfg.Mode)

	state.Init()

	r := gin.Default()

	// ── session store ──
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("tastysess", store))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := r.Group("/api")
	{
		api.GET("/status", handlers.GetStatus)

		api.GET("/menu", handlers.ListMenu)
		api.GET("/menu/categories", handlers.ListCategories)
		api.GET("/menu/ingredients", handlers.ListIngredients)
		api.GET("/menu/allergens", handlers.ListAllergens)
		api.GET("/menu/stats", handlers.GetMenuStats)
		api.POST("/menu", handlers.CreateMenuItem)
		api.PUT("/menu/:id", handlers.UpdateMenuItem)
		api.DELETE("/menu/:id", handlers.DeleteMenuItem)

		api.GET("/cart", handlers.GetCart)
		api.POST("/cart/items", handlers.AddCartItem)
		api.PUT("/cart/items/:id/quantity", handlers.SetCartQuantity)
		api.PUT("/cart/items/:id/comment", handlers.SetCartComment)
		api.DELETE("/cart/items/:id", handlers.RemoveCartItem)

		api.POST("/orders", handlers.PlaceOrder)
		api.GET("/orders", handlers.ListOrders)
		api.DELETE("/orders/:id", handlers.DeleteOrder)

		api.GET("/settings", handlers.GetSettings)
		api.PUT("/settings/fields/:field", handlers.UpdateSettingsField)
		api.PUT("/settings/social-links", handlers.UpdateSocialLinks)
		api.GET("/settings/export", handlers.ExportSettings)
		api.POST("/settings/import/preview", handlers.PreviewImport)
		api.POST("/settings/import/apply", handlers.ApplyImport)
	}

	log.Printf("Server running on port %s", cfg.Port)
	r.Run(":" + cfg.Port)
}
