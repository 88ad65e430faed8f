package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/221BLondon/Mymenu/internal/menu"
	"github.com/221BLondon/Mymenu/internal/models"
	"github.com/221BLondon/Mymenu/internal/state"
)

// ListMenu returns the catalog filtered by the query parameters: q (text),
// category, dietary (repeatable) and spicy (repeatable levels). Filters are
// AND-combined; catalog order is preserved.
func ListMenu(c *gin.Context) {
	filter := menu.Filter{
		Search:   c.Query("q"),
		Category: c.Query("category"),
		Dietary:  c.QueryArray("dietary"),
	}
	for _, raw := range c.QueryArray("spicy") {
		level, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid spicy level: %s", raw)})
			return
		}
		filter.SpicyLevels = append(filter.SpicyLevels, level)
	}

	sess := state.Active.Session(c)
	sess.Lock()
	defer sess.Unlock()

	c.JSON(http.StatusOK, gin.H{"items": menu.Apply(sess.Catalog, filter)})
}

func ListCategories(c *gin.Context) {
	sess := state.Active.Session(c)
	sess.Lock()
	defer sess.Unlock()

	c.JSON(http.StatusOK, gin.H{"categories": menu.Categories(sess.Catalog)})
}

func ListIngredients(c *gin.Context) {
	sess := state.Active.Session(c)
	sess.Lock()
	defer sess.Unlock()

	ingredients := menu.SearchStrings(menu.Ingredients(sess.Catalog), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"ingredients": emptyIfNil(ingredients)})
}

func ListAllergens(c *gin.Context) {
	sess := state.Active.Session(c)
	sess.Lock()
	defer sess.Unlock()

	allergens := menu.SearchStrings(menu.Allergens(sess.Catalog), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"allergens": emptyIfNil(allergens)})
}

func GetMenuStats(c *gin.Context) {
	sess := state.Active.Session(c)
	sess.Lock()
	defer sess.Unlock()

	c.JSON(http.StatusOK, menu.Summarize(sess.Catalog))
}

type MenuItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Video       string   `json:"video"`
	Ingredients []string `json:"ingredients"`
	Allergens   []string `json:"allergens"`
	Category    string   `json:"category" binding:"required"`
	SpicyLevel  int      `json:"spicyLevel" binding:"omitempty,min=1,max=3"`
	Dietary     []string `json:"dietary" binding:"omitempty,dive,oneof=vegetarian vegan gluten-free"`
}

func (r MenuItemRequest) item() models.MenuItem {
	return models.MenuItem{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Image:       r.Image,
		Images:      r.Images,
		Video:       r.Video,
		Ingredients: r.Ingredients,
		Allergens:   r.Allergens,
		Category:    r.Category,
		SpicyLevel:  r.SpicyLevel,
		Dietary:     r.Dietary,
	}
}

// CreateMenuItem appends a new item to this session's catalog copy, assigning
// the next free id.
func CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := state.Active.Session(c)
	sess.Lock()
	defer sess.Unlock()

	sess.Catalog = menu.AddItem(sess.Catalog, req.item())
	c.JSON(http.StatusCreated, sess.Catalog[len(sess.Catalog)-1])
}

// UpdateMenuItem replaces the item with the given id.
func UpdateMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := state.Active.Session(c)
	sess.Lock()
	defer sess.Unlock()

	catalog, ok := menu.UpdateItem(sess.Catalog, id, req.item())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Menu item not found with ID: %d", id)})
		return
	}
	sess.Catalog = catalog
	item := req.item()
	item.ID = id
	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem removes the item; deleting an absent id is a no-op.
func DeleteMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	sess := state.Active.Session(c)
	sess.Lock()
	defer sess.Unlock()

	sess.Catalog = menu.DeleteItem(sess.Catalog, id)
	c.JSON(http.StatusOK, gin.H{"message": "menu item deleted"})
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
