package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AutoNateAI/insta-matrix-insights-flow/cart"
	"github.com/AutoNateAI/insta-matrix-insights-flow/metrics"
	"github.com/AutoNateAI/insta-matrix-insights-flow/model"
)

type CartHandler struct {
	cart *cart.Cart
}

func NewCartHandler(cart *cart.Cart) *CartHandler {
	return &CartHandler{cart: cart}
}

// GetItems returns the cart contents in insertion order.
func (h *CartHandler) GetItems(c *gin.Context) {
	items := h.cart.Items()
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

// AddItem adds a post or comment to the cart. Adding a duplicate is not an
// error; the response carries the notice.
func (h *CartHandler) AddItem(c *gin.Context) {
	var item model.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if item.ID == "" || !validItemType(item.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item requires an id and a type of post or comment"})
		return
	}

	if !h.cart.Add(item) {
		metrics.CartOperations.WithLabelValues("add", "duplicate").Inc()
		c.JSON(http.StatusOK, gin.H{
			"status":  "duplicate",
			"message": "Item already in cart",
		})
		return
	}

	metrics.CartOperations.WithLabelValues("add", "success").Inc()
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("Added %s to cart", item.Type),
	})
}

// RemoveItem removes the entry matching the (id, type) composite key.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	itemType := c.Param("type")
	id := c.Param("id")
	if !validItemType(itemType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be post or comment"})
		return
	}

	h.cart.Remove(id, itemType)
	metrics.CartOperations.WithLabelValues("remove", "success").Inc()
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("Removed %s from cart", itemType),
	})
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cart.Clear()
	metrics.CartOperations.WithLabelValues("clear", "success").Inc()
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Cart cleared",
	})
}

// ContainsItem reports whether an (id, type) pair is in the cart.
func (h *CartHandler) ContainsItem(c *gin.Context) {
	id := c.Query("id")
	itemType := c.Query("type")
	if id == "" || !validItemType(itemType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id and type query parameters are required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"inCart": h.cart.Contains(id, itemType),
	})
}

func validItemType(itemType string) bool {
	return itemType == model.ItemTypePost || itemType == model.ItemTypeComment
}
