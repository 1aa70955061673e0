package storefront

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cafehub/pkg/cart"
	"cafehub/pkg/database"
	"cafehub/pkg/models"
)

const cartSessionHeader = "X-Cart-Session"

// loadCart resolves the caller's cart from the session header, minting
// a fresh token (and empty cart) when none is presented. The token is
// echoed back on every response so the client can persist it.
func (ctl *Controller) loadCart(c *gin.Context, cafeID uint) (*cart.Cart, string, error) {
	token := c.GetHeader(cartSessionHeader)
	if token == "" {
		token = cart.NewSessionToken()
		c.Header(cartSessionHeader, token)
		return cart.New(cafeID), token, nil
	}

	c.Header(cartSessionHeader, token)
	ct, err := ctl.Carts.Load(c.Request.Context(), token)
	if err != nil {
		return nil, token, err
	}
	if ct == nil || ct.CafeID != cafeID {
		// carts don't cross cafes; switching storefronts starts over
		ct = cart.New(cafeID)
	}
	return ct, token, nil
}

// GetCart returns the current cart for the session
func (ctl *Controller) GetCart(c *gin.Context) {
	cafeID, err := strconv.Atoi(c.Param("cafeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cafe ID"})
		return
	}

	ct, _, err := ctl.loadCart(c, uint(cafeID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": ct, "total": ct.Total()})
}

// AddToCart adds a menu item to the session cart
func (ctl *Controller) AddToCart(c *gin.Context) {
	cafeID, err := strconv.Atoi(c.Param("cafeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cafe ID"})
		return
	}

	var req struct {
		MenuItemID uint `json:"menuItemId" binding:"required"`
		Quantity   int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "menuItemId is required"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	var item models.MenuItem
	if err := database.DB.
		Where("id = ? AND cafe_id = ?", req.MenuItemID, cafeID).
		First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Menu item not found"})
		return
	}
	if !item.Available {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Item is not available"})
		return
	}

	ct, token, err := ctl.loadCart(c, uint(cafeID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	ct.AddItem(item, req.Quantity)
	if err := ctl.Carts.Save(c.Request.Context(), token, ct); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": ct, "total": ct.Total()})
}

// RemoveFromCart decrements or removes a cart line
func (ctl *Controller) RemoveFromCart(c *gin.Context) {
	cafeID, err := strconv.Atoi(c.Param("cafeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cafe ID"})
		return
	}

	var req struct {
		MenuItemID uint `json:"menuItemId" binding:"required"`
		Quantity   int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "menuItemId is required"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	ct, token, err := ctl.loadCart(c, uint(cafeID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	ct.RemoveItem(req.MenuItemID, req.Quantity)
	if err := ctl.Carts.Save(c.Request.Context(), token, ct); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": ct, "total": ct.Total()})
}
