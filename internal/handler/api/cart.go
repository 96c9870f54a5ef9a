package api

import (
	"errors"
	"net/http"

	reqdto "emy-orders/internal/handler/dto/request"
	resdto "emy-orders/internal/handler/dto/response"
	"emy-orders/internal/handler/middleware"
	"emy-orders/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartCommands commands.CartCommands
}

func NewCartHandler(cartCommands commands.CartCommands) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
	}
}

// @Summary Get cart
// @Description Get the session's current cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	crt, err := h.cartCommands.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(crt))
}

// @Summary Add item to cart
// @Description Add a menu item to the session's cart with quantity 1
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Item to add"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	crt, err := h.cartCommands.AddItem(c.Request.Context(), sessionID, req.ItemID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		case errors.Is(err, commands.ErrItemUnavailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Menu item is not available"})
		default:
			respondGatewayError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(crt))
}

// @Summary Set item quantity
// @Description Set the quantity of an item already in the cart; zero or less removes it
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body reqdto.SetQuantityRequest true "New quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /cart/items/{id} [put]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	crt, err := h.cartCommands.SetQuantity(c.Request.Context(), sessionID, c.Param("id"), req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(crt))
}

// @Summary Remove item from cart
// @Description Remove an item from the session's cart
// @Tags cart
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.CartResponse
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	crt, err := h.cartCommands.RemoveItem(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(crt))
}

// @Summary Clear cart
// @Description Remove every item from the session's cart
// @Tags cart
// @Produce json
// @Success 204
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := h.cartCommands.Clear(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}
