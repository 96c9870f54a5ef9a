package api

import (
	"errors"
	"log/slog"
	"net/http"

	"emy-orders/internal/domain/order"
	"emy-orders/internal/domain/user"
	reqdto "emy-orders/internal/handler/dto/request"
	resdto "emy-orders/internal/handler/dto/response"
	"emy-orders/internal/handler/middleware"
	"emy-orders/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
	cartCommands     commands.CartCommands
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands, cartCommands commands.CartCommands) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
		cartCommands:     cartCommands,
	}
}

// @Summary Checkout
// @Description Submit the session's cart. Cash records a sale immediately; QR creates a pending order awaiting staff approval.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	method, err := req.GetPaymentMethod()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method"})
		return
	}

	customerID := resolveCustomer(c)

	result, err := h.checkoutCommands.Checkout(c.Request.Context(), sessionID, method, customerID)
	if err != nil {
		if errors.Is(err, commands.ErrEmptyCart) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Cart is empty"})
			return
		}
		respondGatewayError(c, err)
		return
	}

	// The cart is cleared only after a positive outcome; on any failure
	// above it stays intact for a retry.
	if err := h.cartCommands.Clear(c.Request.Context(), sessionID); err != nil {
		slog.Warn("failed to clear cart after checkout", "session_id", sessionID, "error", err)
	}

	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}

// resolveCustomer attributes the order: a logged-in customer gets their
// own ID, an anonymous browser is recorded as a guest, and a staff
// member ringing up a counter sale leaves the order unattributed.
func resolveCustomer(c *gin.Context) *string {
	userID, authed := middleware.GetUserID(c)
	if !authed {
		guest := order.GuestCustomerID
		return &guest
	}
	if role, ok := middleware.GetUserRole(c); ok && role == user.RoleStaff {
		return nil
	}
	return &userID
}
