package api

import (
	"errors"
	"net/http"

	resdto "emy-orders/internal/handler/dto/response"
	"emy-orders/internal/handler/middleware"
	"emy-orders/internal/usecase/commands"
	"emy-orders/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrdersHandler struct {
	approvalCommands commands.ApprovalCommands
	pendingQueries   queries.PendingQueries
}

func NewOrdersHandler(approvalCommands commands.ApprovalCommands, pendingQueries queries.PendingQueries) *OrdersHandler {
	return &OrdersHandler{
		approvalCommands: approvalCommands,
		pendingQueries:   pendingQueries,
	}
}

// @Summary List pending orders
// @Description Get every order awaiting approval, oldest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SaleResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /orders/pending [get]
func (h *OrdersHandler) ListPending(c *gin.Context) {
	pending, err := h.pendingQueries.ListPending(c.Request.Context())
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSaleResponses(pending))
}

// @Summary List my pending orders
// @Description Get the authenticated customer's own pending orders, oldest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SaleResponse
// @Failure 401 {object} map[string]string
// @Router /orders/mine [get]
func (h *OrdersHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	pending, err := h.pendingQueries.ListByCustomer(c.Request.Context(), userID)
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSaleResponses(pending))
}

// @Summary Approve pending order
// @Description Convert a pending order into a confirmed sale and notify the customer
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pending order ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/pending/{id}/approve [post]
func (h *OrdersHandler) Approve(c *gin.Context) {
	result, err := h.approvalCommands.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondApprovalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sale":    resdto.FromSaleView(result.Sale),
		"message": result.Message,
	})
}

// @Summary Reject pending order
// @Description Remove a pending order without creating a sale and notify the customer
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pending order ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/pending/{id}/reject [post]
func (h *OrdersHandler) Reject(c *gin.Context) {
	message, err := h.approvalCommands.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondApprovalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

func (h *OrdersHandler) respondApprovalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrPendingOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Pending order not found"})
	case errors.Is(err, commands.ErrApprovalInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "Pending order is already being processed"})
	default:
		respondGatewayError(c, err)
	}
}

func toSaleResponses(views []queries.SaleView) []*resdto.SaleResponse {
	response := make([]*resdto.SaleResponse, len(views))
	for i := range views {
		response[i] = resdto.FromSaleView(&views[i])
	}
	return response
}
