package api

import (
	"errors"
	"net/http"

	reqdto "emy-orders/internal/handler/dto/request"
	resdto "emy-orders/internal/handler/dto/response"
	"emy-orders/internal/usecase/commands"
	"emy-orders/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	configCommands commands.PaymentConfigCommands
	configReads    queries.PaymentConfigReadStore
}

func NewPaymentHandler(configCommands commands.PaymentConfigCommands, configReads queries.PaymentConfigReadStore) *PaymentHandler {
	return &PaymentHandler{
		configCommands: configCommands,
		configReads:    configReads,
	}
}

// @Summary Get QR payment config
// @Description Get the QR image shown on the deferred payment path
// @Tags payment
// @Produce json
// @Success 200 {object} resdto.QrConfigResponse
// @Failure 502 {object} map[string]string
// @Router /payment/qr [get]
func (h *PaymentHandler) GetQrConfig(c *gin.Context) {
	image, err := h.configReads.QrImage(c.Request.Context())
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.QrConfigResponse{QrImageURL: image})
}

// @Summary Save QR payment config
// @Description Replace the QR image shown on the deferred payment path (staff only)
// @Tags payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SaveQrConfigRequest true "QR config"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /payment/qr [put]
func (h *PaymentHandler) SaveQrConfig(c *gin.Context) {
	var req reqdto.SaveQrConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	message, err := h.configCommands.SaveQrImage(c.Request.Context(), req.QrImageURL)
	if err != nil {
		if errors.Is(err, commands.ErrEmptyQrImage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "QR image must not be empty"})
			return
		}
		respondGatewayError(c, err)
		return
	}
	if message == "" {
		message = "QR config saved"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
