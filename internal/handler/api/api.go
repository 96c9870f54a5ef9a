package api

import (
	"net/http"

	"emy-orders/internal/handler/httperr"
	"emy-orders/internal/infra/gateway"

	"github.com/gin-gonic/gin"
)

// respondGatewayError maps collaborator failures onto HTTP statuses.
// A rejected action carries the collaborator's own message; transport
// failures get a generic one so internals never leak to clients.
func respondGatewayError(c *gin.Context, err error) {
	switch {
	case gateway.IsKind(err, gateway.KindRejected):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, gateway.UserMessage(err), nil)
	case gateway.IsKind(err, gateway.KindUnavailable), gateway.IsKind(err, gateway.KindBadResponse):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Persistence service unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
