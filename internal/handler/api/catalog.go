package api

import (
	"net/http"

	resdto "emy-orders/internal/handler/dto/response"
	"emy-orders/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary List menu
// @Description Get the current menu items
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.MenuItemResponse
// @Failure 502 {object} map[string]string
// @Router /menu [get]
func (h *CatalogHandler) ListMenu(c *gin.Context) {
	items, err := h.catalogQueries.Items(c.Request.Context())
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	response := make([]*resdto.MenuItemResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromMenuItem(item)
	}
	c.JSON(http.StatusOK, response)
}
