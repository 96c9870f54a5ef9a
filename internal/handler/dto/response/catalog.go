package response

import (
	"emy-orders/internal/domain/catalog"
)

type MenuItemResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Available bool   `json:"available"`
}

func FromMenuItem(item catalog.Item) *MenuItemResponse {
	return &MenuItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		UnitPrice: item.UnitPrice.StringFixed(2),
		Available: item.Available,
	}
}
