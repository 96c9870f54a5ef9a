package response

import (
	"emy-orders/internal/domain/cart"
)

type CartEntryResponse struct {
	ItemID    string `json:"itemId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

type CartResponse struct {
	Items []CartEntryResponse `json:"items"`
	Total string              `json:"total"`
	Count int                 `json:"count"`
}

func FromCart(c *cart.Cart) *CartResponse {
	snapshot := c.Snapshot()
	items := make([]CartEntryResponse, 0, len(snapshot))
	for _, entry := range snapshot {
		subtotal := entry.Item.UnitPrice.Mul(intToDecimal(entry.Quantity)).Round(2)
		items = append(items, CartEntryResponse{
			ItemID:    entry.Item.ID,
			Name:      entry.Item.Name,
			UnitPrice: entry.Item.UnitPrice.StringFixed(2),
			Quantity:  entry.Quantity,
			Subtotal:  subtotal.StringFixed(2),
		})
	}
	return &CartResponse{
		Items: items,
		Total: c.Total().StringFixed(2),
		Count: c.Len(),
	}
}
