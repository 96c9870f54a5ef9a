package response

import (
	"emy-orders/internal/usecase/commands"
)

type CheckoutResponse struct {
	Status  string `json:"status"`
	SaleID  string `json:"saleId,omitempty"`
	Total   string `json:"total"`
	Message string `json:"message"`
}

func FromCheckoutResult(res *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		Status:  string(res.Kind),
		SaleID:  res.SaleID,
		Total:   res.Total.StringFixed(2),
		Message: res.Message,
	}
}
