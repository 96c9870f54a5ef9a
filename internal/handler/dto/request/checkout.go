package request

import (
	"emy-orders/internal/domain/order"
)

type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

func (r CheckoutRequest) GetPaymentMethod() (order.PaymentMethod, error) {
	return order.NewPaymentMethod(r.PaymentMethod)
}
