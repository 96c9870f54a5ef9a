package order

import "errors"

var ErrInvalidPaymentMethod = errors.New("invalid payment method")

// PaymentMethod routes checkout: cash confirms immediately, QR goes to
// the deferred-approval queue. The wire values match what the
// persistence collaborator stores.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Efectivo"
	PaymentQR   PaymentMethod = "QR"
)

func NewPaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentQR:
		return PaymentMethod(s), nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

func (m PaymentMethod) String() string {
	return string(m)
}

// GuestCustomerID marks a checkout performed without a logged-in
// session. Staff-initiated checkouts carry no customer ID at all.
const GuestCustomerID = "guest"
