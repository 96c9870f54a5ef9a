package order

import (
	"errors"

	"emy-orders/internal/domain/cart"
	"emy-orders/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

var ErrEmptyOrder = errors.New("order has no items")

// Line is one frozen item/quantity pair of an order. Unlike a cart
// entry it never changes after the request is built.
type Line struct {
	Item     catalog.Item `json:"item"`
	Quantity int          `json:"quantity"`
}

func (l Line) Subtotal() decimal.Decimal {
	return l.Item.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))).Round(2)
}

// Request is the order submitted at checkout. Total is computed exactly
// once here and is a frozen fact about the transaction; it is never
// recomputed from live catalog prices.
type Request struct {
	lines      []Line
	total      decimal.Decimal
	payment    PaymentMethod
	customerID *string
}

// NewRequest freezes a cart snapshot into an order request. customerID
// is the logged-in customer's ID, GuestCustomerID for anonymous
// sessions, or nil when the actor is staff.
func NewRequest(snapshot []cart.Entry, payment PaymentMethod, customerID *string) (*Request, error) {
	if len(snapshot) == 0 {
		return nil, ErrEmptyOrder
	}
	if _, err := NewPaymentMethod(payment.String()); err != nil {
		return nil, err
	}

	lines := make([]Line, len(snapshot))
	total := decimal.Zero
	for i, entry := range snapshot {
		lines[i] = Line{Item: entry.Item, Quantity: entry.Quantity}
		total = total.Add(entry.Item.UnitPrice.Mul(decimal.NewFromInt(int64(entry.Quantity))))
	}

	return &Request{
		lines:      lines,
		total:      total.Round(2),
		payment:    payment,
		customerID: customerID,
	}, nil
}

func (r *Request) Lines() []Line          { return r.lines }
func (r *Request) Total() decimal.Decimal { return r.total }
func (r *Request) Payment() PaymentMethod { return r.payment }
func (r *Request) CustomerID() *string    { return r.customerID }
func (r *Request) IsDeferred() bool       { return r.payment == PaymentQR }
