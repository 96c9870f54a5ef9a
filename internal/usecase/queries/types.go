package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type SaleLineView struct {
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

func (l SaleLineView) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))).Round(2)
}

// SaleView renders both confirmed sales and pending orders: a pending
// order has the same shape as a sale, it just lives in the pending set
// until it is approved or rejected.
type SaleView struct {
	ID            string          `json:"id"`
	CustomerID    *string         `json:"customer_id,omitempty"`
	Lines         []SaleLineView  `json:"lines"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Date          time.Time       `json:"date"`
}

type CustomerView struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type NotificationView struct {
	ID      string    `json:"id"`
	UserID  string    `json:"user_id"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
	Read    bool      `json:"read"`
}
