//go:build unit || e2e

package builder

import (
	"time"

	"emy-orders/internal/domain/order"
	"emy-orders/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type SaleViewBuilder struct {
	ID            string
	CustomerID    *string
	Lines         []queries.SaleLineView
	Total         decimal.Decimal
	PaymentMethod string
	Date          time.Time
}

func NewSaleViewBuilder() *SaleViewBuilder {
	return &SaleViewBuilder{
		ID: "sale-1",
		Lines: []queries.SaleLineView{
			{ItemID: "item-1", Name: "Pollo Entero", UnitPrice: decimal.RequireFromString("45.00"), Quantity: 1},
		},
		Total:         decimal.RequireFromString("45.00"),
		PaymentMethod: string(order.PaymentCash),
		Date:          time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
	}
}

func (b *SaleViewBuilder) WithID(id string) *SaleViewBuilder {
	b.ID = id
	return b
}

func (b *SaleViewBuilder) WithCustomer(customerID string) *SaleViewBuilder {
	b.CustomerID = &customerID
	return b
}

func (b *SaleViewBuilder) WithTotal(total string) *SaleViewBuilder {
	b.Total = decimal.RequireFromString(total)
	return b
}

func (b *SaleViewBuilder) WithPaymentMethod(method order.PaymentMethod) *SaleViewBuilder {
	b.PaymentMethod = string(method)
	return b
}

func (b *SaleViewBuilder) WithDate(date time.Time) *SaleViewBuilder {
	b.Date = date
	return b
}

func (b *SaleViewBuilder) Build() queries.SaleView {
	return queries.SaleView{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		Lines:         b.Lines,
		Total:         b.Total,
		PaymentMethod: b.PaymentMethod,
		Date:          b.Date,
	}
}
