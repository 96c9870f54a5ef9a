//go:build unit || e2e

package builder

import (
	"emy-orders/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

type MenuItemBuilder struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	Available bool
}

func NewMenuItemBuilder() *MenuItemBuilder {
	return &MenuItemBuilder{
		ID:        "item-1",
		Name:      "Pollo Entero",
		UnitPrice: decimal.RequireFromString("45.00"),
		Available: true,
	}
}

func (b *MenuItemBuilder) WithID(id string) *MenuItemBuilder {
	b.ID = id
	return b
}

func (b *MenuItemBuilder) WithName(name string) *MenuItemBuilder {
	b.Name = name
	return b
}

func (b *MenuItemBuilder) WithPrice(price string) *MenuItemBuilder {
	b.UnitPrice = decimal.RequireFromString(price)
	return b
}

func (b *MenuItemBuilder) Unavailable() *MenuItemBuilder {
	b.Available = false
	return b
}

func (b *MenuItemBuilder) Build() catalog.Item {
	return catalog.Item{
		ID:        b.ID,
		Name:      b.Name,
		UnitPrice: b.UnitPrice,
		Available: b.Available,
	}
}
