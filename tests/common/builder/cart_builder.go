//go:build unit || e2e

package builder

import (
	"emy-orders/internal/domain/cart"
	"emy-orders/internal/domain/catalog"
)

type CartBuilder struct {
	entries []cart.Entry
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{}
}

func (b *CartBuilder) WithEntry(item catalog.Item, quantity int) *CartBuilder {
	b.entries = append(b.entries, cart.Entry{Item: item, Quantity: quantity})
	return b
}

func (b *CartBuilder) Build() *cart.Cart {
	c := cart.New()
	for _, entry := range b.entries {
		c.Add(entry.Item)
		c.SetQuantity(entry.Item.ID, entry.Quantity)
	}
	return c
}
