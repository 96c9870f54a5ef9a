package catalog

import "github.com/shopspring/decimal"

// Item is a read-only snapshot of a menu entry owned by the external
// persistence collaborator. Carts freeze the snapshot at add time so a
// later price edit never changes an order already in flight.
type Item struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Available bool            `json:"available"`
}
