package gateway

import (
	"context"
	"encoding/json"

	"emy-orders/internal/domain/catalog"
)

// CatalogStore reads the menu. The catalog is owned elsewhere; this
// service only snapshots it.
type CatalogStore struct {
	caller Caller
}

func NewCatalogStore(caller Caller) *CatalogStore {
	return &CatalogStore{caller: caller}
}

func (c *CatalogStore) Items(ctx context.Context) ([]catalog.Item, error) {
	data, _, err := c.caller.Call(ctx, "getMenuItems", nil)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []catalog.Item{}, nil
	}
	var records []menuItemRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, wrapErr(KindBadResponse, "invalid menu records", err)
	}
	items := make([]catalog.Item, 0, len(records))
	for _, r := range records {
		items = append(items, r.toItem())
	}
	return items, nil
}
