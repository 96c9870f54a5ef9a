package commands

import (
	"context"

	"emy-orders/internal/domain/cart"
	"emy-orders/internal/domain/catalog"
	"emy-orders/internal/pkg/errs"
	"emy-orders/internal/usecase/queries"
)

var (
	ErrItemNotFound    = errs.New("menu item not found")
	ErrItemUnavailable = errs.New("menu item is not available")
)

// CartCommands mutates the session's cart only through the cart's own
// declared operations; the session exclusively owns its cart.
type CartCommands interface {
	AddItem(ctx context.Context, sessionID, itemID string) (*cart.Cart, error)
	SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*cart.Cart, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (*cart.Cart, error)
	Clear(ctx context.Context, sessionID string) error
	Get(ctx context.Context, sessionID string) (*cart.Cart, error)
}

type cartCommandsImpl struct {
	store   CartStore
	catalog queries.CatalogReadStore
}

func NewCartCommands(store CartStore, catalog queries.CatalogReadStore) CartCommands {
	return &cartCommandsImpl{store: store, catalog: catalog}
}

// AddItem freezes the current catalog snapshot of the item into the
// cart. Adding an item that is already present is a no-op; quantity
// changes go through SetQuantity only.
func (c *cartCommandsImpl) AddItem(ctx context.Context, sessionID, itemID string) (*cart.Cart, error) {
	items, err := c.catalog.Items(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch catalog")
	}

	var selected *catalog.Item
	for i := range items {
		if items[i].ID == itemID {
			selected = &items[i]
			break
		}
	}
	if selected == nil {
		return nil, ErrItemNotFound
	}
	if !selected.Available {
		return nil, ErrItemUnavailable
	}

	crt, err := c.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	crt.Add(*selected)
	if err := c.store.Save(ctx, sessionID, crt); err != nil {
		return nil, err
	}
	return crt, nil
}

func (c *cartCommandsImpl) SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*cart.Cart, error) {
	crt, err := c.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	crt.SetQuantity(itemID, quantity)
	if err := c.store.Save(ctx, sessionID, crt); err != nil {
		return nil, err
	}
	return crt, nil
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, sessionID, itemID string) (*cart.Cart, error) {
	crt, err := c.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	crt.Remove(itemID)
	if err := c.store.Save(ctx, sessionID, crt); err != nil {
		return nil, err
	}
	return crt, nil
}

// Clear empties the session's cart. The session invokes this after a
// positive checkout outcome; checkout itself never clears.
func (c *cartCommandsImpl) Clear(ctx context.Context, sessionID string) error {
	return c.store.Delete(ctx, sessionID)
}

func (c *cartCommandsImpl) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	return c.store.Get(ctx, sessionID)
}
