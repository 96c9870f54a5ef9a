package queries

import (
	"context"

	"emy-orders/internal/domain/catalog"
	"emy-orders/internal/pkg/errs"
)

type CatalogReadStore interface {
	Items(ctx context.Context) ([]catalog.Item, error)
}

type PaymentConfigReadStore interface {
	// QrImage returns the payment-instruction image reference shown on
	// the deferred (QR) checkout path.
	QrImage(ctx context.Context) (string, error)
}

type CatalogQueries interface {
	Items(ctx context.Context) ([]catalog.Item, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) Items(ctx context.Context) ([]catalog.Item, error) {
	items, err := q.store.Items(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch catalog")
	}
	return items, nil
}
