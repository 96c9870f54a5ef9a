package queries

import (
	"context"
	"sort"

	"emy-orders/internal/pkg/errs"
)

type PendingQueries interface {
	// ListPending returns every order awaiting approval, oldest first,
	// so the queue stays fair to whoever ordered earliest.
	ListPending(ctx context.Context) ([]SaleView, error)
	// ListByCustomer returns one customer's own pending orders.
	ListByCustomer(ctx context.Context, customerID string) ([]SaleView, error)
}

type pendingQueriesImpl struct {
	sales SalesReadStore
}

func NewPendingQueries(sales SalesReadStore) PendingQueries {
	return &pendingQueriesImpl{sales: sales}
}

func (q *pendingQueriesImpl) ListPending(ctx context.Context) ([]SaleView, error) {
	pending, err := q.sales.PendingSales(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch pending orders")
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].Date.Before(pending[j].Date)
	})
	return pending, nil
}

func (q *pendingQueriesImpl) ListByCustomer(ctx context.Context, customerID string) ([]SaleView, error) {
	pending, err := q.sales.PendingSalesByCustomer(ctx, customerID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch customer pending orders")
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].Date.Before(pending[j].Date)
	})
	return pending, nil
}
