package gateway

import (
	"context"
	"encoding/json"

	"emy-orders/internal/domain/order"
	"emy-orders/internal/usecase/commands"
	"emy-orders/internal/usecase/queries"
)

// SalesStore is the typed facade over the sale and pending-order
// actions. One type serves both sides: commands.SalesGateway for the
// transitions and queries.SalesReadStore for the listings.
type SalesStore struct {
	caller Caller
}

func NewSalesStore(caller Caller) *SalesStore {
	return &SalesStore{caller: caller}
}

func (s *SalesStore) SubmitSale(ctx context.Context, req *order.Request) (*commands.SubmitResult, error) {
	return s.submit(ctx, "addSale", req)
}

func (s *SalesStore) SubmitPendingSale(ctx context.Context, req *order.Request) (*commands.SubmitResult, error) {
	return s.submit(ctx, "addPendingSale", req)
}

func (s *SalesStore) submit(ctx context.Context, action string, req *order.Request) (*commands.SubmitResult, error) {
	data, message, err := s.caller.Call(ctx, action, submitSalePayload{SaleData: toSalePayload(req)})
	if err != nil {
		return nil, err
	}
	var created struct {
		ID flexString `json:"id"`
	}
	if len(data) > 0 {
		// The created record's id is informative; a missing or odd one
		// does not fail an already accepted submission.
		_ = json.Unmarshal(data, &created)
	}
	return &commands.SubmitResult{SaleID: string(created.ID), Message: message}, nil
}

func (s *SalesStore) ApprovePendingSale(ctx context.Context, pendingOrderID string) (string, error) {
	_, message, err := s.caller.Call(ctx, "approvePendingSale", map[string]string{"id": pendingOrderID})
	if err != nil {
		return "", err
	}
	return message, nil
}

func (s *SalesStore) RejectPendingSale(ctx context.Context, pendingOrderID string) (string, error) {
	_, message, err := s.caller.Call(ctx, "rejectPendingSale", map[string]string{"id": pendingOrderID})
	if err != nil {
		return "", err
	}
	return message, nil
}

func (s *SalesStore) Sales(ctx context.Context) ([]queries.SaleView, error) {
	return s.fetchSales(ctx, "getSales", nil)
}

func (s *SalesStore) PendingSales(ctx context.Context) ([]queries.SaleView, error) {
	return s.fetchSales(ctx, "getPendingSales", nil)
}

func (s *SalesStore) PendingSalesByCustomer(ctx context.Context, customerID string) ([]queries.SaleView, error) {
	return s.fetchSales(ctx, "getUserPendingSales", map[string]string{"userId": customerID})
}

func (s *SalesStore) fetchSales(ctx context.Context, action string, payload any) ([]queries.SaleView, error) {
	data, _, err := s.caller.Call(ctx, action, payload)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []queries.SaleView{}, nil
	}
	var records []saleRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, wrapErr(KindBadResponse, "invalid sale records", err)
	}
	views := make([]queries.SaleView, 0, len(records))
	for _, r := range records {
		views = append(views, toSaleView(r))
	}
	return views, nil
}

func toSalePayload(req *order.Request) saleDataPayload {
	reqLines := req.Lines()
	lines := make([]saleLinePayload, 0, len(reqLines))
	for _, l := range reqLines {
		lines = append(lines, saleLinePayload{
			Item: itemSnapshotPayload{
				ID:    l.Item.ID,
				Name:  l.Item.Name,
				Price: l.Item.UnitPrice,
			},
			Quantity: l.Quantity,
		})
	}
	// The sheet keeps the number -1 for guests and an empty cell for
	// staff sales.
	var userID any
	if id := req.CustomerID(); id != nil {
		if *id == order.GuestCustomerID {
			userID = -1
		} else {
			userID = *id
		}
	}
	return saleDataPayload{
		Items:         lines,
		Total:         req.Total().StringFixed(2),
		PaymentMethod: string(req.Payment()),
		UserID:        userID,
	}
}

func toSaleView(r saleRecord) queries.SaleView {
	recLines := r.lines()
	lines := make([]queries.SaleLineView, 0, len(recLines))
	for _, l := range recLines {
		lines = append(lines, queries.SaleLineView{
			ItemID:    string(l.Item.ID),
			Name:      l.Item.Name,
			UnitPrice: l.Item.Price.Round(2),
			Quantity:  l.Quantity,
		})
	}
	return queries.SaleView{
		ID:            string(r.ID),
		CustomerID:    r.customerID(),
		Lines:         lines,
		Total:         r.Total.Round(2),
		PaymentMethod: r.PaymentMethod,
		Date:          r.Date,
	}
}
