//go:build unit

package commands_test

import (
	"context"
	"sync"

	"emy-orders/internal/domain/catalog"
	"emy-orders/internal/domain/order"
	"emy-orders/internal/domain/user"
	"emy-orders/internal/usecase/commands"
	"emy-orders/internal/usecase/queries"
)

type submittedOrder struct {
	action string
	req    *order.Request
}

type fakeSalesGateway struct {
	mu         sync.Mutex
	submitted  []submittedOrder
	approved   []string
	rejected   []string
	submitErr  error
	requestErr error
}

func (f *fakeSalesGateway) SubmitSale(_ context.Context, req *order.Request) (*commands.SubmitResult, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.mu.Lock()
	f.submitted = append(f.submitted, submittedOrder{action: "sale", req: req})
	f.mu.Unlock()
	return &commands.SubmitResult{SaleID: "sale-1"}, nil
}

func (f *fakeSalesGateway) SubmitPendingSale(_ context.Context, req *order.Request) (*commands.SubmitResult, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.mu.Lock()
	f.submitted = append(f.submitted, submittedOrder{action: "pending", req: req})
	f.mu.Unlock()
	return &commands.SubmitResult{}, nil
}

func (f *fakeSalesGateway) ApprovePendingSale(_ context.Context, id string) (string, error) {
	if f.requestErr != nil {
		return "", f.requestErr
	}
	f.mu.Lock()
	f.approved = append(f.approved, id)
	f.mu.Unlock()
	return "Pedido aprobado", nil
}

func (f *fakeSalesGateway) RejectPendingSale(_ context.Context, id string) (string, error) {
	if f.requestErr != nil {
		return "", f.requestErr
	}
	f.mu.Lock()
	f.rejected = append(f.rejected, id)
	f.mu.Unlock()
	return "Pedido rechazado", nil
}

type sentNotification struct {
	userID  string
	message string
}

type fakeNotificationGateway struct {
	mu      sync.Mutex
	sent    []sentNotification
	marked  []string
	addErr  error
	markErr error
}

func (f *fakeNotificationGateway) Add(_ context.Context, userID, message string) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.mu.Lock()
	f.sent = append(f.sent, sentNotification{userID: userID, message: message})
	f.mu.Unlock()
	return nil
}

func (f *fakeNotificationGateway) MarkRead(_ context.Context, userID string) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.mu.Lock()
	f.marked = append(f.marked, userID)
	f.mu.Unlock()
	return nil
}

// fakeNotificationReads drains its unread set once MarkRead is observed,
// mimicking the collaborator's read flags.
type fakeNotificationReads struct {
	gateway *fakeNotificationGateway
	unread  map[string][]queries.NotificationView
}

func (f *fakeNotificationReads) Unread(_ context.Context, userID string) ([]queries.NotificationView, error) {
	for _, marked := range f.gateway.marked {
		if marked == userID {
			return nil, nil
		}
	}
	return f.unread[userID], nil
}

type fakePendingReads struct {
	pending []queries.SaleView
}

func (f *fakePendingReads) Sales(context.Context) ([]queries.SaleView, error) {
	return nil, nil
}

func (f *fakePendingReads) PendingSales(context.Context) ([]queries.SaleView, error) {
	return f.pending, nil
}

func (f *fakePendingReads) PendingSalesByCustomer(_ context.Context, customerID string) ([]queries.SaleView, error) {
	var out []queries.SaleView
	for _, s := range f.pending {
		if s.CustomerID != nil && *s.CustomerID == customerID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeCatalogReads struct {
	items []catalog.Item
	err   error
}

func (f *fakeCatalogReads) Items(context.Context) ([]catalog.Item, error) {
	return f.items, f.err
}

type fakeDirectoryGateway struct {
	profile *user.Profile
	err     error
}

func (f *fakeDirectoryGateway) CheckCustomerLogin(context.Context, string, string) (*user.Profile, error) {
	return f.profile, f.err
}

func (f *fakeDirectoryGateway) CheckStaffLogin(context.Context, string, string) (*user.Profile, error) {
	return f.profile, f.err
}
