package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"emy-orders/internal/domain/order"
	"emy-orders/internal/pkg/errs"
	"emy-orders/internal/usecase/queries"
)

var (
	ErrPendingOrderNotFound = errs.New("pending order not found")
	ErrApprovalInFlight     = errs.New("pending order is already being processed")
)

type ApprovalResult struct {
	// Sale is the record materialized from the pending order; its items
	// and total are exactly the pending order's frozen ones.
	Sale    *queries.SaleView
	Message string
}

// ApprovalCommands holds the only transition rights over pending
// orders. Approve and Reject are mutually exclusive terminal
// transitions: once either succeeds for an id, that id never reappears
// in the pending queue.
type ApprovalCommands interface {
	Approve(ctx context.Context, pendingOrderID string) (*ApprovalResult, error)
	Reject(ctx context.Context, pendingOrderID string) (string, error)
}

type approvalCommandsImpl struct {
	sales    SalesGateway
	pending  queries.SalesReadStore
	notifier NotificationGateway
	logger   *slog.Logger

	// In-process double-submission guard, the server-side counterpart
	// of disabling the approve/reject buttons while a request is in
	// flight. Authoritative serialization stays with the collaborator.
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewApprovalCommands(
	sales SalesGateway,
	pending queries.SalesReadStore,
	notifier NotificationGateway,
	logger *slog.Logger,
) ApprovalCommands {
	return &approvalCommandsImpl{
		sales:    sales,
		pending:  pending,
		notifier: notifier,
		logger:   logger,
		inFlight: make(map[string]struct{}),
	}
}

func (a *approvalCommandsImpl) begin(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, busy := a.inFlight[id]; busy {
		return ErrApprovalInFlight
	}
	a.inFlight[id] = struct{}{}
	return nil
}

func (a *approvalCommandsImpl) end(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.inFlight, id)
}

// Approve converts the pending order into a confirmed sale and notifies
// the customer. On any failure the pending record is left untouched and
// becomes visible again for a retry. A notification failure after the
// transition succeeded does not roll the sale back; it is logged and
// the approval still reports success.
func (a *approvalCommandsImpl) Approve(ctx context.Context, pendingOrderID string) (*ApprovalResult, error) {
	if err := a.begin(pendingOrderID); err != nil {
		return nil, err
	}
	defer a.end(pendingOrderID)

	view, err := a.findPending(ctx, pendingOrderID)
	if err != nil {
		return nil, err
	}

	message, err := a.sales.ApprovePendingSale(ctx, pendingOrderID)
	if err != nil {
		return nil, err
	}

	a.notifyCustomer(ctx, view.CustomerID,
		fmt.Sprintf("Tu pedido #%s ha sido aprobado. ¡Gracias por tu compra!", pendingOrderID))

	return &ApprovalResult{Sale: view, Message: message}, nil
}

// Reject removes the pending order without creating a sale.
func (a *approvalCommandsImpl) Reject(ctx context.Context, pendingOrderID string) (string, error) {
	if err := a.begin(pendingOrderID); err != nil {
		return "", err
	}
	defer a.end(pendingOrderID)

	view, err := a.findPending(ctx, pendingOrderID)
	if err != nil {
		return "", err
	}

	message, err := a.sales.RejectPendingSale(ctx, pendingOrderID)
	if err != nil {
		return "", err
	}

	a.notifyCustomer(ctx, view.CustomerID,
		fmt.Sprintf("Tu pedido #%s ha sido rechazado. Por favor, contacta con la tienda.", pendingOrderID))

	return message, nil
}

func (a *approvalCommandsImpl) findPending(ctx context.Context, id string) (*queries.SaleView, error) {
	pending, err := a.pending.PendingSales(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch pending orders")
	}
	for i := range pending {
		if pending[i].ID == id {
			return &pending[i], nil
		}
	}
	return nil, ErrPendingOrderNotFound
}

func (a *approvalCommandsImpl) notifyCustomer(ctx context.Context, customerID *string, message string) {
	if customerID == nil || *customerID == order.GuestCustomerID {
		return
	}
	if err := a.notifier.Add(ctx, *customerID, message); err != nil {
		// Known gap: the transition already succeeded, so the sale (or
		// removal) stands even though the customer was not informed.
		a.logger.Warn("failed to notify customer after approval transition",
			"customer_id", *customerID, "error", err)
	}
}
