package commands

import (
	"context"

	"emy-orders/internal/domain/cart"
	"emy-orders/internal/domain/order"
	"emy-orders/internal/domain/user"
)

// Write-side ports over the external persistence collaborator. All
// durable state lives there; these interfaces are the only transition
// rights this service holds.

type SubmitResult struct {
	SaleID  string
	Message string
}

type SalesGateway interface {
	// SubmitSale records an immediately-confirmed sale (cash path).
	SubmitSale(ctx context.Context, req *order.Request) (*SubmitResult, error)
	// SubmitPendingSale records a deferred order awaiting approval (QR path).
	SubmitPendingSale(ctx context.Context, req *order.Request) (*SubmitResult, error)
	// ApprovePendingSale converts a pending order into a sale.
	ApprovePendingSale(ctx context.Context, pendingOrderID string) (string, error)
	// RejectPendingSale removes a pending order without creating a sale.
	RejectPendingSale(ctx context.Context, pendingOrderID string) (string, error)
}

type NotificationGateway interface {
	Add(ctx context.Context, userID, message string) error
	MarkRead(ctx context.Context, userID string) error
}

type DirectoryGateway interface {
	CheckCustomerLogin(ctx context.Context, username, password string) (*user.Profile, error)
	CheckStaffLogin(ctx context.Context, username, password string) (*user.Profile, error)
}

type PaymentConfigGateway interface {
	SaveQrImage(ctx context.Context, image string) (string, error)
}

// CartStore holds one cart per browsing session. A missing session
// resolves to a fresh empty cart; carts expire with their session.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (*cart.Cart, error)
	Save(ctx context.Context, sessionID string, c *cart.Cart) error
	Delete(ctx context.Context, sessionID string) error
}
