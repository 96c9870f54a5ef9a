package commands

import (
	"context"

	"emy-orders/internal/domain/order"
	"emy-orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart      = errs.New("cart is empty")
	ErrCheckoutFailed = errs.New("checkout failed")
)

type OutcomeKind string

const (
	OutcomeConfirmed       OutcomeKind = "confirmed"
	OutcomePendingApproval OutcomeKind = "pending_approval"
)

type CheckoutResult struct {
	Kind    OutcomeKind
	SaleID  string
	Total   decimal.Decimal
	Message string
}

// CheckoutCommands routes a cart snapshot to one of the two fulfillment
// paths. The payment method is the only branching signal: staff and
// customers go through the identical path.
type CheckoutCommands interface {
	Checkout(ctx context.Context, sessionID string, method order.PaymentMethod, customerID *string) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	carts CartStore
	sales SalesGateway
}

func NewCheckoutCommands(carts CartStore, sales SalesGateway) CheckoutCommands {
	return &checkoutCommandsImpl{carts: carts, sales: sales}
}

// Checkout freezes the session's cart into an order request and submits
// it. The cart is NOT cleared here, not even on success: clearing is
// the session's own responsibility after it sees a positive outcome.
func (c *checkoutCommandsImpl) Checkout(
	ctx context.Context,
	sessionID string,
	method order.PaymentMethod,
	customerID *string,
) (*CheckoutResult, error) {
	crt, err := c.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if crt.IsEmpty() {
		return nil, ErrEmptyCart
	}

	req, err := order.NewRequest(crt.Snapshot(), method, customerID)
	if err != nil {
		return nil, err
	}

	if req.IsDeferred() {
		res, submitErr := c.sales.SubmitPendingSale(ctx, req)
		if submitErr != nil {
			return nil, errs.Mark(submitErr, ErrCheckoutFailed)
		}
		message := res.Message
		if message == "" {
			message = "Pedido registrado. Por favor, escanee el QR para pagar."
		}
		return &CheckoutResult{
			Kind:    OutcomePendingApproval,
			Total:   req.Total(),
			Message: message,
		}, nil
	}

	res, err := c.sales.SubmitSale(ctx, req)
	if err != nil {
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}
	message := res.Message
	if message == "" {
		message = "Venta registrada con éxito."
	}
	return &CheckoutResult{
		Kind:    OutcomeConfirmed,
		SaleID:  res.SaleID,
		Total:   req.Total(),
		Message: message,
	}, nil
}
