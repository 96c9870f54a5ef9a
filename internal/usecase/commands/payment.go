package commands

import (
	"context"

	"emy-orders/internal/pkg/errs"
)

var ErrEmptyQrImage = errs.New("qr image must not be empty")

// PaymentConfigCommands manages the QR image shown to customers on the
// deferred payment path.
type PaymentConfigCommands interface {
	SaveQrImage(ctx context.Context, image string) (string, error)
}

type paymentConfigCommandsImpl struct {
	gateway PaymentConfigGateway
}

func NewPaymentConfigCommands(gateway PaymentConfigGateway) PaymentConfigCommands {
	return &paymentConfigCommandsImpl{gateway: gateway}
}

func (p *paymentConfigCommandsImpl) SaveQrImage(ctx context.Context, image string) (string, error) {
	if image == "" {
		return "", ErrEmptyQrImage
	}
	return p.gateway.SaveQrImage(ctx, image)
}
