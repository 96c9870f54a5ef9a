package gateway

import (
	"context"
	"encoding/json"
)

// PaymentConfigStore holds the QR payment-instruction image reference.
type PaymentConfigStore struct {
	caller Caller
}

func NewPaymentConfigStore(caller Caller) *PaymentConfigStore {
	return &PaymentConfigStore{caller: caller}
}

func (p *PaymentConfigStore) QrImage(ctx context.Context) (string, error) {
	data, _, err := p.caller.Call(ctx, "getQrConfig", nil)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", nil
	}
	// The config arrives either as a bare string or wrapped in an
	// object, depending on how it was last saved.
	var image string
	if err := json.Unmarshal(data, &image); err == nil {
		return image, nil
	}
	var wrapped struct {
		QrImageURL string `json:"qrImageUrl"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return "", wrapErr(KindBadResponse, "invalid qr config", err)
	}
	return wrapped.QrImageURL, nil
}

func (p *PaymentConfigStore) SaveQrImage(ctx context.Context, image string) (string, error) {
	_, message, err := p.caller.Call(ctx, "saveQrConfig", map[string]string{"qrImageUrl": image})
	if err != nil {
		return "", err
	}
	return message, nil
}
