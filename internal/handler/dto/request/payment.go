package request

type SaveQrConfigRequest struct {
	QrImageURL string `json:"qr_image_url" binding:"required"`
}
