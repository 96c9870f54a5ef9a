package response

type QrConfigResponse struct {
	QrImageURL string `json:"qrImageUrl"`
}
