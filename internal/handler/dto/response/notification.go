package response

import (
	"time"

	"emy-orders/internal/usecase/queries"
)

type NotificationResponse struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

func FromNotificationView(v queries.NotificationView) NotificationResponse {
	return NotificationResponse{
		ID:      v.ID,
		Message: v.Message,
		Date:    v.Date,
	}
}
