package gateway

import (
	"context"
	"encoding/json"

	"emy-orders/internal/usecase/queries"
)

// NotificationStore covers the per-user notification actions. Read
// state lives entirely in the collaborator; fetching never marks
// anything here, MarkRead is its own action.
type NotificationStore struct {
	caller Caller
}

func NewNotificationStore(caller Caller) *NotificationStore {
	return &NotificationStore{caller: caller}
}

func (n *NotificationStore) Add(ctx context.Context, userID, message string) error {
	payload := map[string]string{"userId": userID, "message": message}
	_, _, err := n.caller.Call(ctx, "addNotification", payload)
	return err
}

func (n *NotificationStore) MarkRead(ctx context.Context, userID string) error {
	_, _, err := n.caller.Call(ctx, "markNotificationsRead", map[string]string{"userId": userID})
	return err
}

func (n *NotificationStore) Unread(ctx context.Context, userID string) ([]queries.NotificationView, error) {
	data, _, err := n.caller.Call(ctx, "getUnreadNotifications", map[string]string{"userId": userID})
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []queries.NotificationView{}, nil
	}
	var records []notificationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, wrapErr(KindBadResponse, "invalid notification records", err)
	}
	views := make([]queries.NotificationView, 0, len(records))
	for _, r := range records {
		views = append(views, queries.NotificationView{
			ID:      string(r.ID),
			UserID:  string(r.UserID),
			Message: r.Message,
			Date:    r.Date,
			Read:    r.Read,
		})
	}
	return views, nil
}
