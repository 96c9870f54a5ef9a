package queries

import (
	"context"

	"emy-orders/internal/pkg/errs"
)

type NotificationReadStore interface {
	Unread(ctx context.Context, userID string) ([]NotificationView, error)
}

type NotificationQueries interface {
	// UnreadCount is a non-mutating peek for badge counters; it never
	// marks anything read.
	UnreadCount(ctx context.Context, userID string) (int, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context, userID string) (int, error) {
	unread, err := q.store.Unread(ctx, userID)
	if err != nil {
		return 0, errs.Wrap(err, "failed to fetch unread notifications")
	}
	return len(unread), nil
}
