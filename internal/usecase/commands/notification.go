package commands

import (
	"context"
	"sort"

	"emy-orders/internal/pkg/errs"
	"emy-orders/internal/usecase/queries"
)

var ErrMarkReadFailed = errs.New("failed to mark notifications as read")

// NotificationCommands creates and consumes per-user notifications.
type NotificationCommands interface {
	Notify(ctx context.Context, userID, message string) error
	// FetchAndConsume returns the user's unread notifications, newest
	// first, and marks them all read in the same operation when the
	// result is non-empty. A second call right after a non-empty one
	// returns the empty sequence: each unread batch is surfaced once.
	FetchAndConsume(ctx context.Context, userID string) ([]queries.NotificationView, error)
}

type notificationCommandsImpl struct {
	gateway NotificationGateway
	reads   queries.NotificationReadStore
}

func NewNotificationCommands(gateway NotificationGateway, reads queries.NotificationReadStore) NotificationCommands {
	return &notificationCommandsImpl{gateway: gateway, reads: reads}
}

func (n *notificationCommandsImpl) Notify(ctx context.Context, userID, message string) error {
	return n.gateway.Add(ctx, userID, message)
}

func (n *notificationCommandsImpl) FetchAndConsume(ctx context.Context, userID string) ([]queries.NotificationView, error) {
	unread, err := n.reads.Unread(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch unread notifications")
	}

	sort.Slice(unread, func(i, j int) bool {
		return unread[i].Date.After(unread[j].Date)
	})

	if len(unread) > 0 {
		if err := n.gateway.MarkRead(ctx, userID); err != nil {
			return nil, errs.Mark(err, ErrMarkReadFailed)
		}
	}

	return unread, nil
}
