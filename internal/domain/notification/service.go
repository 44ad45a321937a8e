package notification

import (
	"context"
	"time"
)

type Message struct {
	Kind    Kind
	Title   string
	Message string
	RefID   *string
}

// Notifier delivers a message to a set of users. Delivery is best effort
// and must never fail the calling operation.
type Notifier interface {
	Notify(ctx context.Context, companyID string, userIDs []string, msg Message)
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	RefID     *string   `json:"ref_id,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationService interface {
	Notifier
	GetNotifications(ctx context.Context, unreadOnly bool) ([]NotificationResponse, error)
	GetUnreadCount(ctx context.Context) (int, error)
	MarkAsRead(ctx context.Context, notificationID string) error
	MarkAllAsRead(ctx context.Context) error

	// Stop flushes queued notifications and stops the delivery workers.
	Stop()
}
