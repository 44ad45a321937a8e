package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/foratask/foratask-backend-go/internal/domain/notification"
	"github.com/foratask/foratask-backend-go/internal/pkg/jwt"
	"github.com/foratask/foratask-backend-go/internal/pkg/sse"
)

// Config holds notification service configuration
type Config struct {
	BatchSize     int           // default: 100
	FlushInterval time.Duration // default: 5 seconds
	WorkerCount   int           // default: 2
	QueueSize     int           // default: 1000
}

type service struct {
	repo   notification.NotificationRepository
	hub    *sse.Hub
	logger *slog.Logger
	config Config

	queue  chan notification.Notification
	wg     sync.WaitGroup
	stopCh chan struct{}
}

// NewNotificationService creates a notification service with background
// workers that batch-insert and push to SSE subscribers.
func NewNotificationService(repo notification.NotificationRepository, hub *sse.Hub, logger *slog.Logger, cfg Config) notification.NotificationService {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval == 0 {
		cfg.FlushInterval = 5 * time.Second
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 1000
	}

	s := &service{
		repo:   repo,
		hub:    hub,
		logger: logger,
		config: cfg,
		queue:  make(chan notification.Notification, cfg.QueueSize),
		stopCh: make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	return s
}

// Stop drains the queue and stops the workers.
func (s *service) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}

// worker is the background worker that processes the notification queue
func (s *service) worker(id int) {
	defer s.wg.Done()

	batch := make([]notification.Notification, 0, s.config.BatchSize)
	ticker := time.NewTicker(s.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.repo.CreateBatch(ctx, batch); err != nil {
			s.logger.Error("notification batch insert failed",
				slog.Int("worker", id), slog.Int("count", len(batch)), slog.Any("err", err))
		} else {
			for i := range batch {
				n := &batch[i]
				s.hub.Publish(n.UserID, sse.Event{
					UserID: n.UserID,
					Event:  "notification",
					Data:   toResponse(n),
				})
			}
		}

		batch = batch[:0]
	}

	for {
		select {
		case n := <-s.queue:
			batch = append(batch, n)
			if len(batch) >= s.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-s.stopCh:
			flush()
			return
		}
	}
}

// Notify implements notification.Notifier. Delivery is best effort: a full
// queue drops the message with a log line instead of blocking the caller.
func (s *service) Notify(ctx context.Context, companyID string, userIDs []string, msg notification.Message) {
	now := time.Now()
	for _, userID := range userIDs {
		n := notification.Notification{
			ID:        uuid.New().String(),
			UserID:    userID,
			CompanyID: companyID,
			Kind:      msg.Kind,
			Title:     msg.Title,
			Message:   msg.Message,
			RefID:     msg.RefID,
			CreatedAt: now,
		}

		select {
		case s.queue <- n:
		default:
			s.logger.Warn("notification queue full, dropping",
				slog.String("user_id", userID), slog.String("kind", string(msg.Kind)))
		}
	}
}

// GetNotifications implements notification.NotificationService.
func (s *service) GetNotifications(ctx context.Context, unreadOnly bool) ([]notification.NotificationResponse, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	notifications, err := s.repo.ListByUser(ctx, sess.UserID, sess.CompanyID, unreadOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]notification.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, toResponse(&notifications[i]))
	}

	return responses, nil
}

// GetUnreadCount implements notification.NotificationService.
func (s *service) GetUnreadCount(ctx context.Context) (int, error) {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return 0, err
	}

	return s.repo.CountUnread(ctx, sess.UserID)
}

// MarkAsRead implements notification.NotificationService.
func (s *service) MarkAsRead(ctx context.Context, notificationID string) error {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return err
	}

	return s.repo.MarkRead(ctx, notificationID, sess.UserID)
}

// MarkAllAsRead implements notification.NotificationService.
func (s *service) MarkAllAsRead(ctx context.Context) error {
	sess, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return err
	}

	return s.repo.MarkAllRead(ctx, sess.UserID)
}

func toResponse(n *notification.Notification) notification.NotificationResponse {
	return notification.NotificationResponse{
		ID:        n.ID,
		Kind:      string(n.Kind),
		Title:     n.Title,
		Message:   n.Message,
		RefID:     n.RefID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
