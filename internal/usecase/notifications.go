package usecase

import (
	"context"
	"log/slog"
	"sort"

	"padel-club-api/internal/pkg/clock"
	"padel-club-api/internal/pkg/errs"
	"padel-club-api/internal/store"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errs.New("notification not found")

// Notifier is the fire-and-forget collaborator invoked after admissible
// mutations. Failures are logged and swallowed; they never surface as the
// operation's result.
type Notifier interface {
	Notify(userID uuid.UUID, kind, title, body string)
}

type NotificationUseCase interface {
	List(ctx context.Context, userID uuid.UUID) ([]store.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
}

type notificationUseCaseImpl struct {
	store *store.Store
	clock clock.Clock
}

func NewNotificationUseCase(st *store.Store, clk clock.Clock) NotificationUseCase {
	return &notificationUseCaseImpl{store: st, clock: clk}
}

func NewNotifier(st *store.Store, clk clock.Clock) Notifier {
	return &notificationUseCaseImpl{store: st, clock: clk}
}

func (n *notificationUseCaseImpl) Notify(userID uuid.UUID, kind, title, body string) {
	err := n.store.Mutate(func(doc *store.Document) error {
		doc.Notifications = append(doc.Notifications, store.Notification{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      kind,
			Title:     title,
			Body:      body,
			CreatedAt: n.clock.Now(),
		})
		return nil
	})
	if err != nil {
		slog.Warn("failed to record notification", "user_id", userID, "type", kind, "error", err)
	}
}

func (n *notificationUseCaseImpl) List(_ context.Context, userID uuid.UUID) ([]store.Notification, error) {
	doc := n.store.Read()

	notifications := make([]store.Notification, 0)
	for _, item := range doc.Notifications {
		if item.UserID == userID {
			notifications = append(notifications, item)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

func (n *notificationUseCaseImpl) MarkRead(_ context.Context, userID, notificationID uuid.UUID) error {
	return n.store.Mutate(func(doc *store.Document) error {
		for i := range doc.Notifications {
			item := &doc.Notifications[i]
			if item.ID == notificationID && item.UserID == userID {
				now := n.clock.Now()
				item.IsRead = true
				item.ReadAt = &now
				return nil
			}
		}
		return ErrNotificationNotFound
	})
}
