package notifications

import (
	"context"
	"fmt"

	"github.com/connectly-app/backend/internal/models"
	"github.com/connectly-app/backend/pkg/cache"
	"github.com/connectly-app/backend/pkg/metrics"
	"gorm.io/gorm"
)

// Notifier appends entries to the notification ledger. Mutating
// repositories call it synchronously from inside their own transaction,
// so the triggering write and its notification commit or roll back
// together.
type Notifier struct {
	cache *cache.Client
}

func New(cache *cache.Client) *Notifier {
	return &Notifier{cache: cache}
}

// UnreadCountKey is the cache key for a recipient's unread counter.
func UnreadCountKey(userID uint) string {
	return fmt.Sprintf("notifications:unread:%d", userID)
}

// Append writes one ledger entry using the caller's transaction handle.
// Self-referential events (actor == recipient) append nothing.
func (n *Notifier) Append(tx *gorm.DB, notif *models.Notification) error {
	if notif.ActorID == notif.RecipientID {
		return nil
	}
	if err := tx.Create(notif).Error; err != nil {
		return err
	}
	metrics.NotificationsCreated.WithLabelValues(notif.Verb).Inc()
	// Invalidate eagerly; the cached counter carries a short TTL as a
	// backstop in case the surrounding transaction rolls back.
	n.InvalidateUnread(notif.RecipientID)
	return nil
}

// InvalidateUnread drops the cached unread counter for a recipient.
func (n *Notifier) InvalidateUnread(userID uint) {
	n.cache.Delete(context.Background(), UnreadCountKey(userID))
}
