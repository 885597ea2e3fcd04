package repositories

import (
	"context"
	"time"

	"github.com/connectly-app/backend/internal/models"
	"github.com/connectly-app/backend/internal/notifications"
	"github.com/connectly-app/backend/pkg/cache"
	"gorm.io/gorm"
)

// How long a cached unread counter may serve before the database is
// consulted again.
const unreadCountTTL = 30 * time.Second

// NotificationRepository defines read-side operations on the ledger.
// Appends go through notifications.Notifier from the mutating
// repositories; clients can only list and mark read.
type NotificationRepository interface {
	GetByRecipientID(recipientID uint, page, limit int) ([]models.Notification, int64, error)
	GetUnreadCount(recipientID uint) (int64, error)
	MarkAsRead(recipientID, notificationID uint) error
	MarkAllAsRead(recipientID uint) error
}

type postgresNotificationRepository struct {
	db    *gorm.DB
	cache *cache.Client
}

func NewPostgresNotificationRepository(db *gorm.DB, c *cache.Client) NotificationRepository {
	return &postgresNotificationRepository{db: db, cache: c}
}

func (r *postgresNotificationRepository) GetByRecipientID(recipientID uint, page, limit int) ([]models.Notification, int64, error) {
	var notifs []models.Notification
	var total int64

	if err := r.db.Model(&models.Notification{}).Where("recipient_id = ?", recipientID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.db.Where("recipient_id = ?", recipientID).
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&notifs).Error

	return notifs, total, err
}

func (r *postgresNotificationRepository) GetUnreadCount(recipientID uint) (int64, error) {
	ctx := context.Background()
	key := notifications.UnreadCountKey(recipientID)
	if count, ok := r.cache.GetInt64(ctx, key); ok {
		return count, nil
	}

	var count int64
	if err := r.db.Model(&models.Notification{}).Where("recipient_id = ? AND is_read = ?", recipientID, false).Count(&count).Error; err != nil {
		return 0, err
	}
	r.cache.SetInt64(ctx, key, count, unreadCountTTL)
	return count, nil
}

// MarkAsRead flips the unread flag on one of the recipient's own
// entries. Someone else's notification id reports not found.
func (r *postgresNotificationRepository) MarkAsRead(recipientID, notificationID uint) error {
	res := r.db.Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ?", notificationID, recipientID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	r.cache.Delete(context.Background(), notifications.UnreadCountKey(recipientID))
	return nil
}

func (r *postgresNotificationRepository) MarkAllAsRead(recipientID uint) error {
	err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true).Error
	if err != nil {
		return err
	}
	r.cache.Delete(context.Background(), notifications.UnreadCountKey(recipientID))
	return nil
}
