package repositories

import (
	"github.com/connectly-app/backend/internal/models"
	"github.com/connectly-app/backend/internal/notifications"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations. Like
// and Unlike are idempotent on the (user, post) pair.
type LikeRepository interface {
	Like(userID uint, post *models.Post) (created bool, err error)
	Unlike(userID, postID uint) (removed bool, err error)
	HasUserLikedPost(userID, postID uint) (bool, error)
	GetLikedPostIDs(userID uint, postIDs []uint) (map[uint]bool, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db       *gorm.DB
	notifier *notifications.Notifier
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB, notifier *notifications.Notifier) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db, notifier: notifier}
}

// Like records a like and its "liked your post" notification in one
// transaction. An existing (user, post) pair writes nothing; liking
// your own post records the like but no notification.
func (r *PostgresLikeRepository) Like(userID uint, post *models.Post) (bool, error) {
	created := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var like models.Like
		res := tx.Where(models.Like{UserID: userID, PostID: post.ID}).FirstOrCreate(&like)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		created = true
		return r.notifier.Append(tx, &models.Notification{
			RecipientID: post.AuthorID,
			ActorID:     userID,
			Verb:        models.VerbLiked,
			TargetType:  models.TargetPost,
			TargetID:    post.ID,
		})
	})
	return created, err
}

// Unlike removes the like if present; a missing like is a no-op.
func (r *PostgresLikeRepository) Unlike(userID, postID uint) (bool, error) {
	res := r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PostgresLikeRepository) HasUserLikedPost(userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetLikedPostIDs reports which of postIDs the user has liked, for feed
// enrichment in a single query.
func (r *PostgresLikeRepository) GetLikedPostIDs(userID uint, postIDs []uint) (map[uint]bool, error) {
	result := make(map[uint]bool)
	if len(postIDs) == 0 {
		return result, nil
	}
	var likes []models.Like
	if err := r.db.Where("user_id = ? AND post_id IN ?", userID, postIDs).Find(&likes).Error; err != nil {
		return nil, err
	}
	for _, l := range likes {
		result[l.PostID] = true
	}
	return result, nil
}
