package repositories

import (
	"github.com/connectly-app/backend/internal/models"
	"gorm.io/gorm"
)

// BookmarkRepository defines the interface for saved-post operations.
// Saving is private to the user: no notification, same idempotence rule
// as likes.
type BookmarkRepository interface {
	Save(userID, postID uint) (created bool, err error)
	Unsave(userID, postID uint) (removed bool, err error)
	GetBookmarkedPosts(userID uint) ([]models.Post, error)
	GetBookmarkedPostIDs(userID uint, postIDs []uint) (map[uint]bool, error)
}

// PostgresBookmarkRepository implements BookmarkRepository
type PostgresBookmarkRepository struct {
	db *gorm.DB
}

func NewPostgresBookmarkRepository(db *gorm.DB) *PostgresBookmarkRepository {
	return &PostgresBookmarkRepository{db: db}
}

func (r *PostgresBookmarkRepository) Save(userID, postID uint) (bool, error) {
	var bookmark models.Bookmark
	res := r.db.Where(models.Bookmark{UserID: userID, PostID: postID}).FirstOrCreate(&bookmark)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PostgresBookmarkRepository) Unsave(userID, postID uint) (bool, error) {
	res := r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Bookmark{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetBookmarkedPosts returns the user's saved posts, most recently
// saved first, with the usual likes_count annotation.
func (r *PostgresBookmarkRepository) GetBookmarkedPosts(userID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Model(&models.Post{}).
		Select("posts.*, (SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS likes_count").
		Joins("JOIN bookmarks ON bookmarks.post_id = posts.id").
		Where("bookmarks.user_id = ?", userID).
		Order("bookmarks.created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *PostgresBookmarkRepository) GetBookmarkedPostIDs(userID uint, postIDs []uint) (map[uint]bool, error) {
	result := make(map[uint]bool)
	if len(postIDs) == 0 {
		return result, nil
	}
	var bookmarks []models.Bookmark
	if err := r.db.Where("user_id = ? AND post_id IN ?", userID, postIDs).Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	for _, b := range bookmarks {
		result[b.PostID] = true
	}
	return result, nil
}
