package repositories

import (
	"github.com/connectly-app/backend/internal/models"
	"gorm.io/gorm"
)

// Ordering values accepted by post listings. Anything else falls back
// to newest-first.
var postOrderings = map[string]string{
	"created_at":  "created_at ASC",
	"-created_at": "created_at DESC",
	"updated_at":  "updated_at ASC",
	"-updated_at": "updated_at DESC",
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetPosts(search, ordering string, offset, limit int) ([]models.Post, int64, error)
	GetFeed(authorIDs []uint, offset, limit int) ([]models.Post, int64, error)
	UpdatePost(post *models.Post) error
	DeletePost(id uint) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// annotated selects posts with likes_count computed from the likes
// table, so the count is always current and never stored.
func (r *PostgresPostRepository) annotated() *gorm.DB {
	return r.db.Model(&models.Post{}).
		Select("posts.*, (SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS likes_count")
}

func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.annotated().Where("posts.id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPosts lists posts with optional title/content search and ordering.
func (r *PostgresPostRepository) GetPosts(search, ordering string, offset, limit int) ([]models.Post, int64, error) {
	pattern := "%" + search + "%"

	countQ := r.db.Model(&models.Post{})
	listQ := r.annotated()
	if search != "" {
		filter := "LOWER(title) LIKE LOWER(?) OR LOWER(content) LIKE LOWER(?)"
		countQ = countQ.Where(filter, pattern, pattern)
		listQ = listQ.Where(filter, pattern, pattern)
	}

	var total int64
	if err := countQ.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := postOrderings[ordering]
	if !ok {
		order = "created_at DESC"
	}

	var posts []models.Post
	err := listQ.Order(order).Offset(offset).Limit(limit).Find(&posts).Error
	return posts, total, err
}

// GetFeed lists posts whose author is in authorIDs, newest first.
func (r *PostgresPostRepository) GetFeed(authorIDs []uint, offset, limit int) ([]models.Post, int64, error) {
	if len(authorIDs) == 0 {
		return []models.Post{}, 0, nil
	}

	var total int64
	if err := r.db.Model(&models.Post{}).Where("author_id IN ?", authorIDs).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := r.annotated().
		Where("author_id IN ?", authorIDs).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return r.db.Save(post).Error
}

// DeletePost removes the post and its dependent rows. Likes, comments
// and bookmarks hang off the post, so they go in the same transaction.
func (r *PostgresPostRepository) DeletePost(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Bookmark{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}
