package repositories

import (
	"github.com/connectly-app/backend/internal/models"
	"github.com/connectly-app/backend/internal/notifications"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment, postAuthorID uint) error
	GetCommentByID(id uint) (*models.Comment, error)
	GetCommentsByPostID(postID uint) ([]models.Comment, error)
	UpdateComment(comment *models.Comment) error
	DeleteComment(id uint) error
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db       *gorm.DB
	notifier *notifications.Notifier
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB, notifier *notifications.Notifier) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db, notifier: notifier}
}

// CreateComment writes the comment and the post author's notification
// in one transaction. Commenting on your own post notifies nobody.
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment, postAuthorID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return r.notifier.Append(tx, &models.Notification{
			RecipientID: postAuthorID,
			ActorID:     comment.AuthorID,
			Verb:        models.VerbCommented,
			TargetType:  models.TargetPost,
			TargetID:    comment.PostID,
		})
	})
}

func (r *PostgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByPostID returns a post's comments in insertion order.
func (r *PostgresCommentRepository) GetCommentsByPostID(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("post_id = ?", postID).Order("id").Find(&comments).Error
	return comments, err
}

func (r *PostgresCommentRepository) UpdateComment(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

func (r *PostgresCommentRepository) DeleteComment(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}
