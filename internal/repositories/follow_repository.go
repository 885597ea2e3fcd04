package repositories

import (
	"github.com/connectly-app/backend/internal/models"
	"github.com/connectly-app/backend/internal/notifications"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for social-graph operations.
// Follow and Unfollow are idempotent: repeated calls with the same pair
// leave the graph unchanged and report whether anything happened.
type FollowRepository interface {
	Follow(followerID, followeeID uint) (created bool, err error)
	Unfollow(followerID, followeeID uint) (removed bool, err error)
	IsFollowing(followerID, followeeID uint) (bool, error)
	GetFollowers(userID uint) ([]models.User, error)
	GetFollowing(userID uint) ([]models.User, error)
	GetFollowingIDs(userID uint) ([]uint, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db       *gorm.DB
	notifier *notifications.Notifier
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB, notifier *notifications.Notifier) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db, notifier: notifier}
}

// Follow adds the directed edge follower -> followee. The edge and its
// "followed you" notification are written in one transaction; an
// existing edge short-circuits with no writes at all.
func (r *PostgresFollowRepository) Follow(followerID, followeeID uint) (bool, error) {
	created := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var follow models.Follow
		res := tx.Where(models.Follow{FollowerID: followerID, FolloweeID: followeeID}).FirstOrCreate(&follow)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		created = true
		return r.notifier.Append(tx, &models.Notification{
			RecipientID: followeeID,
			ActorID:     followerID,
			Verb:        models.VerbFollowed,
			TargetType:  models.TargetUser,
			TargetID:    followerID,
		})
	})
	return created, err
}

// Unfollow removes the edge if present. A missing edge is not an error;
// the notification generated by the original follow is never retracted.
func (r *PostgresFollowRepository) Unfollow(followerID, followeeID uint) (bool, error) {
	res := r.db.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).Delete(&models.Follow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PostgresFollowRepository) IsFollowing(followerID, followeeID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ? AND followee_id = ?", followerID, followeeID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresFollowRepository) GetFollowers(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("follower_id").Where("followee_id = ?", userID),
	).Find(&users).Error
	return users, err
}

func (r *PostgresFollowRepository) GetFollowing(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("followee_id").Where("follower_id = ?", userID),
	).Find(&users).Error
	return users, err
}

func (r *PostgresFollowRepository) GetFollowingIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Pluck("followee_id", &ids).Error
	return ids, err
}
