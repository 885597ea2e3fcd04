package models

import "time"

// Like records that a user liked a post. At most one row per
// (user, post) pair, guaranteed by the composite unique index. Rows are
// hard-deleted on unlike so a later re-like recreates the pair cleanly.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_like_user_post"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_like_user_post"`
	CreatedAt time.Time `json:"created_at"`
}
