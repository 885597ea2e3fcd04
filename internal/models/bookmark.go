package models

import "time"

// Bookmark lets a user save a post for later. Same uniqueness rule as
// likes, but saving is private: no notification is generated.
type Bookmark struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_bookmark_user_post"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_bookmark_user_post"`
	CreatedAt time.Time `json:"created_at"`
}
