package models

import "time"

// Follow is one directed edge in the social graph: the follower follows
// the followee. The composite unique index makes duplicate edges
// impossible at the store level; the repository enforces idempotence
// above it.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_followee"`
	FolloweeID uint      `json:"followee_id" gorm:"index;uniqueIndex:idx_follower_followee"`
	CreatedAt  time.Time `json:"created_at"`
}
