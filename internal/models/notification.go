package models

import "time"

// Notification verbs. The ledger stores the display phrase directly, so
// clients can render entries without a mapping table.
const (
	VerbFollowed  = "followed you"
	VerbLiked     = "liked your post"
	VerbCommented = "commented on your post"
)

// Target types for the polymorphic target reference.
const (
	TargetUser = "user"
	TargetPost = "post"
)

// Notification is one append-only ledger entry: actor did verb to
// recipient, about target (TargetType, TargetID). Entries are only ever
// created as a side effect of follow/like/comment; clients may mark
// them read but never create or delete them.
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	RecipientID uint      `json:"recipient_id" gorm:"index"`
	ActorID     uint      `json:"actor_id" gorm:"index"`
	Verb        string    `json:"verb" gorm:"size:50"`
	TargetType  string    `json:"target_type" gorm:"size:20"`
	TargetID    uint      `json:"target_id"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
