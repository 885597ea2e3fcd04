package models

import "time"

// Post is an authored piece of content. AuthorID is set from the caller
// identity at creation and never changes afterwards. LikesCount is not a
// column: list queries annotate it with a subquery over likes.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AuthorID  uint      `json:"author_id" gorm:"index"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`

	LikesCount int64 `json:"likes_count" gorm:"->;-:migration"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required,min=1"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Title   string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content string `json:"content,omitempty" validate:"omitempty,min=1"`
}
