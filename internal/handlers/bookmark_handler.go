package handlers

import (
	"net/http"
	"strconv"

	"github.com/connectly-app/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// BookmarkHandler handles saved-post HTTP requests
type BookmarkHandler struct {
	bookmarkRepository repositories.BookmarkRepository
	postRepository     repositories.PostRepository
}

// NewBookmarkHandler creates a new BookmarkHandler
func NewBookmarkHandler(bookmarkRepo repositories.BookmarkRepository, postRepo repositories.PostRepository) *BookmarkHandler {
	return &BookmarkHandler{
		bookmarkRepository: bookmarkRepo,
		postRepository:     postRepo,
	}
}

// RegisterBookmarkRoutes registers bookmark routes
func (h *BookmarkHandler) RegisterBookmarkRoutes(g *echo.Group) {
	g.POST("/posts/:id/bookmark", h.SavePost)
	g.DELETE("/posts/:id/bookmark", h.UnsavePost)
	g.GET("/bookmarks", h.GetBookmarks)
}

// SavePost bookmarks a post for the caller; saving twice is a no-op.
func (h *BookmarkHandler) SavePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	post, err := h.postRepository.GetPostByID(uint(postID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	created, err := h.bookmarkRepository.Save(currentUserID, post.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if created {
		return c.JSON(http.StatusCreated, echo.Map{"detail": "Post saved"})
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "Already saved"})
}

// UnsavePost removes the caller's bookmark if present.
func (h *BookmarkHandler) UnsavePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	removed, err := h.bookmarkRepository.Unsave(currentUserID, uint(postID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if removed {
		return c.JSON(http.StatusOK, echo.Map{"detail": "Post unsaved"})
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "No bookmark to remove"})
}

// GetBookmarks lists the caller's saved posts
func (h *BookmarkHandler) GetBookmarks(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	posts, err := h.bookmarkRepository.GetBookmarkedPosts(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"posts": posts}})
}
