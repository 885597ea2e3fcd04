package handlers

import (
	"net/http"

	"github.com/connectly-app/backend/internal/models"
	"github.com/connectly-app/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	postRepository     repositories.PostRepository
	userRepository     repositories.UserRepository
	followRepository   repositories.FollowRepository
	likeRepository     repositories.LikeRepository
	bookmarkRepository repositories.BookmarkRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	followRepo repositories.FollowRepository,
	likeRepo repositories.LikeRepository,
	bookmarkRepo repositories.BookmarkRepository,
) *FeedHandler {
	return &FeedHandler{
		postRepository:     postRepo,
		userRepository:     userRepo,
		followRepository:   followRepo,
		likeRepository:     likeRepo,
		bookmarkRepository: bookmarkRepo,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/posts/feed", h.GetFeed)
}

// EnrichedPost is a post with author info and user-specific flags
type EnrichedPost struct {
	models.Post
	Author  models.UserCompact `json:"author"`
	IsLiked bool               `json:"is_liked"`
	IsSaved bool               `json:"is_saved"`
}

// GetFeed returns posts authored by accounts the caller follows,
// newest first. ?include_self=true also mixes in the caller's own
// posts. The feed is recomputed per request, never cached.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	page, limit := pageParams(c, 10)

	authorIDs, err := h.followRepository.GetFollowingIDs(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if c.QueryParam("include_self") == "true" {
		authorIDs = append(authorIDs, currentUserID)
	}

	posts, total, err := h.postRepository.GetFeed(authorIDs, (page-1)*limit, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Collect author and post IDs for batch enrichment
	authorSet := make(map[uint]bool)
	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		authorSet[p.AuthorID] = true
		postIDs[i] = p.ID
	}

	userMap := make(map[uint]models.UserCompact)
	for id := range authorSet {
		user, err := h.userRepository.GetUserByID(id)
		if err == nil {
			userMap[id] = user.ToCompact()
		}
	}

	likedMap, err := h.likeRepository.GetLikedPostIDs(currentUserID, postIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	savedMap, err := h.bookmarkRepository.GetBookmarkedPostIDs(currentUserID, postIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	enriched := make([]EnrichedPost, len(posts))
	for i, p := range posts {
		enriched[i] = EnrichedPost{
			Post:    p,
			Author:  userMap[p.AuthorID],
			IsLiked: likedMap[p.ID],
			IsSaved: savedMap[p.ID],
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"posts": enriched},
		"meta":    paginationMeta(page, limit, total),
	})
}
