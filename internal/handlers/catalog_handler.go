package handlers

import (
	"net/http"
	"strconv"

	"github.com/connectly-app/backend/internal/models"
	"github.com/connectly-app/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CatalogHandler serves the library demo: authors, books and libraries.
// Reads are public; writes are gated by role middleware at route
// registration.
type CatalogHandler struct {
	catalogRepository repositories.CatalogRepository
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogRepo repositories.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalogRepository: catalogRepo}
}

// RegisterPublicCatalogRoutes registers read-only catalog routes
func (h *CatalogHandler) RegisterPublicCatalogRoutes(g *echo.Group) {
	g.GET("/authors", h.GetAuthors)
	g.GET("/authors/:id", h.GetAuthor)
	g.GET("/books", h.GetBooks)
	g.GET("/books/:id", h.GetBook)
	g.GET("/libraries", h.GetLibraries)
	g.GET("/libraries/:id", h.GetLibrary)
}

// RegisterLibrarianRoutes registers routes for librarians and admins
func (h *CatalogHandler) RegisterLibrarianRoutes(g *echo.Group) {
	g.POST("/authors", h.CreateAuthor)
	g.POST("/books", h.CreateBook)
	g.PUT("/books/:id", h.UpdateBook)
}

// RegisterAdminRoutes registers admin-only routes
func (h *CatalogHandler) RegisterAdminRoutes(g *echo.Group) {
	g.DELETE("/books/:id", h.DeleteBook)
}

// GetAuthors lists authors alphabetically
func (h *CatalogHandler) GetAuthors(c echo.Context) error {
	authors, err := h.catalogRepository.GetAuthors()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, authors)
}

// GetAuthor retrieves an author with their books nested
func (h *CatalogHandler) GetAuthor(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid author ID")
	}

	author, err := h.catalogRepository.GetAuthorByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Author not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, author)
}

// CreateAuthor creates a new author
func (h *CatalogHandler) CreateAuthor(c echo.Context) error {
	var req models.CreateAuthorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	author := &models.Author{Name: req.Name}
	if err := h.catalogRepository.CreateAuthor(author); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, author)
}

// GetBooks lists books by title
func (h *CatalogHandler) GetBooks(c echo.Context) error {
	books, err := h.catalogRepository.GetBooks()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, books)
}

// GetBook retrieves a single book
func (h *CatalogHandler) GetBook(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid book ID")
	}

	book, err := h.catalogRepository.GetBookByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Book not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, book)
}

// CreateBook creates a new book. The pastyear validation rule rejects
// publication years beyond the current calendar year.
func (h *CatalogHandler) CreateBook(c echo.Context) error {
	var req models.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.catalogRepository.GetAuthorByID(req.AuthorID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusBadRequest, "Unknown author")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	book := &models.Book{
		Title:           req.Title,
		PublicationYear: req.PublicationYear,
		AuthorID:        req.AuthorID,
	}
	if err := h.catalogRepository.CreateBook(book); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, book)
}

// UpdateBook updates a book's fields
func (h *CatalogHandler) UpdateBook(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid book ID")
	}

	var req models.UpdateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	book, err := h.catalogRepository.GetBookByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Book not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if req.Title != "" {
		book.Title = req.Title
	}
	if req.PublicationYear != 0 {
		book.PublicationYear = req.PublicationYear
	}
	if req.AuthorID != 0 {
		book.AuthorID = req.AuthorID
	}

	if err := h.catalogRepository.UpdateBook(book); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, book)
}

// DeleteBook deletes a book
func (h *CatalogHandler) DeleteBook(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid book ID")
	}

	if err := h.catalogRepository.DeleteBook(uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Book not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// GetLibraries lists libraries
func (h *CatalogHandler) GetLibraries(c echo.Context) error {
	libraries, err := h.catalogRepository.GetLibraries()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, libraries)
}

// GetLibrary retrieves a library with its books and librarian
func (h *CatalogHandler) GetLibrary(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid library ID")
	}

	library, err := h.catalogRepository.GetLibraryByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Library not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, library)
}
