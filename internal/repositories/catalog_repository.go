package repositories

import (
	"github.com/connectly-app/backend/internal/models"
	"gorm.io/gorm"
)

// CatalogRepository defines data operations for the library demo:
// authors, books, libraries and librarians.
type CatalogRepository interface {
	CreateAuthor(author *models.Author) error
	GetAuthors() ([]models.Author, error)
	GetAuthorByID(id uint) (*models.Author, error)

	CreateBook(book *models.Book) error
	GetBooks() ([]models.Book, error)
	GetBookByID(id uint) (*models.Book, error)
	UpdateBook(book *models.Book) error
	DeleteBook(id uint) error

	GetLibraries() ([]models.Library, error)
	GetLibraryByID(id uint) (*models.Library, error)
}

// PostgresCatalogRepository implements CatalogRepository
type PostgresCatalogRepository struct {
	db *gorm.DB
}

func NewPostgresCatalogRepository(db *gorm.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

func (r *PostgresCatalogRepository) CreateAuthor(author *models.Author) error {
	return r.db.Create(author).Error
}

// GetAuthors lists authors alphabetically.
func (r *PostgresCatalogRepository) GetAuthors() ([]models.Author, error) {
	var authors []models.Author
	err := r.db.Order("name").Find(&authors).Error
	return authors, err
}

// GetAuthorByID returns the author with their books nested.
func (r *PostgresCatalogRepository) GetAuthorByID(id uint) (*models.Author, error) {
	var author models.Author
	if err := r.db.Preload("Books").First(&author, id).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *PostgresCatalogRepository) CreateBook(book *models.Book) error {
	return r.db.Create(book).Error
}

// GetBooks lists books by title.
func (r *PostgresCatalogRepository) GetBooks() ([]models.Book, error) {
	var books []models.Book
	err := r.db.Order("title").Find(&books).Error
	return books, err
}

func (r *PostgresCatalogRepository) GetBookByID(id uint) (*models.Book, error) {
	var book models.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *PostgresCatalogRepository) UpdateBook(book *models.Book) error {
	return r.db.Save(book).Error
}

func (r *PostgresCatalogRepository) DeleteBook(id uint) error {
	res := r.db.Delete(&models.Book{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PostgresCatalogRepository) GetLibraries() ([]models.Library, error) {
	var libraries []models.Library
	err := r.db.Order("name").Find(&libraries).Error
	return libraries, err
}

// GetLibraryByID returns the library with its books and librarian.
func (r *PostgresCatalogRepository) GetLibraryByID(id uint) (*models.Library, error) {
	var library models.Library
	if err := r.db.Preload("Books").Preload("Librarian").First(&library, id).Error; err != nil {
		return nil, err
	}
	return &library, nil
}
