package models

// Catalog demo models: authors, books, libraries and their librarians.
// Write access is gated by user role (member/librarian/admin).

type Author struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:200"`
	Books []Book `json:"books,omitempty" gorm:"foreignKey:AuthorID"`
}

type Book struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	Title           string `json:"title" gorm:"size:200"`
	PublicationYear int    `json:"publication_year"`
	AuthorID        uint   `json:"author_id" gorm:"index"`
}

type Library struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"size:200;uniqueIndex"`
	Books     []Book     `json:"books,omitempty" gorm:"many2many:library_books"`
	Librarian *Librarian `json:"librarian,omitempty" gorm:"foreignKey:LibraryID"`
}

// Librarian staffs exactly one library.
type Librarian struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"size:200"`
	LibraryID uint   `json:"library_id" gorm:"uniqueIndex"`
}

// CreateAuthorRequest defines the request body for creating an author
type CreateAuthorRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// CreateBookRequest defines the request body for creating a book.
// PublicationYear is checked against wall-clock time by the pastyear rule.
type CreateBookRequest struct {
	Title           string `json:"title" validate:"required,min=1,max=200"`
	PublicationYear int    `json:"publication_year" validate:"required,pastyear"`
	AuthorID        uint   `json:"author_id" validate:"required"`
}

// UpdateBookRequest defines the request body for updating a book
type UpdateBookRequest struct {
	Title           string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	PublicationYear int    `json:"publication_year,omitempty" validate:"omitempty,pastyear"`
	AuthorID        uint   `json:"author_id,omitempty"`
}
