// Package books provides database operations for book records,
// including the many-to-many genre association.
package books

import (
	"gorm.io/gorm"

	"github.com/openshelf/catalog/internal/database"
	"github.com/openshelf/catalog/internal/entities"
)

// Summary is the projection used where a listing only needs to link to
// a book (author and genre detail views).
type Summary struct {
	ID      uint
	Title   string
	Summary string
}

// URL is the canonical detail path for the projected book.
func (s Summary) URL() string { return entities.Book{ID: s.ID}.URL() }

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// All returns every book sorted by title, with its author resolved.
func (r *Repository) All() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Author").Order("title").Find(&books).Error
	return books, err
}

// ByID retrieves a single book with its author and genres resolved.
func (r *Repository) ByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").Preload("Genres", func(db *gorm.DB) *gorm.DB {
		return db.Order("genres.name")
	}).First(&book, id).Error
	if err != nil {
		return nil, database.AsNotFound(err)
	}
	return &book, nil
}

// ByAuthor returns title/summary projections of the author's books.
func (r *Repository) ByAuthor(authorID uint) ([]Summary, error) {
	var books []Summary
	err := r.db.Model(&entities.Book{}).
		Select("id", "title", "summary").
		Where("author_id = ?", authorID).
		Order("title").
		Scan(&books).Error
	return books, err
}

// ByGenre returns title/summary projections of the books carrying the genre.
func (r *Repository) ByGenre(genreID uint) ([]Summary, error) {
	var books []Summary
	err := r.db.Model(&entities.Book{}).
		Select("books.id", "books.title", "books.summary").
		Joins("JOIN book_genres ON book_genres.book_id = books.id").
		Where("book_genres.genre_id = ?", genreID).
		Order("books.title").
		Scan(&books).Error
	return books, err
}

// Create inserts a new book together with its genre association.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Create(book).Error
}

// Update replaces the book's mutable fields at its preserved ID and
// reconciles the genre association to exactly book.Genres.
func (r *Repository) Update(book *entities.Book) error {
	var existing entities.Book
	if err := r.db.First(&existing, book.ID).Error; err != nil {
		return database.AsNotFound(err)
	}

	err := r.db.Model(&existing).Updates(map[string]any{
		"title":     book.Title,
		"summary":   book.Summary,
		"isbn":      book.ISBN,
		"author_id": book.AuthorID,
	}).Error
	if err != nil {
		return err
	}
	return r.db.Model(&existing).Association("Genres").Replace(book.Genres)
}

// Delete removes the book and clears its genre association. Deleting an
// absent book is not an error.
func (r *Repository) Delete(id uint) error {
	book := entities.Book{ID: id}
	if err := r.db.Model(&book).Association("Genres").Clear(); err != nil {
		return err
	}
	return r.db.Delete(&book).Error
}

// Count returns the total number of books.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Count(&count).Error
	return count, err
}
