// Package instances provides database operations for book copies.
package instances

import (
	"gorm.io/gorm"

	"github.com/openshelf/catalog/internal/database"
	"github.com/openshelf/catalog/internal/entities"
)

// Repository handles all book-instance database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new instances repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// All returns every copy with its book resolved.
func (r *Repository) All() ([]entities.BookInstance, error) {
	var instances []entities.BookInstance
	err := r.db.Preload("Book").Find(&instances).Error
	return instances, err
}

// ByID retrieves a single copy with its book resolved.
func (r *Repository) ByID(id uint) (*entities.BookInstance, error) {
	var instance entities.BookInstance
	if err := r.db.Preload("Book").First(&instance, id).Error; err != nil {
		return nil, database.AsNotFound(err)
	}
	return &instance, nil
}

// ByBook returns every copy of one book.
func (r *Repository) ByBook(bookID uint) ([]entities.BookInstance, error) {
	var instances []entities.BookInstance
	err := r.db.Where("book_id = ?", bookID).Find(&instances).Error
	return instances, err
}

// Create inserts a new copy and writes the assigned ID back.
func (r *Repository) Create(instance *entities.BookInstance) error {
	return r.db.Create(instance).Error
}

// Update replaces the copy's mutable fields at its preserved ID.
func (r *Repository) Update(instance *entities.BookInstance) error {
	result := r.db.Model(&entities.BookInstance{}).Where("id = ?", instance.ID).
		Updates(map[string]any{
			"book_id":  instance.BookID,
			"imprint":  instance.Imprint,
			"status":   instance.Status,
			"due_back": instance.DueBack,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// Delete removes the copy. Deleting an absent copy is not an error.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.BookInstance{}, id).Error
}

// Count returns the total number of copies.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.BookInstance{}).Count(&count).Error
	return count, err
}

// CountAvailable returns how many copies are currently available.
func (r *Repository) CountAvailable() (int64, error) {
	var count int64
	err := r.db.Model(&entities.BookInstance{}).
		Where("status = ?", entities.StatusAvailable).
		Count(&count).Error
	return count, err
}
