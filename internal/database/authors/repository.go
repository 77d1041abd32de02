// Package authors provides database operations for author records.
package authors

import (
	"gorm.io/gorm"

	"github.com/openshelf/catalog/internal/database"
	"github.com/openshelf/catalog/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// All returns every author sorted by family name.
func (r *Repository) All() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Order("family_name").Find(&authors).Error
	return authors, err
}

// ByID retrieves a single author.
func (r *Repository) ByID(id uint) (*entities.Author, error) {
	var author entities.Author
	if err := r.db.First(&author, id).Error; err != nil {
		return nil, database.AsNotFound(err)
	}
	return &author, nil
}

// Create inserts a new author and writes the assigned ID back.
func (r *Repository) Create(author *entities.Author) error {
	return r.db.Create(author).Error
}

// Delete removes the author. Deleting an absent author is not an error.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Author{}, id).Error
}

// Count returns the total number of authors.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Author{}).Count(&count).Error
	return count, err
}
