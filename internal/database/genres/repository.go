// Package genres provides database operations for genre records.
//
// Name uniqueness is enforced here at the application level, not by a
// storage constraint: create flows look up the submitted name
// case-insensitively before inserting.
package genres

import (
	"gorm.io/gorm"

	"github.com/openshelf/catalog/internal/database"
	"github.com/openshelf/catalog/internal/entities"
)

// Repository handles all genre database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new genres repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// All returns every genre sorted by name.
func (r *Repository) All() ([]entities.Genre, error) {
	var genres []entities.Genre
	err := r.db.Order("name").Find(&genres).Error
	return genres, err
}

// ByID retrieves a single genre.
func (r *Repository) ByID(id uint) (*entities.Genre, error) {
	var genre entities.Genre
	if err := r.db.First(&genre, id).Error; err != nil {
		return nil, database.AsNotFound(err)
	}
	return &genre, nil
}

// ByIDs retrieves the genres for a set of IDs. Unknown IDs are simply
// absent from the result.
func (r *Repository) ByIDs(ids []uint) ([]entities.Genre, error) {
	if len(ids) == 0 {
		return []entities.Genre{}, nil
	}
	var genres []entities.Genre
	err := r.db.Where("id IN ?", ids).Find(&genres).Error
	return genres, err
}

// ByNameFold finds a genre whose name matches case-insensitively.
func (r *Repository) ByNameFold(name string) (*entities.Genre, error) {
	var genre entities.Genre
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&genre).Error
	if err != nil {
		return nil, database.AsNotFound(err)
	}
	return &genre, nil
}

// ByNameExact finds a genre with the exact (case-sensitive) name,
// excluding the given ID. Used by the update duplicate check.
func (r *Repository) ByNameExact(name string, excludeID uint) (*entities.Genre, error) {
	var genre entities.Genre
	err := r.db.Where("name = ? AND id <> ?", name, excludeID).First(&genre).Error
	if err != nil {
		return nil, database.AsNotFound(err)
	}
	return &genre, nil
}

// Create inserts a new genre and writes the assigned ID back.
func (r *Repository) Create(genre *entities.Genre) error {
	return r.db.Create(genre).Error
}

// Update replaces the genre's name at its preserved ID.
func (r *Repository) Update(genre *entities.Genre) error {
	result := r.db.Model(&entities.Genre{}).Where("id = ?", genre.ID).
		Update("name", genre.Name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// Delete removes the genre. Deleting an absent genre is not an error.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Genre{}, id).Error
}

// Count returns the total number of genres.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Genre{}).Count(&count).Error
	return count, err
}
