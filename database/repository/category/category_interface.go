package categoryRepo

import "hometeam/models"

// CategoryRepository defines methods for category data access against the
// remote store. Category order is user-significant, so the whole ordered
// list is replaced on reorder.
type CategoryRepository interface {
	// GetAll retrieves all categories in display order.
	GetAll() ([]models.Category, error)
	// Create inserts a new category record.
	Create(cat *models.Category) error
	// Update replaces an existing category record.
	Update(cat *models.Category) error
	// Delete removes a category record by its ID.
	Delete(id int) error
	// ReplaceAll overwrites the stored list with the given ordered list.
	ReplaceAll(cats []models.Category) error
}
