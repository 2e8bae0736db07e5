package practitionerRepo

import "hometeam/models"

// PractitionerRepository defines methods for practitioner data access
// against the remote store.
type PractitionerRepository interface {
	// GetAll retrieves all practitioners ordered by id ascending.
	GetAll() ([]models.Practitioner, error)
	// Create inserts a new practitioner record.
	Create(p *models.Practitioner) error
	// Update replaces an existing practitioner record.
	Update(p *models.Practitioner) error
	// Delete removes a practitioner record by its ID.
	Delete(id int) error
	// SetField patches a single boolean field on a practitioner document.
	SetField(id int, field string, value bool) error
}
