package catalog

import "hometeam/models"

// WriteResult reports which tier of the two-step write saga persisted a
// mutation. The in-memory collection is always updated regardless, so the UI
// never silently diverges from what the caller just did; Warning is set when
// the remote attempt failed and only the local tier holds the change.
type WriteResult struct {
	Remote  bool   `json:"remote"`
	Warning string `json:"warning,omitempty"`
}

// Service owns the process-wide practitioner and category collections and
// their load/mutate/persist cycle. Mutating operations take an authed flag:
// remote writes are only attempted for authenticated callers.
type Service interface {
	// Load populates the in-memory collections: remote store first, then the
	// local cache, then the seeded defaults.
	Load()

	Practitioners() []models.Practitioner
	GetPractitioner(id int) (models.Practitioner, bool)
	CreatePractitioner(p models.Practitioner, authed bool) (models.Practitioner, WriteResult, error)
	UpdatePractitioner(id int, p models.Practitioner, authed bool) (models.Practitioner, WriteResult, error)
	DeletePractitioner(id int, authed bool) (WriteResult, error)
	ToggleField(id int, field string, authed bool) (models.Practitioner, WriteResult, error)

	Categories() []models.Category
	CreateCategory(name, icon string, authed bool) (models.Category, WriteResult, error)
	EditCategory(id int, name, icon string, authed bool) (models.Category, WriteResult, error)
	DeleteCategory(id int, authed bool) (WriteResult, error)
	MoveCategory(id int, direction string, authed bool) (WriteResult, error)
	CategoryPractitionerCount(name string) int
}
