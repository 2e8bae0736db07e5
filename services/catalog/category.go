// File: services/catalog/category.go
package catalog

import (
	"strings"

	"hometeam/models"
)

const categoryWriteWarning = "Failed to save to database. Saving locally."

// Categories returns a copy of the ordered category list.
func (s *DefaultCatalogService) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// CategoryPractitionerCount returns how many practitioners reference the
// category name in their specialties.
func (s *DefaultCatalogService) CategoryPractitionerCount(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countReferences(name)
}

func (s *DefaultCatalogService) countReferences(name string) int {
	count := 0
	for _, p := range s.practitioners {
		for _, spec := range p.Specialties {
			if spec == name {
				count++
				break
			}
		}
	}
	return count
}

func (s *DefaultCatalogService) nextCategoryID() int {
	max := 0
	for _, c := range s.categories {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

// CreateCategory appends a new category. Names are unique case-insensitively.
func (s *DefaultCatalogService) CreateCategory(name, icon string, authed bool) (models.Category, WriteResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, WriteResult{}, ErrCategoryNameEmpty
	}
	if icon == "" {
		icon = "📋"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findCategoryByName(name, 0) != nil {
		return models.Category{}, WriteResult{}, ErrDuplicateCategory
	}

	cat := models.Category{ID: s.nextCategoryID(), Name: name, Icon: icon}
	result := s.runSaga(authed, func() error {
		return s.CategoryRepo.Create(&cat)
	}, categoryWriteWarning)

	s.categories = append(s.categories, cat)
	s.saveCategoriesLocal()
	return cat, result, nil
}

// EditCategory renames a category and cascades the rename into every
// practitioner's specialty list in a single pass before persisting.
func (s *DefaultCatalogService) EditCategory(id int, name, icon string, authed bool) (models.Category, WriteResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, WriteResult{}, ErrCategoryNameEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.categoryIndex(id)
	if idx < 0 {
		return models.Category{}, WriteResult{}, ErrCategoryNotFound
	}
	if s.findCategoryByName(name, id) != nil {
		return models.Category{}, WriteResult{}, ErrDuplicateCategory
	}

	oldName := s.categories[idx].Name
	cat := s.categories[idx]
	cat.Name = name
	if icon != "" {
		cat.Icon = icon
	}

	// Cascade before persisting so the rename and its references move as one
	// atomic pass over the collection.
	var touched []models.Practitioner
	if oldName != name {
		for i := range s.practitioners {
			for j, spec := range s.practitioners[i].Specialties {
				if spec == oldName {
					s.practitioners[i].Specialties[j] = name
					touched = append(touched, s.practitioners[i])
				}
			}
		}
	}

	result := s.runSaga(authed, func() error {
		if err := s.CategoryRepo.Update(&cat); err != nil {
			return err
		}
		for i := range touched {
			if err := s.PractitionerRepo.Update(&touched[i]); err != nil {
				return err
			}
		}
		return nil
	}, categoryWriteWarning)

	s.categories[idx] = cat
	s.saveCategoriesLocal()
	if len(touched) > 0 {
		s.savePractitionersLocal()
	}
	return cat, result, nil
}

// DeleteCategory removes a category unless any practitioner references it.
func (s *DefaultCatalogService) DeleteCategory(id int, authed bool) (WriteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.categoryIndex(id)
	if idx < 0 {
		return WriteResult{}, ErrCategoryNotFound
	}

	name := s.categories[idx].Name
	if count := s.countReferences(name); count > 0 {
		return WriteResult{}, &CategoryInUseError{Name: name, Count: count}
	}

	result := s.runSaga(authed, func() error {
		return s.CategoryRepo.Delete(id)
	}, categoryWriteWarning)

	s.categories = append(s.categories[:idx], s.categories[idx+1:]...)
	s.saveCategoriesLocal()
	return result, nil
}

// MoveCategory shifts a category one position up or down in display order.
func (s *DefaultCatalogService) MoveCategory(id int, direction string, authed bool) (WriteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.categoryIndex(id)
	if idx < 0 {
		return WriteResult{}, ErrCategoryNotFound
	}

	switch direction {
	case "up":
		if idx == 0 {
			return WriteResult{}, nil
		}
		s.categories[idx-1], s.categories[idx] = s.categories[idx], s.categories[idx-1]
	case "down":
		if idx >= len(s.categories)-1 {
			return WriteResult{}, nil
		}
		s.categories[idx], s.categories[idx+1] = s.categories[idx+1], s.categories[idx]
	default:
		return WriteResult{}, ErrBadMoveDirection
	}

	ordered := make([]models.Category, len(s.categories))
	copy(ordered, s.categories)
	result := s.runSaga(authed, func() error {
		return s.CategoryRepo.ReplaceAll(ordered)
	}, categoryWriteWarning)

	s.saveCategoriesLocal()
	return result, nil
}

// findCategoryByName does a case-insensitive lookup, skipping excludeID so a
// rename can keep its own name. Caller holds mu.
func (s *DefaultCatalogService) findCategoryByName(name string, excludeID int) *models.Category {
	for i, c := range s.categories {
		if c.ID != excludeID && strings.EqualFold(c.Name, name) {
			return &s.categories[i]
		}
	}
	return nil
}

func (s *DefaultCatalogService) categoryIndex(id int) int {
	for i, c := range s.categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}
