// File: services/catalog/practitioner.go
package catalog

import "hometeam/models"

const practitionerWriteWarning = "Failed to save to database. Saving locally."

// Practitioners returns a copy of the in-memory collection.
func (s *DefaultCatalogService) Practitioners() []models.Practitioner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Practitioner, len(s.practitioners))
	copy(out, s.practitioners)
	return out
}

func (s *DefaultCatalogService) GetPractitioner(id int) (models.Practitioner, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.practitioners {
		if p.ID == id {
			return p, true
		}
	}
	return models.Practitioner{}, false
}

// nextPractitionerID assigns the next sequential id. This is the local
// fallback; when the remote store is reachable the same id is written
// through, so local and remote agree. Caller holds mu.
func (s *DefaultCatalogService) nextPractitionerID() int {
	max := 0
	for _, p := range s.practitioners {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

// CreatePractitioner assigns a new id, derives the starting price from the
// offerings and persists through the saga.
func (s *DefaultCatalogService) CreatePractitioner(p models.Practitioner, authed bool) (models.Practitioner, WriteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextPractitionerID()
	p.StartingPrice = p.MinOfferingPrice()

	result := s.runSaga(authed, func() error {
		return s.PractitionerRepo.Create(&p)
	}, practitionerWriteWarning)

	s.practitioners = append(s.practitioners, p)
	s.savePractitionersLocal()
	return p, result, nil
}

func (s *DefaultCatalogService) UpdatePractitioner(id int, updates models.Practitioner, authed bool) (models.Practitioner, WriteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.practitionerIndex(id)
	if idx < 0 {
		return models.Practitioner{}, WriteResult{}, ErrPractitionerNotFound
	}

	updates.ID = id // immutable after creation
	updates.StartingPrice = updates.MinOfferingPrice()

	result := s.runSaga(authed, func() error {
		return s.PractitionerRepo.Update(&updates)
	}, practitionerWriteWarning)

	s.practitioners[idx] = updates
	s.savePractitionersLocal()
	return updates, result, nil
}

func (s *DefaultCatalogService) DeletePractitioner(id int, authed bool) (WriteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.practitionerIndex(id)
	if idx < 0 {
		return WriteResult{}, ErrPractitionerNotFound
	}

	result := s.runSaga(authed, func() error {
		return s.PractitionerRepo.Delete(id)
	}, "Failed to delete from database. Removing locally.")

	s.practitioners = append(s.practitioners[:idx], s.practitioners[idx+1:]...)
	s.savePractitionersLocal()
	return result, nil
}

// ToggleField flips the featured or verified flag.
func (s *DefaultCatalogService) ToggleField(id int, field string, authed bool) (models.Practitioner, WriteResult, error) {
	if field != "featured" && field != "verified" {
		return models.Practitioner{}, WriteResult{}, ErrUnknownToggleField
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.practitionerIndex(id)
	if idx < 0 {
		return models.Practitioner{}, WriteResult{}, ErrPractitionerNotFound
	}

	var newValue bool
	if field == "featured" {
		newValue = !s.practitioners[idx].Featured
	} else {
		newValue = !s.practitioners[idx].Verified
	}

	result := s.runSaga(authed, func() error {
		return s.PractitionerRepo.SetField(id, field, newValue)
	}, practitionerWriteWarning)

	if field == "featured" {
		s.practitioners[idx].Featured = newValue
	} else {
		s.practitioners[idx].Verified = newValue
	}
	s.savePractitionersLocal()
	return s.practitioners[idx], result, nil
}

// practitionerIndex returns the index for an id, or -1. Caller holds mu.
func (s *DefaultCatalogService) practitionerIndex(id int) int {
	for i, p := range s.practitioners {
		if p.ID == id {
			return i
		}
	}
	return -1
}
