// File: services/catalog/service.go
package catalog

import (
	"context"
	"sync"
	"time"

	categoryRepo "hometeam/database/repository/category"
	practitionerRepo "hometeam/database/repository/practitioner"
	"hometeam/models"

	"go.uber.org/zap"
)

// DefaultCatalogService implements Service. The repositories are nil when no
// remote connection is configured; the service then runs cache-backed. All
// reads and writes go through the in-memory collections under mu.
type DefaultCatalogService struct {
	PractitionerRepo practitionerRepo.PractitionerRepository
	CategoryRepo     categoryRepo.CategoryRepository
	Cache            Cache

	mu            sync.RWMutex
	practitioners []models.Practitioner
	categories    []models.Category
}

func (s *DefaultCatalogService) remoteConnected() bool {
	return s.PractitionerRepo != nil && s.CategoryRepo != nil
}

// Load populates the in-memory collections: remote first (ordered by id
// ascending), then the local cache, then seeded defaults.
func (s *DefaultCatalogService) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.practitioners = s.loadPractitioners()
	s.categories = s.loadCategories()
}

func (s *DefaultCatalogService) loadPractitioners() []models.Practitioner {
	if s.PractitionerRepo != nil {
		data, err := s.PractitionerRepo.GetAll()
		if err != nil {
			zap.L().Warn("remote practitioner load failed, falling back to cache", zap.Error(err))
		} else if len(data) > 0 {
			return data
		}
	}
	if s.Cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		var cached []models.Practitioner
		found, err := s.Cache.GetJSON(ctx, practitionersCacheKey, &cached)
		if err != nil {
			zap.L().Warn("practitioner cache load failed", zap.Error(err))
		} else if found && len(cached) > 0 {
			return cached
		}
	}
	return DefaultPractitioners()
}

func (s *DefaultCatalogService) loadCategories() []models.Category {
	if s.CategoryRepo != nil {
		data, err := s.CategoryRepo.GetAll()
		if err != nil {
			zap.L().Warn("remote category load failed, falling back to cache", zap.Error(err))
		} else if len(data) > 0 {
			return data
		}
	}
	if s.Cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		var cached []models.Category
		found, err := s.Cache.GetJSON(ctx, categoriesCacheKey, &cached)
		if err != nil {
			zap.L().Warn("category cache load failed", zap.Error(err))
		} else if found && len(cached) > 0 {
			return cached
		}
	}
	return DefaultCategories()
}

// runSaga is the two-step optimistic write: attempt the remote write when
// connected and authenticated, and fully complete it (success or failure)
// before the caller performs the local mutation. The returned WriteResult
// tells the caller which tier holds the change.
func (s *DefaultCatalogService) runSaga(authed bool, remoteOp func() error, warning string) WriteResult {
	if !s.remoteConnected() || !authed {
		return WriteResult{}
	}
	if err := remoteOp(); err != nil {
		zap.L().Warn("remote write failed, saving locally", zap.Error(err))
		return WriteResult{Warning: warning}
	}
	return WriteResult{Remote: true}
}

// saveLocal mirrors the in-memory collections into the cache tier. Cache
// failures are non-fatal; the in-memory state already reflects the change.
func (s *DefaultCatalogService) savePractitionersLocal() {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.Cache.SetJSON(ctx, practitionersCacheKey, s.practitioners); err != nil {
		zap.L().Warn("failed to save practitioners to cache", zap.Error(err))
	}
}

func (s *DefaultCatalogService) saveCategoriesLocal() {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.Cache.SetJSON(ctx, categoriesCacheKey, s.categories); err != nil {
		zap.L().Warn("failed to save categories to cache", zap.Error(err))
	}
}
