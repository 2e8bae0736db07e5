package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"hometeam/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePractitionerRepo is an in-memory stand-in for the Mongo repository.
// With fail set, every call errors, which is how the fallback paths are
// exercised.
type fakePractitionerRepo struct {
	data []models.Practitioner
	fail bool
}

var errRepoDown = errors.New("connection refused")

func (r *fakePractitionerRepo) GetAll() ([]models.Practitioner, error) {
	if r.fail {
		return nil, errRepoDown
	}
	return r.data, nil
}

func (r *fakePractitionerRepo) Create(p *models.Practitioner) error {
	if r.fail {
		return errRepoDown
	}
	r.data = append(r.data, *p)
	return nil
}

func (r *fakePractitionerRepo) Update(p *models.Practitioner) error {
	if r.fail {
		return errRepoDown
	}
	for i := range r.data {
		if r.data[i].ID == p.ID {
			r.data[i] = *p
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakePractitionerRepo) Delete(id int) error {
	if r.fail {
		return errRepoDown
	}
	for i := range r.data {
		if r.data[i].ID == id {
			r.data = append(r.data[:i], r.data[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakePractitionerRepo) SetField(id int, field string, value bool) error {
	if r.fail {
		return errRepoDown
	}
	return nil
}

type fakeCategoryRepo struct {
	data []models.Category
	fail bool
}

func (r *fakeCategoryRepo) GetAll() ([]models.Category, error) {
	if r.fail {
		return nil, errRepoDown
	}
	return r.data, nil
}

func (r *fakeCategoryRepo) Create(c *models.Category) error {
	if r.fail {
		return errRepoDown
	}
	r.data = append(r.data, *c)
	return nil
}

func (r *fakeCategoryRepo) Update(c *models.Category) error {
	if r.fail {
		return errRepoDown
	}
	for i := range r.data {
		if r.data[i].ID == c.ID {
			r.data[i] = *c
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeCategoryRepo) Delete(id int) error {
	if r.fail {
		return errRepoDown
	}
	for i := range r.data {
		if r.data[i].ID == id {
			r.data = append(r.data[:i], r.data[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeCategoryRepo) ReplaceAll(cats []models.Category) error {
	if r.fail {
		return errRepoDown
	}
	r.data = append([]models.Category(nil), cats...)
	return nil
}

// fakeCache stores marshalled JSON per key.
type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) GetJSON(ctx context.Context, key string, v interface{}) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

func (c *fakeCache) SetJSON(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func newTestService() (*DefaultCatalogService, *fakePractitionerRepo, *fakeCategoryRepo, *fakeCache) {
	pr := &fakePractitionerRepo{data: []models.Practitioner{
		{ID: 1, Name: "Dr. Sarah Kim", Specialties: []string{"Anxiety"},
			Offerings: []models.Offering{{Name: "Session", Price: 150}}, StartingPrice: 150},
		{ID: 4, Name: "Marcus Johnson", Specialties: []string{"Confidence"},
			Offerings: []models.Offering{{Name: "Session", Price: 60}}, StartingPrice: 60},
	}}
	cr := &fakeCategoryRepo{data: []models.Category{
		{ID: 1, Name: "Anxiety", Icon: "🧠"},
		{ID: 2, Name: "Confidence", Icon: "💪"},
		{ID: 3, Name: "Burnout", Icon: "🔥"},
	}}
	cache := newFakeCache()
	svc := &DefaultCatalogService{PractitionerRepo: pr, CategoryRepo: cr, Cache: cache}
	svc.Load()
	return svc, pr, cr, cache
}

func TestLoadFallbackOrder(t *testing.T) {
	t.Run("remote wins when reachable", func(t *testing.T) {
		svc, _, _, _ := newTestService()
		assert.Len(t, svc.Practitioners(), 2)
		assert.Len(t, svc.Categories(), 3)
	})

	t.Run("cache wins when remote fails", func(t *testing.T) {
		cache := newFakeCache()
		require.NoError(t, cache.SetJSON(context.Background(), practitionersCacheKey,
			[]models.Practitioner{{ID: 7, Name: "Cached"}}))
		svc := &DefaultCatalogService{
			PractitionerRepo: &fakePractitionerRepo{fail: true},
			CategoryRepo:     &fakeCategoryRepo{fail: true},
			Cache:            cache,
		}
		svc.Load()
		ps := svc.Practitioners()
		require.Len(t, ps, 1)
		assert.Equal(t, "Cached", ps[0].Name)
		// No cached categories, so the seeded defaults apply.
		assert.Equal(t, DefaultCategories(), svc.Categories())
	})

	t.Run("defaults when nothing else is available", func(t *testing.T) {
		svc := &DefaultCatalogService{}
		svc.Load()
		assert.Equal(t, DefaultPractitioners(), svc.Practitioners())
		assert.Equal(t, DefaultCategories(), svc.Categories())
	})
}

func TestCreatePractitionerAssignsNextID(t *testing.T) {
	svc, _, _, _ := newTestService()

	// Existing ids are 1 and 4; the next id fills past the max, not the gap.
	created, res, err := svc.CreatePractitioner(models.Practitioner{
		Name:      "Elena Rodriguez",
		Offerings: []models.Offering{{Name: "Intro", Price: 0}, {Name: "Session", Price: 120}},
	}, true)
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)
	assert.True(t, res.Remote)
	assert.Empty(t, res.Warning)

	// Starting price derives from the cheapest non-free offering.
	assert.Equal(t, float64(120), created.StartingPrice)
}

func TestCreatePractitionerEmptyCatalog(t *testing.T) {
	svc := &DefaultCatalogService{}
	svc.practitioners = []models.Practitioner{}

	created, _, err := svc.CreatePractitioner(models.Practitioner{Name: "First"}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, float64(0), created.StartingPrice)
}

func TestUpdatePractitionerKeepsID(t *testing.T) {
	svc, _, _, _ := newTestService()

	updated, _, err := svc.UpdatePractitioner(4, models.Practitioner{
		ID:        999, // ignored
		Name:      "Marcus Johnson",
		Offerings: []models.Offering{{Name: "Session", Price: 75}},
	}, true)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.ID)
	assert.Equal(t, float64(75), updated.StartingPrice)

	_, _, err = svc.UpdatePractitioner(42, models.Practitioner{}, true)
	assert.ErrorIs(t, err, ErrPractitionerNotFound)
}

func TestWriteSagaFallsBackLocally(t *testing.T) {
	svc, pr, _, cache := newTestService()
	pr.fail = true

	created, res, err := svc.CreatePractitioner(models.Practitioner{Name: "Offline Add"}, true)
	require.NoError(t, err)
	assert.False(t, res.Remote)
	assert.Equal(t, "Failed to save to database. Saving locally.", res.Warning)

	// The in-memory collection and the cache tier both hold the change.
	_, ok := svc.GetPractitioner(created.ID)
	assert.True(t, ok)
	var cached []models.Practitioner
	found, err := cache.GetJSON(context.Background(), practitionersCacheKey, &cached)
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, cached, 3)
}

func TestWriteSagaSkipsRemoteWhenUnauthenticated(t *testing.T) {
	svc, pr, _, _ := newTestService()

	_, res, err := svc.CreatePractitioner(models.Practitioner{Name: "Anon Add"}, false)
	require.NoError(t, err)
	assert.False(t, res.Remote)
	assert.Empty(t, res.Warning)
	assert.Len(t, pr.data, 2, "remote store untouched without auth")
}

func TestToggleField(t *testing.T) {
	svc, _, _, _ := newTestService()

	p, _, err := svc.ToggleField(1, "featured", true)
	require.NoError(t, err)
	assert.True(t, p.Featured)

	p, _, err = svc.ToggleField(1, "featured", true)
	require.NoError(t, err)
	assert.False(t, p.Featured)

	_, _, err = svc.ToggleField(1, "rating", true)
	assert.ErrorIs(t, err, ErrUnknownToggleField)

	_, _, err = svc.ToggleField(42, "verified", true)
	assert.ErrorIs(t, err, ErrPractitionerNotFound)
}

func TestCreateCategory(t *testing.T) {
	svc, _, _, _ := newTestService()

	cat, _, err := svc.CreateCategory("  Sleep  ", "", true)
	require.NoError(t, err)
	assert.Equal(t, "Sleep", cat.Name)
	assert.Equal(t, "📋", cat.Icon, "missing icon gets the default")
	assert.Equal(t, 4, cat.ID)

	_, _, err = svc.CreateCategory("anxiety", "🧠", true)
	assert.ErrorIs(t, err, ErrDuplicateCategory, "names are unique case-insensitively")

	_, _, err = svc.CreateCategory("   ", "🧠", true)
	assert.ErrorIs(t, err, ErrCategoryNameEmpty)
}

func TestEditCategoryCascadesRename(t *testing.T) {
	svc, _, _, _ := newTestService()

	cat, _, err := svc.EditCategory(1, "Performance Anxiety", "", true)
	require.NoError(t, err)
	assert.Equal(t, "Performance Anxiety", cat.Name)

	// Every practitioner referencing the old name now carries the new one.
	p, ok := svc.GetPractitioner(1)
	require.True(t, ok)
	assert.Contains(t, p.Specialties, "Performance Anxiety")
	assert.NotContains(t, p.Specialties, "Anxiety")
	assert.Equal(t, 1, svc.CategoryPractitionerCount("Performance Anxiety"))
	assert.Equal(t, 0, svc.CategoryPractitionerCount("Anxiety"))
}

func TestDeleteCategoryGuard(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.DeleteCategory(1, true)
	var inUse *CategoryInUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, 1, inUse.Count)
	assert.Contains(t, err.Error(), "1 practitioner(s)")
	assert.Len(t, svc.Categories(), 3, "failed delete leaves the list unchanged")

	// Burnout is unreferenced and deletes cleanly.
	_, err = svc.DeleteCategory(3, true)
	require.NoError(t, err)
	assert.Len(t, svc.Categories(), 2)

	_, err = svc.DeleteCategory(42, true)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestMoveCategory(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.MoveCategory(3, "up", true)
	require.NoError(t, err)
	names := categoryNames(svc.Categories())
	assert.Equal(t, []string{"Anxiety", "Burnout", "Confidence"}, names)

	// Moving past either end is a no-op, not an error.
	_, err = svc.MoveCategory(1, "up", true)
	require.NoError(t, err)
	assert.Equal(t, names, categoryNames(svc.Categories()))

	_, err = svc.MoveCategory(2, "down", true)
	require.NoError(t, err)
	assert.Equal(t, names, categoryNames(svc.Categories()))

	_, err = svc.MoveCategory(1, "sideways", true)
	assert.ErrorIs(t, err, ErrBadMoveDirection)
}

func categoryNames(cats []models.Category) []string {
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
	}
	return names
}
