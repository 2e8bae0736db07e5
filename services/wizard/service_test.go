package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hometeam/models"
	"hometeam/services/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory SessionStore with redis semantics: Get on a
// missing id returns nil, not an error.
type memStore struct {
	mu       sync.Mutex
	sessions map[string]models.WizardSession
}

func newMemStore() *memStore {
	return &memStore{sessions: make(map[string]models.WizardSession)}
}

func (s *memStore) Get(ctx context.Context, id string) (*models.WizardSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

func (s *memStore) Save(ctx context.Context, sess *models.WizardSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = *sess
	return nil
}

func (s *memStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// stubMatchClient blocks each request on release so tests control exactly
// when a response lands.
type stubMatchClient struct {
	mu      sync.Mutex
	results []models.MatchResult
	err     error
	calls   int
	release chan struct{}
}

func (c *stubMatchClient) RequestMatches(ctx context.Context, data models.WizardData, roster []models.Practitioner) ([]models.MatchResult, error) {
	if c.release != nil {
		<-c.release
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return c.results, c.err
}

func (c *stubMatchClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func (c *stubMatchClient) setOutcome(results []models.MatchResult, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = results
	c.err = err
}

// fakeCatalog only serves the roster; the embedded interface covers the
// methods the wizard never touches.
type fakeCatalog struct {
	catalog.Service
	roster []models.Practitioner
}

func (f *fakeCatalog) Practitioners() []models.Practitioner { return f.roster }

func newTestWizard(client *stubMatchClient) (*DefaultWizardService, *memStore) {
	store := newMemStore()
	svc := &DefaultWizardService{
		Store:       store,
		MatchClient: client,
		Catalog: &fakeCatalog{roster: []models.Practitioner{
			{ID: 1, Name: "Dr. Sarah Kim"},
			{ID: 2, Name: "Marcus Johnson"},
		}},
	}
	return svc, store
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestOpenInitialShape(t *testing.T) {
	svc, _ := newTestWizard(&stubMatchClient{})
	sess, err := svc.Open(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, models.WizardStepName, sess.CurrentStep)
	assert.Equal(t, models.WizardData{
		SelectedCategories: []string{},
		SelectedApproaches: []string{},
		BudgetMax:          models.WizardBudgetDefault,
	}, sess.Data)
	assert.False(t, sess.IsLoading)
	assert.Empty(t, sess.Error)
	assert.Nil(t, sess.MatchResults)
}

func TestNextValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestWizard(&stubMatchClient{})
	sess, err := svc.Open(ctx)
	require.NoError(t, err)
	id := sess.ID

	// Step 1: empty name blocks, a real name advances.
	sess, err = svc.Next(ctx, id, models.WizardInput{Name: strPtr("   ")})
	require.NoError(t, err)
	assert.Equal(t, 1, sess.CurrentStep)

	sess, err = svc.Next(ctx, id, models.WizardInput{Name: strPtr("Sam")})
	require.NoError(t, err)
	assert.Equal(t, 2, sess.CurrentStep)

	// Step 2: the ten-character floor counts trimmed length.
	sess, err = svc.Next(ctx, id, models.WizardInput{Description: strPtr("  short    ")})
	require.NoError(t, err)
	assert.Equal(t, 2, sess.CurrentStep)

	// Nine characters of multibyte text: well past ten bytes, still short.
	sess, err = svc.Next(ctx, id, models.WizardInput{Description: strPtr("試合前に緊張します")})
	require.NoError(t, err)
	assert.Equal(t, 2, sess.CurrentStep)

	sess, err = svc.Next(ctx, id, models.WizardInput{Description: strPtr("I struggle with pre-game anxiety")})
	require.NoError(t, err)
	assert.Equal(t, 3, sess.CurrentStep)

	// Step 3: at least one category.
	sess, err = svc.Next(ctx, id, models.WizardInput{})
	require.NoError(t, err)
	assert.Equal(t, 3, sess.CurrentStep)

	_, err = svc.ToggleCategory(ctx, id, "Anxiety")
	require.NoError(t, err)
	sess, err = svc.Next(ctx, id, models.WizardInput{})
	require.NoError(t, err)
	assert.Equal(t, 4, sess.CurrentStep)
}

func TestBlockedNextStillPersistsInput(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestWizard(&stubMatchClient{})
	sess, _ := svc.Open(ctx)

	_, err := svc.Next(ctx, sess.ID, models.WizardInput{Name: strPtr("  ")})
	require.NoError(t, err)
	got, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "  ", got.Data.Name, "input is kept even when the transition is refused")
}

func TestBackFloorsAtStepOne(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestWizard(&stubMatchClient{})
	sess, _ := svc.Open(ctx)

	sess, err := svc.Back(ctx, sess.ID, models.WizardInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, sess.CurrentStep)

	_, err = svc.Next(ctx, sess.ID, models.WizardInput{Name: strPtr("Sam")})
	require.NoError(t, err)
	sess, err = svc.Back(ctx, sess.ID, models.WizardInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, sess.CurrentStep)
}

func TestToggleSemantics(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestWizard(&stubMatchClient{})
	sess, _ := svc.Open(ctx)
	id := sess.ID

	sess, _ = svc.ToggleCategory(ctx, id, "Anxiety")
	sess, _ = svc.ToggleCategory(ctx, id, "Burnout")
	sess, _ = svc.ToggleCategory(ctx, id, "Confidence")
	assert.Equal(t, []string{"Anxiety", "Burnout", "Confidence"}, sess.Data.SelectedCategories)

	// Present means remove; the rest keep their order.
	sess, _ = svc.ToggleCategory(ctx, id, "Burnout")
	assert.Equal(t, []string{"Anxiety", "Confidence"}, sess.Data.SelectedCategories)

	sess, _ = svc.ToggleApproach(ctx, id, "CBT")
	sess, _ = svc.ToggleApproach(ctx, id, "CBT")
	assert.Empty(t, sess.Data.SelectedApproaches)
}

func TestSessionPreference(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestWizard(&stubMatchClient{})
	sess, _ := svc.Open(ctx)

	got, err := svc.SetSessionPreference(ctx, sess.ID, "Virtual")
	require.NoError(t, err)
	assert.Equal(t, "Virtual", got.Data.SessionPreference)

	// Empty string is the explicit no-preference choice.
	got, err = svc.SetSessionPreference(ctx, sess.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "", got.Data.SessionPreference)

	_, err = svc.SetSessionPreference(ctx, sess.ID, "Hybrid")
	assert.ErrorIs(t, err, ErrInvalidPreference)
}

func TestSetBudgetClamps(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestWizard(&stubMatchClient{})
	sess, _ := svc.Open(ctx)

	got, err := svc.SetBudget(ctx, sess.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, models.WizardBudgetMin, got.Data.BudgetMax)

	got, err = svc.SetBudget(ctx, sess.ID, 9999)
	require.NoError(t, err)
	assert.Equal(t, models.WizardBudgetMax, got.Data.BudgetMax)
}

// advanceToMatching walks a session through steps 1-4 so the next call to
// Next fires the match request.
func advanceToMatching(t *testing.T, svc *DefaultWizardService, id string) *models.WizardSession {
	t.Helper()
	ctx := context.Background()
	_, err := svc.Next(ctx, id, models.WizardInput{Name: strPtr("Sam")})
	require.NoError(t, err)
	_, err = svc.Next(ctx, id, models.WizardInput{Description: strPtr("I need help with performance anxiety")})
	require.NoError(t, err)
	_, err = svc.ToggleCategory(ctx, id, "Anxiety")
	require.NoError(t, err)
	_, err = svc.Next(ctx, id, models.WizardInput{})
	require.NoError(t, err)
	sess, err := svc.Next(ctx, id, models.WizardInput{BudgetMax: intPtr(200)})
	require.NoError(t, err)
	return sess
}

func TestMatchSuccessAdvancesToResults(t *testing.T) {
	client := &stubMatchClient{release: make(chan struct{})}
	client.setOutcome([]models.MatchResult{{ID: 1, Score: 92, Explanation: "Strong fit"}}, nil)
	svc, _ := newTestWizard(client)

	sess, _ := svc.Open(context.Background())
	sess = advanceToMatching(t, svc, sess.ID)
	assert.Equal(t, models.WizardStepMatching, sess.CurrentStep)
	assert.True(t, sess.IsLoading)
	assert.Equal(t, 1, sess.MatchEpoch)

	close(client.release)
	assert.Eventually(t, func() bool {
		got, err := svc.Get(context.Background(), sess.ID)
		return err == nil && got.CurrentStep == models.WizardStepResults
	}, time.Second, 5*time.Millisecond)

	got, err := svc.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.False(t, got.IsLoading)
	assert.Empty(t, got.Error)
	require.Len(t, got.MatchResults, 1)
	assert.Equal(t, 92, got.MatchResults[0].Score)
}

func TestMatchFailureStaysAtLoadingStepWithRetry(t *testing.T) {
	client := &stubMatchClient{}
	client.setOutcome(nil, errors.New("matching service temporarily unavailable"))
	svc, _ := newTestWizard(client)

	sess, _ := svc.Open(context.Background())
	sess = advanceToMatching(t, svc, sess.ID)

	assert.Eventually(t, func() bool {
		got, err := svc.Get(context.Background(), sess.ID)
		return err == nil && !got.IsLoading && got.Error != ""
	}, time.Second, 5*time.Millisecond)

	got, err := svc.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WizardStepMatching, got.CurrentStep, "never silently advances on failure")
	assert.Nil(t, got.MatchResults)

	// Retry bumps the epoch and runs a fresh request.
	client.setOutcome([]models.MatchResult{{ID: 2, Score: 80, Explanation: "Good fit"}}, nil)
	retried, err := svc.Retry(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, retried.MatchEpoch)
	assert.True(t, retried.IsLoading)

	assert.Eventually(t, func() bool {
		got, err := svc.Get(context.Background(), sess.ID)
		return err == nil && got.CurrentStep == models.WizardStepResults
	}, time.Second, 5*time.Millisecond)
}

func TestRetryOnlyAtMatchingStep(t *testing.T) {
	svc, _ := newTestWizard(&stubMatchClient{})
	sess, _ := svc.Open(context.Background())

	_, err := svc.Retry(context.Background(), sess.ID)
	assert.ErrorIs(t, err, ErrNotRetryable)
}

func TestStaleResponseAfterCloseIsDiscarded(t *testing.T) {
	client := &stubMatchClient{release: make(chan struct{})}
	client.setOutcome([]models.MatchResult{{ID: 1, Score: 90, Explanation: "fit"}}, nil)
	svc, store := newTestWizard(client)

	sess, _ := svc.Open(context.Background())
	sess = advanceToMatching(t, svc, sess.ID)

	// Close while the request is in flight, then let the response land.
	require.NoError(t, svc.Close(context.Background(), sess.ID))
	close(client.release)

	assert.Eventually(t, func() bool {
		return client.callCount() == 1
	}, time.Second, 5*time.Millisecond)

	// The response must not resurrect the session.
	time.Sleep(20 * time.Millisecond)
	store.mu.Lock()
	_, exists := store.sessions[sess.ID]
	store.mu.Unlock()
	assert.False(t, exists)

	_, err := svc.Get(context.Background(), sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSupersededResponseIsDiscarded(t *testing.T) {
	client := &stubMatchClient{release: make(chan struct{}, 2)}
	client.setOutcome(nil, errors.New("unavailable"))
	svc, _ := newTestWizard(client)

	sess, _ := svc.Open(context.Background())
	sess = advanceToMatching(t, svc, sess.ID)

	// Retry before the first response lands; the first outcome belongs to a
	// superseded epoch and must not clear the new loading state.
	retried, err := svc.Retry(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, retried.MatchEpoch)

	client.setOutcome([]models.MatchResult{{ID: 1, Score: 85, Explanation: "fit"}}, nil)
	client.release <- struct{}{}
	client.release <- struct{}{}

	assert.Eventually(t, func() bool {
		got, err := svc.Get(context.Background(), sess.ID)
		return err == nil && got.CurrentStep == models.WizardStepResults
	}, time.Second, 5*time.Millisecond)

	got, err := svc.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.MatchEpoch)
	assert.Empty(t, got.Error)
}

func TestNextBeyondMatchingDoesNotAdvance(t *testing.T) {
	client := &stubMatchClient{release: make(chan struct{})}
	svc, _ := newTestWizard(client)
	defer close(client.release)

	sess, _ := svc.Open(context.Background())
	sess = advanceToMatching(t, svc, sess.ID)

	got, err := svc.Next(context.Background(), sess.ID, models.WizardInput{})
	require.NoError(t, err)
	assert.Equal(t, models.WizardStepMatching, got.CurrentStep)
	assert.Equal(t, 1, got.MatchEpoch, "no second request is fired")
}
