// File: services/wizard/service.go
package wizard

import (
	"context"
	"strings"
	"unicode/utf8"

	"hometeam/models"
	"hometeam/services/catalog"
	"hometeam/services/matching"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultWizardService implements Service. The match request fired on the
// 4→5 transition runs in its own goroutine; its outcome is applied only if
// the session is still waiting on the same request epoch, so responses that
// arrive after a close or a retry are discarded instead of resurrecting the
// wizard.
type DefaultWizardService struct {
	Store       SessionStore
	MatchClient matching.Client
	Catalog     catalog.Service
}

// Open creates a fresh session at step 1 with the initial empty data shape.
func (s *DefaultWizardService) Open(ctx context.Context) (*models.WizardSession, error) {
	sess := &models.WizardSession{
		ID:          uuid.New().String(),
		CurrentStep: models.WizardStepName,
		Data:        models.NewWizardData(),
	}
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *DefaultWizardService) Get(ctx context.Context, id string) (*models.WizardSession, error) {
	sess, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Next persists any in-progress input, validates the current step and
// advances. An invalid step is not an error: no transition occurs and the
// unchanged session is returned, matching navigation buttons that disable
// rather than fail. Leaving step 4 triggers the asynchronous match request.
func (s *DefaultWizardService) Next(ctx context.Context, id string, input models.WizardInput) (*models.WizardSession, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyInput(sess, input)
	if sess.CurrentStep >= models.WizardStepMatching || !stepValid(sess) {
		if err := s.Store.Save(ctx, sess); err != nil {
			return nil, err
		}
		return sess, nil
	}

	sess.CurrentStep++
	if sess.CurrentStep == models.WizardStepMatching {
		s.beginMatch(sess)
	}
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	if sess.CurrentStep == models.WizardStepMatching {
		s.launchMatch(sess.ID, sess.Data, sess.MatchEpoch)
	}
	return sess, nil
}

// Back persists input and decrements with a floor of 1. No validation is
// required to go backward.
func (s *DefaultWizardService) Back(ctx context.Context, id string, input models.WizardInput) (*models.WizardSession, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyInput(sess, input)
	if sess.CurrentStep > 1 {
		sess.CurrentStep--
	}
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// ToggleCategory adds or removes a category: present means remove, absent
// means add. Insertion order is preserved but carries no meaning for the
// match request.
func (s *DefaultWizardService) ToggleCategory(ctx context.Context, id, name string) (*models.WizardSession, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.Data.SelectedCategories = toggle(sess.Data.SelectedCategories, name)
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *DefaultWizardService) ToggleApproach(ctx context.Context, id, name string) (*models.WizardSession, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.Data.SelectedApproaches = toggle(sess.Data.SelectedApproaches, name)
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// SetSessionPreference records the three-way session-type choice; the empty
// string is the explicit "no preference" option.
func (s *DefaultWizardService) SetSessionPreference(ctx context.Context, id, pref string) (*models.WizardSession, error) {
	if pref != "" && pref != "In-Person" && pref != "Virtual" {
		return nil, ErrInvalidPreference
	}
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.Data.SessionPreference = pref
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *DefaultWizardService) SetBudget(ctx context.Context, id string, budget int) (*models.WizardSession, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.Data.BudgetMax = clampBudget(budget)
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Retry re-runs the match from step 5 after a failure. Starting a new
// request bumps the epoch, superseding interest in any prior in-flight one.
func (s *DefaultWizardService) Retry(ctx context.Context, id string) (*models.WizardSession, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.CurrentStep != models.WizardStepMatching {
		return nil, ErrNotRetryable
	}
	s.beginMatch(sess)
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	s.launchMatch(sess.ID, sess.Data, sess.MatchEpoch)
	return sess, nil
}

// Close discards the session. Explicit close, overlay click and the escape
// key all route here, so every close path produces identical state: none.
func (s *DefaultWizardService) Close(ctx context.Context, id string) error {
	return s.Store.Delete(ctx, id)
}

// beginMatch flips the session into its loading state and bumps the epoch.
func (s *DefaultWizardService) beginMatch(sess *models.WizardSession) {
	sess.IsLoading = true
	sess.Error = ""
	sess.MatchResults = nil
	sess.MatchEpoch++
}

// launchMatch fires the match request in the background. The call runs to
// completion or its own timeout regardless of what the session does in the
// meantime; staleness is handled at apply time.
func (s *DefaultWizardService) launchMatch(id string, data models.WizardData, epoch int) {
	roster := s.Catalog.Practitioners()
	go func() {
		results, err := s.MatchClient.RequestMatches(context.Background(), data, roster)
		s.finishMatch(id, epoch, results, err)
	}()
}

// finishMatch applies a match outcome if the session is still waiting for
// this exact request. Anything else — session closed, reset, superseded by a
// retry — means the response is stale and is dropped.
func (s *DefaultWizardService) finishMatch(id string, epoch int, results []models.MatchResult, matchErr error) {
	ctx := context.Background()
	sess, err := s.Store.Get(ctx, id)
	if err != nil {
		zap.L().Warn("failed to load session for match result", zap.String("session", id), zap.Error(err))
		return
	}
	if sess == nil || sess.MatchEpoch != epoch || sess.CurrentStep != models.WizardStepMatching || !sess.IsLoading {
		zap.L().Debug("discarding stale match response", zap.String("session", id), zap.Int("epoch", epoch))
		return
	}

	sess.IsLoading = false
	if matchErr != nil {
		// Stay at step 5 with a retry affordance; never silently advance.
		sess.Error = matchErr.Error()
	} else {
		sess.MatchResults = results
		sess.CurrentStep = models.WizardStepResults
	}
	if err := s.Store.Save(ctx, sess); err != nil {
		zap.L().Warn("failed to save match result", zap.String("session", id), zap.Error(err))
	}
}

// stepValid implements the per-step validation table.
func stepValid(sess *models.WizardSession) bool {
	switch sess.CurrentStep {
	case models.WizardStepName:
		return strings.TrimSpace(sess.Data.Name) != ""
	case models.WizardStepDescription:
		// Character count, not bytes: multibyte text meets the floor the
		// same way ASCII does.
		return utf8.RuneCountInString(strings.TrimSpace(sess.Data.Description)) >= 10
	case models.WizardStepCategories:
		return len(sess.Data.SelectedCategories) > 0
	default:
		return true
	}
}

func applyInput(sess *models.WizardSession, input models.WizardInput) {
	if input.Name != nil {
		sess.Data.Name = *input.Name
	}
	if input.Description != nil {
		sess.Data.Description = *input.Description
	}
	if input.BudgetMax != nil {
		sess.Data.BudgetMax = clampBudget(*input.BudgetMax)
	}
}

func clampBudget(budget int) int {
	if budget < models.WizardBudgetMin {
		return models.WizardBudgetMin
	}
	if budget > models.WizardBudgetMax {
		return models.WizardBudgetMax
	}
	return budget
}

// toggle flips membership, preserving insertion order for the rest.
func toggle(list []string, name string) []string {
	for i, item := range list {
		if item == name {
			return append(list[:i], list[i+1:]...)
		}
	}
	return append(list, name)
}
