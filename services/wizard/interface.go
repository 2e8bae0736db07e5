package wizard

import (
	"context"
	"errors"

	"hometeam/models"
)

var (
	ErrSessionNotFound   = errors.New("wizard session not found or expired")
	ErrInvalidPreference = errors.New("session preference must be In-Person, Virtual or empty")
	ErrNotRetryable      = errors.New("nothing to retry at this step")
)

// Service drives the onboarding wizard: six ordered steps, per-step
// validation, forward/backward navigation and data accumulation. All
// operations are keyed by session id; a closed session behaves exactly like
// one that never existed.
type Service interface {
	Open(ctx context.Context) (*models.WizardSession, error)
	Get(ctx context.Context, id string) (*models.WizardSession, error)
	Next(ctx context.Context, id string, input models.WizardInput) (*models.WizardSession, error)
	Back(ctx context.Context, id string, input models.WizardInput) (*models.WizardSession, error)
	ToggleCategory(ctx context.Context, id, name string) (*models.WizardSession, error)
	ToggleApproach(ctx context.Context, id, name string) (*models.WizardSession, error)
	SetSessionPreference(ctx context.Context, id, pref string) (*models.WizardSession, error)
	SetBudget(ctx context.Context, id string, budget int) (*models.WizardSession, error)
	Retry(ctx context.Context, id string) (*models.WizardSession, error)
	Close(ctx context.Context, id string) error
}
