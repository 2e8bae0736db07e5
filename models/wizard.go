package models

// Wizard step numbers. The flow is linear; step 5 either fans into step 6 on
// a successful match or stays at 5 carrying an error for retry.
const (
	WizardStepName        = 1
	WizardStepDescription = 2
	WizardStepCategories  = 3
	WizardStepPreferences = 4
	WizardStepMatching    = 5
	WizardStepResults     = 6
)

const (
	WizardBudgetMin     = 50
	WizardBudgetMax     = 500
	WizardBudgetDefault = 300
)

// WizardData accumulates the patient's answers across steps.
type WizardData struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	SelectedCategories []string `json:"selectedCategories"`
	SessionPreference  string   `json:"sessionPreference"` // "" | "In-Person" | "Virtual"
	BudgetMax          int      `json:"budgetMax"`         // 50..500
	SelectedApproaches []string `json:"selectedApproaches"`
}

// NewWizardData returns the initial empty shape. Close/reset restores this
// exact value regardless of which path closed the wizard.
func NewWizardData() WizardData {
	return WizardData{
		SelectedCategories: []string{},
		SelectedApproaches: []string{},
		BudgetMax:          WizardBudgetDefault,
	}
}

// WizardSession is the ephemeral per-session wizard state. It is created
// fresh when the wizard opens and discarded when it closes.
type WizardSession struct {
	ID           string        `json:"id"`
	CurrentStep  int           `json:"currentStep"`
	Data         WizardData    `json:"data"`
	MatchResults []MatchResult `json:"matchResults,omitempty"`
	IsLoading    bool          `json:"isLoading"`
	Error        string        `json:"error,omitempty"`

	// MatchEpoch counts match requests issued for this session. A completion
	// only applies when its epoch still matches, so a response arriving after
	// a reset or a retry is discarded instead of resurrecting stale state.
	MatchEpoch int `json:"matchEpoch"`
}

// WizardInput carries the in-progress input of the current step; nil fields
// were not touched by the client. It is persisted before validation on every
// forward or backward transition.
type WizardInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	BudgetMax   *int    `json:"budgetMax,omitempty"`
}
