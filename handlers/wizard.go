package handlers

import (
	"errors"
	"net/http"

	"hometeam/models"
	"hometeam/services/wizard"
	"hometeam/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OpenWizardHandler creates a fresh wizard session at step 1.
func OpenWizardHandler(c *gin.Context) {
	sess, err := WizardService.Open(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to open wizard session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open wizard session"})
		return
	}
	c.JSON(http.StatusCreated, sess)
}

// GetWizardHandler returns the current state of a session.
func GetWizardHandler(c *gin.Context) {
	sess, err := WizardService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// WizardNextHandler persists the step's input and advances if it validates.
// An invalid step returns the unchanged session, not an error status; the
// validation outcome is visible in currentStep.
func WizardNextHandler(c *gin.Context) {
	var input models.WizardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	sess, err := WizardService.Next(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// WizardBackHandler steps backwards without validation.
func WizardBackHandler(c *gin.Context) {
	var input models.WizardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	sess, err := WizardService.Back(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// WizardToggleCategoryHandler adds or removes a category selection.
func WizardToggleCategoryHandler(c *gin.Context) {
	name, ok := bindName(c)
	if !ok {
		return
	}
	sess, err := WizardService.ToggleCategory(c.Request.Context(), c.Param("id"), name)
	if err != nil {
		writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// WizardToggleApproachHandler adds or removes an approach selection.
func WizardToggleApproachHandler(c *gin.Context) {
	name, ok := bindName(c)
	if !ok {
		return
	}
	sess, err := WizardService.ToggleApproach(c.Request.Context(), c.Param("id"), name)
	if err != nil {
		writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// WizardPreferenceHandler sets the three-way session-type preference.
func WizardPreferenceHandler(c *gin.Context) {
	var input struct {
		SessionPreference string `json:"sessionPreference"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	sess, err := WizardService.SetSessionPreference(c.Request.Context(), c.Param("id"), input.SessionPreference)
	if err != nil {
		writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// WizardBudgetHandler moves the budget slider; out-of-range values clamp.
func WizardBudgetHandler(c *gin.Context) {
	var input struct {
		BudgetMax int `json:"budgetMax"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	sess, err := WizardService.SetBudget(c.Request.Context(), c.Param("id"), input.BudgetMax)
	if err != nil {
		writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// WizardRetryHandler re-issues the match request after a failure at step 5.
func WizardRetryHandler(c *gin.Context) {
	sess, err := WizardService.Retry(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// CloseWizardHandler discards the session; any in-flight match result for it
// will be dropped when it arrives.
func CloseWizardHandler(c *gin.Context) {
	if err := WizardService.Close(c.Request.Context(), c.Param("id")); err != nil {
		writeWizardError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindName(c *gin.Context) (string, bool) {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A non-empty name is required"})
		return "", false
	}
	return input.Name, true
}

func writeWizardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, wizard.ErrInvalidPreference):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, wizard.ErrNotRetryable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		getLogger(c).Error("Wizard operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
