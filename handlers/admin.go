package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hometeam/config"
	"hometeam/models"
	"hometeam/services/catalog"
	"hometeam/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 24 * time.Hour

// AdminLoginHandler checks credentials against the configured admin account
// and issues a bearer token for the catalog-mutation routes.
func AdminLoginHandler(c *gin.Context) {
	logger := getLogger(c)
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	cfg := config.AppConfig
	if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
		logger.Warn("Admin login attempted but no admin account is configured")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin access is not configured"})
		return
	}
	if input.Email != cfg.AdminEmail ||
		bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(input.Password)) != nil {
		logger.Warn("Admin login failed", zap.String("email", input.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(input.Email, input.Email, adminTokenTTL)
	if err != nil {
		logger.Error("Failed to sign admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// CreatePractitionerHandler adds a practitioner to the catalog.
func CreatePractitionerHandler(c *gin.Context) {
	var p models.Practitioner
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	created, res, err := CatalogService.CreatePractitioner(p, isAdmin(c))
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"practitioner": created, "remote": res.Remote, "warning": res.Warning})
}

// UpdatePractitionerHandler replaces a practitioner's fields, keeping its id.
func UpdatePractitionerHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid practitioner id"})
		return
	}
	var p models.Practitioner
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	updated, res, err := CatalogService.UpdatePractitioner(id, p, isAdmin(c))
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"practitioner": updated, "remote": res.Remote, "warning": res.Warning})
}

// DeletePractitionerHandler removes a practitioner from the catalog.
func DeletePractitionerHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid practitioner id"})
		return
	}
	res, err := CatalogService.DeletePractitioner(id, isAdmin(c))
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"remote": res.Remote, "warning": res.Warning})
}

// TogglePractitionerFieldHandler flips a boolean flag (featured, verified).
func TogglePractitionerFieldHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid practitioner id"})
		return
	}
	updated, res, err := CatalogService.ToggleField(id, c.Param("field"), isAdmin(c))
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"practitioner": updated, "remote": res.Remote, "warning": res.Warning})
}

// CreateCategoryHandler appends a new category.
func CreateCategoryHandler(c *gin.Context) {
	var input struct {
		Name string `json:"name"`
		Icon string `json:"icon"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	created, res, err := CatalogService.CreateCategory(input.Name, input.Icon, isAdmin(c))
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": created, "remote": res.Remote, "warning": res.Warning})
}

// EditCategoryHandler renames a category; the rename cascades through every
// practitioner's specialty list.
func EditCategoryHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}
	var input struct {
		Name string `json:"name"`
		Icon string `json:"icon"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	updated, res, err := CatalogService.EditCategory(id, input.Name, input.Icon, isAdmin(c))
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": updated, "remote": res.Remote, "warning": res.Warning})
}

// DeleteCategoryHandler removes a category unless practitioners reference it.
func DeleteCategoryHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}
	res, err := CatalogService.DeleteCategory(id, isAdmin(c))
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"remote": res.Remote, "warning": res.Warning})
}

// MoveCategoryHandler shifts a category up or down in display order.
func MoveCategoryHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}
	var input struct {
		Direction string `json:"direction"` // "up" | "down"
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	res, err := CatalogService.MoveCategory(id, input.Direction, isAdmin(c))
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": CatalogService.Categories(), "remote": res.Remote, "warning": res.Warning})
}

func isAdmin(c *gin.Context) bool {
	return c.GetBool("isAdmin")
}

// writeCatalogError maps catalog service errors onto HTTP statuses.
func writeCatalogError(c *gin.Context, err error) {
	var inUse *catalog.CategoryInUseError
	switch {
	case errors.Is(err, catalog.ErrPractitionerNotFound),
		errors.Is(err, catalog.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, catalog.ErrDuplicateCategory):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &inUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, catalog.ErrCategoryNameEmpty),
		errors.Is(err, catalog.ErrUnknownToggleField),
		errors.Is(err, catalog.ErrBadMoveDirection):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		getLogger(c).Error("Catalog operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
