package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"hometeam/services/catalog"
	"hometeam/services/matching"
	"hometeam/services/notification"
	"hometeam/services/wizard"

	"github.com/gin-gonic/gin"
)

// Service singletons, wired in main before routes register.
var (
	CatalogService      catalog.Service
	WizardService       wizard.Service
	MatchService        matching.Matcher
	NotificationService notification.Service
)

// GetPractitionersHandler returns the browse view: filtered, sorted and
// paginated. All criteria arrive as query parameters; list-valued ones are
// comma-separated.
func GetPractitionersHandler(c *gin.Context) {
	criteria := catalog.FilterCriteria{
		Query:        c.Query("q"),
		Specialties:  splitParam(c.Query("specialties")),
		Approaches:   splitParam(c.Query("approaches")),
		Sports:       splitParam(c.Query("sports")),
		SessionTypes: splitParam(c.Query("sessionTypes")),
		SortBy:       c.DefaultQuery("sort", "featured"),
	}
	if raw := c.Query("priceMax"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			criteria.PriceMax = v
		}
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	filtered := catalog.ApplyFilters(CatalogService.Practitioners(), criteria)
	pageItems, totalPages := catalog.Paginate(filtered, page)

	c.JSON(http.StatusOK, gin.H{
		"practitioners": pageItems,
		"total":         len(filtered),
		"page":          page,
		"totalPages":    totalPages,
	})
}

// GetPractitionerHandler returns one practitioner by numeric id.
func GetPractitionerHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid practitioner id"})
		return
	}
	p, ok := CatalogService.GetPractitioner(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Practitioner not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetCategoriesHandler returns all categories in display order.
func GetCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": CatalogService.Categories()})
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
