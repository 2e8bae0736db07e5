package handlers

import (
	"errors"
	"net/http"

	"hometeam/models"
	"hometeam/services/matching"

	"github.com/gin-gonic/gin"
)

// maxMatchBodyBytes caps the request body before parsing.
const maxMatchBodyBytes = 100 * 1024

// MatchHandler ranks a practitioner roster for a patient profile. The
// endpoint is stateless; each call is sanitized and forwarded independently.
func MatchHandler(c *gin.Context) {
	if c.Request.ContentLength > maxMatchBodyBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxMatchBodyBytes)

	var req models.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	matches, err := MatchService.Match(c.Request.Context(), req)
	if err != nil {
		writeMatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MatchResponse{Matches: matches})
}

// MatchOptionsHandler answers CORS preflight with an empty response.
func MatchOptionsHandler(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// MatchMethodNotAllowedHandler covers every verb other than POST and OPTIONS.
func MatchMethodNotAllowedHandler(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}

func writeMatchError(c *gin.Context, err error) {
	var invalid *matching.ValidationError
	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Message})
	case errors.Is(err, matching.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Matching service is not configured"})
	case errors.Is(err, matching.ErrUpstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Matching service temporarily unavailable. Please try again."})
	default:
		getLogger(c).Error("Match request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
