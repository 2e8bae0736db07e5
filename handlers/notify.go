package handlers

import (
	"net/http"

	"hometeam/models"

	"github.com/gin-gonic/gin"
)

// NotifyHandler sends a new-message email. Delivery is best-effort: only a
// malformed request fails; provider trouble or a missing provider still
// returns success so notification problems never block message sending.
func NotifyHandler(c *gin.Context) {
	var req models.NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := NotificationService.SendMessageNotification(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipient email"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
