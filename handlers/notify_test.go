package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hometeam/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func notifyRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/notify", NotifyHandler)
	return r
}

func TestNotifyEndpointInvalidEmail(t *testing.T) {
	NotificationService = &notification.DefaultNotificationService{}
	r := notifyRouter()

	w := httptest.NewRecorder()
	body := `{"recipientEmail":"not-an-email","recipientName":"Sam","senderName":"Dr. Kim"}`
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/notify", strings.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotifyEndpointNoProviderIsSilentSuccess(t *testing.T) {
	// No API key configured: the send is a no-op but the caller still gets a
	// success, since notification failure must never block message sending.
	NotificationService = &notification.DefaultNotificationService{}
	r := notifyRouter()

	w := httptest.NewRecorder()
	body := `{"recipientEmail":"sam@example.com","recipientName":"Sam","senderName":"Dr. Kim","messagePreview":"See you Tuesday"}`
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/notify", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "true")
}

func TestNotifyEndpointMalformedBody(t *testing.T) {
	NotificationService = &notification.DefaultNotificationService{}
	r := notifyRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/notify", strings.NewReader("{oops")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
