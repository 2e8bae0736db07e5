package notification

import (
	"context"
	"testing"

	"hometeam/models"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"sam@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"", false},
		{"no-at-sign", false},
		{"missing@tld", false},
		{"spaces in@example.com", false},
		{"@example.com", false},
		{"sam@", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestSendRejectsInvalidRecipient(t *testing.T) {
	svc := &DefaultNotificationService{}
	err := svc.SendMessageNotification(context.Background(), models.NotificationRequest{
		RecipientEmail: "nope",
	})
	assert.Error(t, err)
}

func TestSendWithoutProviderIsNoOp(t *testing.T) {
	svc := &DefaultNotificationService{}
	err := svc.SendMessageNotification(context.Background(), models.NotificationRequest{
		RecipientEmail: "sam@example.com",
		RecipientName:  "Sam",
		SenderName:     "Dr. Kim",
		MessagePreview: "See you Tuesday",
	})
	assert.NoError(t, err)
}
