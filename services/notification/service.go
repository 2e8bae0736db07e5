// File: services/notification/service.go
package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"regexp"

	"hometeam/models"
	"hometeam/utils"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether an address looks deliverable.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Service sends new-message email notifications. Delivery is best-effort:
// provider failures are logged and swallowed so notification trouble never
// blocks the message-send flow that triggered it.
type Service interface {
	SendMessageNotification(ctx context.Context, req models.NotificationRequest) error
}

// DefaultNotificationService implements Service on the Resend API. Client is
// nil when no API key is configured; sends then become a silent no-op.
type DefaultNotificationService struct {
	Client *resend.Client
	From   string
}

var messageTemplate = template.Must(template.New("message").Parse(`
<div style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; max-width: 560px; margin: 0 auto; padding: 32px;">
	<div style="text-align: center; margin-bottom: 24px;">
		<h2 style="color: #1a1a2e; margin: 0;">HomeTeam</h2>
	</div>
	<div style="background: #f8f9fa; border-radius: 12px; padding: 24px;">
		<p style="color: #1a1a2e; font-size: 16px; margin: 0 0 12px;">
			Hi {{.RecipientName}},
		</p>
		<p style="color: #4a4a5a; font-size: 14px; line-height: 1.6; margin: 0 0 16px;">
			<strong>{{.SenderName}}</strong> sent you a new message on HomeTeam:
		</p>
		<div style="background: white; border-left: 3px solid #2f5dff; padding: 12px 16px; border-radius: 0 8px 8px 0; margin-bottom: 20px;">
			<p style="color: #4a4a5a; font-size: 14px; margin: 0; font-style: italic;">
				"{{.MessagePreview}}"
			</p>
		</div>
		<a href="{{.ConversationURL}}" style="display: inline-block; background: #2f5dff; color: white; padding: 10px 24px; border-radius: 8px; text-decoration: none; font-size: 14px; font-weight: 600;">
			Reply on HomeTeam
		</a>
	</div>
	<p style="color: #9a9ab0; font-size: 12px; text-align: center; margin-top: 24px;">
		You received this email because you have an account on HomeTeam.
	</p>
</div>
`))

// SendMessageNotification validates, sanitizes and sends. A nil client means
// email is not configured and the send silently succeeds.
func (s *DefaultNotificationService) SendMessageNotification(ctx context.Context, req models.NotificationRequest) error {
	if !IsValidEmail(req.RecipientEmail) {
		return fmt.Errorf("invalid recipient email")
	}
	if s.Client == nil {
		zap.L().Info("email service not configured, notification skipped")
		return nil
	}

	safe := models.NotificationRequest{
		RecipientEmail:  req.RecipientEmail,
		RecipientName:   utils.Sanitize(req.RecipientName, 100),
		SenderName:      utils.Sanitize(req.SenderName, 100),
		MessagePreview:  utils.Sanitize(req.MessagePreview, 200),
		ConversationURL: utils.Sanitize(req.ConversationURL, 200),
	}

	var body bytes.Buffer
	if err := messageTemplate.Execute(&body, safe); err != nil {
		zap.L().Error("failed to render notification email", zap.Error(err))
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    s.From,
		To:      []string{safe.RecipientEmail},
		Subject: fmt.Sprintf("New message from %s on HomeTeam", safe.SenderName),
		Html:    body.String(),
	}
	if _, err := s.Client.Emails.SendWithContext(ctx, params); err != nil {
		// Best-effort: log and report success to the caller anyway.
		zap.L().Error("resend delivery failed", zap.Error(err))
	}
	return nil
}
