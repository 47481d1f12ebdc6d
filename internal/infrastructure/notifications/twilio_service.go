package notifications

import (
	"fmt"

	"github.com/pablobispo13/api-portifolio/domain"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioMessenger implements domain.MessagingService. Credentials come from
// the per-identity stored settings, so the client is built per send rather
// than held process-wide.
type TwilioMessenger struct{}

// NewTwilioMessenger creates a new Twilio messaging service
func NewTwilioMessenger() domain.MessagingService {
	return &TwilioMessenger{}
}

// Send implements domain.MessagingService
func (t *TwilioMessenger) Send(settings *domain.TwilioSettings, body string) error {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: settings.AccountSID,
		Password: settings.AuthToken,
	})

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(settings.ToNumber)
	params.SetFrom(settings.FromNumber)
	params.SetBody(body)

	if _, err := client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}
