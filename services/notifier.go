// services/notifier.go
package services

import (
	"log"
	"os"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Notifier delivers renewal notices. Callers treat delivery as
// fire-and-forget; a returned error is only ever logged.
type Notifier interface {
	Send(recipients []string, subject, body string) error
}

// TwilioNotifier sends notices via Twilio, using WhatsApp for recipients
// in E.164 format and SMS otherwise.
type TwilioNotifier struct {
	client *twilio.RestClient
}

func NewTwilioNotifier() *TwilioNotifier {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &TwilioNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (n *TwilioNotifier) Send(recipients []string, subject, body string) error {
	message := subject + "\n" + body

	var lastErr error
	for _, to := range recipients {
		params := &twilioApi.CreateMessageParams{}
		params.SetBody(message)

		if strings.HasPrefix(to, "+") {
			params.SetTo("whatsapp:" + to)
			params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
		} else {
			params.SetTo(to)
			params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
		}

		resp, err := n.client.Api.CreateMessage(params)
		if err != nil {
			log.Printf("Failed to send notice to %s: %v", to, err)
			lastErr = err
			continue
		}
		if resp.Sid != nil {
			log.Printf("Notice sent to %s, SID: %s", to, *resp.Sid)
		} else {
			log.Printf("Notice sent to %s, but no SID returned", to)
		}
	}
	return lastErr
}

// LogNotifier prints notices to the process log. It stands in when no
// Twilio credentials are configured.
type LogNotifier struct{}

func (LogNotifier) Send(recipients []string, subject, body string) error {
	preview := body
	if len(preview) > 180 {
		preview = preview[:180] + "..."
	}
	log.Printf("NOTIFY -> to=%v subject=%q body=%q", recipients, subject, preview)
	return nil
}

// NotifierFromEnv picks the Twilio channel when credentials are present,
// otherwise the log stub.
func NotifierFromEnv() Notifier {
	if os.Getenv("TWILIO_ACCOUNT_SID") != "" && os.Getenv("TWILIO_AUTH_TOKEN") != "" {
		return NewTwilioNotifier()
	}
	return LogNotifier{}
}
