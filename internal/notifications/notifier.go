// Package notifications delivers transactional messages over SMS (Twilio)
// and email (SMTP). Channels left unconfigured fall back to logging the
// message body, which keeps local and demo environments working without
// credentials.
package notifications

import (
	"context"

	"github.com/marketpace/demo-accounts/internal/logger"
	"github.com/marketpace/demo-accounts/internal/phone"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
	"gopkg.in/gomail.v2"
)

// Config carries every delivery credential explicitly. It is built once in
// main from the environment and handed to New; nothing in this package reads
// the environment itself.
type Config struct {
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	EmailFrom    string
}

// smsConfigured reports whether real SMS delivery is possible.
func (c Config) smsConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != ""
}

// emailConfigured reports whether real SMTP delivery is possible.
func (c Config) emailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPPort != 0
}

// Notifier sends messages over the configured channels.
type Notifier struct {
	cfg    Config
	twilio *twilio.RestClient
	dialer *gomail.Dialer
}

// New builds a Notifier. Clients are only constructed for channels that have
// credentials.
func New(cfg Config) *Notifier {
	n := &Notifier{cfg: cfg}

	if cfg.smsConfigured() {
		n.twilio = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	} else {
		logger.Log.Warn("Twilio credentials not set, SMS falls back to log output")
	}

	if cfg.emailConfigured() {
		n.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	} else {
		logger.Log.Warn("SMTP not set, email falls back to log output")
	}

	return n
}

// SendSMS delivers a text message. Numbers in the reserved 555 demo range
// are never sent to the carrier; the body is logged instead and the send
// reported as successful.
func (n *Notifier) SendSMS(ctx context.Context, to, body string) error {
	if n.twilio == nil || phone.IsDemoNumber(to) {
		logger.Log.Infow("sms (log only)", "to", to, "body", body)
		return nil
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(n.cfg.TwilioFromNumber)
	params.SetBody(body)

	msg, err := n.twilio.Api.CreateMessage(params)
	if err != nil {
		logger.Log.Errorw("sms delivery failed", "to", to, "error", err)
		return err
	}

	sid := ""
	if msg.Sid != nil {
		sid = *msg.Sid
	}
	logger.Log.Infow("sms sent", "to", to, "sid", sid)
	return nil
}

// SendEmail delivers a plain-text email.
func (n *Notifier) SendEmail(ctx context.Context, to, subject, body string) error {
	if n.dialer == nil {
		logger.Log.Infow("email (log only)", "to", to, "subject", subject, "body", body)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.EmailFrom)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		logger.Log.Errorw("email delivery failed", "to", to, "error", err)
		return err
	}

	logger.Log.Infow("email sent", "to", to, "subject", subject)
	return nil
}
