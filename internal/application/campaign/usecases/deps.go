// Package usecases implements review-request campaign management and the
// channel dispatch at send time.
package usecases

import "context"

// EmailSender delivers a campaign email with a markdown body.
type EmailSender interface {
	SendCampaignEmail(to, subject, markdownBody string) error
}

// MessageSender delivers campaign messages over the SMS/WhatsApp gateway.
type MessageSender interface {
	SendSMS(ctx context.Context, phone, message string) error
	SendWhatsApp(ctx context.Context, phone, message string) error
}
