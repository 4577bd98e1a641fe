package usecases

import (
	"context"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/campaign"
)

type mockBusinessRepo struct {
	getBySIDFn func(ctx context.Context, sid string) (*business.Business, error)
}

func (m *mockBusinessRepo) Create(ctx context.Context, b *business.Business) error { return nil }

func (m *mockBusinessRepo) GetByID(ctx context.Context, id uint) (*business.Business, error) {
	return nil, nil
}

func (m *mockBusinessRepo) GetBySID(ctx context.Context, sid string) (*business.Business, error) {
	return m.getBySIDFn(ctx, sid)
}

func (m *mockBusinessRepo) ListByOwnerID(ctx context.Context, ownerID uint) ([]*business.Business, error) {
	return nil, nil
}

func (m *mockBusinessRepo) List(ctx context.Context, offset, limit int) ([]*business.Business, int64, error) {
	return nil, 0, nil
}

func (m *mockBusinessRepo) Update(ctx context.Context, b *business.Business) error { return nil }

func (m *mockBusinessRepo) Delete(ctx context.Context, id uint) error { return nil }

type mockCampaignRepo struct {
	createFn          func(ctx context.Context, c *campaign.Campaign) error
	getBySIDFn        func(ctx context.Context, sid string) (*campaign.Campaign, error)
	listFn            func(ctx context.Context, businessID uint) ([]*campaign.Campaign, error)
	updateFn          func(ctx context.Context, c *campaign.Campaign) error
	deleteFn          func(ctx context.Context, id uint) error
	addRecipientsFn   func(ctx context.Context, campaignID uint, recipients []*campaign.Recipient) error
	listRecipientsFn  func(ctx context.Context, campaignID uint) ([]*campaign.Recipient, error)
	updateRecipientFn func(ctx context.Context, r *campaign.Recipient) error
}

func (m *mockCampaignRepo) Create(ctx context.Context, c *campaign.Campaign) error {
	return m.createFn(ctx, c)
}

func (m *mockCampaignRepo) GetBySID(ctx context.Context, sid string) (*campaign.Campaign, error) {
	return m.getBySIDFn(ctx, sid)
}

func (m *mockCampaignRepo) ListByBusinessID(ctx context.Context, businessID uint) ([]*campaign.Campaign, error) {
	return m.listFn(ctx, businessID)
}

func (m *mockCampaignRepo) Update(ctx context.Context, c *campaign.Campaign) error {
	return m.updateFn(ctx, c)
}

func (m *mockCampaignRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

func (m *mockCampaignRepo) AddRecipients(ctx context.Context, campaignID uint, recipients []*campaign.Recipient) error {
	return m.addRecipientsFn(ctx, campaignID, recipients)
}

func (m *mockCampaignRepo) ListRecipients(ctx context.Context, campaignID uint) ([]*campaign.Recipient, error) {
	return m.listRecipientsFn(ctx, campaignID)
}

func (m *mockCampaignRepo) UpdateRecipient(ctx context.Context, r *campaign.Recipient) error {
	if m.updateRecipientFn == nil {
		return nil
	}
	return m.updateRecipientFn(ctx, r)
}

type mockEmailSender struct {
	sendFn func(to, subject, markdownBody string) error
}

func (m *mockEmailSender) SendCampaignEmail(to, subject, markdownBody string) error {
	return m.sendFn(to, subject, markdownBody)
}

type mockMessageSender struct {
	smsFn      func(ctx context.Context, phone, message string) error
	whatsappFn func(ctx context.Context, phone, message string) error
}

func (m *mockMessageSender) SendSMS(ctx context.Context, phone, message string) error {
	return m.smsFn(ctx, phone, message)
}

func (m *mockMessageSender) SendWhatsApp(ctx context.Context, phone, message string) error {
	return m.whatsappFn(ctx, phone, message)
}
