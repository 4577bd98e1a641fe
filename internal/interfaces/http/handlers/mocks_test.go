package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/reputaai/reputaai/internal/domain/automation"
	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/campaign"
	"github.com/reputaai/reputaai/internal/shared/constants"
)

// authedRouter returns a test engine whose requests run as user 1.
func authedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, uint(1))
		c.Next()
	})
	return r
}

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

// ownedBusinessRepo serves a business owned by ownerID for any SID lookup.
func ownedBusinessRepo(ownerID uint) *mockBusinessRepo {
	return &mockBusinessRepo{
		getBySIDFn: func(ctx context.Context, sid string) (*business.Business, error) {
			return &business.Business{
				ID:         10,
				SID:        sid,
				OwnerID:    ownerID,
				Name:       "Cafe Aurora",
				ReviewLink: "https://g.page/r/cafe-aurora/review",
			}, nil
		},
	}
}

type mockRuleRepo struct {
	createFn func(ctx context.Context, r *automation.Rule) error
}

func (m *mockRuleRepo) Create(ctx context.Context, r *automation.Rule) error {
	return m.createFn(ctx, r)
}

func (m *mockRuleRepo) GetBySID(ctx context.Context, sid string) (*automation.Rule, error) {
	return nil, nil
}

func (m *mockRuleRepo) ListByBusinessID(ctx context.Context, businessID uint) ([]*automation.Rule, error) {
	return nil, nil
}

func (m *mockRuleRepo) Update(ctx context.Context, r *automation.Rule) error { return nil }

func (m *mockRuleRepo) Delete(ctx context.Context, id uint) error { return nil }

type mockCampaignRepo struct {
	createFn        func(ctx context.Context, c *campaign.Campaign) error
	getBySIDFn      func(ctx context.Context, sid string) (*campaign.Campaign, error)
	addRecipientsFn func(ctx context.Context, campaignID uint, recipients []*campaign.Recipient) error
}

func (m *mockCampaignRepo) Create(ctx context.Context, c *campaign.Campaign) error {
	return m.createFn(ctx, c)
}

func (m *mockCampaignRepo) GetBySID(ctx context.Context, sid string) (*campaign.Campaign, error) {
	return m.getBySIDFn(ctx, sid)
}

func (m *mockCampaignRepo) ListByBusinessID(ctx context.Context, businessID uint) ([]*campaign.Campaign, error) {
	return nil, nil
}

func (m *mockCampaignRepo) Update(ctx context.Context, c *campaign.Campaign) error { return nil }

func (m *mockCampaignRepo) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockCampaignRepo) AddRecipients(ctx context.Context, campaignID uint, recipients []*campaign.Recipient) error {
	return m.addRecipientsFn(ctx, campaignID, recipients)
}

func (m *mockCampaignRepo) ListRecipients(ctx context.Context, campaignID uint) ([]*campaign.Recipient, error) {
	return nil, nil
}

func (m *mockCampaignRepo) UpdateRecipient(ctx context.Context, r *campaign.Recipient) error {
	return nil
}
