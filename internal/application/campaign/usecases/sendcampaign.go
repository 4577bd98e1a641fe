package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/campaign"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type SendCampaignCommand struct {
	UserID      uint
	BusinessSID string
	CampaignSID string
}

type SendCampaignResult struct {
	Sent   int
	Failed int
	// Links carries the tokenized review links for the qr channel, which
	// has no outbound delivery.
	Links map[string]string
}

// SendCampaignUseCase dispatches a campaign to its pending recipients over
// the campaign's channel. Delivery failures mark the recipient failed and
// move on; the campaign records only successful sends.
type SendCampaignUseCase struct {
	businessRepo business.Repository
	campaignRepo campaign.Repository
	emailSender  EmailSender
	msgSender    MessageSender
	logger       logger.Interface
}

func NewSendCampaignUseCase(
	businessRepo business.Repository,
	campaignRepo campaign.Repository,
	emailSender EmailSender,
	msgSender MessageSender,
	logger logger.Interface,
) *SendCampaignUseCase {
	return &SendCampaignUseCase{
		businessRepo: businessRepo,
		campaignRepo: campaignRepo,
		emailSender:  emailSender,
		msgSender:    msgSender,
		logger:       logger,
	}
}

func (uc *SendCampaignUseCase) Execute(ctx context.Context, cmd SendCampaignCommand) (*SendCampaignResult, error) {
	biz, err := uc.businessRepo.GetBySID(ctx, cmd.BusinessSID)
	if err != nil {
		return nil, err
	}
	if biz.OwnerID != cmd.UserID {
		return nil, apperrors.NewNotFoundError("business not found")
	}

	cmp, err := uc.campaignRepo.GetBySID(ctx, cmd.CampaignSID)
	if err != nil {
		return nil, err
	}
	if cmp.BusinessID != biz.ID {
		return nil, apperrors.NewNotFoundError("campaign not found")
	}
	if cmp.Status == campaign.StatusArchived {
		return nil, apperrors.NewBadRequestError("campaign is archived")
	}

	recipients, err := uc.campaignRepo.ListRecipients(ctx, cmp.ID)
	if err != nil {
		return nil, err
	}

	result := &SendCampaignResult{}
	if cmp.Channel == campaign.ChannelQR {
		result.Links = make(map[string]string)
	}

	now := time.Now()
	for _, rcpt := range recipients {
		if rcpt.Status != campaign.RecipientPending {
			continue
		}

		link := reviewLink(biz.ReviewLink, rcpt.Token)

		if cmp.Channel == campaign.ChannelQR {
			// nothing is delivered; the caller renders the QR codes
			result.Links[rcpt.Contact] = link
			result.Sent++
			rcpt.Status = campaign.RecipientSent
			rcpt.SentAt = &now
		} else if err := uc.deliver(ctx, cmp, biz, rcpt.Contact, link); err != nil {
			uc.logger.Warnw("campaign delivery failed",
				"campaign_sid", cmp.SID,
				"channel", cmp.Channel,
				"contact", rcpt.Contact,
				"error", err)
			result.Failed++
			rcpt.Status = campaign.RecipientFailed
		} else {
			result.Sent++
			rcpt.Status = campaign.RecipientSent
			rcpt.SentAt = &now
		}

		if err := uc.campaignRepo.UpdateRecipient(ctx, rcpt); err != nil {
			uc.logger.Warnw("failed to persist recipient status",
				"campaign_sid", cmp.SID,
				"contact", rcpt.Contact,
				"error", err)
		}
	}

	if result.Sent > 0 {
		cmp.RecordSent(uint(result.Sent))
	}
	if cmp.Status == campaign.StatusDraft {
		cmp.Activate()
	}
	if err := uc.campaignRepo.Update(ctx, cmp); err != nil {
		return nil, err
	}

	uc.logger.Infow("campaign dispatched",
		"campaign_sid", cmp.SID,
		"channel", cmp.Channel,
		"sent", result.Sent,
		"failed", result.Failed)

	return result, nil
}

func (uc *SendCampaignUseCase) deliver(ctx context.Context, cmp *campaign.Campaign, biz *business.Business, contact, link string) error {
	switch cmp.Channel {
	case campaign.ChannelEmail:
		body := fmt.Sprintf("%s\n\n[Leave us a review](%s)", cmp.Template, link)
		subject := fmt.Sprintf("How was your visit to %s?", biz.Name)
		return uc.emailSender.SendCampaignEmail(contact, subject, body)
	case campaign.ChannelSMS:
		return uc.msgSender.SendSMS(ctx, contact, textMessage(cmp.Template, link))
	case campaign.ChannelWhatsApp:
		return uc.msgSender.SendWhatsApp(ctx, contact, textMessage(cmp.Template, link))
	default:
		return fmt.Errorf("unknown channel: %s", cmp.Channel)
	}
}

func textMessage(template, link string) string {
	return strings.TrimSpace(template) + " " + link
}

func reviewLink(base, token string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "t=" + token
}
