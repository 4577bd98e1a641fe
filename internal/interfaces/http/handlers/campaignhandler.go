package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reputaai/reputaai/internal/application/campaign/usecases"
	"github.com/reputaai/reputaai/internal/domain/campaign"
	"github.com/reputaai/reputaai/internal/shared/constants"
	"github.com/reputaai/reputaai/internal/shared/logger"
	"github.com/reputaai/reputaai/internal/shared/utils"
)

type CampaignHandler struct {
	createUC         *usecases.CreateCampaignUseCase
	listUC           *usecases.ListCampaignsUseCase
	addRecipientsUC  *usecases.AddRecipientsUseCase
	listRecipientsUC *usecases.ListRecipientsUseCase
	sendUC           *usecases.SendCampaignUseCase
	archiveUC        *usecases.ArchiveCampaignUseCase
	logger           logger.Interface
}

func NewCampaignHandler(
	createUC *usecases.CreateCampaignUseCase,
	listUC *usecases.ListCampaignsUseCase,
	addRecipientsUC *usecases.AddRecipientsUseCase,
	listRecipientsUC *usecases.ListRecipientsUseCase,
	sendUC *usecases.SendCampaignUseCase,
	archiveUC *usecases.ArchiveCampaignUseCase,
) *CampaignHandler {
	return &CampaignHandler{
		createUC:         createUC,
		listUC:           listUC,
		addRecipientsUC:  addRecipientsUC,
		listRecipientsUC: listRecipientsUC,
		sendUC:           sendUC,
		archiveUC:        archiveUC,
		logger:           logger.NewLogger(),
	}
}

type CreateCampaignRequest struct {
	Name     string `json:"name" binding:"required"`
	Channel  string `json:"channel" binding:"required"`
	Template string `json:"template"`
}

type AddRecipientsRequest struct {
	Contacts []string `json:"contacts" binding:"required,min=1"`
}

type CampaignResponse struct {
	SID       string    `json:"id"`
	Name      string    `json:"name"`
	Channel   string    `json:"channel"`
	Template  string    `json:"template,omitempty"`
	Status    string    `json:"status"`
	SentCount uint      `json:"sent_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RecipientResponse struct {
	Contact   string     `json:"contact"`
	Token     string     `json:"token"`
	Status    string     `json:"status"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func campaignToResponse(cmp *campaign.Campaign) CampaignResponse {
	return CampaignResponse{
		SID:       cmp.SID,
		Name:      cmp.Name,
		Channel:   cmp.Channel,
		Template:  cmp.Template,
		Status:    cmp.Status,
		SentCount: cmp.SentCount,
		CreatedAt: cmp.CreatedAt,
		UpdatedAt: cmp.UpdatedAt,
	}
}

func recipientToResponse(r *campaign.Recipient) RecipientResponse {
	return RecipientResponse{
		Contact:   r.Contact,
		Token:     r.Token,
		Status:    r.Status,
		SentAt:    r.SentAt,
		CreatedAt: r.CreatedAt,
	}
}

func (h *CampaignHandler) Create(c *gin.Context) {
	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateCampaignCommand{
		UserID:      c.GetUint(constants.ContextKeyUserID),
		BusinessSID: c.Param("sid"),
		Name:        req.Name,
		Channel:     req.Channel,
		Template:    req.Template,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, campaignToResponse(result.Campaign), "campaign created")
}

func (h *CampaignHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListCampaignsCommand{
		UserID:      c.GetUint(constants.ContextKeyUserID),
		BusinessSID: c.Param("sid"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	campaigns := make([]CampaignResponse, 0, len(result.Campaigns))
	for _, cmp := range result.Campaigns {
		campaigns = append(campaigns, campaignToResponse(cmp))
	}

	utils.SuccessResponse(c, http.StatusOK, "campaigns retrieved", gin.H{"campaigns": campaigns})
}

func (h *CampaignHandler) AddRecipients(c *gin.Context) {
	var req AddRecipientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.addRecipientsUC.Execute(c.Request.Context(), usecases.AddRecipientsCommand{
		UserID:      c.GetUint(constants.ContextKeyUserID),
		BusinessSID: c.Param("sid"),
		CampaignSID: c.Param("campaign_sid"),
		Contacts:    req.Contacts,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	recipients := make([]RecipientResponse, 0, len(result.Recipients))
	for _, r := range result.Recipients {
		recipients = append(recipients, recipientToResponse(r))
	}

	utils.CreatedResponse(c, gin.H{"recipients": recipients}, "recipients added")
}

func (h *CampaignHandler) ListRecipients(c *gin.Context) {
	result, err := h.listRecipientsUC.Execute(c.Request.Context(), usecases.ListRecipientsCommand{
		UserID:      c.GetUint(constants.ContextKeyUserID),
		BusinessSID: c.Param("sid"),
		CampaignSID: c.Param("campaign_sid"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	recipients := make([]RecipientResponse, 0, len(result.Recipients))
	for _, r := range result.Recipients {
		recipients = append(recipients, recipientToResponse(r))
	}

	utils.SuccessResponse(c, http.StatusOK, "recipients retrieved", gin.H{"recipients": recipients})
}

func (h *CampaignHandler) Send(c *gin.Context) {
	result, err := h.sendUC.Execute(c.Request.Context(), usecases.SendCampaignCommand{
		UserID:      c.GetUint(constants.ContextKeyUserID),
		BusinessSID: c.Param("sid"),
		CampaignSID: c.Param("campaign_sid"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	payload := gin.H{
		"sent":   result.Sent,
		"failed": result.Failed,
	}
	if len(result.Links) > 0 {
		payload["links"] = result.Links
	}

	utils.SuccessResponse(c, http.StatusOK, "campaign dispatched", payload)
}

func (h *CampaignHandler) Archive(c *gin.Context) {
	err := h.archiveUC.Execute(c.Request.Context(), usecases.ArchiveCampaignCommand{
		UserID:      c.GetUint(constants.ContextKeyUserID),
		BusinessSID: c.Param("sid"),
		CampaignSID: c.Param("campaign_sid"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
