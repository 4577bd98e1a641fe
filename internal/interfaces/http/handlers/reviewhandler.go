package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reputaai/reputaai/internal/application/review/usecases"
	"github.com/reputaai/reputaai/internal/domain/review"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/constants"
	"github.com/reputaai/reputaai/internal/shared/logger"
	"github.com/reputaai/reputaai/internal/shared/utils"
)

type ReviewHandler struct {
	listUC      *usecases.ListReviewsUseCase
	draftUC     *usecases.GenerateReplyDraftUseCase
	replyUC     *usecases.PostReplyUseCase
	analyticsUC *usecases.GetAnalyticsUseCase
	logger      logger.Interface
}

func NewReviewHandler(
	listUC *usecases.ListReviewsUseCase,
	draftUC *usecases.GenerateReplyDraftUseCase,
	replyUC *usecases.PostReplyUseCase,
	analyticsUC *usecases.GetAnalyticsUseCase,
) *ReviewHandler {
	return &ReviewHandler{
		listUC:      listUC,
		draftUC:     draftUC,
		replyUC:     replyUC,
		analyticsUC: analyticsUC,
		logger:      logger.NewLogger(),
	}
}

type PostReplyRequest struct {
	ReplyText string `json:"reply_text" binding:"required"`
}

type ReviewResponse struct {
	ID         uint       `json:"id"`
	ExternalID string     `json:"external_id"`
	AuthorName string     `json:"author_name"`
	Rating     int        `json:"rating"`
	Comment    string     `json:"comment,omitempty"`
	ReplyText  string     `json:"reply_text,omitempty"`
	Replied    bool       `json:"replied"`
	CreatedAt  time.Time  `json:"created_at"`
	RepliedAt  *time.Time `json:"replied_at,omitempty"`
}

func reviewToResponse(r *review.ExternalReview) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		ExternalID: r.ExternalID,
		AuthorName: r.AuthorName,
		Rating:     r.Rating,
		Comment:    r.Comment,
		ReplyText:  r.ReplyText,
		Replied:    r.Replied,
		CreatedAt:  r.CreatedAt,
		RepliedAt:  r.RepliedAt,
	}
}

func (h *ReviewHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	cmd := usecases.ListReviewsCommand{
		UserID:      c.GetUint(constants.ContextKeyUserID),
		BusinessSID: c.Param("sid"),
		Offset:      pagination.Offset(),
		Limit:       pagination.PageSize,
	}

	if raw := c.Query("rating"); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "rating must be a number")
			return
		}
		cmd.Rating = &rating
	}
	if raw := c.Query("replied"); raw != "" {
		replied, err := strconv.ParseBool(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "replied must be true or false")
			return
		}
		cmd.Replied = &replied
	}

	result, err := h.listUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]ReviewResponse, 0, len(result.Reviews))
	for _, r := range result.Reviews {
		items = append(items, reviewToResponse(r))
	}

	utils.ListSuccessResponse(c, items, result.Total, pagination.Page, pagination.PageSize)
}

func (h *ReviewHandler) GenerateDraft(c *gin.Context) {
	reviewID, err := parseReviewID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.draftUC.Execute(c.Request.Context(), usecases.GenerateReplyDraftCommand{
		UserID:   c.GetUint(constants.ContextKeyUserID),
		ReviewID: reviewID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"draft": result.Draft})
}

func (h *ReviewHandler) PostReply(c *gin.Context) {
	reviewID, err := parseReviewID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PostReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.replyUC.Execute(c.Request.Context(), usecases.PostReplyCommand{
		UserID:    c.GetUint(constants.ContextKeyUserID),
		ReviewID:  reviewID,
		ReplyText: req.ReplyText,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "reply posted", reviewToResponse(result.Review))
}

func (h *ReviewHandler) GetAnalytics(c *gin.Context) {
	result, err := h.analyticsUC.Execute(c.Request.Context(), usecases.GetAnalyticsCommand{
		UserID:      c.GetUint(constants.ContextKeyUserID),
		BusinessSID: c.Param("sid"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Stats)
}

func parseReviewID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, apperrors.NewBadRequestError("invalid review id")
	}
	return uint(id), nil
}
