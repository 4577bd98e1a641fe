package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reputaai/reputaai/internal/application/business/usecases"
	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/shared/constants"
	"github.com/reputaai/reputaai/internal/shared/logger"
	"github.com/reputaai/reputaai/internal/shared/utils"
)

type BusinessHandler struct {
	createUC *usecases.CreateBusinessUseCase
	getUC    *usecases.GetBusinessUseCase
	listUC   *usecases.ListBusinessesUseCase
	updateUC *usecases.UpdateBusinessUseCase
	deleteUC *usecases.DeleteBusinessUseCase
	logger   logger.Interface
}

func NewBusinessHandler(
	createUC *usecases.CreateBusinessUseCase,
	getUC *usecases.GetBusinessUseCase,
	listUC *usecases.ListBusinessesUseCase,
	updateUC *usecases.UpdateBusinessUseCase,
	deleteUC *usecases.DeleteBusinessUseCase,
) *BusinessHandler {
	return &BusinessHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger.NewLogger(),
	}
}

type CreateBusinessRequest struct {
	Name       string `json:"name" binding:"required"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	ReviewLink string `json:"review_link"`
	ReplyTone  string `json:"reply_tone"`
}

type UpdateBusinessRequest struct {
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	Phone      *string `json:"phone"`
	ReviewLink *string `json:"review_link"`
	ReplyTone  *string `json:"reply_tone"`
}

type BusinessResponse struct {
	SID        string    `json:"sid"`
	Name       string    `json:"name"`
	Address    string    `json:"address,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	ReviewLink string    `json:"review_link,omitempty"`
	ReplyTone  string    `json:"reply_tone"`
	CreatedAt  time.Time `json:"created_at"`
}

func businessToResponse(b *business.Business) BusinessResponse {
	return BusinessResponse{
		SID:        b.SID,
		Name:       b.Name,
		Address:    b.Address,
		Phone:      b.Phone,
		ReviewLink: b.ReviewLink,
		ReplyTone:  b.ReplyTone,
		CreatedAt:  b.CreatedAt,
	}
}

func businessesToResponses(items []*business.Business) []BusinessResponse {
	out := make([]BusinessResponse, 0, len(items))
	for _, b := range items {
		out = append(out, businessToResponse(b))
	}
	return out
}

func (h *BusinessHandler) Create(c *gin.Context) {
	var req CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create business", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateBusinessCommand{
		OwnerID:    c.GetUint(constants.ContextKeyUserID),
		Name:       req.Name,
		Address:    req.Address,
		Phone:      req.Phone,
		ReviewLink: req.ReviewLink,
		ReplyTone:  req.ReplyTone,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, businessToResponse(result.Business), "business created")
}

func (h *BusinessHandler) Get(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetBusinessCommand{
		SID:    c.Param("sid"),
		UserID: c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", businessToResponse(result.Business))
}

func (h *BusinessHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListBusinessesCommand{
		OwnerID: c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", businessesToResponses(result.Businesses))
}

func (h *BusinessHandler) Update(c *gin.Context) {
	var req UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateBusinessCommand{
		SID:        c.Param("sid"),
		UserID:     c.GetUint(constants.ContextKeyUserID),
		Name:       req.Name,
		Address:    req.Address,
		Phone:      req.Phone,
		ReviewLink: req.ReviewLink,
		ReplyTone:  req.ReplyTone,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "business updated", businessToResponse(result.Business))
}

func (h *BusinessHandler) Delete(c *gin.Context) {
	err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteBusinessCommand{
		SID:    c.Param("sid"),
		UserID: c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
