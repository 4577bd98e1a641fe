package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reputaai/reputaai/internal/application/admin/usecases"
	"github.com/reputaai/reputaai/internal/shared/logger"
	"github.com/reputaai/reputaai/internal/shared/utils"
)

type AdminHandler struct {
	listBusinessesUC *usecases.ListBusinessesUseCase
	getStatsUC       *usecases.GetStatsUseCase
	logger           logger.Interface
}

func NewAdminHandler(
	listBusinessesUC *usecases.ListBusinessesUseCase,
	getStatsUC *usecases.GetStatsUseCase,
) *AdminHandler {
	return &AdminHandler{
		listBusinessesUC: listBusinessesUC,
		getStatsUC:       getStatsUC,
		logger:           logger.NewLogger(),
	}
}

func (h *AdminHandler) ListBusinesses(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listBusinessesUC.Execute(c.Request.Context(), usecases.ListBusinessesCommand{
		Offset: pagination.Offset(),
		Limit:  pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	businesses := make([]BusinessResponse, 0, len(result.Businesses))
	for _, b := range result.Businesses {
		businesses = append(businesses, businessToResponse(b))
	}

	utils.ListSuccessResponse(c, businesses, result.Total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	result, err := h.getStatsUC.Execute(c.Request.Context(), usecases.GetStatsCommand{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "stats retrieved", gin.H{
		"businesses":          result.Businesses,
		"connected_locations": result.ConnectedLocations,
	})
}
