package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reputaai/reputaai/internal/application/sync/usecases"
	"github.com/reputaai/reputaai/internal/shared/constants"
	"github.com/reputaai/reputaai/internal/shared/logger"
	"github.com/reputaai/reputaai/internal/shared/utils"
)

type SyncHandler struct {
	syncAllUC      *usecases.SyncAllUseCase
	syncBusinessUC *usecases.SyncBusinessUseCase
	logger         logger.Interface
}

func NewSyncHandler(
	syncAllUC *usecases.SyncAllUseCase,
	syncBusinessUC *usecases.SyncBusinessUseCase,
) *SyncHandler {
	return &SyncHandler{
		syncAllUC:      syncAllUC,
		syncBusinessUC: syncBusinessUC,
		logger:         logger.NewLogger(),
	}
}

// CronSync runs the full reconciliation pass. Gated by the cron-secret
// middleware; the response deliberately exposes only aggregate counts.
func (h *SyncHandler) CronSync(c *gin.Context) {
	result, err := h.syncAllUC.Execute(c.Request.Context(), usecases.SyncAllCommand{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "sync completed", gin.H{
		"locations": result.Locations,
		"processed": result.Processed,
		"new":       result.New,
		"failed":    result.Failed,
	})
}

func (h *SyncHandler) SyncBusiness(c *gin.Context) {
	result, err := h.syncBusinessUC.Execute(c.Request.Context(), usecases.SyncBusinessCommand{
		UserID:      c.GetUint(constants.ContextKeyUserID),
		BusinessSID: c.Param("sid"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "sync completed", gin.H{
		"processed": result.Processed,
		"new":       result.New,
	})
}
