package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reputaai/reputaai/internal/application/connection/usecases"
	"github.com/reputaai/reputaai/internal/shared/constants"
	"github.com/reputaai/reputaai/internal/shared/logger"
	"github.com/reputaai/reputaai/internal/shared/utils"
)

type ConnectionHandler struct {
	initiateUC   *usecases.InitiateConnectUseCase
	callbackUC   *usecases.HandleCallbackUseCase
	locationsUC  *usecases.ListLocationsUseCase
	selectUC     *usecases.SelectLocationUseCase
	disconnectUC *usecases.DisconnectUseCase
	logger       logger.Interface
}

func NewConnectionHandler(
	initiateUC *usecases.InitiateConnectUseCase,
	callbackUC *usecases.HandleCallbackUseCase,
	locationsUC *usecases.ListLocationsUseCase,
	selectUC *usecases.SelectLocationUseCase,
	disconnectUC *usecases.DisconnectUseCase,
) *ConnectionHandler {
	return &ConnectionHandler{
		initiateUC:   initiateUC,
		callbackUC:   callbackUC,
		locationsUC:  locationsUC,
		selectUC:     selectUC,
		disconnectUC: disconnectUC,
		logger:       logger.NewLogger(),
	}
}

type SelectLocationRequest struct {
	LocationName string `json:"location_name" binding:"required"`
	Title        string `json:"title"`
}

type LocationOptionResponse struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Address     string `json:"address,omitempty"`
	AccountName string `json:"account_name"`
}

func (h *ConnectionHandler) Connect(c *gin.Context) {
	result, err := h.initiateUC.Execute(c.Request.Context(), usecases.InitiateConnectCommand{
		UserID: c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"auth_url": result.AuthURL})
}

// Callback lands from the provider with state + code in the query string.
// It is unauthenticated; the state token carries the user binding.
func (h *ConnectionHandler) Callback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "missing state or code")
		return
	}

	_, err := h.callbackUC.Execute(c.Request.Context(), usecases.HandleCallbackCommand{
		State: state,
		Code:  code,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "account connected", nil)
}

func (h *ConnectionHandler) ListLocations(c *gin.Context) {
	result, err := h.locationsUC.Execute(c.Request.Context(), usecases.ListLocationsCommand{
		UserID: c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	options := make([]LocationOptionResponse, 0, len(result.Locations))
	for _, loc := range result.Locations {
		options = append(options, LocationOptionResponse{
			Name:        loc.Name,
			Title:       loc.Title,
			Address:     loc.Address,
			AccountName: loc.AccountName,
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "", options)
}

func (h *ConnectionHandler) SelectLocation(c *gin.Context) {
	var req SelectLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.selectUC.Execute(c.Request.Context(), usecases.SelectLocationCommand{
		UserID:       c.GetUint(constants.ContextKeyUserID),
		BusinessSID:  c.Param("sid"),
		LocationName: req.LocationName,
		Title:        req.Title,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "location selected", gin.H{
		"location_name": result.Location.LocationName,
		"title":         result.Location.Title,
	})
}

func (h *ConnectionHandler) Disconnect(c *gin.Context) {
	err := h.disconnectUC.Execute(c.Request.Context(), usecases.DisconnectCommand{
		UserID: c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "account disconnected", nil)
}
