package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reputaai/reputaai/internal/application/automation/usecases"
	"github.com/reputaai/reputaai/internal/domain/automation"
	"github.com/reputaai/reputaai/internal/shared/constants"
	"github.com/reputaai/reputaai/internal/shared/logger"
	"github.com/reputaai/reputaai/internal/shared/utils"
)

type AutomationHandler struct {
	createRuleUC *usecases.CreateRuleUseCase
	listRulesUC  *usecases.ListRulesUseCase
	updateRuleUC *usecases.UpdateRuleUseCase
	deleteRuleUC *usecases.DeleteRuleUseCase
	logger       logger.Interface
}

func NewAutomationHandler(
	createRuleUC *usecases.CreateRuleUseCase,
	listRulesUC *usecases.ListRulesUseCase,
	updateRuleUC *usecases.UpdateRuleUseCase,
	deleteRuleUC *usecases.DeleteRuleUseCase,
) *AutomationHandler {
	return &AutomationHandler{
		createRuleUC: createRuleUC,
		listRulesUC:  listRulesUC,
		updateRuleUC: updateRuleUC,
		deleteRuleUC: deleteRuleUC,
		logger:       logger.NewLogger(),
	}
}

type CreateRuleRequest struct {
	Name        string `json:"name" binding:"required"`
	Condition   string `json:"condition" binding:"required"`
	Threshold   int    `json:"threshold"`
	Action      string `json:"action" binding:"required"`
	ActionParam string `json:"action_param"`
}

type UpdateRuleRequest struct {
	Name        *string `json:"name"`
	ActionParam *string `json:"action_param"`
	Enabled     *bool   `json:"enabled"`
}

type RuleResponse struct {
	SID         string    `json:"id"`
	Name        string    `json:"name"`
	Condition   string    `json:"condition"`
	Threshold   int       `json:"threshold"`
	Action      string    `json:"action"`
	ActionParam string    `json:"action_param,omitempty"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ruleToResponse(rule *automation.Rule) RuleResponse {
	return RuleResponse{
		SID:         rule.SID,
		Name:        rule.Name,
		Condition:   rule.Condition,
		Threshold:   rule.Threshold,
		Action:      rule.Action,
		ActionParam: rule.ActionParam,
		Enabled:     rule.Enabled,
		CreatedAt:   rule.CreatedAt,
		UpdatedAt:   rule.UpdatedAt,
	}
}

func (h *AutomationHandler) Create(c *gin.Context) {
	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createRuleUC.Execute(c.Request.Context(), usecases.CreateRuleCommand{
		UserID:      c.GetUint(constants.ContextKeyUserID),
		BusinessSID: c.Param("sid"),
		Name:        req.Name,
		Condition:   req.Condition,
		Threshold:   req.Threshold,
		Action:      req.Action,
		ActionParam: req.ActionParam,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, ruleToResponse(result.Rule), "rule created")
}

func (h *AutomationHandler) List(c *gin.Context) {
	result, err := h.listRulesUC.Execute(c.Request.Context(), usecases.ListRulesCommand{
		UserID:      c.GetUint(constants.ContextKeyUserID),
		BusinessSID: c.Param("sid"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	rules := make([]RuleResponse, 0, len(result.Rules))
	for _, rule := range result.Rules {
		rules = append(rules, ruleToResponse(rule))
	}

	utils.SuccessResponse(c, http.StatusOK, "rules retrieved", gin.H{"rules": rules})
}

func (h *AutomationHandler) Update(c *gin.Context) {
	var req UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateRuleUC.Execute(c.Request.Context(), usecases.UpdateRuleCommand{
		UserID:      c.GetUint(constants.ContextKeyUserID),
		BusinessSID: c.Param("sid"),
		RuleSID:     c.Param("rule_sid"),
		Name:        req.Name,
		ActionParam: req.ActionParam,
		Enabled:     req.Enabled,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "rule updated", ruleToResponse(result.Rule))
}

func (h *AutomationHandler) Delete(c *gin.Context) {
	err := h.deleteRuleUC.Execute(c.Request.Context(), usecases.DeleteRuleCommand{
		UserID:      c.GetUint(constants.ContextKeyUserID),
		BusinessSID: c.Param("sid"),
		RuleSID:     c.Param("rule_sid"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
