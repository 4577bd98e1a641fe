package mappers

import (
	"github.com/reputaai/reputaai/internal/domain/automation"
	"github.com/reputaai/reputaai/internal/infrastructure/persistence/models"
)

type AutomationRuleMapper interface {
	ToEntity(model *models.AutomationRuleModel) *automation.Rule
	ToModel(entity *automation.Rule) *models.AutomationRuleModel
	ToEntities(ms []*models.AutomationRuleModel) []*automation.Rule
}

type automationRuleMapper struct{}

func NewAutomationRuleMapper() AutomationRuleMapper {
	return &automationRuleMapper{}
}

func (m *automationRuleMapper) ToEntity(model *models.AutomationRuleModel) *automation.Rule {
	if model == nil {
		return nil
	}
	return &automation.Rule{
		ID:          model.ID,
		SID:         model.SID,
		BusinessID:  model.BusinessID,
		Name:        model.Name,
		Trigger:     model.Trigger,
		Condition:   model.Condition,
		Threshold:   model.Threshold,
		Action:      model.Action,
		ActionParam: model.ActionParam,
		Enabled:     model.Enabled,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func (m *automationRuleMapper) ToModel(entity *automation.Rule) *models.AutomationRuleModel {
	if entity == nil {
		return nil
	}
	return &models.AutomationRuleModel{
		ID:          entity.ID,
		SID:         entity.SID,
		BusinessID:  entity.BusinessID,
		Name:        entity.Name,
		Trigger:     entity.Trigger,
		Condition:   entity.Condition,
		Threshold:   entity.Threshold,
		Action:      entity.Action,
		ActionParam: entity.ActionParam,
		Enabled:     entity.Enabled,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}

func (m *automationRuleMapper) ToEntities(ms []*models.AutomationRuleModel) []*automation.Rule {
	entities := make([]*automation.Rule, 0, len(ms))
	for _, model := range ms {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
