package migration

import (
	"github.com/reputaai/reputaai/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.SessionModel{},
		&models.BusinessModel{},
		&models.ConnectedAccountModel{},
		&models.ConnectedLocationModel{},
		&models.ExternalReviewModel{},
		&models.AutomationRuleModel{},
		&models.CampaignModel{},
		&models.CampaignRecipientModel{},
	}
}
