package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeySessionID = "session_id"
	ContextKeyRequestID = "request_id"

	// User status
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"

	// Review sync
	SyncLockKey       = "reputaai:sync:lock"
	AnalyticsCacheKey = "reputaai:analytics:business:%s"

	// Table names
	TableUsers              = "users"
	TableSessions           = "sessions"
	TableBusinesses         = "businesses"
	TableConnectedAccounts  = "connected_accounts"
	TableConnectedLocations = "connected_locations"
	TableExternalReviews    = "external_reviews"
	TableAutomationRules    = "automation_rules"
	TableCampaigns          = "campaigns"
	TableCampaignRecipients = "campaign_recipients"
)
