// Package http wires the application use cases into the Gin HTTP surface.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	adminUC "github.com/reputaai/reputaai/internal/application/admin/usecases"
	automationUC "github.com/reputaai/reputaai/internal/application/automation/usecases"
	businessUC "github.com/reputaai/reputaai/internal/application/business/usecases"
	campaignUC "github.com/reputaai/reputaai/internal/application/campaign/usecases"
	connectionUC "github.com/reputaai/reputaai/internal/application/connection/usecases"
	reviewUC "github.com/reputaai/reputaai/internal/application/review/usecases"
	syncUC "github.com/reputaai/reputaai/internal/application/sync/usecases"
	userUC "github.com/reputaai/reputaai/internal/application/user/usecases"
	"github.com/reputaai/reputaai/internal/infrastructure/auth"
	"github.com/reputaai/reputaai/internal/infrastructure/cache"
	"github.com/reputaai/reputaai/internal/infrastructure/config"
	"github.com/reputaai/reputaai/internal/infrastructure/crypto"
	"github.com/reputaai/reputaai/internal/infrastructure/email"
	"github.com/reputaai/reputaai/internal/infrastructure/google"
	"github.com/reputaai/reputaai/internal/infrastructure/messaging"
	"github.com/reputaai/reputaai/internal/infrastructure/repository"
	"github.com/reputaai/reputaai/internal/interfaces/http/handlers"
	"github.com/reputaai/reputaai/internal/interfaces/http/middleware"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

// Router holds the configured engine and the handlers behind it.
type Router struct {
	engine            *gin.Engine
	cfg               *config.Config
	authHandler       *handlers.AuthHandler
	businessHandler   *handlers.BusinessHandler
	connectionHandler *handlers.ConnectionHandler
	reviewHandler     *handlers.ReviewHandler
	syncHandler       *handlers.SyncHandler
	automationHandler *handlers.AutomationHandler
	campaignHandler   *handlers.CampaignHandler
	adminHandler      *handlers.AdminHandler
	authMiddleware    *middleware.AuthMiddleware
	adminOnly         *middleware.AdminOnly
	rateLimiter       *middleware.RateLimiter
}

// NewRouter builds the full dependency graph: repositories, provider
// clients, use cases, handlers, and middleware.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db, log)
	sessionRepo := repository.NewSessionRepository(db, log)
	businessRepo := repository.NewBusinessRepository(db, log)
	accountRepo := repository.NewConnectedAccountRepository(db, log)
	locationRepo := repository.NewConnectedLocationRepository(db, log)
	reviewRepo := repository.NewExternalReviewRepository(db, log)
	ruleRepo := repository.NewAutomationRuleRepository(db, log)
	campaignRepo := repository.NewCampaignRepository(db, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	jwtService := &jwtServiceAdapter{jwtSvc}

	cipher, err := crypto.NewTokenCipher(cfg.Crypto.TokenSecret)
	if err != nil {
		return nil, err
	}

	googleOAuth := auth.NewGoogleOAuthClient(auth.GoogleOAuthConfig{
		ClientID:     cfg.OAuth.Google.ClientID,
		ClientSecret: cfg.OAuth.Google.ClientSecret,
		RedirectURL:  cfg.OAuth.Google.RedirectURL,
	})
	oauthClient := &oauthClientAdapter{googleOAuth}
	profileClient := google.NewClient()
	tokenManager := google.NewTokenManager(accountRepo, cipher, googleOAuth, log)

	stateStore := cache.NewOAuthStateStore(redisClient)
	analyticsCache := cache.NewAnalyticsCache(redisClient)
	syncLock := cache.NewSyncLock(redisClient)

	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	})
	gateway := messaging.NewGatewayClient(cfg.Messaging.APIURL, cfg.Messaging.APIKey, cfg.Messaging.Sender, 10*time.Second)

	registerUC := userUC.NewRegisterWithPasswordUseCase(userRepo, hasher, log)
	loginUC := userUC.NewLoginWithPasswordUseCase(userRepo, sessionRepo, hasher, jwtService, log)
	refreshUC := userUC.NewRefreshTokenUseCase(sessionRepo, jwtService, jwtService, log)
	logoutUC := userUC.NewLogoutUseCase(sessionRepo, log)
	getMeUC := userUC.NewGetMeUseCase(userRepo, log)

	createBusinessUC := businessUC.NewCreateBusinessUseCase(businessRepo, log)
	getBusinessUC := businessUC.NewGetBusinessUseCase(businessRepo, log)
	listBusinessesUC := businessUC.NewListBusinessesUseCase(businessRepo, log)
	updateBusinessUC := businessUC.NewUpdateBusinessUseCase(businessRepo, log)
	deleteBusinessUC := businessUC.NewDeleteBusinessUseCase(businessRepo, locationRepo, log)

	initiateUC := connectionUC.NewInitiateConnectUseCase(oauthClient, stateStore, log)
	callbackUC := connectionUC.NewHandleCallbackUseCase(accountRepo, oauthClient, stateStore, cipher, log)
	listLocationsUC := connectionUC.NewListLocationsUseCase(accountRepo, profileClient, tokenManager, log)
	selectLocationUC := connectionUC.NewSelectLocationUseCase(businessRepo, accountRepo, locationRepo, log)
	disconnectUC := connectionUC.NewDisconnectUseCase(accountRepo, log)

	createRuleUC := automationUC.NewCreateRuleUseCase(businessRepo, ruleRepo, log)
	listRulesUC := automationUC.NewListRulesUseCase(businessRepo, ruleRepo, log)
	updateRuleUC := automationUC.NewUpdateRuleUseCase(businessRepo, ruleRepo, log)
	deleteRuleUC := automationUC.NewDeleteRuleUseCase(businessRepo, ruleRepo, log)
	evaluator := automationUC.NewEvaluator(
		ruleRepo, businessRepo, locationRepo, accountRepo, reviewRepo,
		profileClient, tokenManager, emailService, log,
	)

	syncLocationUC := syncUC.NewSyncLocationUseCase(
		accountRepo, businessRepo, reviewRepo,
		profileClient, tokenManager, evaluator, analyticsCache, log,
	)
	syncAllUC := syncUC.NewSyncAllUseCase(locationRepo, syncLocationUC, syncLock, cfg.Sync.Workers, log)
	syncBusinessUC := syncUC.NewSyncBusinessUseCase(businessRepo, locationRepo, syncLocationUC, log)

	listReviewsUC := reviewUC.NewListReviewsUseCase(businessRepo, reviewRepo, log)
	draftUC := reviewUC.NewGenerateReplyDraftUseCase(businessRepo, reviewRepo, log)
	postReplyUC := reviewUC.NewPostReplyUseCase(
		businessRepo, reviewRepo, locationRepo, accountRepo,
		profileClient, tokenManager, analyticsCache, log,
	)
	analyticsUC := reviewUC.NewGetAnalyticsUseCase(businessRepo, reviewRepo, analyticsCache, log)

	createCampaignUC := campaignUC.NewCreateCampaignUseCase(businessRepo, campaignRepo, log)
	listCampaignsUC := campaignUC.NewListCampaignsUseCase(businessRepo, campaignRepo, log)
	addRecipientsUC := campaignUC.NewAddRecipientsUseCase(businessRepo, campaignRepo, log)
	listRecipientsUC := campaignUC.NewListRecipientsUseCase(businessRepo, campaignRepo, log)
	sendCampaignUC := campaignUC.NewSendCampaignUseCase(businessRepo, campaignRepo, emailService, gateway, log)
	archiveCampaignUC := campaignUC.NewArchiveCampaignUseCase(businessRepo, campaignRepo, log)

	adminListUC := adminUC.NewListBusinessesUseCase(businessRepo, log)
	adminStatsUC := adminUC.NewGetStatsUseCase(businessRepo, locationRepo, log)

	return &Router{
		engine: engine,
		cfg:    cfg,
		authHandler: handlers.NewAuthHandler(
			registerUC, loginUC, refreshUC, logoutUC, getMeUC,
		),
		businessHandler: handlers.NewBusinessHandler(
			createBusinessUC, getBusinessUC, listBusinessesUC, updateBusinessUC, deleteBusinessUC,
		),
		connectionHandler: handlers.NewConnectionHandler(
			initiateUC, callbackUC, listLocationsUC, selectLocationUC, disconnectUC,
		),
		reviewHandler: handlers.NewReviewHandler(
			listReviewsUC, draftUC, postReplyUC, analyticsUC,
		),
		syncHandler: handlers.NewSyncHandler(syncAllUC, syncBusinessUC),
		automationHandler: handlers.NewAutomationHandler(
			createRuleUC, listRulesUC, updateRuleUC, deleteRuleUC,
		),
		campaignHandler: handlers.NewCampaignHandler(
			createCampaignUC, listCampaignsUC, addRecipientsUC, listRecipientsUC,
			sendCampaignUC, archiveCampaignUC,
		),
		adminHandler:   handlers.NewAdminHandler(adminListUC, adminStatsUC),
		authMiddleware: middleware.NewAuthMiddleware(jwtSvc, log),
		adminOnly:      middleware.NewAdminOnly(userRepo, cfg.Auth.AdminEmails, log),
		rateLimiter:    middleware.NewRateLimiter(redisClient, 100, time.Minute),
	}, nil
}

// SetupRoutes registers every route group on the engine.
func (r *Router) SetupRoutes(log logger.Interface) {
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := r.authMiddleware.RequireAuth()

	authRoutes := r.engine.Group("/auth")
	{
		authRoutes.POST("/register", r.rateLimiter.Limit(), r.authHandler.Register)
		authRoutes.POST("/login", r.rateLimiter.Limit(), r.authHandler.Login)
		authRoutes.POST("/refresh", r.authHandler.Refresh)
		authRoutes.POST("/logout", requireAuth, r.authHandler.Logout)
		authRoutes.GET("/me", requireAuth, r.authHandler.Me)
	}

	googleRoutes := r.engine.Group("/google")
	{
		googleRoutes.GET("/connect", requireAuth, r.connectionHandler.Connect)
		// The provider redirects here; the state parameter carries the
		// user binding.
		googleRoutes.GET("/callback", r.connectionHandler.Callback)
		googleRoutes.GET("/locations", requireAuth, r.connectionHandler.ListLocations)
		googleRoutes.DELETE("/disconnect", requireAuth, r.connectionHandler.Disconnect)
	}

	businesses := r.engine.Group("/businesses")
	businesses.Use(requireAuth)
	{
		businesses.POST("", r.businessHandler.Create)
		businesses.GET("", r.businessHandler.List)
		businesses.GET("/:sid", r.businessHandler.Get)
		businesses.PUT("/:sid", r.businessHandler.Update)
		businesses.DELETE("/:sid", r.businessHandler.Delete)

		businesses.POST("/:sid/location", r.connectionHandler.SelectLocation)
		businesses.POST("/:sid/sync", r.syncHandler.SyncBusiness)

		businesses.GET("/:sid/reviews", r.reviewHandler.List)
		businesses.GET("/:sid/analytics", r.reviewHandler.GetAnalytics)

		businesses.POST("/:sid/automations", r.automationHandler.Create)
		businesses.GET("/:sid/automations", r.automationHandler.List)
		businesses.PUT("/:sid/automations/:rule_sid", r.automationHandler.Update)
		businesses.DELETE("/:sid/automations/:rule_sid", r.automationHandler.Delete)

		businesses.POST("/:sid/campaigns", r.campaignHandler.Create)
		businesses.GET("/:sid/campaigns", r.campaignHandler.List)
		businesses.POST("/:sid/campaigns/:campaign_sid/recipients", r.campaignHandler.AddRecipients)
		businesses.GET("/:sid/campaigns/:campaign_sid/recipients", r.campaignHandler.ListRecipients)
		businesses.POST("/:sid/campaigns/:campaign_sid/send", r.campaignHandler.Send)
		businesses.DELETE("/:sid/campaigns/:campaign_sid", r.campaignHandler.Archive)
	}

	reviews := r.engine.Group("/reviews")
	reviews.Use(requireAuth)
	{
		reviews.POST("/:id/draft", r.reviewHandler.GenerateDraft)
		reviews.POST("/:id/reply", r.reviewHandler.PostReply)
	}

	cron := r.engine.Group("/cron")
	cron.Use(middleware.CronSecret(r.cfg.Sync.CronSecret))
	{
		cron.GET("/sync", r.syncHandler.CronSync)
	}

	admin := r.engine.Group("/admin")
	admin.Use(requireAuth, r.adminOnly.Require())
	{
		admin.GET("/businesses", r.adminHandler.ListBusinesses)
		admin.GET("/stats", r.adminHandler.GetStats)
	}
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
