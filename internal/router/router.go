package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dondr1/lastminparty/internal/cache"
	"github.com/dondr1/lastminparty/internal/config"
	"github.com/dondr1/lastminparty/internal/handler"
	"github.com/dondr1/lastminparty/internal/metrics"
	"github.com/dondr1/lastminparty/internal/middleware"
	"github.com/dondr1/lastminparty/internal/repository"
	"github.com/dondr1/lastminparty/internal/service"
)

func Setup(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics(m))

	// Repositories
	profileRepo := repository.NewProfileRepository(db)
	eventRepo := repository.NewEventRepository(db)
	decisionRepo := repository.NewDecisionRepository(db)
	inviteRepo := repository.NewInviteRepository(db)
	hostDecisionRepo := repository.NewHostDecisionRepository(db)
	participantRepo := repository.NewParticipantRepository(db)

	// Services
	profileCache := cache.NewProfileCache(redisClient, time.Duration(cfg.App.ProfileCacheTTL)*time.Second, logger)
	profileService := service.NewProfileService(profileRepo, profileCache, logger)
	eventService := service.NewEventService(eventRepo, m, logger)
	decisionService := service.NewDecisionService(decisionRepo, eventRepo, m, logger)
	inviteService := service.NewInviteService(inviteRepo, eventRepo, m, logger)
	waitlistService := service.NewWaitlistService(eventRepo, decisionRepo, inviteRepo, hostDecisionRepo, participantRepo, m, logger)

	// Handlers
	profileHandler := handler.NewProfileHandler(profileService)
	eventHandler := handler.NewEventHandler(eventService)
	swipeHandler := handler.NewSwipeHandler(decisionService, inviteService, logger)
	inviteHandler := handler.NewInviteHandler(inviteService)
	waitlistHandler := handler.NewWaitlistHandler(waitlistService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	// Health and metrics endpoints (no auth)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := middleware.Auth(cfg.JWT.Secret)
	guard := middleware.SubmitGuard(redisClient, time.Duration(cfg.App.SubmitGuardTTL)*time.Second, logger)

	api := r.Group("/api")
	api.Use(auth)
	{
		profiles := api.Group("/profiles")
		{
			profiles.POST("", guard, profileHandler.UpsertProfile)
			profiles.GET("/me", profileHandler.GetMyProfile)
			profiles.GET("/me/exists", profileHandler.GetMyProfileExists)
			profiles.GET("/:userId", profileHandler.GetProfile)
		}

		events := api.Group("/events")
		{
			events.POST("", guard, eventHandler.CreateEvent)
			events.GET("/feed", eventHandler.GetFeed)
			events.GET("/hosting", eventHandler.GetHosting)
			events.GET("/attending", eventHandler.GetAttending)
			events.GET("/:eventId", eventHandler.GetEvent)
			events.PATCH("/:eventId", eventHandler.UpdateEvent)

			events.POST("/:eventId/swipes", swipeHandler.RecordSwipe)
			events.GET("/:eventId/swipes/me", swipeHandler.GetSwipe)

			events.GET("/:eventId/waitlist", waitlistHandler.GetWaitlist)
			events.GET("/:eventId/waitlist/queue", waitlistHandler.GetQueue)
			events.GET("/:eventId/decisions", waitlistHandler.GetDecisions)
			events.PUT("/:eventId/decisions/:userId", waitlistHandler.Decide)
			events.GET("/:eventId/attendees", waitlistHandler.GetAttendees)
			events.DELETE("/:eventId/attendees/:userId", waitlistHandler.Evict)
		}

		invites := api.Group("/invites")
		{
			invites.GET("", inviteHandler.GetMyInvites)
			invites.PATCH("/:inviteId", guard, inviteHandler.UpdateStatus)
		}
	}

	return r
}
