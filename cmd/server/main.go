package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/hobbyconnect/server/internal/config"
	"github.com/hobbyconnect/server/internal/database"
	"github.com/hobbyconnect/server/internal/handlers"
	"github.com/hobbyconnect/server/internal/push"
	"github.com/hobbyconnect/server/internal/recommend"
	"github.com/hobbyconnect/server/internal/storage"
	ws "github.com/hobbyconnect/server/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const AppVersion = "1.0.0"

func main() {
	cfg := config.LoadConfigOrPanic()
	logger := newLogger(cfg.AppConfig.LogLevel)
	slog.SetDefault(logger)

	logger.Info(fmt.Sprintf("HobbyConnect Server v%s", AppVersion))

	db, err := database.Initialize(cfg.DBConfig)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	store := storage.New(db)

	hub := ws.NewHub(store.CreateChatMessage)
	go hub.Run()

	ctx := context.Background()

	recommender := recommend.NewService(newGenerator(ctx, cfg.GeminiConfig, logger), store)

	var notifier push.Notifier = push.LogNotifier{}
	if cfg.FirebaseConfig.ProjectID != "" {
		fcm, err := push.NewFCMNotifier(ctx, cfg.FirebaseConfig.ProjectID, cfg.FirebaseConfig.CredentialsFile)
		if err != nil {
			logger.Error("failed to initialize FCM", "error", err)
			os.Exit(1)
		}
		notifier = fcm
		logger.Info("push notifications enabled", "project_id", cfg.FirebaseConfig.ProjectID)
	} else {
		logger.Warn("FIREBASE_PROJECT_ID not set, push notifications run in mock mode")
	}
	meetupNotifier := push.NewMeetupNotifier(store, notifier)

	h := handlers.New(store, hub, cfg, recommender, meetupNotifier)
	router := setupRouter(h, cfg, logger)

	startHTTP(router, cfg, logger)
}

// newGenerator returns the Gemini-backed generator, or a disabled one
// when no API key is configured so the rest of the app still runs.
func newGenerator(ctx context.Context, cfg config.GeminiConfig, logger *slog.Logger) recommend.Generator {
	if cfg.APIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, recommendation generation disabled")
		return disabledGenerator{}
	}

	generator, err := recommend.NewGeminiGenerator(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		logger.Error("failed to initialize Gemini client", "error", err)
		os.Exit(1)
	}
	logger.Info("recommendation generation enabled", "model", cfg.Model)
	return generator
}

type disabledGenerator struct{}

func (disabledGenerator) Generate(ctx context.Context, profile recommend.Profile) ([]recommend.Hobby, error) {
	return nil, fmt.Errorf("generator not configured: %w", recommend.ErrGenerationFailed)
}

func setupRouter(h *handlers.Handlers, cfg config.Config, logger *slog.Logger) *gin.Engine {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(slogGinLogger(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.AppConfig.CORSOrigins) == 1 && cfg.AppConfig.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AppConfig.CORSOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/ws", h.HandleWebSocket)

	api := router.Group("/api")
	{
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)
		api.GET("/communities", h.ListCommunities)
		api.GET("/communities/:id", h.GetCommunity)
	}

	auth := api.Group("")
	auth.Use(h.AuthMiddleware())
	{
		auth.GET("/auth/user", h.GetCurrentUser)
		auth.PATCH("/users/profile", h.UpdateProfile)
		auth.POST("/fcm/register", h.RegisterFCMToken)

		auth.POST("/recommendations", h.RateLimitGeneration(), h.GenerateRecommendations)
		auth.GET("/recommendations", h.ListRecommendations)

		auth.POST("/communities", h.CreateCommunity)
		auth.GET("/communities/nearby", h.ListNearbyCommunities)
		auth.POST("/communities/:id/join", h.JoinCommunity)
		auth.POST("/communities/:id/leave", h.LeaveCommunity)
		auth.GET("/communities/:id/messages", h.GetChatHistory)
		auth.GET("/users/communities", h.ListUserCommunities)

		auth.POST("/lightning-meetups", h.CreateMeetup)
		auth.GET("/lightning-meetups", h.ListMeetups)
		auth.GET("/lightning-meetups/:id", h.GetMeetup)
		auth.POST("/lightning-meetups/:id/join", h.JoinMeetup)
		auth.POST("/lightning-meetups/:id/leave", h.LeaveMeetup)
		auth.GET("/users/lightning-meetups", h.ListUserMeetups)
	}

	return router
}

func startHTTP(router *gin.Engine, cfg config.Config, logger *slog.Logger) {
	addr := ":" + strconv.Itoa(cfg.AppConfig.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Starting HTTP server", "addr", addr)

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to start HTTP server", "error", err)
		os.Exit(1)
	}
}
