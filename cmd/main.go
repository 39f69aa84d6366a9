package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/saladbowl/saladbowl-backend/internal/catalog"
	"github.com/saladbowl/saladbowl-backend/internal/db"
	"github.com/saladbowl/saladbowl-backend/internal/handlers"
	"github.com/saladbowl/saladbowl-backend/internal/logger"
	"github.com/saladbowl/saladbowl-backend/internal/middleware"
	"github.com/saladbowl/saladbowl-backend/internal/observability"
	"github.com/saladbowl/saladbowl-backend/internal/repos"
	"github.com/saladbowl/saladbowl-backend/internal/server"
	"github.com/saladbowl/saladbowl-backend/internal/services"
	"github.com/saladbowl/saladbowl-backend/internal/utils"
)

const serviceName = "saladbowl-backend"

func main() {
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing
	ctx := context.Background()
	if shutdown := observability.Init(ctx, log, observability.Config{
		ServiceName: serviceName,
		Environment: utils.GetEnv("APP_ENV", "development", log),
	}); shutdown != nil {
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(sctx)
		}()
	}

	// Postgres. The site stays up without it: gateway endpoints report the
	// failure, everything in-memory keeps working.
	var feedbackRepo repos.FeedbackRepo
	var teamRepo repos.TeamInterestRepo
	var callLogRepo repos.AICallLogRepo
	postgresService, pgErr := db.NewPostgresService(log)
	if pgErr != nil {
		log.Warn("Postgres init failed", "error", pgErr)
	} else {
		if err := postgresService.AutoMigrateAll(); err != nil {
			log.Warn("Postgres auto migration failed", "error", err)
		}
		thePG := postgresService.DB()
		feedbackRepo = repos.NewFeedbackRepo(thePG, log)
		teamRepo = repos.NewTeamInterestRepo(thePG, log)
		callLogRepo = repos.NewAICallLogRepo(thePG, log)
	}

	// Catalog
	log.Info("Seeding catalog...")
	modules, journeys := catalog.SeedModules(), catalog.SeedJourneys()
	if seedPath := os.Getenv("CATALOG_SEED_FILE"); seedPath != "" {
		fileModules, fileJourneys, err := catalog.LoadSeedFile(seedPath)
		if err != nil {
			log.Error("Could not load catalog seed file", "path", seedPath, "error", err)
			os.Exit(1)
		}
		modules, journeys = fileModules, fileJourneys
	}
	store := catalog.NewMemoryStore(modules, journeys)
	progressLog := catalog.NewMemoryProgressLog()

	// Services
	log.Info("Setting up services...")
	jwtSecret := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	roleTokenTTL := time.Duration(utils.GetEnvAsInt("ROLE_TOKEN_TTL", 86400, log)) * time.Second

	anthropicClient, err := services.NewAnthropicClient(log)
	if err != nil {
		log.Error("Could not init AnthropicClient", "error", err)
		os.Exit(1)
	}
	recommendationService := services.NewRecommendationService(log, store, anthropicClient, callLogRepo)
	chatService := services.NewChatService(log, recommendationService)
	feedbackService := services.NewFeedbackService(log, feedbackRepo)
	teamService := services.NewTeamInterestService(log, teamRepo)
	progressService := services.NewProgressService(log, store, progressLog)
	moduleService := services.NewModuleService(log, store)
	dashboardService := services.NewDashboardService(log, store, progressService, feedbackService, teamService)
	authService := services.NewAuthService(log, jwtSecret, roleTokenTTL)

	// Handlers
	log.Info("Setting up handlers...")
	authHandler := handlers.NewAuthHandler(authService)
	pageHandler := handlers.NewPageHandler()
	moduleHandler := handlers.NewModuleHandler(store, progressService, feedbackService)
	chatHandler := handlers.NewChatHandler(chatService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	teamHandler := handlers.NewTeamInterestHandler(teamService)
	setupHandler := handlers.NewSetupHandler(log, postgresServiceOrNil(postgresService, pgErr), pgErr)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	adminModuleHandler := handlers.NewAdminModuleHandler(store, moduleService)

	// Middleware
	roleMiddleware := middleware.NewRoleMiddleware(log, authService)

	// Router
	log.Info("Setting up router...")
	router := server.NewRouter(server.RouterConfig{
		ServiceName:         serviceName,
		RoleMiddleware:      roleMiddleware,
		AuthHandler:         authHandler,
		PageHandler:         pageHandler,
		ModuleHandler:       moduleHandler,
		ChatHandler:         chatHandler,
		FeedbackHandler:     feedbackHandler,
		TeamInterestHandler: teamHandler,
		SetupHandler:        setupHandler,
		DashboardHandler:    dashboardHandler,
		AdminModuleHandler:  adminModuleHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}

func postgresServiceOrNil(pg *db.PostgresService, err error) *db.PostgresService {
	if err != nil {
		return nil
	}
	return pg
}
