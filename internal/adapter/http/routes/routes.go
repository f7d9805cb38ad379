package routes

import (
	"context"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "sumee_intake/docs" // swagger generated docs
	"sumee_intake/internal/adapter/http/handlers"
	"sumee_intake/internal/adapter/http/middleware"
	"sumee_intake/internal/adapter/persistence/repository"
	"sumee_intake/internal/auth"
	"sumee_intake/internal/config"
	"sumee_intake/internal/infrastructure/classifier"
	"sumee_intake/internal/infrastructure/database"
	"sumee_intake/internal/usecase"
)

// Run wires every dependency and starts the HTTP server. It blocks until the
// listener fails.
func Run(cfg *config.Config, log zerolog.Logger) error {
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := registerRoutes(router, cfg, log); err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting http server")
	return router.Run(addr)
}

func registerRoutes(router *gin.Engine, cfg *config.Config, log zerolog.Logger) error {
	ddb, err := database.ConnectDynamoDB(context.Background())
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}

	leadRepo := repository.NewLeadDynamoRepository(ddb, cfg.Tables.Leads)
	statsRepo := repository.NewHistoricalPriceDynamoRepository(ddb, cfg.Tables.HistoricalPrices)
	profileRepo := repository.NewProviderProfileDynamoRepository(ddb, cfg.Tables.Profiles)

	svcClassifier, err := classifier.NewGeminiClassifier(cfg.Classifier, log)
	if err != nil {
		return fmt.Errorf("init classifier: %w", err)
	}

	leadUseCase := usecase.NewLeadUseCase(leadRepo, statsRepo, profileRepo, svcClassifier, cfg.Classifier.Timeout, log)
	negotiationUseCase := usecase.NewNegotiationUseCase(leadRepo, profileRepo, log)

	leadHandler := handlers.NewLeadHandler(leadUseCase)
	negotiationHandler := handlers.NewNegotiationHandler(negotiationUseCase)

	requireAuth := middleware.RequireAuth(auth.NewParser(cfg.Auth.AccessSecret))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLeadRoutes(v1, leadHandler, negotiationHandler, requireAuth)
	return nil
}

func setMiddlewares(router *gin.Engine, log zerolog.Logger) {
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))
}
