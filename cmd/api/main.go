package main

import (
	_ "sumee_intake/docs"
	"sumee_intake/internal/adapter/http/routes"
	"sumee_intake/internal/config"
	"sumee_intake/internal/logger"

	_ "github.com/joho/godotenv/autoload"
	zlog "github.com/rs/zerolog/log"
)

// @title           Sumee Intake API
// @version         1.0
// @description     Service intake, AI price suggestion and negotiation core backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(cfg.Environment)

	if err := routes.Run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("failed to start the application")
	}
}
