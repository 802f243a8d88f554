package main

import (
	"github.com/sirupsen/logrus"

	"github.com/duacyd/analitica/api"
	"github.com/duacyd/analitica/config"
	"github.com/duacyd/analitica/controller"
	"github.com/duacyd/analitica/repository"
	"github.com/duacyd/analitica/service"
)

func main() {
	log := logrus.New()

	cfg := config.Load()
	if cfg.SecretKey == config.DevSecretKey {
		log.Warn("SECRET_KEY not set, using development default")
	}

	db := config.OpenDB(cfg.Database, log)
	if db != nil {
		defer config.CloseDB(db, log)
	}

	users := repository.NewUserRepository(db, log)
	authService := service.NewAuthService(users)
	tokens := config.NewJWT(cfg.SecretKey)

	authController := controller.NewAuthController(authService, tokens)
	moduleController := controller.NewModuleController()

	router := api.SetupRoutes(log, tokens, authController, moduleController)
	server := api.NewServer(":"+cfg.Port, router, log)

	server.StartWithGracefulShutdown()
}
