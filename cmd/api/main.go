package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"campusmarket/internal/adapter/api"
	"campusmarket/internal/adapter/api/handler"
	apimiddleware "campusmarket/internal/adapter/api/middleware"
	"campusmarket/internal/adapter/api/router"
	"campusmarket/internal/adapter/repository"
	"campusmarket/internal/infrastructure/supabase"
	"campusmarket/internal/usecase"
	"campusmarket/pkg/config"
	"campusmarket/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	clientFactory, err := supabase.NewClientFactory(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase clients: %v", err)
	}
	authClient := supabase.NewAuthClient(cfg)

	listingRepo := repository.NewSupabaseListingRepository(clientFactory)
	userRepo := repository.NewSupabaseUserRepository(clientFactory, authClient)

	authUseCase := usecase.NewAuthUseCase(authClient)
	listingUseCase := usecase.NewListingUseCase(listingRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)

	handler.Setup(authUseCase, listingUseCase, userUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	router.Setup(e, authMiddleware, adminMiddleware)

	logger.Info("Starting server on port %s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
