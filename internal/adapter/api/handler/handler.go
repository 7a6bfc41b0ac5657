package handler

import (
	"campusmarket/internal/usecase"
)

var (
	authHandler    *AuthHandler
	listingHandler *ListingHandler
	userHandler    *UserHandler
	adminHandler   *AdminHandler
	healthHandler  *HealthHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	listingUseCase *usecase.ListingUseCase,
	userUseCase *usecase.UserUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	listingHandler = NewListingHandler(listingUseCase)
	userHandler = NewUserHandler(userUseCase)
	adminHandler = NewAdminHandler(listingUseCase, userUseCase)
	healthHandler = NewHealthHandler()
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
