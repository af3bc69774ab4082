package controllers

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/tugascript/devlogs/appsearch/internal/services"
)

type Controllers struct {
	logger   *slog.Logger
	services *services.Services
	validate *validator.Validate
}

func NewControllers(
	logger *slog.Logger,
	services *services.Services,
	validate *validator.Validate,
) *Controllers {
	return &Controllers{
		logger:   logger,
		services: services,
		validate: validate,
	}
}
