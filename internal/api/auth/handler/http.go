package authHandler

import (
	authService "BlogAPI/internal/api/auth/service"
	"BlogAPI/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log         *logrus.Logger
	authService authService.AuthService
	validator   *validator.Validate
	middleware  middleware.Middleware
}

func New(
	log *logrus.Logger,
	as authService.AuthService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *AuthHandler {
	return &AuthHandler{
		log:         log,
		authService: as,
		validator:   validate,
		middleware:  middleware,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")
	auth.Post("/login", h.HandleLogin)
	auth.Post("/register", h.HandleRegister)

	users := srv.Group("/users")
	users.Get("/:id/profiles", h.middleware.NewTokenMiddleware, h.HandleGetUserProfile)
}
