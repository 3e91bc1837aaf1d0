package config

import (
	"fmt"

	"BlogAPI/database/postgres"
	authHandler "BlogAPI/internal/api/auth/handler"
	authRepository "BlogAPI/internal/api/auth/repository"
	authService "BlogAPI/internal/api/auth/service"
	blogHandler "BlogAPI/internal/api/blog/handler"
	blogRepository "BlogAPI/internal/api/blog/repository"
	blogService "BlogAPI/internal/api/blog/service"
	"BlogAPI/internal/middleware"
	"BlogAPI/pkg/bcrypt"
	jwtPkg "BlogAPI/pkg/jwt"
	"BlogAPI/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	cfg         *Config
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	jwtService  jwtPkg.IJwt
	handlers    []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithConfig(cfg *Config) ServerOption {
	return func(s *Server) error {
		s.cfg = cfg
		return nil
	}
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		if s.cfg == nil {
			return fmt.Errorf("config must be initialized before database")
		}

		db, err := postgres.New(s.cfg.DatabaseURL)
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}

		if err := postgres.Bootstrap(db); err != nil {
			return fmt.Errorf("failed to bootstrap database schema: %w", err)
		}

		s.db = db
		return nil
	}
}

func WithJWT() ServerOption {
	return func(s *Server) error {
		if s.cfg == nil {
			return fmt.Errorf("config must be initialized before jwt")
		}

		jwtService, err := jwtPkg.New(s.cfg.JWTSecret, s.cfg.JWTAlgorithm, s.cfg.JWTExpiryMinutes)
		if err != nil {
			return fmt.Errorf("failed to create jwt service: %w", err)
		}

		s.jwtService = jwtService
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		if s.jwtService == nil {
			return fmt.Errorf("jwt service must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, s.jwtService)
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.bcryptUtils, s.jwtService)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware)

	// Blog Domain
	blogRepo := blogRepository.New(s.db, s.log)
	blogServices := blogService.New(s.log, blogRepo, s.utils)
	blogHandlers := blogHandler.New(s.log, s.validator, s.middleware, blogServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, blogHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	router := s.engine.Group("/api")
	for _, h := range s.handlers {
		h.Start(router)
	}

	return s.engine.Listen(fmt.Sprintf(":%s", s.cfg.AppPort))
}

func (s *Server) Shutdown() error {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.log.Errorf("Failed to close database connection: %v", err)
		}
	}
	return s.engine.Shutdown()
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
