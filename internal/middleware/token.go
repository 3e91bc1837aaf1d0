package middleware

import (
	"strings"

	"BlogAPI/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// NewTokenMiddleware guards a route with a bearer token. Every failure mode
// (missing header, malformed header, bad signature, expired token) answers
// 401 with the same message.
func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")

	if authHeader == "" {
		m.log.WithFields(logrus.Fields{
			"path":   ctx.Path(),
			"method": ctx.Method(),
		}).Warn("Authorization header is missing")
		return m.unauthorized(ctx)
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		m.log.WithFields(logrus.Fields{
			"path": ctx.Path(),
		}).Warn("Authorization header format is invalid")
		return m.unauthorized(ctx)
	}

	accessToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if accessToken == "" {
		return m.unauthorized(ctx)
	}

	user, err := m.jwtService.Parse(accessToken)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"path":  ctx.Path(),
			"error": err.Error(),
		}).Warn("Token verification failed")
		return m.unauthorized(ctx)
	}

	ctx.Locals("user", user)
	return ctx.Next()
}

func (m *middleware) unauthorized(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusUnauthorized).
		JSON(response.Failure("unauthorized, access token invalid or expired"))
}
