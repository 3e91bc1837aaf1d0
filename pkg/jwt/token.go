package jwtPkg

import (
	"errors"
	"time"

	"BlogAPI/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the only error Parse returns: bad signature, malformed
// payload and past expiry are all normalized to it.
var ErrInvalidToken = errors.New("invalid or expired token")

type IJwt interface {
	Sign(user entity.UserLoginData) (string, int64, error)
	Parse(accessToken string) (entity.UserLoginData, error)
	ExpiryMinutes() float64
}

type jwtService struct {
	secret []byte
	method jwt.SigningMethod
	expiry time.Duration
}

func New(secret string, algorithm string, expiryMinutes int) (IJwt, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}

	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, errors.New("unknown jwt signing algorithm: " + algorithm)
	}

	return &jwtService{
		secret: []byte(secret),
		method: method,
		expiry: time.Duration(expiryMinutes) * time.Minute,
	}, nil
}

func (j *jwtService) Sign(user entity.UserLoginData) (string, int64, error) {
	expiredAt := time.Now().Add(j.expiry).Unix()

	claims := jwt.MapClaims{
		"sub":       user.ID,
		"email":     user.Email,
		"full_name": user.FullName,
		"exp":       expiredAt,
	}

	token := jwt.NewWithClaims(j.method, claims)
	accessToken, err := token.SignedString(j.secret)
	if err != nil {
		return "", 0, err
	}

	return accessToken, expiredAt, nil
}

func (j *jwtService) Parse(accessToken string) (entity.UserLoginData, error) {
	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != j.method.Alg() {
			return nil, ErrInvalidToken
		}
		return j.secret, nil
	})
	if err != nil || !token.Valid {
		return entity.UserLoginData{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entity.UserLoginData{}, ErrInvalidToken
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return entity.UserLoginData{}, ErrInvalidToken
	}

	user := entity.UserLoginData{ID: subject}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if fullName, ok := claims["full_name"].(string); ok {
		user.FullName = fullName
	}

	return user, nil
}

func (j *jwtService) ExpiryMinutes() float64 {
	return j.expiry.Minutes()
}

// GetUserLoginData returns the user the token middleware stored on the
// request context.
func GetUserLoginData(c *fiber.Ctx) (entity.UserLoginData, error) {
	userData := c.Locals("user")

	user, ok := userData.(entity.UserLoginData)
	if !ok {
		return entity.UserLoginData{}, fiber.ErrUnauthorized
	}

	return user, nil
}
