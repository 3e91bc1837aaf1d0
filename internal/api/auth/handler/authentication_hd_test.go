package authHandler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"BlogAPI/internal/api/auth"
	authRepository "BlogAPI/internal/api/auth/repository"
	authService "BlogAPI/internal/api/auth/service"
	"BlogAPI/internal/entity"
	"BlogAPI/internal/middleware"
	"BlogAPI/pkg/bcrypt"
	jwtPkg "BlogAPI/pkg/jwt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

type fakeUsers struct {
	byID    map[string]entity.User
	byEmail map[string]entity.User
}

func (f *fakeUsers) CreateUser(_ context.Context, user entity.User) error {
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (entity.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (entity.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

type fakeAuthRepo struct {
	users *fakeUsers
}

func (f *fakeAuthRepo) NewClient(_ bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:    f.users,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTestApp(t *testing.T) (*fiber.App, jwtPkg.IJwt) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	jwtService, err := jwtPkg.New("test-secret", "HS256", 30)
	require.NoError(t, err)

	repo := &fakeAuthRepo{users: &fakeUsers{
		byID:    make(map[string]entity.User),
		byEmail: make(map[string]entity.User),
	}}
	service := authService.New(logger, repo, bcrypt.NewWithCost(4), jwtService)
	mw := middleware.New(logger, jwtService)

	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())

	handler := New(logger, service, validator.New(), mw)
	handler.Start(app.Group("/api"))

	return app, jwtService
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, payload interface{}) (*http.Response, envelope) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func registerUser(t *testing.T, app *fiber.App, email, password, fullName string) string {
	t.Helper()

	resp, env := doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", auth.RegisterUserRequest{
		Email:                email,
		Password:             password,
		ConfirmationPassword: password,
		FullName:             fullName,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.True(t, env.Success)

	var result auth.RegisterUserResponse
	require.NoError(t, json.Unmarshal(env.Result, &result))
	require.NotEmpty(t, result.UserID)
	return result.UserID
}

func TestHandleRegister(t *testing.T) {
	app, _ := newTestApp(t)

	userID := registerUser(t, app, "ana@example.com", "s3cret-password", "Ana Example")
	assert.NotEmpty(t, userID)

	t.Run("duplicate email", func(t *testing.T) {
		resp, env := doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", auth.RegisterUserRequest{
			Email:                "ana@example.com",
			Password:             "other-password",
			ConfirmationPassword: "other-password",
			FullName:             "Another Ana",
		})
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
		assert.False(t, env.Success)
		assert.Equal(t, "email already registered", env.Message)
	})

	t.Run("mismatched confirmation", func(t *testing.T) {
		resp, env := doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", auth.RegisterUserRequest{
			Email:                "ben@example.com",
			Password:             "one-password",
			ConfirmationPassword: "another-password",
			FullName:             "Ben Example",
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.False(t, env.Success)
	})

	t.Run("invalid email", func(t *testing.T) {
		resp, env := doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", auth.RegisterUserRequest{
			Email:                "not-an-email",
			Password:             "password",
			ConfirmationPassword: "password",
			FullName:             "Nobody",
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.False(t, env.Success)
	})
}

func TestHandleLogin(t *testing.T) {
	app, jwtService := newTestApp(t)
	userID := registerUser(t, app, "ana@example.com", "s3cret-password", "Ana Example")

	t.Run("success", func(t *testing.T) {
		resp, env := doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", auth.LoginUserRequest{
			Email:    "ana@example.com",
			Password: "s3cret-password",
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.True(t, env.Success)
		assert.Equal(t, "login successful", env.Message)

		var result auth.LoginUserResponse
		require.NoError(t, json.Unmarshal(env.Result, &result))
		assert.Equal(t, userID, result.ID)

		parsed, err := jwtService.Parse(result.Token)
		require.NoError(t, err)
		assert.Equal(t, userID, parsed.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp, env := doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", auth.LoginUserRequest{
			Email:    "ana@example.com",
			Password: "wrong-password",
		})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.False(t, env.Success)
	})

	t.Run("unknown email", func(t *testing.T) {
		resp, env := doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", auth.LoginUserRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.False(t, env.Success)
	})
}

func TestHandleGetUserProfile(t *testing.T) {
	app, _ := newTestApp(t)
	userID := registerUser(t, app, "ana@example.com", "s3cret-password", "Ana Example")

	_, loginEnv := doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", auth.LoginUserRequest{
		Email:    "ana@example.com",
		Password: "s3cret-password",
	})
	var login auth.LoginUserResponse
	require.NoError(t, json.Unmarshal(loginEnv.Result, &login))

	t.Run("no token", func(t *testing.T) {
		resp, env := doJSON(t, app, fiber.MethodGet, "/api/users/"+userID+"/profiles", "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.False(t, env.Success)
	})

	t.Run("garbage token", func(t *testing.T) {
		resp, env := doJSON(t, app, fiber.MethodGet, "/api/users/"+userID+"/profiles", "garbage", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.False(t, env.Success)
	})

	t.Run("success", func(t *testing.T) {
		resp, env := doJSON(t, app, fiber.MethodGet, "/api/users/"+userID+"/profiles", login.Token, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.True(t, env.Success)

		var profile auth.UserProfileResponse
		require.NoError(t, json.Unmarshal(env.Result, &profile))
		assert.Equal(t, userID, profile.ID)
		assert.Equal(t, "Ana Example", profile.FullName)
		assert.Equal(t, "ana@example.com", profile.Email)
		assert.Equal(t, entity.StubFollowingCount, profile.Following)
		assert.Equal(t, entity.StubFollowerCount, profile.Follower)
	})

	t.Run("unknown user", func(t *testing.T) {
		resp, env := doJSON(t, app, fiber.MethodGet, "/api/users/no-such-user/profiles", login.Token, nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.False(t, env.Success)
	})
}
