package blogHandler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"BlogAPI/internal/api/blog"
	blogRepository "BlogAPI/internal/api/blog/repository"
	blogService "BlogAPI/internal/api/blog/service"
	"BlogAPI/internal/entity"
	"BlogAPI/internal/middleware"
	jwtPkg "BlogAPI/pkg/jwt"
	"BlogAPI/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
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

type fakeStore struct {
	blogs      map[string]entity.Blog
	categories map[string]entity.Category
	users      map[string]entity.User
}

type fakeBlogs struct{ store *fakeStore }

func (f *fakeBlogs) CreateBlog(_ context.Context, blog entity.Blog) error {
	f.store.blogs[blog.ID] = blog
	return nil
}

func (f *fakeBlogs) GetBlogByID(_ context.Context, id string) (entity.Blog, error) {
	blog, ok := f.store.blogs[id]
	if !ok {
		return entity.Blog{}, blogs.ErrBlogNotFound
	}
	return blog, nil
}

func (f *fakeBlogs) GetAllBlogs(_ context.Context, limit, offset int) ([]entity.Blog, error) {
	all := make([]entity.Blog, 0, len(f.store.blogs))
	for _, blog := range f.store.blogs {
		all = append(all, blog)
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeBlogs) UpdateBlog(_ context.Context, blog entity.Blog) error {
	if _, ok := f.store.blogs[blog.ID]; !ok {
		return blogs.ErrBlogNotFound
	}
	f.store.blogs[blog.ID] = blog
	return nil
}

type fakeCategories struct{ store *fakeStore }

func (f *fakeCategories) GetCategoryByID(_ context.Context, id string) (entity.Category, error) {
	category, ok := f.store.categories[id]
	if !ok {
		return entity.Category{}, blogs.ErrCategoryNotFound
	}
	return category, nil
}

func (f *fakeCategories) GetCategoryByName(_ context.Context, name string) (entity.Category, error) {
	for _, category := range f.store.categories {
		if string(category.Name) == name {
			return category, nil
		}
	}
	return entity.Category{}, blogs.ErrCategoryNotFound
}

func (f *fakeCategories) GetCategoriesByIDs(_ context.Context, ids []string) (map[string]entity.Category, error) {
	result := make(map[string]entity.Category, len(ids))
	for _, id := range ids {
		if category, ok := f.store.categories[id]; ok {
			result[id] = category
		}
	}
	return result, nil
}

type fakeCreators struct{ store *fakeStore }

func (f *fakeCreators) GetUserByID(_ context.Context, id string) (entity.User, error) {
	user, ok := f.store.users[id]
	if !ok {
		return entity.User{}, blogs.ErrDataIntegrity
	}
	return user, nil
}

func (f *fakeCreators) GetUsersByIDs(_ context.Context, ids []string) (map[string]entity.User, error) {
	result := make(map[string]entity.User, len(ids))
	for _, id := range ids {
		if user, ok := f.store.users[id]; ok {
			result[id] = user
		}
	}
	return result, nil
}

type fakeBlogRepo struct{ store *fakeStore }

func (f *fakeBlogRepo) NewClient(_ bool) (blogRepository.Client, error) {
	return blogRepository.Client{
		Blogs:      &fakeBlogs{store: f.store},
		Categories: &fakeCategories{store: f.store},
		Creators:   &fakeCreators{store: f.store},
		Commit:     func() error { return nil },
		Rollback:   func() error { return nil },
	}, nil
}

func newTestApp(t *testing.T) (*fiber.App, *fakeStore, jwtPkg.IJwt) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	jwtService, err := jwtPkg.New("test-secret", "HS256", 30)
	require.NoError(t, err)

	store := &fakeStore{
		blogs:      make(map[string]entity.Blog),
		categories: make(map[string]entity.Category),
		users:      make(map[string]entity.User),
	}
	service := blogService.New(logger, &fakeBlogRepo{store: store}, utils.New())
	mw := middleware.New(logger, jwtService)

	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())

	handler := New(logger, validator.New(), mw, service)
	handler.Start(app.Group("/api"))

	return app, store, jwtService
}

func tokenFor(t *testing.T, jwtService jwtPkg.IJwt, store *fakeStore, fullName, email string) (entity.User, string) {
	t.Helper()

	user := entity.User{ID: uuid.NewString(), Email: email, FullName: fullName}
	store.users[user.ID] = user

	token, _, err := jwtService.Sign(entity.UserLoginData{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	})
	require.NoError(t, err)
	return user, token
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

func TestBlogsRequireToken(t *testing.T) {
	app, _, _ := newTestApp(t)

	for _, tc := range []struct {
		method string
		target string
	}{
		{fiber.MethodGet, "/api/blogs"},
		{fiber.MethodPost, "/api/blogs"},
		{fiber.MethodPut, "/api/blogs/some-id"},
	} {
		resp, env := doJSON(t, app, tc.method, tc.target, "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s", tc.method, tc.target)
		assert.False(t, env.Success)
	}
}

func TestCreateBlogEndpoint(t *testing.T) {
	app, store, jwtService := newTestApp(t)

	_, token := tokenFor(t, jwtService, store, "Ana Example", "ana@example.com")
	store.categories["cat-1"] = entity.Category{ID: "cat-1", Name: entity.CategoryTravel}

	t.Run("success", func(t *testing.T) {
		resp, env := doJSON(t, app, fiber.MethodPost, "/api/blogs", token, blogs.UpsertBlogRequest{
			Title:    "A week in Lisbon",
			Content:  "Trams, tiles and pasteis.",
			ImageURL: "https://img.example.com/lisbon.png",
			Category: "travel",
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		require.True(t, env.Success)
		assert.Equal(t, "blog created successfully", env.Message)

		var result blogs.BlogResponse
		require.NoError(t, json.Unmarshal(env.Result, &result))
		assert.NotEmpty(t, result.ID)
		assert.Equal(t, "A week in Lisbon", result.Title)
		assert.Equal(t, "travel", result.Category.Name)
		assert.Equal(t, "Ana Example", result.Creator.FullName)
	})

	t.Run("unknown category", func(t *testing.T) {
		resp, env := doJSON(t, app, fiber.MethodPost, "/api/blogs", token, blogs.UpsertBlogRequest{
			Title:    "No such category",
			Content:  "Body",
			ImageURL: "https://img.example.com/x.png",
			Category: "sports",
		})
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.False(t, env.Success)
	})

	t.Run("title too short", func(t *testing.T) {
		resp, env := doJSON(t, app, fiber.MethodPost, "/api/blogs", token, blogs.UpsertBlogRequest{
			Title:    "ab",
			Content:  "Body",
			ImageURL: "https://img.example.com/x.png",
			Category: "travel",
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.False(t, env.Success)
	})
}

func TestUpdateBlogEndpoint(t *testing.T) {
	app, store, jwtService := newTestApp(t)

	owner, ownerToken := tokenFor(t, jwtService, store, "Ana Example", "ana@example.com")
	_, otherToken := tokenFor(t, jwtService, store, "Ben Example", "ben@example.com")
	store.categories["cat-1"] = entity.Category{ID: "cat-1", Name: entity.CategoryFood}

	_, createEnv := doJSON(t, app, fiber.MethodPost, "/api/blogs", ownerToken, blogs.UpsertBlogRequest{
		Title:    "Sourdough basics",
		Content:  "Flour, water, salt, patience.",
		ImageURL: "https://img.example.com/bread.png",
		Category: "food",
	})
	var created blogs.BlogResponse
	require.NoError(t, json.Unmarshal(createEnv.Result, &created))

	update := blogs.UpsertBlogRequest{
		Title:    "Sourdough, revisited",
		Content:  "Same dough, better shaping.",
		ImageURL: "https://img.example.com/bread2.png",
		Category: "food",
	}

	t.Run("not the owner", func(t *testing.T) {
		resp, env := doJSON(t, app, fiber.MethodPut, "/api/blogs/"+created.ID, otherToken, update)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		assert.False(t, env.Success)
	})

	t.Run("unknown blog", func(t *testing.T) {
		resp, env := doJSON(t, app, fiber.MethodPut, "/api/blogs/no-such-id", ownerToken, update)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.False(t, env.Success)
	})

	t.Run("owner", func(t *testing.T) {
		resp, env := doJSON(t, app, fiber.MethodPut, "/api/blogs/"+created.ID, ownerToken, update)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.True(t, env.Success)

		var result blogs.BlogResponse
		require.NoError(t, json.Unmarshal(env.Result, &result))
		assert.Equal(t, created.ID, result.ID)
		assert.Equal(t, "Sourdough, revisited", result.Title)
		assert.Equal(t, owner.ID, result.Creator.ID)
		assert.False(t, result.UpdatedAt.Before(created.UpdatedAt))
	})
}

func TestGetAllBlogsEndpoint(t *testing.T) {
	app, store, jwtService := newTestApp(t)

	_, token := tokenFor(t, jwtService, store, "Ana Example", "ana@example.com")
	store.categories["cat-1"] = entity.Category{ID: "cat-1", Name: entity.CategoryBusiness}

	_, createEnv := doJSON(t, app, fiber.MethodPost, "/api/blogs", token, blogs.UpsertBlogRequest{
		Title:    "Quarterly numbers",
		Content:  "Up and to the right.",
		ImageURL: "https://img.example.com/q.png",
		Category: "business",
	})
	var created blogs.BlogResponse
	require.NoError(t, json.Unmarshal(createEnv.Result, &created))

	resp, env := doJSON(t, app, fiber.MethodGet, "/api/blogs?page=1&limit=20", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.True(t, env.Success)
	assert.Equal(t, "fetched 1 blogs successfully", env.Message)

	var listed []blogs.BlogResponse
	require.NoError(t, json.Unmarshal(env.Result, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
	assert.Equal(t, created.Title, listed[0].Title)
	assert.Equal(t, created.Creator, listed[0].Creator)
	assert.Equal(t, created.Category, listed[0].Category)
}
