package blogHandler

import (
	blogService "BlogAPI/internal/api/blog/service"
	"BlogAPI/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogsHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	blogsService blogService.IBlogsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs blogService.IBlogsService,
) *BlogsHandler {
	return &BlogsHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		blogsService: bs,
	}
}

func (h *BlogsHandler) Start(srv fiber.Router) {
	blogs := srv.Group("/blogs")

	blogs.Get("", h.middleware.NewTokenMiddleware, h.GetAllBlogs)
	blogs.Post("", h.middleware.NewTokenMiddleware, h.CreateBlog)
	blogs.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateBlog)
}
