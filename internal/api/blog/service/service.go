package blogService

import (
	"context"

	"BlogAPI/internal/api/blog"
	blogRepository "BlogAPI/internal/api/blog/repository"
	"BlogAPI/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IBlogsService interface {
	GetAllBlogs(ctx context.Context, page, limit int) ([]blogs.BlogResponse, error)
	CreateBlog(ctx context.Context, req blogs.UpsertBlogRequest, userID string) (blogs.BlogResponse, error)
	UpdateBlog(ctx context.Context, id string, req blogs.UpsertBlogRequest, userID string) (blogs.BlogResponse, error)
}

type blogsService struct {
	log       *logrus.Logger
	blogsRepo blogRepository.Repository
	utils     utils.IUtils
}

func New(
	log *logrus.Logger,
	blogsRepo blogRepository.Repository,
	utils utils.IUtils,
) IBlogsService {
	return &blogsService{
		log:       log,
		blogsRepo: blogsRepo,
		utils:     utils,
	}
}
