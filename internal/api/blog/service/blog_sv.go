package blogService

import (
	"errors"
	"time"

	"BlogAPI/internal/api/blog"
	blogRepository "BlogAPI/internal/api/blog/repository"
	"BlogAPI/internal/entity"
	contextPkg "BlogAPI/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *blogsService) GetAllBlogs(ctx context.Context, page, limit int) ([]blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	offset := (page - 1) * limit

	blogsList, err := repo.Blogs.GetAllBlogs(ctx, limit, offset)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"page":       page,
			"limit":      limit,
			"error":      err.Error(),
		}).Error("Failed to get blogs")
		return nil, err
	}

	// Two-step eager load: one pass for the page of blogs, one batch
	// fetch for the distinct creators and categories they reference.
	creatorIDs := make([]string, 0, len(blogsList))
	categoryIDs := make([]string, 0, len(blogsList))
	seenCreators := make(map[string]bool, len(blogsList))
	seenCategories := make(map[string]bool, len(blogsList))

	for _, blog := range blogsList {
		if !seenCreators[blog.CreatorID] {
			seenCreators[blog.CreatorID] = true
			creatorIDs = append(creatorIDs, blog.CreatorID)
		}
		if !seenCategories[blog.CategoryID] {
			seenCategories[blog.CategoryID] = true
			categoryIDs = append(categoryIDs, blog.CategoryID)
		}
	}

	creators, err := repo.Creators.GetUsersByIDs(ctx, creatorIDs)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to batch-fetch creators")
		return nil, err
	}

	categories, err := repo.Categories.GetCategoriesByIDs(ctx, categoryIDs)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to batch-fetch categories")
		return nil, err
	}

	response := make([]blogs.BlogResponse, 0, len(blogsList))
	for _, blog := range blogsList {
		creator, ok := creators[blog.CreatorID]
		if !ok {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    blog.ID,
				"creator_id": blog.CreatorID,
			}).Error("Blog references a missing creator")
			return nil, blogs.ErrDataIntegrity
		}

		category, ok := categories[blog.CategoryID]
		if !ok {
			s.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"blog_id":     blog.ID,
				"category_id": blog.CategoryID,
			}).Error("Blog references a missing category")
			return nil, blogs.ErrDataIntegrity
		}

		response = append(response, makeBlogResponse(blog, creator, category))
	}

	return response, nil
}

func (s *blogsService) CreateBlog(ctx context.Context, req blogs.UpsertBlogRequest, userID string) (blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogResponse{}, err
	}
	defer repo.Rollback()

	category, err := s.resolveCategory(ctx, repo, req.Category)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"category":   req.Category,
		}).Warn("Blog category not found")
		return blogs.BlogResponse{}, err
	}

	creator, err := repo.Creators.GetUserByID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"creator_id": userID,
			"error":      err.Error(),
		}).Error("Failed to load blog creator")
		return blogs.BlogResponse{}, err
	}

	blogID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return blogs.BlogResponse{}, err
	}

	now := time.Now()

	blog := entity.Blog{
		ID:         blogID,
		Title:      req.Title,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		CreatorID:  userID,
		CategoryID: category.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := repo.Blogs.CreateBlog(ctx, blog); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create blog")
		return blogs.BlogResponse{}, blogs.ErrCreateBlog
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.BlogResponse{}, blogs.ErrCreateBlog
	}

	return makeBlogResponse(blog, creator, category), nil
}

func (s *blogsService) UpdateBlog(ctx context.Context, id string, req blogs.UpsertBlogRequest, userID string) (blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogResponse{}, err
	}
	defer repo.Rollback()

	existingBlog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get blog")
		}
		return blogs.BlogResponse{}, err
	}

	if existingBlog.CreatorID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"id":           id,
			"blog_creator": existingBlog.CreatorID,
			"request_user": userID,
		}).Warn("User is not the creator of the blog")
		return blogs.BlogResponse{}, blogs.ErrBlogNotOwned
	}

	category, err := s.resolveCategory(ctx, repo, req.Category)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"category":   req.Category,
		}).Warn("Blog category not found")
		return blogs.BlogResponse{}, err
	}

	creator, err := repo.Creators.GetUserByID(ctx, existingBlog.CreatorID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"creator_id": existingBlog.CreatorID,
			"error":      err.Error(),
		}).Error("Failed to load blog creator")
		return blogs.BlogResponse{}, err
	}

	// Full replace, not a partial patch.
	blog := existingBlog
	blog.Title = req.Title
	blog.Content = req.Content
	blog.ImageURL = req.ImageURL
	blog.CategoryID = category.ID
	blog.UpdatedAt = time.Now()

	if err := repo.Blogs.UpdateBlog(ctx, blog); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update blog")
		return blogs.BlogResponse{}, blogs.ErrUpdateBlog
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.BlogResponse{}, blogs.ErrUpdateBlog
	}

	return makeBlogResponse(blog, creator, category), nil
}

// resolveCategory looks the category up by id first and falls back to its
// name, so clients may send either.
func (s *blogsService) resolveCategory(ctx context.Context, repo blogRepository.Client, idOrName string) (entity.Category, error) {
	category, err := repo.Categories.GetCategoryByID(ctx, idOrName)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, blogs.ErrCategoryNotFound) {
		return entity.Category{}, err
	}

	return repo.Categories.GetCategoryByName(ctx, idOrName)
}

func makeBlogResponse(blog entity.Blog, creator entity.User, category entity.Category) blogs.BlogResponse {
	return blogs.BlogResponse{
		ID:       blog.ID,
		Title:    blog.Title,
		Content:  blog.Content,
		ImageURL: blog.ImageURL,
		Category: blogs.CategoryResponse{
			ID:   category.ID,
			Name: string(category.Name),
		},
		Creator: blogs.CreatorResponse{
			ID:        creator.ID,
			FullName:  creator.FullName,
			Email:     creator.Email,
			AvatarURL: creator.AvatarURL,
			Following: entity.StubFollowingCount,
			Follower:  entity.StubFollowerCount,
		},
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}
}
