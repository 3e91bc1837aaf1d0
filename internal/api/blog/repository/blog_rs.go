package blogRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"BlogAPI/internal/api/blog"
	"BlogAPI/internal/entity"
	contextPkg "BlogAPI/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type BlogDB struct {
	ID         sql.NullString `db:"id"`
	Title      sql.NullString `db:"title"`
	Content    sql.NullString `db:"content"`
	ImageURL   sql.NullString `db:"image_url"`
	CreatorID  sql.NullString `db:"creator_id"`
	CategoryID sql.NullString `db:"category_id"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

func (r *blogsRepository) CreateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          blog.ID,
		"title":       blog.Title,
		"content":     blog.Content,
		"image_url":   blog.ImageURL,
		"creator_id":  blog.CreatorID,
		"category_id": blog.CategoryID,
		"created_at":  blog.CreatedAt,
		"updated_at":  blog.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateBlog named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog")
		return err
	}

	return nil
}

func (r *blogsRepository) GetBlogByID(ctx context.Context, id string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blog BlogDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetBlogByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID named query preparation err")
		return entity.Blog{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&blog); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetBlogByID no rows found")
			return entity.Blog{}, blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID execution err")
		return entity.Blog{}, err
	}

	return r.makeBlog(blog), nil
}

func (r *blogsRepository) GetAllBlogs(ctx context.Context, limit, offset int) ([]entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blogsList []BlogDB

	argsKV := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}

	query, args, err := sqlx.Named(queryGetAllBlogs, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllBlogs named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &blogsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllBlogs execution err")
		return nil, err
	}

	result := make([]entity.Blog, 0, len(blogsList))
	for _, blogDB := range blogsList {
		result = append(result, r.makeBlog(blogDB))
	}

	return result, nil
}

func (r *blogsRepository) UpdateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          blog.ID,
		"title":       blog.Title,
		"content":     blog.Content,
		"image_url":   blog.ImageURL,
		"category_id": blog.CategoryID,
		"updated_at":  blog.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         blog.ID,
		}).Warn("UpdateBlog no rows affected")
		return blogs.ErrBlogNotFound
	}

	return nil
}

func (r *blogsRepository) makeBlog(blog BlogDB) entity.Blog {
	return entity.Blog{
		ID:         blog.ID.String,
		Title:      blog.Title.String,
		Content:    blog.Content.String,
		ImageURL:   blog.ImageURL.String,
		CreatorID:  blog.CreatorID.String,
		CategoryID: blog.CategoryID.String,
		CreatedAt:  blog.CreatedAt,
		UpdatedAt:  blog.UpdatedAt,
	}
}
