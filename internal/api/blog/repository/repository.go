package blogRepository

import (
	"BlogAPI/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Blogs:      &blogsRepository{q: sqlExecutor, log: r.log},
		Categories: &categoriesRepository{q: sqlExecutor, log: r.log},
		Creators:   &creatorsRepository{q: sqlExecutor, log: r.log},
		Commit:     commitFunc,
		Rollback:   rollbackFunc,
	}, nil
}

type Client struct {
	Blogs interface {
		CreateBlog(ctx context.Context, blog entity.Blog) error
		GetBlogByID(ctx context.Context, id string) (entity.Blog, error)
		GetAllBlogs(ctx context.Context, limit, offset int) ([]entity.Blog, error)
		UpdateBlog(ctx context.Context, blog entity.Blog) error
	}

	Categories interface {
		GetCategoryByID(ctx context.Context, id string) (entity.Category, error)
		GetCategoryByName(ctx context.Context, name string) (entity.Category, error)
		GetCategoriesByIDs(ctx context.Context, ids []string) (map[string]entity.Category, error)
	}

	Creators interface {
		GetUserByID(ctx context.Context, id string) (entity.User, error)
		GetUsersByIDs(ctx context.Context, ids []string) (map[string]entity.User, error)
	}

	Commit   func() error
	Rollback func() error
}

type blogsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type categoriesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type creatorsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
