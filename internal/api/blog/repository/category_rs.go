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

type CategoryDB struct {
	ID        sql.NullString `db:"id"`
	Name      sql.NullString `db:"name"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r *categoriesRepository) GetCategoryByID(ctx context.Context, id string) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var category CategoryDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetCategoryByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByID named query preparation err")
		return entity.Category{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&category); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Category{}, blogs.ErrCategoryNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByID execution err")
		return entity.Category{}, err
	}

	return r.makeCategory(category), nil
}

func (r *categoriesRepository) GetCategoryByName(ctx context.Context, name string) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var category CategoryDB

	argsKV := map[string]interface{}{
		"name": name,
	}

	query, args, err := sqlx.Named(queryGetCategoryByName, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByName named query preparation err")
		return entity.Category{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&category); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Category{}, blogs.ErrCategoryNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByName execution err")
		return entity.Category{}, err
	}

	return r.makeCategory(category), nil
}

// GetCategoriesByIDs batch-fetches categories for the eager-load step of
// blog listing. Missing ids are simply absent from the returned map.
func (r *categoriesRepository) GetCategoriesByIDs(ctx context.Context, ids []string) (map[string]entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)
	result := make(map[string]entity.Category, len(ids))

	if len(ids) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(queryGetCategoriesByIDs, ids)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoriesByIDs in query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	var categoriesList []CategoryDB
	if err := r.q.SelectContext(ctx, &categoriesList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoriesByIDs execution err")
		return nil, err
	}

	for _, categoryDB := range categoriesList {
		category := r.makeCategory(categoryDB)
		result[category.ID] = category
	}

	return result, nil
}

func (r *categoriesRepository) makeCategory(category CategoryDB) entity.Category {
	return entity.Category{
		ID:        category.ID.String,
		Name:      entity.CategoryName(category.Name.String),
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}
