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

type CreatorDB struct {
	ID        sql.NullString `db:"id"`
	Email     sql.NullString `db:"email"`
	Password  sql.NullString `db:"password"`
	FullName  sql.NullString `db:"full_name"`
	AvatarURL sql.NullString `db:"avatar_url"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r *creatorsRepository) GetUserByID(ctx context.Context, id string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var user CreatorDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetCreatorByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByID named query preparation err")
		return entity.User{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetUserByID no rows found")
			return entity.User{}, blogs.ErrDataIntegrity
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByID execution err")
		return entity.User{}, err
	}

	return r.makeUser(user), nil
}

// GetUsersByIDs batch-fetches blog creators for the eager-load step of
// blog listing. Missing ids are simply absent from the returned map.
func (r *creatorsRepository) GetUsersByIDs(ctx context.Context, ids []string) (map[string]entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	result := make(map[string]entity.User, len(ids))

	if len(ids) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(queryGetCreatorsByIDs, ids)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUsersByIDs in query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	var usersList []CreatorDB
	if err := r.q.SelectContext(ctx, &usersList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUsersByIDs execution err")
		return nil, err
	}

	for _, userDB := range usersList {
		user := r.makeUser(userDB)
		result[user.ID] = user
	}

	return result, nil
}

func (r *creatorsRepository) makeUser(user CreatorDB) entity.User {
	return entity.User{
		ID:        user.ID.String,
		Email:     user.Email.String,
		FullName:  user.FullName.String,
		AvatarURL: user.AvatarURL.String,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
