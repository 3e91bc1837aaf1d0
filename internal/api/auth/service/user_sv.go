package authService

import (
	"errors"
	"time"

	"BlogAPI/internal/api/auth"
	"BlogAPI/internal/entity"
	contextPkg "BlogAPI/pkg/context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *userDomainImpl) RegisterUser(c context.Context, req auth.RegisterUserRequest) (auth.RegisterUserResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.RegisterUserResponse{}, err
	}
	defer repo.Rollback()

	_, err = repo.Users.GetByEmail(c, req.Email)
	if err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Email already registered")
		return auth.RegisterUserResponse{}, auth.ErrEmailAlreadyExists
	}
	if !errors.Is(err, auth.ErrUserNotFound) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check existing email")
		return auth.RegisterUserResponse{}, err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return auth.RegisterUserResponse{}, err
	}

	now := time.Now()

	user := entity.User{
		ID:        uuid.NewString(),
		Email:     req.Email,
		Password:  hashedPassword,
		FullName:  req.FullName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Users.CreateUser(c, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return auth.RegisterUserResponse{}, auth.ErrCreateUser
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return auth.RegisterUserResponse{}, auth.ErrCreateUser
	}

	return auth.RegisterUserResponse{UserID: user.ID}, nil
}

func (s *userDomainImpl) GetProfile(c context.Context, id string) (auth.UserProfileResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UserProfileResponse{}, err
	}

	user, err := repo.Users.GetByID(c, id)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("User not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get user")
		}
		return auth.UserProfileResponse{}, err
	}

	return auth.UserProfileResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		Following: entity.StubFollowingCount,
		Follower:  entity.StubFollowerCount,
	}, nil
}
