package authService

import (
	"errors"

	"BlogAPI/internal/api/auth"
	"BlogAPI/internal/entity"
	contextPkg "BlogAPI/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *authDomainImpl) Login(c context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginUserResponse{}, err
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Login attempt for unknown email")
			return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.LoginUserResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Password comparison failed")
		return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
	}

	userData := entity.UserLoginData{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	}

	token, _, err := s.jwtService.Sign(userData)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.LoginUserResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Token created")

	return auth.LoginUserResponse{
		ID:    user.ID,
		Token: token,
	}, nil
}
