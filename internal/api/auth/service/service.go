package authService

import (
	"context"

	"BlogAPI/internal/api/auth"
	authRepository "BlogAPI/internal/api/auth/repository"
	"BlogAPI/pkg/bcrypt"
	jwtPkg "BlogAPI/pkg/jwt"

	"github.com/sirupsen/logrus"
)

type AuthService interface {
	Auth() AuthDomain
	User() UserDomain
}

type AuthDomain interface {
	Login(c context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error)
}

type UserDomain interface {
	RegisterUser(c context.Context, req auth.RegisterUserRequest) (auth.RegisterUserResponse, error)
	GetProfile(c context.Context, id string) (auth.UserProfileResponse, error)
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	bcryptUtils    bcrypt.IBcrypt
	jwtService     jwtPkg.IJwt

	authDomain AuthDomain
	userDomain UserDomain
}

func (a *authService) Auth() AuthDomain {
	return a.authDomain
}

func (a *authService) User() UserDomain {
	return a.userDomain
}

type authDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
	jwtService  jwtPkg.IJwt
}

type userDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
}

func New(log *logrus.Logger,
	authRepo authRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	jwtService jwtPkg.IJwt,
) AuthService {
	return &authService{
		log:            log,
		authRepository: authRepo,
		bcryptUtils:    bcryptUtils,
		jwtService:     jwtService,

		authDomain: &authDomainImpl{log: log, repo: authRepo, bcryptUtils: bcryptUtils, jwtService: jwtService},
		userDomain: &userDomainImpl{log: log, repo: authRepo, bcryptUtils: bcryptUtils},
	}
}
