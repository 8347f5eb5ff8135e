package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fsdevblog/mentorlink/internal/domain"
	"github.com/fsdevblog/mentorlink/internal/repository/repoargs"
	"github.com/fsdevblog/mentorlink/internal/transport/api/tokens"
	"github.com/fsdevblog/mentorlink/pkg/uow"
)

const JWTTokenExpire = 1 * time.Hour

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	jwtTokenSecret []byte
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, repoargs.UserRepoName)
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterUserArgs struct {
	Login    string
	Email    string
	Password string
	Role     domain.RoleType
}

type LoginUserArgs struct {
	Login    string
	Password string
}

// Register создает юзера в базе данных. Для роли mentor в той же транзакции
// создаются профиль ментора и пустой кошелек, поэтому отсутствующий кошелек
// для ментора в дальнейшем невозможен. После успешного создания генерирует jwt token.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, string, error) {
	password, hashErr := s.hashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering user: %s", hashErr.Error())
	}

	var user *domain.User
	var token string
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, repoargs.UserRepoName)
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}

		var userErr error
		user, userErr = userRepo.CreateUser(c, repoargs.CreateUser{
			Login:    args.Login,
			Email:    args.Email,
			Password: password,
			Role:     args.Role,
		})
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}

		if user.Role == domain.RoleMentor {
			mentorRepo, mentorRepoErr := uow.GetAs[MentorRepository](tx, repoargs.MentorRepoName)
			if mentorRepoErr != nil {
				return mentorRepoErr //nolint:wrapcheck
			}
			if _, profileErr := mentorRepo.CreateProfile(c, repoargs.CreateMentorProfile{
				UserID:      user.ID,
				DisplayName: user.Login,
			}); profileErr != nil {
				return profileErr //nolint:wrapcheck
			}

			walletRepo, walletRepoErr := uow.GetAs[WalletRepository](tx, repoargs.WalletRepoName)
			if walletRepoErr != nil {
				return walletRepoErr //nolint:wrapcheck
			}
			if _, walletErr := walletRepo.CreateWallet(c, user.ID); walletErr != nil {
				return walletErr //nolint:wrapcheck
			}
		}

		var tokenErr error
		token, tokenErr = tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
		if tokenErr != nil {
			return tokenErr //nolint:wrapcheck
		}
		return nil
	})

	if txErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", txErr)
	}
	return user, token, nil
}

// Login проверяет пару логин/пароль и возвращает юзера с новым jwt токеном.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, findErr := s.userRepo.FindByLogin(ctx, args.Login)
	if findErr != nil {
		return nil, "", fmt.Errorf("logging in user: %w", findErr)
	}

	if !s.comparePasswords(user.Password, args.Password) {
		return nil, "", fmt.Errorf("logging in user: %w", domain.ErrPasswordMissMatch)
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("logging in user: %s", tokenErr.Error())
	}
	return user, token, nil
}

func (s *UserService) hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %s", err.Error())
	}
	return string(bytes), nil
}

func (s *UserService) comparePasswords(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
