package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"contentshare/internal/auth"
	"contentshare/internal/errors"
	"contentshare/internal/model"
	"contentshare/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, username, password, name, surname, email string) (*model.User, error)
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	sessions   *auth.SessionStore
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, sessions *auth.SessionStore) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		sessions:   sessions,
	}
}

// Register creates a new user with a hashed password. The username/email
// uniqueness check races with concurrent registrations; the unique indexes
// catch the loser, which also maps to ErrUserAlreadyExists.
func (s *authService) Register(ctx context.Context, username, password, name, surname, email string) (*model.User, error) {
	taken, err := s.userRepo.Exists(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("check user existence: %w", err)
	}
	if taken {
		return nil, errors.ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		Name:         name,
		Surname:      surname,
		PasswordHash: string(hashed),
		Roles:        model.StringList{model.DefaultRole},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies credentials, mints a token, and records it as the current
// server-side session credential (overwriting any previous login).
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.Generate(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	now := time.Now()
	s.sessions.Put(token, user, now, now.Add(auth.TokenExpiry))

	return token, user, nil
}
