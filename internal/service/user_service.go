package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"contentshare/internal/auth"
	"contentshare/internal/errors"
	"contentshare/internal/model"
	"contentshare/internal/repository"
)

// UpdateUserInput carries the optional fields of a user update. Blank
// fields leave the stored value unchanged.
type UpdateUserInput struct {
	Username string
	Name     string
	Surname  string
	Email    string
	Password string
}

// UserService exposes self-only user operations. The requester is the
// authenticated identity resolved by the auth middleware; every operation
// is denied unless it targets the requester's own record.
type UserService interface {
	Get(ctx context.Context, requester *model.User, id uint) (*model.User, error)
	Update(ctx context.Context, requester *model.User, id uint, input UpdateUserInput) (*model.User, error)
	Delete(ctx context.Context, requester *model.User, id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) find(ctx context.Context, requester *model.User, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	if !auth.IsOwner(requester, user.ID) {
		return nil, errors.ErrNotOwner
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, requester *model.User, id uint) (*model.User, error) {
	return s.find(ctx, requester, id)
}

func (s *userService) Update(ctx context.Context, requester *model.User, id uint, input UpdateUserInput) (*model.User, error) {
	user, err := s.find(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Surname != "" {
		user.Surname = input.Surname
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, requester *model.User, id uint) error {
	user, err := s.find(ctx, requester, id)
	if err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, user); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
