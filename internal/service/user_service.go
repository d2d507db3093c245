package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"projecthub/internal/apperr"
	"projecthub/internal/auth"
	"projecthub/internal/domain"
	"projecthub/internal/repository"
)

// UserService covers signup, login and bearer token resolution.
type UserService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	Signup(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type userService struct {
	users   repository.UserRepository
	encoder auth.PasswordEncoder
	tokens  *auth.TokenIssuer
}

func NewUserService(users repository.UserRepository, encoder auth.PasswordEncoder, tokens *auth.TokenIssuer) UserService {
	return &userService{
		users:   users,
		encoder: encoder,
		tokens:  tokens,
	}
}

func (s *userService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, apperr.ErrEmptyCredentials
	}

	encoded, err := s.encoder.Encode(password)
	if err != nil {
		return nil, fmt.Errorf("encode password: %w", err)
	}

	user := &domain.User{
		Username: username,
		Password: encoded,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Wrap(apperr.ErrDuplicateCredentials, err)
		}
		return nil, err
	}

	return sanitizeUser(user), nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, apperr.ErrEmptyCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrLoginFailed
		}
		return nil, err
	}

	if !s.encoder.Matches(password, user.Password) {
		return nil, apperr.ErrLoginFailed
	}

	return sanitizeUser(user), nil
}

func (s *userService) Signup(ctx context.Context, username, password string) (string, error) {
	user, err := s.Register(ctx, username, password)
	if err != nil {
		return "", err
	}
	return s.issue(user)
}

func (s *userService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	return s.issue(user)
}

// ResolveToken validates token and loads the user named by its subject.
func (s *userService) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	username, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Wrap(apperr.ErrInvalidToken, err)
		}
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Wrap(apperr.ErrUserNotFound, err)
		}
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *userService) issue(user *domain.User) (string, error) {
	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	return &domain.User{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
