package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AuthUseCase describes registration, authentication and account listing.
type AuthUseCase interface {
	Register(ctx context.Context, name, password string) (User, error)
	Login(ctx context.Context, name, password string) (AuthResult, error)
	List(ctx context.Context, limit, offset int) ([]User, error)
}

type AuthResult struct {
	User  User
	Token string
}

type authService struct {
	repo   UserRepository
	tokens TokenGenerator
	hasher PasswordHasher
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, tokens TokenGenerator, hasher PasswordHasher) AuthUseCase {
	return &authService{repo: repo, tokens: tokens, hasher: hasher}
}

func (s *authService) Register(ctx context.Context, name, password string) (User, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return User{}, ErrInvalidInput
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.New(),
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, name, password string) (AuthResult, error) {
	user, err := s.repo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return AuthResult{}, err
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) List(ctx context.Context, limit, offset int) ([]User, error) {
	return s.repo.List(ctx, limit, offset)
}
