package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Varun5711/promokit/internal/auth"
	usermodel "github.com/Varun5711/promokit/internal/models/user"
	"github.com/Varun5711/promokit/internal/storage"
	"github.com/Varun5711/promokit/internal/validation"
)

var (
	ErrDuplicateEmail = errors.New("email exists")

	// ErrInvalidCredentials covers both "no such account" and "wrong
	// password". Callers must not distinguish the two, or login becomes an
	// account-enumeration oracle.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidToken = errors.New("invalid token")
)

type UserService struct {
	store      storage.UserStore
	hasher     *auth.Hasher
	jwtManager *auth.JWTManager
}

func NewUserService(store storage.UserStore, hasher *auth.Hasher, jwtManager *auth.JWTManager) *UserService {
	return &UserService{
		store:      store,
		hasher:     hasher,
		jwtManager: jwtManager,
	}
}

// Register creates an account. It returns ErrDuplicateEmail whether the
// duplicate is caught by the lookup or by the store's unique constraint on a
// racing insert.
func (s *UserService) Register(ctx context.Context, req usermodel.SignupRequest) error {
	if err := validation.ValidateSignup(req.Email, req.Password, req.Name); err != nil {
		return err
	}

	existing, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return ErrDuplicateEmail
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.store.CreateUser(ctx, req.Email, req.Name, passwordHash); err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Login verifies credentials and issues a session token.
func (s *UserService) Login(ctx context.Context, req usermodel.LoginRequest) (*usermodel.LoginResponse, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.hasher.Verify(user.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, _, err := s.jwtManager.GenerateToken(user.Email, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &usermodel.LoginResponse{
		Token: token,
		Name:  user.Name,
	}, nil
}

// Profile decodes the claims carried by a session token. Malformed, badly
// signed, and expired tokens all collapse into ErrInvalidToken.
func (s *UserService) Profile(token string) (*auth.Claims, error) {
	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
