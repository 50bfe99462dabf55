// Package auth handles admin login for the lead-review API.
package auth

import (
	"context"
	"errors"

	"movers-service/internal/domain/admin"
	xerrors "movers-service/internal/pkg/errors"
	"movers-service/internal/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*admin.Admin, error)
	Create(ctx context.Context, a *admin.Admin) error
}

type AuthService struct {
	repo   AdminRepository
	tokens *jwt.Manager
	logger *zap.Logger
}

func NewAuthService(repo AdminRepository, tokens *jwt.Manager, logger *zap.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Login verifies credentials and returns a signed bearer token.
// Wrong email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	a, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return "", xerrors.ErrUnauthorized
		}
		return "", xerrors.Wrap(err, "failed to look up admin")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return "", xerrors.ErrUnauthorized
	}

	token, jti, err := s.tokens.Generate(a.ID, a.Email)
	if err != nil {
		return "", xerrors.Wrap(err, "failed to generate token")
	}

	s.logger.Info("admin logged in",
		zap.String("email", a.Email),
		zap.String("jti", jti),
	)

	return token, nil
}

// VerifyToken validates a bearer token and returns its claims.
func (s *AuthService) VerifyToken(token string) (*jwt.Claims, error) {
	return s.tokens.Verify(token)
}

// EnsureAdmin creates the admin account at boot if it does not exist yet.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password, fullName string) error {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, xerrors.ErrNotFound) {
		return xerrors.Wrap(err, "failed to check for existing admin")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return xerrors.Wrap(err, "failed to hash admin password")
	}

	a := &admin.Admin{
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return xerrors.Wrap(err, "failed to seed admin")
	}

	s.logger.Info("admin account seeded", zap.String("email", email))
	return nil
}
