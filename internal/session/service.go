package session

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"foodpool-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const minPasswordLength = 6

type Service interface {
	Signup(ctx context.Context, in SignupInput) (string, *Session, error)
	Login(ctx context.Context, email, password string) (string, *Session, error)
	Resolve(ctx context.Context, token string) (*Session, error)
}

type service struct {
	repo   Repository
	tokens *TokenIssuer
}

func NewService(repo Repository, tokens *TokenIssuer) Service {
	return &service{repo: repo, tokens: tokens}
}

func (s *service) Signup(ctx context.Context, in SignupInput) (string, *Session, error) {
	log := logger.FromCtx(ctx).With(zap.String("method", "Signup"))

	in.Email = strings.TrimSpace(in.Email)
	in.FullName = strings.TrimSpace(in.FullName)
	if err := validateSignup(in); err != nil {
		return "", nil, err
	}

	hashed, err := HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", nil, err
	}

	meta := Metadata{FullName: in.FullName, IsCook: in.Role == RoleCook}
	u, err := s.repo.CreateUser(ctx, in.Email, hashed, meta)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Generate(u)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", u.ID.String()), zap.Error(err))
		return "", nil, err
	}

	sess, err := s.resolveUser(ctx, u)
	if err != nil {
		return "", nil, err
	}

	log.Info("signup completed",
		zap.String("user_id", u.ID.String()),
		zap.String("role", string(sess.Role)),
	)
	return token, sess, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, *Session, error) {
	log := logger.FromCtx(ctx).With(zap.String("method", "Login"))

	u, err := s.repo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			log.Error("failed to find user", zap.Error(err))
		}
		return "", nil, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Debug("password mismatch", zap.String("user_id", u.ID.String()))
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(u)
	if err != nil {
		return "", nil, err
	}

	sess, err := s.resolveUser(ctx, u)
	if err != nil {
		return "", nil, err
	}
	return token, sess, nil
}

func (s *service) Resolve(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return s.resolveUser(ctx, u)
}

// resolveUser prefers the profiles row. The row is created asynchronously by
// a trigger, so a missing row falls back to signup metadata.
func (s *service) resolveUser(ctx context.Context, u *User) (*Session, error) {
	sess := &Session{
		UserID:   u.ID,
		Email:    u.Email,
		FullName: u.Metadata.FullName,
		IsCook:   u.Metadata.IsCook,
	}

	p, err := s.repo.GetProfile(ctx, u.ID)
	switch {
	case err == nil:
		sess.IsCook = p.IsCook
		if p.FullName != nil && *p.FullName != "" {
			sess.FullName = *p.FullName
		}
		sess.AvatarURL = p.AvatarURL
	case errors.Is(err, ErrProfileNotFound):
		logger.FromCtx(ctx).Debug("profile missing, using signup metadata",
			zap.String("user_id", u.ID.String()))
	default:
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	sess.Role = RoleFor(sess.IsCook)
	return sess, nil
}

func validateSignup(in SignupInput) error {
	if in.FullName == "" {
		return fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}
	if len(in.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	if !in.Role.Valid() {
		return fmt.Errorf("%w: role must be cook or customer", ErrInvalidInput)
	}
	return nil
}
