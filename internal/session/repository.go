package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"foodpool-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	CreateUser(ctx context.Context, email, passwordHash string, meta Metadata) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*ProfileInfo, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateUser(ctx context.Context, email, passwordHash string, meta Metadata) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateUser"),
	)

	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}

	u := &User{Email: email, Password: passwordHash, Metadata: meta}
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO auth_users (email, password_hash, metadata)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, email, passwordHash, raw).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrEmailExists
		}
		log.Error("failed to insert auth user", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	return u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, "FindByEmail", `
		SELECT id, email, password_hash, metadata, created_at
		FROM auth_users
		WHERE lower(email) = lower($1)
	`, email)
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return r.findOne(ctx, "FindByID", `
		SELECT id, email, password_hash, metadata, created_at
		FROM auth_users
		WHERE id = $1
	`, id)
}

func (r *repository) findOne(ctx context.Context, method, query string, arg interface{}) (*User, error) {
	var (
		u   User
		raw []byte
	)
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Email, &u.Password, &raw, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load auth user",
			zap.String("layer", "repository"),
			zap.String("method", method),
			zap.Error(err),
		)
		return nil, err
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &u.Metadata); err != nil {
			return nil, fmt.Errorf("decode metadata: %w", err)
		}
	}
	return &u, nil
}

func (r *repository) GetProfile(ctx context.Context, id uuid.UUID) (*ProfileInfo, error) {
	var p ProfileInfo
	err := r.db.QueryRowContext(ctx, `
		SELECT full_name, avatar_url, is_cook
		FROM profiles
		WHERE id = $1
	`, id).Scan(&p.FullName, &p.AvatarURL, &p.IsCook)
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
