package order

import (
	"context"
	"database/sql"

	"foodpool-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]Order, error)
	ListForCook(ctx context.Context, cookID uuid.UUID) ([]Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status, paymentMethod *string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const selectOrders = `
	SELECT
		o.id, o.listing_id, o.customer_id, o.cook_id, o.quantity, o.total_price,
		o.status, o.payment_method, o.rating, o.review, o.created_at, o.updated_at,
		COALESCE(l.title, ''), COALESCE(l.image_url, ''), COALESCE(l.price, 0),
		c.full_name, k.full_name
	FROM orders o
	LEFT JOIN listings l ON l.id = o.listing_id
	LEFT JOIN profiles c ON c.id = o.customer_id
	LEFT JOIN profiles k ON k.id = o.cook_id
`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(s scanner) (*Order, error) {
	var o Order
	err := s.Scan(
		&o.ID, &o.ListingID, &o.CustomerID, &o.CookID, &o.Quantity, &o.TotalPrice,
		&o.Status, &o.PaymentMethod, &o.Rating, &o.Review, &o.CreatedAt, &o.UpdatedAt,
		&o.ListingTitle, &o.ListingImage, &o.ListingPrice,
		&o.CustomerName, &o.CookName,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) Create(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrder"),
	)

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO orders (listing_id, customer_id, cook_id, quantity, total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, o.ListingID, o.CustomerID, o.CookID, o.Quantity, o.TotalPrice, o.Status).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return err
	}

	log.Info("order inserted", zap.String("order_id", o.ID.String()))
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, selectOrders+` WHERE o.id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	return o, err
}

func (r *repository) ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]Order, error) {
	return r.list(ctx, selectOrders+` WHERE o.customer_id = $1 ORDER BY o.created_at DESC`, customerID)
}

func (r *repository) ListForCook(ctx context.Context, cookID uuid.UUID) ([]Order, error) {
	return r.list(ctx, selectOrders+` WHERE o.cook_id = $1 ORDER BY o.created_at DESC`, cookID)
}

func (r *repository) list(ctx context.Context, query string, owner uuid.UUID) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// UpdateStatus moves an order only if it still has status from, so two
// concurrent writers cannot move it backward.
func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status, paymentMethod *string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $1,
			payment_method = COALESCE($2, payment_method),
			updated_at = NOW()
		WHERE id = $3 AND status = $4
	`, to, paymentMethod, id, from)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrStatusConflict
	}
	return nil
}
