package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CesarJOtizM/didactic-succotash/internal/model"
)

type PostgresOrderRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresOrderRepository(pool *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{pool: pool}
}

func (r *PostgresOrderRepository) Save(ctx context.Context, order *model.PaymentOrder) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO payment_orders (uuid, type, amount, description, country_iso_code, created_at, payment_url, status, attempts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		order.UUID, order.Type, order.Amount, order.Description, order.CountryIsoCode,
		order.CreatedAt, order.PaymentURL, order.Status, order.Attempts,
	)
	if err != nil {
		return fmt.Errorf("insert payment order: %w", err)
	}
	return nil
}

func (r *PostgresOrderRepository) FindByUUID(ctx context.Context, uuid string) (*model.PaymentOrder, error) {
	order := &model.PaymentOrder{}
	err := r.pool.QueryRow(ctx,
		`SELECT uuid, type, amount, description, country_iso_code, created_at, payment_url,
			status, COALESCE(provider, ''), COALESCE(transaction_id, ''), attempts, processed_at
		FROM payment_orders WHERE uuid = $1`, uuid).
		Scan(&order.UUID, &order.Type, &order.Amount, &order.Description, &order.CountryIsoCode,
			&order.CreatedAt, &order.PaymentURL, &order.Status, &order.Provider,
			&order.TransactionID, &order.Attempts, &order.ProcessedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find payment order: %w", err)
	}
	return order, nil
}

func (r *PostgresOrderRepository) FindAll(ctx context.Context) ([]*model.PaymentOrder, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT uuid, type, amount, description, country_iso_code, created_at, payment_url,
			status, COALESCE(provider, ''), COALESCE(transaction_id, ''), attempts, processed_at
		FROM payment_orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list payment orders: %w", err)
	}
	defer rows.Close()

	var orders []*model.PaymentOrder
	for rows.Next() {
		order := &model.PaymentOrder{}
		if err := rows.Scan(&order.UUID, &order.Type, &order.Amount, &order.Description,
			&order.CountryIsoCode, &order.CreatedAt, &order.PaymentURL, &order.Status,
			&order.Provider, &order.TransactionID, &order.Attempts, &order.ProcessedAt); err != nil {
			return nil, fmt.Errorf("scan payment order: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *PostgresOrderRepository) Update(ctx context.Context, uuid string, update OrderUpdate) (*model.PaymentOrder, error) {
	order := &model.PaymentOrder{}
	err := r.pool.QueryRow(ctx,
		`UPDATE payment_orders SET
			status = COALESCE($2, status),
			provider = COALESCE($3, provider),
			transaction_id = COALESCE($4, transaction_id),
			attempts = COALESCE($5, attempts),
			processed_at = COALESCE($6, processed_at)
		WHERE uuid = $1
		RETURNING uuid, type, amount, description, country_iso_code, created_at, payment_url,
			status, COALESCE(provider, ''), COALESCE(transaction_id, ''), attempts, processed_at`,
		uuid, update.Status, update.Provider, update.TransactionID, update.Attempts, update.ProcessedAt).
		Scan(&order.UUID, &order.Type, &order.Amount, &order.Description, &order.CountryIsoCode,
			&order.CreatedAt, &order.PaymentURL, &order.Status, &order.Provider,
			&order.TransactionID, &order.Attempts, &order.ProcessedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update payment order: %w", err)
	}
	return order, nil
}

func (r *PostgresOrderRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM payment_orders WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count payment orders: %w", err)
	}
	return count, nil
}

var _ OrderRepository = (*PostgresOrderRepository)(nil)
