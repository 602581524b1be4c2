package repository

import (
	"context"
	"errors"
	"time"

	"github.com/CesarJOtizM/didactic-succotash/internal/model"
)

// ErrNotFound is returned when no order exists for the given uuid.
var ErrNotFound = errors.New("payment order not found")

// OrderUpdate carries the partial fields the lifecycle layer writes when a
// processing attempt finishes. Nil fields are left untouched.
type OrderUpdate struct {
	Status        *string
	Provider      *string
	TransactionID *string
	Attempts      *int
	ProcessedAt   *time.Time
}

// OrderRepository is the order store boundary. The core only ever performs
// the whole-order save on create and the field-level update on process.
type OrderRepository interface {
	Save(ctx context.Context, order *model.PaymentOrder) error
	FindByUUID(ctx context.Context, uuid string) (*model.PaymentOrder, error)
	FindAll(ctx context.Context) ([]*model.PaymentOrder, error)
	Update(ctx context.Context, uuid string, update OrderUpdate) (*model.PaymentOrder, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}
