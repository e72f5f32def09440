package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/pincecheck/internal/domain"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when an insert violates a uniqueness constraint.
	ErrDuplicate = errors.New("already exists")
)

type OperatorRepo interface {
	Create(ctx context.Context, o *domain.Operator) error
	GetByUsername(ctx context.Context, username string) (*domain.Operator, error)
	List(ctx context.Context) ([]*domain.Operator, error)
}
