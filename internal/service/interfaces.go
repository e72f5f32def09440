package service

import (
	"context"

	"github.com/alexanderramin/pincecheck/internal/domain"
)

// OperatorService manages the operators allowed to log in.
type OperatorService interface {
	// Authenticate verifies a username/password pair. Any mismatch, unknown
	// user or unknown scheme yields domain.ErrAuthenticationFailed.
	Authenticate(ctx context.Context, username, password string) (*domain.Operator, error)
	AddOperator(ctx context.Context, username, password string) (*domain.Operator, error)
	ListOperators(ctx context.Context) ([]*domain.Operator, error)
}
