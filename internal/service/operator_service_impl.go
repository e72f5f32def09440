package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pincecheck/internal/domain"
	"github.com/alexanderramin/pincecheck/internal/repository"
	"github.com/google/uuid"
)

type operatorService struct {
	operators repository.OperatorRepo
	observer  UseCaseObserver
}

func NewOperatorService(operators repository.OperatorRepo, observers ...UseCaseObserver) OperatorService {
	return &operatorService{
		operators: operators,
		observer:  UseCaseObserverOrNoop(observers),
	}
}

func (s *operatorService) Authenticate(ctx context.Context, username, password string) (op *domain.Operator, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "authenticate",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"username": username},
		})
	}()

	op, err = s.operators.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrAuthenticationFailed
		}
		return nil, fmt.Errorf("loading operator: %w", err)
	}
	if !VerifyPassword(op.Scheme, op.PasswordHash, password) {
		return nil, domain.ErrAuthenticationFailed
	}
	return op, nil
}

func (s *operatorService) AddOperator(ctx context.Context, username, password string) (op *domain.Operator, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "add-operator",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"username": username},
		})
	}()

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}

	hash, err := HashPassword(domain.SchemeBcrypt, password)
	if err != nil {
		return nil, err
	}

	op = &domain.Operator{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hash,
		Scheme:       domain.SchemeBcrypt,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.operators.Create(ctx, op); err != nil {
		return nil, err
	}
	return op, nil
}

func (s *operatorService) ListOperators(ctx context.Context) ([]*domain.Operator, error) {
	return s.operators.List(ctx)
}
