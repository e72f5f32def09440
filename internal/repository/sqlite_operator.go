package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pincecheck/internal/db"
	"github.com/alexanderramin/pincecheck/internal/domain"
)

// SQLiteOperatorRepo implements OperatorRepo using a SQLite database.
type SQLiteOperatorRepo struct {
	db db.DBTX
}

// NewSQLiteOperatorRepo creates a new SQLiteOperatorRepo.
func NewSQLiteOperatorRepo(conn db.DBTX) *SQLiteOperatorRepo {
	return &SQLiteOperatorRepo{db: conn}
}

func (r *SQLiteOperatorRepo) Create(ctx context.Context, o *domain.Operator) error {
	query := `INSERT INTO operators (id, username, password_hash, scheme, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		o.ID,
		o.Username,
		o.PasswordHash,
		string(o.Scheme),
		o.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("operator %q: %w", o.Username, ErrDuplicate)
		}
		return fmt.Errorf("inserting operator: %w", err)
	}
	return nil
}

func (r *SQLiteOperatorRepo) GetByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	query := `SELECT id, username, password_hash, scheme, created_at
		FROM operators WHERE username = ?`
	row := r.db.QueryRowContext(ctx, query, username)
	o, err := scanOperator(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("operator %q: %w", username, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning operator: %w", err)
	}
	return o, nil
}

func (r *SQLiteOperatorRepo) List(ctx context.Context) ([]*domain.Operator, error) {
	query := `SELECT id, username, password_hash, scheme, created_at
		FROM operators ORDER BY username`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing operators: %w", err)
	}
	defer rows.Close()

	var out []*domain.Operator
	for rows.Next() {
		o, err := scanOperator(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning operator: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOperator(row rowScanner) (*domain.Operator, error) {
	var o domain.Operator
	var scheme, createdAt string
	if err := row.Scan(&o.ID, &o.Username, &o.PasswordHash, &scheme, &createdAt); err != nil {
		return nil, err
	}
	o.Scheme = domain.PasswordScheme(scheme)
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		o.CreatedAt = t
	}
	return &o, nil
}
