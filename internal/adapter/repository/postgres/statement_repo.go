package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finvault/finvault/internal/domain"
	"github.com/finvault/finvault/internal/usecase"
)

// StatementRepository implements usecase.StatementRepository. The
// statements table is append-only: no UPDATE or DELETE is issued here,
// ever.
type StatementRepository struct {
	pool *pgxpool.Pool
}

// NewStatementRepository creates a new StatementRepository.
func NewStatementRepository(pool *pgxpool.Pool) *StatementRepository {
	return &StatementRepository{pool: pool}
}

const appendQuery = `
	INSERT INTO statements (id, owner_id, counterparty_id, amount, description, kind, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

const findByAccountQuery = `
	SELECT id, owner_id, counterparty_id, amount, description, kind, created_at, updated_at
	FROM statements
	WHERE owner_id = $1 OR counterparty_id = $1
	ORDER BY created_at, id
`

const findOneQuery = `
	SELECT id, owner_id, counterparty_id, amount, description, kind, created_at, updated_at
	FROM statements
	WHERE id = $1 AND (owner_id = $2 OR counterparty_id = $2)
`

// Append inserts a new operation record.
func (r *StatementRepository) Append(ctx context.Context, tx usecase.Transaction, op *domain.Operation) error {
	var err error
	args := []any{
		op.ID,
		op.OwnerID,
		op.CounterpartyID,
		decimalToNumeric(op.Amount),
		op.Description,
		string(op.Kind),
		timeToPgTimestamptz(op.CreatedAt),
		timeToPgTimestamptz(op.UpdatedAt),
	}

	if tx != nil {
		_, err = tx.(*Tx).PgxTx().Exec(ctx, appendQuery, args...)
	} else {
		_, err = r.pool.Exec(ctx, appendQuery, args...)
	}

	return err
}

// FindByAccount returns every operation the account is a party to.
func (r *StatementRepository) FindByAccount(ctx context.Context, accountID string) ([]*domain.Operation, error) {
	rows, err := r.pool.Query(ctx, findByAccountQuery, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOperations(rows)
}

// FindByAccountTx is FindByAccount executed inside tx, so the read
// sees the transaction's snapshot and honors its locks.
func (r *StatementRepository) FindByAccountTx(ctx context.Context, tx usecase.Transaction, accountID string) ([]*domain.Operation, error) {
	rows, err := tx.(*Tx).PgxTx().Query(ctx, findByAccountQuery, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOperations(rows)
}

// FindOne fetches a single operation scoped to a party account.
func (r *StatementRepository) FindOne(ctx context.Context, id, accountID string) (*domain.Operation, error) {
	op, err := scanOperation(r.pool.QueryRow(ctx, findOneQuery, id, accountID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrOperationNotFound
	}
	if err != nil {
		return nil, err
	}

	return op, nil
}

// LockAccount takes a transaction-scoped advisory lock on the account,
// serializing the balance-check/append sequence per account. The lock
// is released automatically when tx commits or rolls back.
func (r *StatementRepository) LockAccount(ctx context.Context, tx usecase.Transaction, accountID string) error {
	_, err := tx.(*Tx).PgxTx().Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, accountID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOperation(row rowScanner) (*domain.Operation, error) {
	var (
		op        domain.Operation
		amount    pgtype.Numeric
		kind      string
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&op.ID,
		&op.OwnerID,
		&op.CounterpartyID,
		&amount,
		&op.Description,
		&kind,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	op.Amount = numericToDecimal(amount)
	op.Kind = domain.Kind(kind)
	op.CreatedAt = createdAt.Time
	op.UpdatedAt = updatedAt.Time

	return &op, nil
}

func scanOperations(rows pgx.Rows) ([]*domain.Operation, error) {
	ops := make([]*domain.Operation, 0)
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}

	return ops, rows.Err()
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
