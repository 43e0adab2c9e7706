package postgres

import (
	"context"
	"errors"
	"fmt"

	"spinx-engine/internal/model"
	"spinx-engine/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Ensure implementation satisfies interface at compile time
var _ repository.LedgerRepository = (*LedgerRepositoryImpl)(nil)

// LedgerRepositoryImpl is the PostgreSQL implementation of LedgerRepository
type LedgerRepositoryImpl struct {
	*TransactionManager
}

func NewLedgerRepository(pool *pgxpool.Pool) repository.LedgerRepository {
	return &LedgerRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// InsertEntry appends a ledger entry
func (r *LedgerRepositoryImpl) InsertEntry(ctx context.Context, entry *model.LedgerEntry, tx pgx.Tx) error {
	query := `
        INSERT INTO ledger_entries (reference, account_id, type, amount, balance_after, description, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`

	err := tx.QueryRow(ctx, query, entry.Reference, entry.AccountID, entry.Type,
		entry.Amount, entry.BalanceAfter, entry.Description, entry.Status).
		Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.ErrDuplicateReference
		}
		return fmt.Errorf("failed to insert ledger entry: %w", err)
	}
	return nil
}

// GetEntryByReference retrieves an entry by its idempotency reference
func (r *LedgerRepositoryImpl) GetEntryByReference(ctx context.Context, reference string, tx ...pgx.Tx) (*model.LedgerEntry, error) {
	query := `
        SELECT id, reference, account_id, type, amount, balance_after, description, status, created_at
        FROM ledger_entries WHERE reference = $1`

	entry := &model.LedgerEntry{}
	err := r.getExecutor(tx...).QueryRow(ctx, query, reference).
		Scan(&entry.ID, &entry.Reference, &entry.AccountID, &entry.Type, &entry.Amount,
			&entry.BalanceAfter, &entry.Description, &entry.Status, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}
	return entry, nil
}

// ListEntriesByAccount retrieves paginated entries for an account
func (r *LedgerRepositoryImpl) ListEntriesByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*model.LedgerEntry, error) {
	query := `
        SELECT id, reference, account_id, type, amount, balance_after, description, status, created_at
        FROM ledger_entries WHERE account_id = $1
        ORDER BY id DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*model.LedgerEntry
	for rows.Next() {
		entry := &model.LedgerEntry{}
		if err := rows.Scan(&entry.ID, &entry.Reference, &entry.AccountID, &entry.Type,
			&entry.Amount, &entry.BalanceAfter, &entry.Description, &entry.Status, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// SumAmountsByAccount returns the signed sum of all entries for an account
func (r *LedgerRepositoryImpl) SumAmountsByAccount(ctx context.Context, accountID int64, tx ...pgx.Tx) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM ledger_entries WHERE account_id = $1`

	var sum decimal.Decimal
	if err := r.getExecutor(tx...).QueryRow(ctx, query, accountID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum ledger entries: %w", err)
	}
	return sum, nil
}
