package postgres

import (
	"context"
	"errors"
	"fmt"

	"spinx-engine/internal/model"
	"spinx-engine/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.WithdrawalRepository = (*WithdrawalRepositoryImpl)(nil)

const withdrawalColumns = `id, account_id, amount, fee, net_amount, method, account_details,
	status, reference, reason, created_at, updated_at`

// WithdrawalRepositoryImpl is the PostgreSQL implementation of WithdrawalRepository
type WithdrawalRepositoryImpl struct {
	*TransactionManager
}

func NewWithdrawalRepository(pool *pgxpool.Pool) repository.WithdrawalRepository {
	return &WithdrawalRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func scanWithdrawal(row pgx.Row) (*model.WithdrawalRequest, error) {
	req := &model.WithdrawalRequest{}
	err := row.Scan(&req.ID, &req.AccountID, &req.Amount, &req.Fee, &req.NetAmount,
		&req.Method, &req.AccountDetails, &req.Status, &req.Reference, &req.Reason,
		&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWithdrawalNotFound
		}
		return nil, fmt.Errorf("failed to scan withdrawal request: %w", err)
	}
	return req, nil
}

// InsertRequest enqueues a pending withdrawal request
func (r *WithdrawalRepositoryImpl) InsertRequest(ctx context.Context, req *model.WithdrawalRequest, tx pgx.Tx) error {
	query := `
        INSERT INTO withdrawal_requests (account_id, amount, fee, net_amount, method, account_details, status, reference)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	err := tx.QueryRow(ctx, query, req.AccountID, req.Amount, req.Fee, req.NetAmount,
		req.Method, req.AccountDetails, req.Status, req.Reference).
		Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert withdrawal request: %w", err)
	}
	return nil
}

// GetRequest retrieves a withdrawal request by id
func (r *WithdrawalRepositoryImpl) GetRequest(ctx context.Context, id int64, tx ...pgx.Tx) (*model.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id = $1`
	return scanWithdrawal(r.getExecutor(tx...).QueryRow(ctx, query, id))
}

// GetRequestForUpdate retrieves a request with row-level lock
func (r *WithdrawalRepositoryImpl) GetRequestForUpdate(ctx context.Context, id int64, tx pgx.Tx) (*model.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id = $1 FOR UPDATE`
	return scanWithdrawal(tx.QueryRow(ctx, query, id))
}

// TransitionIfPending moves pending -> status; the conditional UPDATE makes
// the transition happen at most once under concurrency
func (r *WithdrawalRepositoryImpl) TransitionIfPending(ctx context.Context, id int64, status model.WithdrawalStatus, reason *string, tx pgx.Tx) (bool, error) {
	query := `
		UPDATE withdrawal_requests
		SET status = $1,
		    reason = $2,
		    updated_at = NOW()
		WHERE id = $3
		  AND status = $4`

	result, err := tx.Exec(ctx, query, status, reason, id, model.WithdrawalPending)
	if err != nil {
		return false, fmt.Errorf("failed to transition withdrawal request: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

// ListRequests retrieves requests, optionally filtered by status
func (r *WithdrawalRepositoryImpl) ListRequests(ctx context.Context, status *model.WithdrawalStatus, limit, offset int) ([]*model.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests
        WHERE ($1::text IS NULL OR status = $1)
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query withdrawal requests: %w", err)
	}
	defer rows.Close()

	var requests []*model.WithdrawalRequest
	for rows.Next() {
		req, err := scanWithdrawal(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}
