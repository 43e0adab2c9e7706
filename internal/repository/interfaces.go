package repository

import (
	"context"
	"time"

	"spinx-engine/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// AccountRepository defines operations for account/balance management
type AccountRepository interface {
	// CreateAccount inserts a new account with a zero balance
	CreateAccount(ctx context.Context, acct *model.Account, tx pgx.Tx) error

	// GetAccount retrieves an account by id (read-only)
	GetAccount(ctx context.Context, accountID int64, tx ...pgx.Tx) (*model.Account, error)

	// GetAccountForUpdate retrieves an account with row-level lock (must be in transaction)
	GetAccountForUpdate(ctx context.Context, accountID int64, tx pgx.Tx) (*model.Account, error)

	// GetAccountByUsername retrieves an account by username
	GetAccountByUsername(ctx context.Context, username string, tx ...pgx.Tx) (*model.Account, error)

	// GetAccountByReferralCode retrieves the account owning a referral code
	GetAccountByReferralCode(ctx context.Context, code string, tx ...pgx.Tx) (*model.Account, error)

	// GetBalance retrieves the current balance for an account (read-only)
	GetBalance(ctx context.Context, accountID int64, tx ...pgx.Tx) (decimal.Decimal, error)

	// UpdateBalance updates the account balance
	UpdateBalance(ctx context.Context, accountID int64, balance decimal.Decimal, tx pgx.Tx) error

	// UpdateStats writes the accumulator columns (totals, streaks,
	// games played, referral counters) from the locked struct
	UpdateStats(ctx context.Context, acct *model.Account, tx pgx.Tx) error

	// SetActive suspends or reactivates an account
	SetActive(ctx context.Context, accountID int64, active bool) error

	// SetKYCStatus records a KYC review verdict
	SetKYCStatus(ctx context.Context, accountID int64, status model.KYCStatus) error
}

// LedgerRepository defines operations for the append-only transaction log
type LedgerRepository interface {
	// InsertEntry appends a ledger entry; a reference collision yields
	// model.ErrDuplicateReference
	InsertEntry(ctx context.Context, entry *model.LedgerEntry, tx pgx.Tx) error

	// GetEntryByReference retrieves an entry by its idempotency reference
	GetEntryByReference(ctx context.Context, reference string, tx ...pgx.Tx) (*model.LedgerEntry, error)

	// ListEntriesByAccount retrieves paginated entries, newest first
	ListEntriesByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*model.LedgerEntry, error)

	// SumAmountsByAccount returns the signed sum of all entries for an account
	SumAmountsByAccount(ctx context.Context, accountID int64, tx ...pgx.Tx) (decimal.Decimal, error)
}

// WithdrawalRepository defines operations for the withdrawal queue
type WithdrawalRepository interface {
	// InsertRequest enqueues a pending withdrawal request
	InsertRequest(ctx context.Context, req *model.WithdrawalRequest, tx pgx.Tx) error

	// GetRequest retrieves a withdrawal request by id
	GetRequest(ctx context.Context, id int64, tx ...pgx.Tx) (*model.WithdrawalRequest, error)

	// GetRequestForUpdate retrieves a request with row-level lock
	GetRequestForUpdate(ctx context.Context, id int64, tx pgx.Tx) (*model.WithdrawalRequest, error)

	// TransitionIfPending moves pending -> status and reports whether this
	// call performed the transition
	TransitionIfPending(ctx context.Context, id int64, status model.WithdrawalStatus, reason *string, tx pgx.Tx) (bool, error)

	// ListRequests retrieves requests, optionally filtered by status, newest first
	ListRequests(ctx context.Context, status *model.WithdrawalStatus, limit, offset int) ([]*model.WithdrawalRequest, error)
}

// MinesRepository defines operations for mines session state
type MinesRepository interface {
	// InsertSession creates an active session; a second active session for
	// the same account yields model.ErrSessionAlreadyActive
	InsertSession(ctx context.Context, session *model.MinesSession, tx pgx.Tx) error

	// GetSessionForUpdate retrieves a session with row-level lock
	GetSessionForUpdate(ctx context.Context, id int64, tx pgx.Tx) (*model.MinesSession, error)

	// UpdateSession writes revealed cells, multiplier and status
	UpdateSession(ctx context.Context, session *model.MinesSession, tx pgx.Tx) error

	// DeleteTerminalBefore removes cashed-out and busted sessions older
	// than the cutoff, returning the number removed
	DeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
