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
var _ repository.AccountRepository = (*AccountRepositoryImpl)(nil)

const accountColumns = `id, username, email, password_hash, balance, total_deposits, total_withdrawals,
	total_winnings, games_played, current_streak, longest_streak, referral_code, referred_by,
	referrals_count, referral_earnings, kyc_status, is_active, version, created_at, updated_at`

// AccountRepositoryImpl is the PostgreSQL implementation of AccountRepository
type AccountRepositoryImpl struct {
	*TransactionManager
}

func NewAccountRepository(pool *pgxpool.Pool) repository.AccountRepository {
	return &AccountRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func scanAccount(row pgx.Row) (*model.Account, error) {
	acct := &model.Account{}
	err := row.Scan(&acct.ID, &acct.Username, &acct.Email, &acct.PasswordHash, &acct.Balance,
		&acct.TotalDeposits, &acct.TotalWithdrawals, &acct.TotalWinnings, &acct.GamesPlayed,
		&acct.CurrentStreak, &acct.LongestStreak, &acct.ReferralCode, &acct.ReferredBy,
		&acct.ReferralsCount, &acct.ReferralEarnings, &acct.KYCStatus, &acct.IsActive,
		&acct.Version, &acct.CreatedAt, &acct.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}
	return acct, nil
}

// CreateAccount inserts a new account with a zero balance
func (r *AccountRepositoryImpl) CreateAccount(ctx context.Context, acct *model.Account, tx pgx.Tx) error {
	query := `
        INSERT INTO accounts (username, email, password_hash, referral_code, referred_by, kyc_status, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, balance, total_deposits, total_withdrawals, total_winnings, created_at, updated_at`

	err := tx.QueryRow(ctx, query, acct.Username, acct.Email, acct.PasswordHash,
		acct.ReferralCode, acct.ReferredBy, acct.KYCStatus, acct.IsActive).
		Scan(&acct.ID, &acct.Balance, &acct.TotalDeposits, &acct.TotalWithdrawals,
			&acct.TotalWinnings, &acct.CreatedAt, &acct.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.ErrUsernameTaken
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetAccount retrieves an account by id
func (r *AccountRepositoryImpl) GetAccount(ctx context.Context, accountID int64, tx ...pgx.Tx) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(r.getExecutor(tx...).QueryRow(ctx, query, accountID))
}

// GetAccountForUpdate retrieves an account with row-level lock
func (r *AccountRepositoryImpl) GetAccountForUpdate(ctx context.Context, accountID int64, tx pgx.Tx) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 FOR UPDATE`
	return scanAccount(tx.QueryRow(ctx, query, accountID))
}

// GetAccountByUsername retrieves an account by username
func (r *AccountRepositoryImpl) GetAccountByUsername(ctx context.Context, username string, tx ...pgx.Tx) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE username = $1`
	return scanAccount(r.getExecutor(tx...).QueryRow(ctx, query, username))
}

// GetAccountByReferralCode retrieves the account owning a referral code
func (r *AccountRepositoryImpl) GetAccountByReferralCode(ctx context.Context, code string, tx ...pgx.Tx) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE referral_code = $1`
	acct, err := scanAccount(r.getExecutor(tx...).QueryRow(ctx, query, code))
	if errors.Is(err, model.ErrAccountNotFound) {
		return nil, model.ErrReferralCodeUnknown
	}
	return acct, err
}

// GetBalance gets the current balance for an account
func (r *AccountRepositoryImpl) GetBalance(ctx context.Context, accountID int64, tx ...pgx.Tx) (decimal.Decimal, error) {
	query := `SELECT balance FROM accounts WHERE id = $1`
	var balance decimal.Decimal
	err := r.getExecutor(tx...).QueryRow(ctx, query, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, model.ErrAccountNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

// UpdateBalance updates account balance
func (r *AccountRepositoryImpl) UpdateBalance(ctx context.Context, accountID int64, balance decimal.Decimal, tx pgx.Tx) error {
	query := `
        UPDATE accounts
        SET balance = $1, version = version + 1, updated_at = NOW()
        WHERE id = $2`

	commandTag, err := tx.Exec(ctx, query, balance, accountID)
	if err != nil {
		var pgErr *pgconn.PgError
		// CONSTRAINT balance_non_negative CHECK (balance >= 0)
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
			return model.ErrInsufficientFunds
		}
		return fmt.Errorf("failed to update balance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}
	return nil
}

// UpdateStats writes the accumulator columns from the locked struct
func (r *AccountRepositoryImpl) UpdateStats(ctx context.Context, acct *model.Account, tx pgx.Tx) error {
	query := `
        UPDATE accounts
        SET total_deposits = $1, total_withdrawals = $2, total_winnings = $3,
            games_played = $4, current_streak = $5, longest_streak = $6,
            referrals_count = $7, referral_earnings = $8, updated_at = NOW()
        WHERE id = $9`

	commandTag, err := tx.Exec(ctx, query, acct.TotalDeposits, acct.TotalWithdrawals,
		acct.TotalWinnings, acct.GamesPlayed, acct.CurrentStreak, acct.LongestStreak,
		acct.ReferralsCount, acct.ReferralEarnings, acct.ID)
	if err != nil {
		return fmt.Errorf("failed to update stats: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}
	return nil
}

// SetActive suspends or reactivates an account
func (r *AccountRepositoryImpl) SetActive(ctx context.Context, accountID int64, active bool) error {
	query := `UPDATE accounts SET is_active = $1, updated_at = NOW() WHERE id = $2`

	commandTag, err := r.pool.Exec(ctx, query, active, accountID)
	if err != nil {
		return fmt.Errorf("failed to set active: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}
	return nil
}

// SetKYCStatus records a KYC review verdict
func (r *AccountRepositoryImpl) SetKYCStatus(ctx context.Context, accountID int64, status model.KYCStatus) error {
	query := `UPDATE accounts SET kyc_status = $1, updated_at = NOW() WHERE id = $2`

	commandTag, err := r.pool.Exec(ctx, query, status, accountID)
	if err != nil {
		return fmt.Errorf("failed to set kyc status: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}
	return nil
}
