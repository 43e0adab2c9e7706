package service

import (
	"context"
	"fmt"

	"spinx-engine/internal/model"
	"spinx-engine/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ledger bundles the two repositories every balance mutation touches. Both
// methods require the caller to hold the account's row lock: they update the
// balance and append the matching entry so that, per account, the sum of
// entry amounts always equals the balance.
type ledger struct {
	accounts repository.AccountRepository
	entries  repository.LedgerRepository
}

// debit removes amount (> 0) from the locked account and appends a negative
// entry. Rejected with ErrInsufficientFunds before any mutation if the
// balance cannot cover it.
func (l ledger) debit(ctx context.Context, tx pgx.Tx, acct *model.Account, amount decimal.Decimal, typ model.EntryType, description, reference string) (*model.LedgerEntry, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: debit amount must be positive", model.ErrInvalidAmount)
	}
	if acct.Balance.LessThan(amount) {
		return nil, model.ErrInsufficientFunds
	}
	return l.apply(ctx, tx, acct, amount.Neg(), typ, description, reference)
}

// credit adds amount (>= 0) to the locked account and appends a positive
// entry.
func (l ledger) credit(ctx context.Context, tx pgx.Tx, acct *model.Account, amount decimal.Decimal, typ model.EntryType, description, reference string) (*model.LedgerEntry, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: credit amount must not be negative", model.ErrInvalidAmount)
	}
	return l.apply(ctx, tx, acct, amount, typ, description, reference)
}

func (l ledger) apply(ctx context.Context, tx pgx.Tx, acct *model.Account, amount decimal.Decimal, typ model.EntryType, description, reference string) (*model.LedgerEntry, error) {
	newBalance := acct.Balance.Add(amount)
	if err := l.accounts.UpdateBalance(ctx, acct.ID, newBalance, tx); err != nil {
		return nil, fmt.Errorf("update balance: %w", err)
	}

	entry := &model.LedgerEntry{
		Reference:    reference,
		AccountID:    acct.ID,
		Type:         typ,
		Amount:       amount,
		BalanceAfter: newBalance,
		Description:  description,
		Status:       model.EntryCompleted,
	}
	if err := l.entries.InsertEntry(ctx, entry, tx); err != nil {
		return nil, err
	}

	acct.Balance = newBalance
	return entry, nil
}
