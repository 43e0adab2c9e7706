package service

import (
	"context"

	"spinx-engine/internal/model"
)

// AccountService defines registration, login and account administration
type AccountService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.Account, error)
	Login(ctx context.Context, username, password string) (*model.Account, error)
	GetBalance(ctx context.Context, accountID int64) (*model.BalanceResponse, error)
	GetLedger(ctx context.Context, accountID int64, limit, offset int) ([]*model.LedgerEntry, error)
	SetActive(ctx context.Context, accountID int64, active bool) error
	ReviewKYC(ctx context.Context, accountID int64, status model.KYCStatus) error
}

// WalletService defines the deposit path, including the first-deposit
// referral hook
type WalletService interface {
	Deposit(ctx context.Context, accountID int64, req *model.DepositRequest) (*model.DepositResponse, error)
}

// SettlementService defines the single-play wager path:
// debit -> resolve -> credit -> stats as one logical unit
type SettlementService interface {
	PlaceWager(ctx context.Context, accountID int64, req *model.WagerRequest) (*model.WagerResponse, error)
}

// MinesService defines the incremental-reveal session state machine
type MinesService interface {
	Start(ctx context.Context, accountID int64, req *model.MinesStartRequest) (*model.MinesSessionResponse, error)
	Reveal(ctx context.Context, accountID, sessionID int64, cell int) (*model.MinesRevealResponse, error)
	Cashout(ctx context.Context, accountID, sessionID int64) (*model.MinesCashoutResponse, error)
}

// SessionReaper is the maintenance surface the background worker drives
type SessionReaper interface {
	// SweepTerminalSessions deletes finished sessions past retention
	SweepTerminalSessions(ctx context.Context) (int64, error)
}

// WithdrawalService defines the withdrawal queue with optimistic holds
type WithdrawalService interface {
	Request(ctx context.Context, accountID int64, req *model.WithdrawalRequestBody) (*model.WithdrawalRequest, error)
	Approve(ctx context.Context, requestID int64) (*model.WithdrawalRequest, error)
	Reject(ctx context.Context, requestID int64, reason string) (*model.WithdrawalRequest, error)
	List(ctx context.Context, status *model.WithdrawalStatus, limit, offset int) ([]*model.WithdrawalRequest, error)
}
