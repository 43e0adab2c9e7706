package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID               int64           `json:"id"`
	Username         string          `json:"username"`
	Email            string          `json:"email"`
	PasswordHash     string          `json:"-"`
	Balance          decimal.Decimal `json:"balance"`
	TotalDeposits    decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	TotalWinnings    decimal.Decimal `json:"total_winnings"`
	GamesPlayed      int             `json:"games_played"`
	CurrentStreak    int             `json:"current_streak"`
	LongestStreak    int             `json:"longest_streak"`
	ReferralCode     string          `json:"referral_code"`
	ReferredBy       *int64          `json:"referred_by,omitempty"`
	ReferralsCount   int             `json:"referrals_count"`
	ReferralEarnings decimal.Decimal `json:"referral_earnings"`
	KYCStatus        KYCStatus       `json:"kyc_status"`
	IsActive         bool            `json:"is_active"`
	Version          int             `json:"version"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// LedgerEntry is one append-only row of an account's transaction history.
// Amount is signed: positive entries credit the balance, negative debit it.
type LedgerEntry struct {
	ID           int64           `json:"id"`
	Reference    string          `json:"reference"`
	AccountID    int64           `json:"account_id"`
	Type         EntryType       `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Description  string          `json:"description"`
	Status       EntryStatus     `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

type WithdrawalRequest struct {
	ID             int64            `json:"id"`
	AccountID      int64            `json:"account_id"`
	Amount         decimal.Decimal  `json:"amount"`
	Fee            decimal.Decimal  `json:"fee"`
	NetAmount      decimal.Decimal  `json:"net_amount"`
	Method         WithdrawalMethod `json:"method"`
	AccountDetails string           `json:"account_details"`
	Status         WithdrawalStatus `json:"status"`
	Reference      string           `json:"reference"`
	Reason         *string          `json:"reason,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// MinesSession spans multiple user actions (start, reveal xN, cashout or
// bust); the stake is debited at start and settlement happens exactly once
// at finalization.
type MinesSession struct {
	ID            int64           `json:"id"`
	AccountID     int64           `json:"account_id"`
	Stake         decimal.Decimal `json:"stake"`
	GridSize      int             `json:"grid_size"`
	MineCount     int             `json:"mine_count"`
	MinePositions []int           `json:"-"`
	Revealed      []int           `json:"revealed"`
	Multiplier    decimal.Decimal `json:"multiplier"`
	Status        SessionStatus   `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// IsMine reports whether the cell index holds a mine.
func (s *MinesSession) IsMine(cell int) bool {
	for _, p := range s.MinePositions {
		if p == cell {
			return true
		}
	}
	return false
}

// IsRevealed reports whether the cell index was already opened.
func (s *MinesSession) IsRevealed(cell int) bool {
	for _, r := range s.Revealed {
		if r == cell {
			return true
		}
	}
	return false
}
