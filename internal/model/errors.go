package model

import "errors"

var (
	ErrInvalidWager         = errors.New("invalid wager")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountSuspended     = errors.New("account suspended")
	ErrDuplicateReference   = errors.New("duplicate reference")
	ErrEntryNotFound        = errors.New("ledger entry not found")
	ErrSessionAlreadyActive = errors.New("mines session already active")
	ErrSessionNotFound      = errors.New("mines session not found")
	ErrSessionTerminal      = errors.New("mines session already finished")
	ErrCellAlreadyRevealed  = errors.New("cell already revealed")
	ErrInvalidCell          = errors.New("invalid cell index")
	ErrWithdrawalNotFound   = errors.New("withdrawal request not found")
	ErrWithdrawalNotPending = errors.New("withdrawal request not pending")
	ErrInvalidMethod        = errors.New("invalid payment method")
	ErrInvalidKYCStatus     = errors.New("invalid kyc status")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrReferralCodeUnknown  = errors.New("unknown referral code")
)
