package model

type EntryType string

const (
	EntryDeposit    EntryType = "deposit"
	EntryWithdrawal EntryType = "withdrawal"
	EntryGame       EntryType = "game"
	EntryReferral   EntryType = "referral"
	EntryBonus      EntryType = "bonus"
	EntryRefund     EntryType = "refund"
)

func (t EntryType) String() string {
	return string(t)
}

type EntryStatus string

const (
	EntryCompleted EntryStatus = "completed"
)

type KYCStatus string

const (
	KYCPending  KYCStatus = "pending"
	KYCVerified KYCStatus = "verified"
	KYCRejected KYCStatus = "rejected"
)

func ParseKYCStatus(s string) (KYCStatus, error) {
	switch s {
	case string(KYCPending):
		return KYCPending, nil
	case string(KYCVerified):
		return KYCVerified, nil
	case string(KYCRejected):
		return KYCRejected, nil
	default:
		return "", ErrInvalidKYCStatus
	}
}

type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalRejected WithdrawalStatus = "rejected"
)

type WithdrawalMethod string

const (
	MethodMobileMoney WithdrawalMethod = "mobile-money"
	MethodBank        WithdrawalMethod = "bank"
)

func ParseWithdrawalMethod(s string) (WithdrawalMethod, error) {
	switch s {
	case string(MethodMobileMoney):
		return MethodMobileMoney, nil
	case string(MethodBank):
		return MethodBank, nil
	default:
		return "", ErrInvalidMethod
	}
}

type DepositMethod string

const (
	DepositMobileMoney DepositMethod = "mobile-money"
	DepositCard        DepositMethod = "card"
	DepositCrypto      DepositMethod = "crypto"
)

func ParseDepositMethod(s string) (DepositMethod, error) {
	switch s {
	case string(DepositMobileMoney):
		return DepositMobileMoney, nil
	case string(DepositCard):
		return DepositCard, nil
	case string(DepositCrypto):
		return DepositCrypto, nil
	default:
		return "", ErrInvalidMethod
	}
}

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCashedOut SessionStatus = "cashed_out"
	SessionBusted    SessionStatus = "busted"
)

// Terminal reports whether no further transitions are allowed.
func (s SessionStatus) Terminal() bool {
	return s == SessionCashedOut || s == SessionBusted
}
