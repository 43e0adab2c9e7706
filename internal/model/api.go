package model

type RegisterRequest struct {
	Username     string `json:"username" binding:"required,min=3,max=32" example:"spinmaster"`
	Email        string `json:"email" binding:"required,email" example:"spin@example.com"`
	Password     string `json:"password" binding:"required,min=8" example:"s3cret-pass"`
	ReferralCode string `json:"referral_code,omitempty" example:"SPINX123"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"spinmaster"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

type DepositRequest struct {
	Amount    string `json:"amount" binding:"required" example:"5000"`
	Method    string `json:"method" binding:"required,oneof=mobile-money card crypto" example:"mobile-money"`
	Reference string `json:"reference" binding:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
}

type WagerRequest struct {
	Game   string `json:"game" binding:"required,oneof=coin dice wheel lucky" example:"coin"`
	Stake  string `json:"stake" binding:"required" example:"100"`
	Choice string `json:"choice" binding:"required" example:"heads"`
}

type MinesStartRequest struct {
	Stake     string `json:"stake" binding:"required" example:"100"`
	MineCount int    `json:"mine_count" binding:"required,min=1" example:"3"`
}

type MinesRevealRequest struct {
	Cell int `json:"cell" binding:"min=0" example:"12"`
}

type WithdrawalRequestBody struct {
	Amount         string `json:"amount" binding:"required" example:"2000"`
	Method         string `json:"method" binding:"required,oneof=mobile-money bank" example:"bank"`
	AccountDetails string `json:"account_details" binding:"required" example:"0123456789 / GTBank"`
}

type RejectWithdrawalRequest struct {
	Reason string `json:"reason" binding:"required" example:"account details mismatch"`
}

type KYCReviewRequest struct {
	Verdict string `json:"verdict" binding:"required,oneof=verified rejected" example:"verified"`
}

type AccountResponse struct {
	ID           int64  `json:"id" example:"1"`
	Username     string `json:"username" example:"spinmaster"`
	Balance      string `json:"balance" example:"0.00"`
	ReferralCode string `json:"referral_code" example:"SPI4X2K9"`
}

type BalanceResponse struct {
	AccountID int64  `json:"account_id" example:"1"`
	Balance   string `json:"balance" example:"1096.00"`
}

type DepositResponse struct {
	Status    string `json:"status" example:"success"`
	Balance   string `json:"balance" example:"6000.00"`
	Reference string `json:"reference" example:"550e8400-e29b-41d4-a716-446655440000"`
	Message   string `json:"message,omitempty" example:"Deposit processed"`
}

// WagerResponse reports a settled play back to the caller. Result carries
// the game-specific payload (drawn face, dice pair, wheel color, number).
type WagerResponse struct {
	Game       string         `json:"game" example:"coin"`
	Win        bool           `json:"win" example:"true"`
	Result     map[string]any `json:"result"`
	Multiplier string         `json:"multiplier" example:"2"`
	Payout     string         `json:"payout" example:"196"`
	Balance    string         `json:"balance" example:"1096.00"`
	Streak     int            `json:"streak" example:"1"`
}

type MinesSessionResponse struct {
	SessionID  int64  `json:"session_id" example:"7"`
	Status     string `json:"status" example:"active"`
	GridSize   int    `json:"grid_size" example:"5"`
	MineCount  int    `json:"mine_count" example:"3"`
	Multiplier string `json:"multiplier" example:"1"`
	Balance    string `json:"balance" example:"900.00"`
}

type MinesRevealResponse struct {
	SessionID  int64  `json:"session_id" example:"7"`
	Cell       int    `json:"cell" example:"12"`
	Mine       bool   `json:"mine" example:"false"`
	Status     string `json:"status" example:"active"`
	Multiplier string `json:"multiplier" example:"1.2"`
	// Mines is populated only after a bust, for display.
	Mines   []int  `json:"mines,omitempty"`
	Balance string `json:"balance,omitempty" example:"900.00"`
}

type MinesCashoutResponse struct {
	SessionID  int64  `json:"session_id" example:"7"`
	Status     string `json:"status" example:"cashed_out"`
	Multiplier string `json:"multiplier" example:"1.4"`
	Payout     string `json:"payout" example:"140"`
	Balance    string `json:"balance" example:"1040.00"`
}

type LedgerListResponse struct {
	Entries []*LedgerEntry `json:"entries"`
	Total   int            `json:"total"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
}

type WithdrawalListResponse struct {
	Withdrawals []*WithdrawalRequest `json:"withdrawals"`
	Total       int                  `json:"total"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient funds"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_FUNDS"`
	Details string `json:"details,omitempty"`
}
