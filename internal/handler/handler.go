package handler

import (
	"errors"
	"net/http"

	"spinx-engine/internal/model"
	"spinx-engine/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	accountService    service.AccountService
	walletService     service.WalletService
	settlementService service.SettlementService
	minesService      service.MinesService
	withdrawalService service.WithdrawalService
	logger            zerolog.Logger
}

func NewHandler(
	accountService service.AccountService,
	walletService service.WalletService,
	settlementService service.SettlementService,
	minesService service.MinesService,
	withdrawalService service.WithdrawalService,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		accountService:    accountService,
		walletService:     walletService,
		settlementService: settlementService,
		minesService:      minesService,
		withdrawalService: withdrawalService,
		logger:            logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		gin.Recovery(),
	)

	// Swagger and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")

	accounts := v1.Group("/accounts")
	accounts.POST("", h.Register)
	accounts.GET("/:id/balance", h.GetBalance)
	accounts.GET("/:id/transactions", h.GetTransactions)

	v1.POST("/login", h.Login)
	v1.POST("/deposits", h.Deposit)
	v1.POST("/wagers", h.PlaceWager)

	mines := v1.Group("/mines")
	mines.POST("", h.StartMines)
	mines.POST("/:id/reveal", h.RevealMinesCell)
	mines.POST("/:id/cashout", h.CashoutMines)

	v1.POST("/withdrawals", h.RequestWithdrawal)

	admin := v1.Group("/admin")
	admin.GET("/withdrawals", h.ListWithdrawals)
	admin.POST("/withdrawals/:id/approve", h.ApproveWithdrawal)
	admin.POST("/withdrawals/:id/reject", h.RejectWithdrawal)
	admin.POST("/accounts/:id/suspend", h.SuspendAccount)
	admin.POST("/accounts/:id/activate", h.ActivateAccount)
	admin.POST("/accounts/:id/kyc", h.ReviewKYC)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrInvalidWager):
		status = http.StatusBadRequest
		code = "INVALID_WAGER"
	case errors.Is(err, model.ErrInvalidAmount):
		status = http.StatusBadRequest
		code = "INVALID_AMOUNT"
	case errors.Is(err, model.ErrInvalidMethod):
		status = http.StatusBadRequest
		code = "INVALID_METHOD"
	case errors.Is(err, model.ErrInvalidCell):
		status = http.StatusBadRequest
		code = "INVALID_CELL"
	case errors.Is(err, model.ErrInvalidKYCStatus):
		status = http.StatusBadRequest
		code = "INVALID_KYC_STATUS"
	case errors.Is(err, model.ErrInsufficientFunds):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_FUNDS"
	case errors.Is(err, model.ErrReferralCodeUnknown):
		status = http.StatusBadRequest
		code = "REFERRAL_CODE_UNKNOWN"
	case errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		code = "INVALID_CREDENTIALS"
	case errors.Is(err, model.ErrAccountSuspended):
		status = http.StatusForbidden
		code = "ACCOUNT_SUSPENDED"
	case errors.Is(err, model.ErrAccountNotFound):
		status = http.StatusNotFound
		code = "ACCOUNT_NOT_FOUND"
	case errors.Is(err, model.ErrSessionNotFound):
		status = http.StatusNotFound
		code = "SESSION_NOT_FOUND"
	case errors.Is(err, model.ErrWithdrawalNotFound):
		status = http.StatusNotFound
		code = "WITHDRAWAL_NOT_FOUND"
	case errors.Is(err, model.ErrUsernameTaken):
		status = http.StatusConflict
		code = "USERNAME_TAKEN"
	case errors.Is(err, model.ErrSessionAlreadyActive):
		status = http.StatusConflict
		code = "SESSION_ALREADY_ACTIVE"
	case errors.Is(err, model.ErrSessionTerminal):
		status = http.StatusConflict
		code = "SESSION_FINISHED"
	case errors.Is(err, model.ErrCellAlreadyRevealed):
		status = http.StatusConflict
		code = "CELL_ALREADY_REVEALED"
	case errors.Is(err, model.ErrWithdrawalNotPending):
		status = http.StatusConflict
		code = "WITHDRAWAL_NOT_PENDING"
	case errors.Is(err, model.ErrDuplicateReference):
		status = http.StatusConflict
		code = "DUPLICATE_REFERENCE"
		resp.Details = "Reference already used by a different account"
	}
	resp.Code = code

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("internal server error")
	}

	c.JSON(status, resp)
}
