package service

import (
	"context"
	"fmt"

	"spinx-engine/internal/config"
	"spinx-engine/internal/model"
	"spinx-engine/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type WithdrawalServiceImpl struct {
	ledger      ledger
	withdrawals repository.WithdrawalRepository
	dbManager   repository.DBManager
	cfg         config.WithdrawMethodsConfig
	logger      zerolog.Logger
}

func NewWithdrawalService(
	accountRepo repository.AccountRepository,
	ledgerRepo repository.LedgerRepository,
	withdrawalRepo repository.WithdrawalRepository,
	dbManager repository.DBManager,
	cfg config.WithdrawMethodsConfig,
	logger zerolog.Logger,
) WithdrawalService {
	return &WithdrawalServiceImpl{
		ledger:      ledger{accounts: accountRepo, entries: ledgerRepo},
		withdrawals: withdrawalRepo,
		dbManager:   dbManager,
		cfg:         cfg,
		logger:      logger,
	}
}

// Request places an optimistic hold: the full amount is debited up front
// and only a rejection gives it back.
func (s *WithdrawalServiceImpl) Request(ctx context.Context, accountID int64, req *model.WithdrawalRequestBody) (*model.WithdrawalRequest, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidAmount, err.Error())
	}

	method, err := model.ParseWithdrawalMethod(req.Method)
	if err != nil {
		return nil, err
	}
	minAmount, maxAmount, feeRate := s.methodTerms(method)
	if amount.LessThan(minAmount) || amount.GreaterThan(maxAmount) {
		return nil, fmt.Errorf("%w: withdrawal must be between %s and %s", model.ErrInvalidAmount,
			minAmount.String(), maxAmount.String())
	}

	fee := amount.Mul(feeRate).Round(2)
	request := &model.WithdrawalRequest{
		AccountID:      accountID,
		Amount:         amount,
		Fee:            fee,
		NetAmount:      amount.Sub(fee),
		Method:         method,
		AccountDetails: req.AccountDetails,
		Status:         model.WithdrawalPending,
		Reference:      "WD_" + uuid.New().String(),
	}

	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		acct, err := s.ledger.accounts.GetAccountForUpdate(ctx, accountID, tx)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}
		if !acct.IsActive {
			return model.ErrAccountSuspended
		}

		if _, err := s.ledger.debit(ctx, tx, acct, amount, model.EntryWithdrawal,
			string(method)+" withdrawal", request.Reference); err != nil {
			return err
		}

		acct.TotalWithdrawals = acct.TotalWithdrawals.Add(amount)
		if err := s.ledger.accounts.UpdateStats(ctx, acct, tx); err != nil {
			return fmt.Errorf("update stats: %w", err)
		}

		if err := s.withdrawals.InsertRequest(ctx, request, tx); err != nil {
			return err
		}

		s.logger.Info().
			Int64("account_id", accountID).
			Int64("request_id", request.ID).
			Str("method", string(method)).
			Str("amount", amount.String()).
			Str("net_amount", request.NetAmount.String()).
			Msg("withdrawal requested")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// Approve finalizes a pending request. The funds were held at request time,
// so there is no further balance effect.
func (s *WithdrawalServiceImpl) Approve(ctx context.Context, requestID int64) (*model.WithdrawalRequest, error) {
	var request *model.WithdrawalRequest
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		req, err := s.withdrawals.GetRequestForUpdate(ctx, requestID, tx)
		if err != nil {
			return err
		}

		moved, err := s.withdrawals.TransitionIfPending(ctx, requestID, model.WithdrawalApproved, nil, tx)
		if err != nil {
			return err
		}
		if !moved {
			return model.ErrWithdrawalNotPending
		}

		req.Status = model.WithdrawalApproved
		request = req

		s.logger.Info().
			Int64("request_id", requestID).
			Int64("account_id", req.AccountID).
			Str("amount", req.Amount.String()).
			Msg("withdrawal approved")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// Reject returns the held amount. The conditional pending->rejected
// transition guarantees the refund is credited at most once even if the
// same request is rejected concurrently.
func (s *WithdrawalServiceImpl) Reject(ctx context.Context, requestID int64, reason string) (*model.WithdrawalRequest, error) {
	var request *model.WithdrawalRequest
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		req, err := s.withdrawals.GetRequestForUpdate(ctx, requestID, tx)
		if err != nil {
			return err
		}

		moved, err := s.withdrawals.TransitionIfPending(ctx, requestID, model.WithdrawalRejected, &reason, tx)
		if err != nil {
			return err
		}
		if !moved {
			return model.ErrWithdrawalNotPending
		}

		acct, err := s.ledger.accounts.GetAccountForUpdate(ctx, req.AccountID, tx)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}
		if _, err := s.ledger.credit(ctx, tx, acct, req.Amount, model.EntryRefund,
			"Withdrawal rejected: "+reason, "REFUND_"+uuid.New().String()); err != nil {
			return err
		}

		req.Status = model.WithdrawalRejected
		req.Reason = &reason
		request = req

		s.logger.Info().
			Int64("request_id", requestID).
			Int64("account_id", req.AccountID).
			Str("amount", req.Amount.String()).
			Str("reason", reason).
			Msg("withdrawal rejected and refunded")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (s *WithdrawalServiceImpl) List(ctx context.Context, status *model.WithdrawalStatus, limit, offset int) ([]*model.WithdrawalRequest, error) {
	requests, err := s.withdrawals.ListRequests(ctx, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list withdrawal requests: %w", err)
	}
	return requests, nil
}

func (s *WithdrawalServiceImpl) methodTerms(method model.WithdrawalMethod) (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	switch method {
	case model.MethodMobileMoney:
		return decimal.NewFromInt(s.cfg.MobileMoneyMin), decimal.NewFromInt(s.cfg.MobileMoneyMax),
			decimal.NewFromFloat(s.cfg.MobileMoneyFee)
	default:
		return decimal.NewFromInt(s.cfg.BankMin), decimal.NewFromInt(s.cfg.BankMax),
			decimal.NewFromFloat(s.cfg.BankFee)
	}
}
