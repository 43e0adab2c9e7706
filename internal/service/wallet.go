package service

import (
	"context"
	"errors"
	"fmt"

	"spinx-engine/internal/config"
	"spinx-engine/internal/model"
	"spinx-engine/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// rollback and check for duplicate outside tx
var errDuplicateInsertRace = errors.New("duplicate reference insert race")

type WalletServiceImpl struct {
	ledger    ledger
	dbManager repository.DBManager
	cfg       config.WalletConfig
	logger    zerolog.Logger
}

func NewWalletService(
	accountRepo repository.AccountRepository,
	ledgerRepo repository.LedgerRepository,
	dbManager repository.DBManager,
	cfg config.WalletConfig,
	logger zerolog.Logger,
) WalletService {
	return &WalletServiceImpl{
		ledger:    ledger{accounts: accountRepo, entries: ledgerRepo},
		dbManager: dbManager,
		cfg:       cfg,
		logger:    logger,
	}
}

// Deposit credits a provider-confirmed deposit. The reference is the
// idempotency key: replaying a processed reference returns the prior result
// instead of double-crediting. The first qualifying deposit also releases
// the referrer's pending bonus.
func (s *WalletServiceImpl) Deposit(ctx context.Context, accountID int64, req *model.DepositRequest) (*model.DepositResponse, error) {
	// Validate inputs early, before transaction and locks
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidAmount, err.Error())
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", model.ErrInvalidAmount)
	}

	method, err := model.ParseDepositMethod(req.Method)
	if err != nil {
		return nil, err
	}
	minAmount, maxAmount := s.depositBounds(method)
	if amount.LessThan(minAmount) || amount.GreaterThan(maxAmount) {
		return nil, fmt.Errorf("%w: deposit must be between %s and %s", model.ErrInvalidAmount,
			minAmount.String(), maxAmount.String())
	}

	var resp *model.DepositResponse
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		existing, err := s.ledger.entries.GetEntryByReference(ctx, req.Reference, tx)
		if err != nil && !errors.Is(err, model.ErrEntryNotFound) {
			return fmt.Errorf("get ledger entry: %w", err)
		}

		if existing != nil {
			if existing.AccountID != accountID {
				return fmt.Errorf("%w: reference %s already used by account %d",
					model.ErrDuplicateReference, req.Reference, existing.AccountID)
			}
			balance, err := s.ledger.accounts.GetBalance(ctx, accountID, tx)
			if err != nil {
				return fmt.Errorf("get balance: %w", err)
			}
			s.logger.Info().Str("reference", req.Reference).Int64("account_id", accountID).Msg("deposit already processed")
			resp = &model.DepositResponse{
				Status:    "already_processed",
				Balance:   balance.StringFixed(2),
				Reference: req.Reference,
				Message:   "Deposit already processed",
			}
			return nil
		}

		acct, err := s.ledger.accounts.GetAccountForUpdate(ctx, accountID, tx)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}
		if !acct.IsActive {
			return model.ErrAccountSuspended
		}

		firstDeposit := acct.TotalDeposits.IsZero()

		if _, err := s.ledger.credit(ctx, tx, acct, amount, model.EntryDeposit,
			string(method)+" deposit", req.Reference); err != nil {
			if errors.Is(err, model.ErrDuplicateReference) {
				// Another request inserted the same reference, rollback tx
				return errDuplicateInsertRace
			}
			return err
		}

		acct.TotalDeposits = acct.TotalDeposits.Add(amount)
		if err := s.ledger.accounts.UpdateStats(ctx, acct, tx); err != nil {
			return fmt.Errorf("update stats: %w", err)
		}

		if firstDeposit {
			if err := s.processReferral(ctx, tx, acct, amount); err != nil {
				return err
			}
		}

		s.logger.Info().
			Str("reference", req.Reference).
			Int64("account_id", accountID).
			Str("method", string(method)).
			Str("amount", amount.String()).
			Str("new_balance", acct.Balance.StringFixed(2)).
			Msg("deposit processed")

		resp = &model.DepositResponse{
			Status:    "success",
			Balance:   acct.Balance.StringFixed(2),
			Reference: req.Reference,
			Message:   "Deposit processed",
		}
		return nil
	})

	// Handle the race: check whether the winning insert was ours to replay
	if errors.Is(err, errDuplicateInsertRace) {
		existing, getErr := s.ledger.entries.GetEntryByReference(ctx, req.Reference)
		if getErr != nil {
			return nil, fmt.Errorf("get ledger entry after duplicate: %w", getErr)
		}
		if existing.AccountID != accountID {
			return nil, fmt.Errorf("%w: reference %s already used by account %d",
				model.ErrDuplicateReference, req.Reference, existing.AccountID)
		}

		balance, balErr := s.ledger.accounts.GetBalance(ctx, accountID)
		if balErr != nil {
			return nil, fmt.Errorf("get balance after duplicate: %w", balErr)
		}

		s.logger.Info().
			Str("reference", req.Reference).
			Int64("account_id", accountID).
			Msg("deposit already processed (detected after rollback)")

		return &model.DepositResponse{
			Status:    "already_processed",
			Balance:   balance.StringFixed(2),
			Reference: req.Reference,
			Message:   "Deposit already processed",
		}, nil
	}

	if err != nil {
		return nil, err
	}

	return resp, nil
}

// processReferral releases the referral bonus on the account's first
// deposit when it meets the configured minimum. The depositor's row is
// already locked; the referrer is always an older account, so locking it
// second cannot deadlock.
func (s *WalletServiceImpl) processReferral(ctx context.Context, tx pgx.Tx, acct *model.Account, amount decimal.Decimal) error {
	if acct.ReferredBy == nil {
		return nil
	}
	if amount.LessThan(decimal.NewFromInt(s.cfg.Referral.MinDeposit)) {
		return nil
	}

	referrer, err := s.ledger.accounts.GetAccountForUpdate(ctx, *acct.ReferredBy, tx)
	if err != nil {
		return fmt.Errorf("get referrer for update: %w", err)
	}

	bonus := decimal.NewFromInt(s.cfg.Referral.Bonus)
	ref := "REF_" + uuid.New().String()
	if _, err := s.ledger.credit(ctx, tx, referrer, bonus, model.EntryReferral,
		"Referral bonus for "+acct.Username, ref); err != nil {
		return err
	}

	referrer.ReferralsCount++
	referrer.ReferralEarnings = referrer.ReferralEarnings.Add(bonus)
	if err := s.ledger.accounts.UpdateStats(ctx, referrer, tx); err != nil {
		return fmt.Errorf("update referrer stats: %w", err)
	}

	s.logger.Info().
		Int64("referrer_id", referrer.ID).
		Int64("account_id", acct.ID).
		Str("bonus", bonus.String()).
		Msg("referral bonus activated")
	return nil
}

func (s *WalletServiceImpl) depositBounds(method model.DepositMethod) (decimal.Decimal, decimal.Decimal) {
	switch method {
	case model.DepositMobileMoney:
		return decimal.NewFromInt(s.cfg.Deposit.MobileMoneyMin), decimal.NewFromInt(s.cfg.Deposit.MobileMoneyMax)
	case model.DepositCard:
		return decimal.NewFromInt(s.cfg.Deposit.CardMin), decimal.NewFromInt(s.cfg.Deposit.CardMax)
	default:
		return decimal.NewFromInt(s.cfg.Deposit.CryptoMin), decimal.NewFromInt(s.cfg.Deposit.CryptoMax)
	}
}
