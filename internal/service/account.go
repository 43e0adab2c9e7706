package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"spinx-engine/internal/model"
	"spinx-engine/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type AccountServiceImpl struct {
	accounts  repository.AccountRepository
	entries   repository.LedgerRepository
	dbManager repository.DBManager
	logger    zerolog.Logger
}

func NewAccountService(
	accountRepo repository.AccountRepository,
	ledgerRepo repository.LedgerRepository,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) AccountService {
	return &AccountServiceImpl{
		accounts:  accountRepo,
		entries:   ledgerRepo,
		dbManager: dbManager,
		logger:    logger,
	}
}

// Register creates an account with a zero balance. A referral code, when
// supplied, must resolve to an existing account; the bonus itself is only
// released by the referred player's first qualifying deposit.
func (s *AccountServiceImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	acct := &model.Account{
		Username:     req.Username,
		Email:        strings.ToLower(req.Email),
		PasswordHash: string(hash),
		ReferralCode: generateReferralCode(req.Username),
		KYCStatus:    model.KYCPending,
		IsActive:     true,
	}

	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		if req.ReferralCode != "" {
			referrer, err := s.accounts.GetAccountByReferralCode(ctx, req.ReferralCode, tx)
			if err != nil {
				return err
			}
			acct.ReferredBy = &referrer.ID
		}
		return s.accounts.CreateAccount(ctx, acct, tx)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("account_id", acct.ID).
		Str("username", acct.Username).
		Str("referral_code", acct.ReferralCode).
		Msg("account registered")
	return acct, nil
}

// Login verifies credentials. Suspended accounts are refused even with the
// right password.
func (s *AccountServiceImpl) Login(ctx context.Context, username, password string) (*model.Account, error) {
	acct, err := s.accounts.GetAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return nil, model.ErrInvalidCredentials
	}
	if !acct.IsActive {
		return nil, model.ErrAccountSuspended
	}
	return acct, nil
}

func (s *AccountServiceImpl) GetBalance(ctx context.Context, accountID int64) (*model.BalanceResponse, error) {
	balance, err := s.accounts.GetBalance(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return &model.BalanceResponse{
		AccountID: accountID,
		Balance:   balance.StringFixed(2),
	}, nil
}

func (s *AccountServiceImpl) GetLedger(ctx context.Context, accountID int64, limit, offset int) ([]*model.LedgerEntry, error) {
	entries, err := s.entries.ListEntriesByAccount(ctx, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	return entries, nil
}

func (s *AccountServiceImpl) SetActive(ctx context.Context, accountID int64, active bool) error {
	if err := s.accounts.SetActive(ctx, accountID, active); err != nil {
		return err
	}
	s.logger.Info().Int64("account_id", accountID).Bool("active", active).Msg("account active flag changed")
	return nil
}

func (s *AccountServiceImpl) ReviewKYC(ctx context.Context, accountID int64, status model.KYCStatus) error {
	if err := s.accounts.SetKYCStatus(ctx, accountID, status); err != nil {
		return err
	}
	s.logger.Info().Int64("account_id", accountID).Str("kyc_status", string(status)).Msg("kyc reviewed")
	return nil
}

// generateReferralCode builds a short shareable code from the username plus
// a random suffix; the unique constraint catches the rare collision.
func generateReferralCode(username string) string {
	prefix := strings.ToUpper(username)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("SPINX%s%04d", prefix, rand.Intn(10000))
}
