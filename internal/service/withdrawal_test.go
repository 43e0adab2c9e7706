package service

import (
	"context"
	"testing"

	"spinx-engine/internal/model"
	mocks "spinx-engine/mocks/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWithdrawalService(t *testing.T) (WithdrawalService, *mocks.AccountRepository, *mocks.LedgerRepository, *mocks.WithdrawalRepository, *mocks.DBManager) {
	mockAccountRepo := mocks.NewAccountRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockWithdrawalRepo := mocks.NewWithdrawalRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	svc := NewWithdrawalService(mockAccountRepo, mockLedgerRepo, mockWithdrawalRepo, mockDBManager,
		testWalletConfig().Withdraw, zerolog.Nop())
	return svc, mockAccountRepo, mockLedgerRepo, mockWithdrawalRepo, mockDBManager
}

func TestRequestWithdrawal_HappyPath(t *testing.T) {
	ctx := context.Background()

	svc, mockAccountRepo, mockLedgerRepo, mockWithdrawalRepo, mockDBManager := newWithdrawalService(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockAccountRepo.On("GetAccountForUpdate", ctx, int64(1), mock.Anything).Return(&model.Account{
		ID:       1,
		Balance:  decimal.NewFromInt(5000),
		IsActive: true,
	}, nil)
	mockAccountRepo.On("UpdateBalance", ctx, int64(1), decimal.NewFromInt(3000), mock.Anything).Return(nil)
	mockLedgerRepo.On("InsertEntry", ctx, mock.MatchedBy(func(entry *model.LedgerEntry) bool {
		return entry.AccountID == 1 &&
			entry.Type == model.EntryWithdrawal &&
			entry.Amount.Equal(decimal.NewFromInt(-2000))
	}), mock.Anything).Return(nil)
	mockAccountRepo.On("UpdateStats", ctx, mock.MatchedBy(func(acct *model.Account) bool {
		return acct.TotalWithdrawals.Equal(decimal.NewFromInt(2000))
	}), mock.Anything).Return(nil)
	mockWithdrawalRepo.On("InsertRequest", ctx, mock.MatchedBy(func(req *model.WithdrawalRequest) bool {
		return req.AccountID == 1 &&
			req.Amount.Equal(decimal.NewFromInt(2000)) &&
			req.Fee.Equal(decimal.NewFromInt(20)) &&
			req.NetAmount.Equal(decimal.NewFromInt(1980)) &&
			req.Method == model.MethodBank &&
			req.Status == model.WithdrawalPending
	}), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.WithdrawalRequest).ID = 11
	}).Return(nil)

	resp, err := svc.Request(ctx, 1, &model.WithdrawalRequestBody{
		Amount:         "2000",
		Method:         "bank",
		AccountDetails: "0123456789 / GTBank",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, model.WithdrawalPending, resp.Status)
	assert.Equal(t, "1980", resp.NetAmount.String())
}

func TestRequestWithdrawal_InsufficientFunds(t *testing.T) {
	ctx := context.Background()

	svc, mockAccountRepo, _, _, mockDBManager := newWithdrawalService(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockAccountRepo.On("GetAccountForUpdate", ctx, int64(1), mock.Anything).Return(&model.Account{
		ID:       1,
		Balance:  decimal.NewFromInt(1500),
		IsActive: true,
	}, nil)

	resp, err := svc.Request(ctx, 1, &model.WithdrawalRequestBody{
		Amount:         "2000",
		Method:         "bank",
		AccountDetails: "0123456789 / GTBank",
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
}

func TestRequestWithdrawal_MethodBounds(t *testing.T) {
	ctx := context.Background()

	svc, _, _, _, _ := newWithdrawalService(t)

	cases := []struct {
		method string
		amount string
	}{
		{"bank", "1999"},            // under 2000
		{"bank", "1000001"},         // over 1000000
		{"mobile-money", "999"},     // under 1000
		{"mobile-money", "500001"},  // over 500000
	}
	for _, tc := range cases {
		resp, err := svc.Request(ctx, 1, &model.WithdrawalRequestBody{
			Amount:         tc.amount,
			Method:         tc.method,
			AccountDetails: "details",
		})
		require.Error(t, err, "%s %s", tc.method, tc.amount)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, model.ErrInvalidAmount)
	}
}

func TestApproveWithdrawal_HappyPath(t *testing.T) {
	ctx := context.Background()

	svc, _, _, mockWithdrawalRepo, mockDBManager := newWithdrawalService(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockWithdrawalRepo.On("GetRequestForUpdate", ctx, int64(11), mock.Anything).Return(&model.WithdrawalRequest{
		ID:        11,
		AccountID: 1,
		Amount:    decimal.NewFromInt(2000),
		Status:    model.WithdrawalPending,
	}, nil)
	mockWithdrawalRepo.On("TransitionIfPending", ctx, int64(11), model.WithdrawalApproved, (*string)(nil), mock.Anything).Return(true, nil)

	resp, err := svc.Approve(ctx, 11)

	require.NoError(t, err)
	assert.Equal(t, model.WithdrawalApproved, resp.Status)
}

func TestApproveWithdrawal_AlreadyDecided(t *testing.T) {
	ctx := context.Background()

	svc, _, _, mockWithdrawalRepo, mockDBManager := newWithdrawalService(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockWithdrawalRepo.On("GetRequestForUpdate", ctx, int64(11), mock.Anything).Return(&model.WithdrawalRequest{
		ID:        11,
		AccountID: 1,
		Amount:    decimal.NewFromInt(2000),
		Status:    model.WithdrawalRejected,
	}, nil)
	mockWithdrawalRepo.On("TransitionIfPending", ctx, int64(11), model.WithdrawalApproved, (*string)(nil), mock.Anything).Return(false, nil)

	resp, err := svc.Approve(ctx, 11)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrWithdrawalNotPending)
}

func TestRejectWithdrawal_RefundsHold(t *testing.T) {
	ctx := context.Background()

	svc, mockAccountRepo, mockLedgerRepo, mockWithdrawalRepo, mockDBManager := newWithdrawalService(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockWithdrawalRepo.On("GetRequestForUpdate", ctx, int64(11), mock.Anything).Return(&model.WithdrawalRequest{
		ID:        11,
		AccountID: 1,
		Amount:    decimal.NewFromInt(2000),
		Status:    model.WithdrawalPending,
	}, nil)
	mockWithdrawalRepo.On("TransitionIfPending", ctx, int64(11), model.WithdrawalRejected, mock.MatchedBy(func(reason *string) bool {
		return reason != nil && *reason == "account details mismatch"
	}), mock.Anything).Return(true, nil)
	mockAccountRepo.On("GetAccountForUpdate", ctx, int64(1), mock.Anything).Return(&model.Account{
		ID:       1,
		Balance:  decimal.NewFromInt(3000),
		IsActive: true,
	}, nil)
	mockAccountRepo.On("UpdateBalance", ctx, int64(1), decimal.NewFromInt(5000), mock.Anything).Return(nil)
	mockLedgerRepo.On("InsertEntry", ctx, mock.MatchedBy(func(entry *model.LedgerEntry) bool {
		return entry.AccountID == 1 &&
			entry.Type == model.EntryRefund &&
			entry.Amount.Equal(decimal.NewFromInt(2000))
	}), mock.Anything).Return(nil)

	resp, err := svc.Reject(ctx, 11, "account details mismatch")

	require.NoError(t, err)
	assert.Equal(t, model.WithdrawalRejected, resp.Status)
	require.NotNil(t, resp.Reason)
	assert.Equal(t, "account details mismatch", *resp.Reason)
}

func TestRejectWithdrawal_AlreadyRejected_NoSecondRefund(t *testing.T) {
	ctx := context.Background()

	svc, _, _, mockWithdrawalRepo, mockDBManager := newWithdrawalService(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockWithdrawalRepo.On("GetRequestForUpdate", ctx, int64(11), mock.Anything).Return(&model.WithdrawalRequest{
		ID:        11,
		AccountID: 1,
		Amount:    decimal.NewFromInt(2000),
		Status:    model.WithdrawalRejected,
	}, nil)
	mockWithdrawalRepo.On("TransitionIfPending", ctx, int64(11), model.WithdrawalRejected, mock.Anything, mock.Anything).Return(false, nil)

	// No account or ledger expectations: a repeated reject must not credit again
	resp, err := svc.Reject(ctx, 11, "duplicate")

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrWithdrawalNotPending)
}

func TestListWithdrawals_PassesFilter(t *testing.T) {
	ctx := context.Background()

	svc, _, _, mockWithdrawalRepo, _ := newWithdrawalService(t)

	status := model.WithdrawalPending
	mockWithdrawalRepo.On("ListRequests", ctx, &status, 20, 0).Return([]*model.WithdrawalRequest{
		{ID: 11, Status: model.WithdrawalPending},
	}, nil)

	requests, err := svc.List(ctx, &status, 20, 0)

	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, int64(11), requests[0].ID)
}
