package service

import (
	"context"
	"testing"
	"time"

	"spinx-engine/internal/config"
	"spinx-engine/internal/model"
	mocks "spinx-engine/mocks/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testMinesConfig() config.MinesConfig {
	return config.MinesConfig{MinBet: 10, MaxBet: 100000, GridSize: 5, MaxMines: 12}
}

func newMinesService(t *testing.T, rng *stubRand) (*MinesServiceImpl, *mocks.AccountRepository, *mocks.LedgerRepository, *mocks.MinesRepository, *mocks.DBManager) {
	mockAccountRepo := mocks.NewAccountRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockMinesRepo := mocks.NewMinesRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	svc := NewMinesService(mockAccountRepo, mockLedgerRepo, mockMinesRepo, mockDBManager,
		testMinesConfig(), 24*time.Hour, rng, zerolog.Nop())
	return svc, mockAccountRepo, mockLedgerRepo, mockMinesRepo, mockDBManager
}

func TestStartMines_HappyPath(t *testing.T) {
	ctx := context.Background()

	// scripted placement: cells 0, 1, 2
	svc, mockAccountRepo, mockLedgerRepo, mockMinesRepo, mockDBManager := newMinesService(t, &stubRand{ints: []int{0, 0, 0}})

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockAccountRepo.On("GetAccountForUpdate", ctx, int64(1), mock.Anything).Return(&model.Account{
		ID:       1,
		Balance:  decimal.NewFromInt(1000),
		IsActive: true,
	}, nil)
	mockAccountRepo.On("UpdateBalance", ctx, int64(1), decimal.NewFromInt(900), mock.Anything).Return(nil)
	mockLedgerRepo.On("InsertEntry", ctx, mock.MatchedBy(func(entry *model.LedgerEntry) bool {
		return entry.AccountID == 1 &&
			entry.Type == model.EntryGame &&
			entry.Amount.Equal(decimal.NewFromInt(-100))
	}), mock.Anything).Return(nil)
	mockMinesRepo.On("InsertSession", ctx, mock.MatchedBy(func(s *model.MinesSession) bool {
		return s.AccountID == 1 &&
			s.GridSize == 5 &&
			s.MineCount == 3 &&
			len(s.MinePositions) == 3 &&
			s.Status == model.SessionActive
	}), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.MinesSession).ID = 7
	}).Return(nil)

	resp, err := svc.Start(ctx, 1, &model.MinesStartRequest{Stake: "100", MineCount: 3})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.SessionID)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, "1", resp.Multiplier)
	assert.Equal(t, "900.00", resp.Balance)
}

func TestStartMines_SecondActiveSession_RollsBackDebit(t *testing.T) {
	ctx := context.Background()

	svc, mockAccountRepo, mockLedgerRepo, mockMinesRepo, mockDBManager := newMinesService(t, &stubRand{ints: []int{0, 0, 0}})

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockAccountRepo.On("GetAccountForUpdate", ctx, int64(1), mock.Anything).Return(&model.Account{
		ID:       1,
		Balance:  decimal.NewFromInt(1000),
		IsActive: true,
	}, nil)
	mockAccountRepo.On("UpdateBalance", ctx, int64(1), decimal.NewFromInt(900), mock.Anything).Return(nil)
	mockLedgerRepo.On("InsertEntry", ctx, mock.Anything, mock.Anything).Return(nil)
	mockMinesRepo.On("InsertSession", ctx, mock.Anything, mock.Anything).Return(model.ErrSessionAlreadyActive)

	resp, err := svc.Start(ctx, 1, &model.MinesStartRequest{Stake: "100", MineCount: 3})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrSessionAlreadyActive)
}

func TestStartMines_MineCountOutOfRange(t *testing.T) {
	ctx := context.Background()

	svc, _, _, _, _ := newMinesService(t, &stubRand{})

	for _, count := range []int{0, 13, 25} {
		resp, err := svc.Start(ctx, 1, &model.MinesStartRequest{Stake: "100", MineCount: count})
		require.Error(t, err, "mine count %d", count)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, model.ErrInvalidWager)
	}
}

func TestRevealMines_SafeCell_BumpsMultiplier(t *testing.T) {
	ctx := context.Background()

	svc, _, _, mockMinesRepo, mockDBManager := newMinesService(t, &stubRand{})

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockMinesRepo.On("GetSessionForUpdate", ctx, int64(7), mock.Anything).Return(&model.MinesSession{
		ID:            7,
		AccountID:     1,
		Stake:         decimal.NewFromInt(100),
		GridSize:      5,
		MineCount:     3,
		MinePositions: []int{5, 10, 15},
		Revealed:      []int{},
		Multiplier:    decimal.NewFromInt(1),
		Status:        model.SessionActive,
	}, nil)
	mockMinesRepo.On("UpdateSession", ctx, mock.MatchedBy(func(s *model.MinesSession) bool {
		return len(s.Revealed) == 1 && s.Revealed[0] == 0 &&
			s.Status == model.SessionActive &&
			s.Multiplier.Equal(decimal.RequireFromString("1.2"))
	}), mock.Anything).Return(nil)

	resp, err := svc.Reveal(ctx, 1, 7, 0)

	require.NoError(t, err)
	assert.False(t, resp.Mine)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, "1.2", resp.Multiplier)
	assert.Empty(t, resp.Mines)
}

func TestRevealMines_Mine_BustsSession(t *testing.T) {
	ctx := context.Background()

	svc, mockAccountRepo, _, mockMinesRepo, mockDBManager := newMinesService(t, &stubRand{})

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockMinesRepo.On("GetSessionForUpdate", ctx, int64(7), mock.Anything).Return(&model.MinesSession{
		ID:            7,
		AccountID:     1,
		Stake:         decimal.NewFromInt(100),
		GridSize:      5,
		MineCount:     3,
		MinePositions: []int{5, 10, 15},
		Revealed:      []int{0, 1},
		Multiplier:    decimal.RequireFromString("1.4"),
		Status:        model.SessionActive,
	}, nil)
	mockMinesRepo.On("UpdateSession", ctx, mock.MatchedBy(func(s *model.MinesSession) bool {
		return s.Status == model.SessionBusted
	}), mock.Anything).Return(nil)
	mockAccountRepo.On("GetAccountForUpdate", ctx, int64(1), mock.Anything).Return(&model.Account{
		ID:            1,
		Balance:       decimal.NewFromInt(900),
		CurrentStreak: 2,
		IsActive:      true,
	}, nil)
	mockAccountRepo.On("UpdateStats", ctx, mock.MatchedBy(func(acct *model.Account) bool {
		return acct.CurrentStreak == 0 && acct.GamesPlayed == 1
	}), mock.Anything).Return(nil)

	resp, err := svc.Reveal(ctx, 1, 7, 10)

	require.NoError(t, err)
	assert.True(t, resp.Mine)
	assert.Equal(t, "busted", resp.Status)
	assert.Equal(t, []int{5, 10, 15}, resp.Mines)
	assert.Equal(t, "900.00", resp.Balance)
}

func TestRevealMines_WrongAccount(t *testing.T) {
	ctx := context.Background()

	svc, _, _, mockMinesRepo, mockDBManager := newMinesService(t, &stubRand{})

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockMinesRepo.On("GetSessionForUpdate", ctx, int64(7), mock.Anything).Return(&model.MinesSession{
		ID:        7,
		AccountID: 999,
		Status:    model.SessionActive,
	}, nil)

	resp, err := svc.Reveal(ctx, 1, 7, 0)

	require.Error(t, err)
	assert.Nil(t, resp)
	// Another player's session is indistinguishable from a missing one
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestRevealMines_TerminalSession(t *testing.T) {
	ctx := context.Background()

	svc, _, _, mockMinesRepo, mockDBManager := newMinesService(t, &stubRand{})

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockMinesRepo.On("GetSessionForUpdate", ctx, int64(7), mock.Anything).Return(&model.MinesSession{
		ID:        7,
		AccountID: 1,
		Status:    model.SessionBusted,
	}, nil)

	resp, err := svc.Reveal(ctx, 1, 7, 0)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrSessionTerminal)
}

func TestRevealMines_CellAlreadyRevealed(t *testing.T) {
	ctx := context.Background()

	svc, _, _, mockMinesRepo, mockDBManager := newMinesService(t, &stubRand{})

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockMinesRepo.On("GetSessionForUpdate", ctx, int64(7), mock.Anything).Return(&model.MinesSession{
		ID:            7,
		AccountID:     1,
		GridSize:      5,
		MinePositions: []int{5, 10, 15},
		Revealed:      []int{3},
		Status:        model.SessionActive,
	}, nil)

	resp, err := svc.Reveal(ctx, 1, 7, 3)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrCellAlreadyRevealed)
}

func TestRevealMines_CellOutOfRange(t *testing.T) {
	ctx := context.Background()

	svc, _, _, mockMinesRepo, mockDBManager := newMinesService(t, &stubRand{})

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockMinesRepo.On("GetSessionForUpdate", ctx, int64(7), mock.Anything).Return(&model.MinesSession{
		ID:        7,
		AccountID: 1,
		GridSize:  5,
		Status:    model.SessionActive,
	}, nil)

	resp, err := svc.Reveal(ctx, 1, 7, 25)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrInvalidCell)
}

func TestCashoutMines_HappyPath(t *testing.T) {
	ctx := context.Background()

	svc, mockAccountRepo, mockLedgerRepo, mockMinesRepo, mockDBManager := newMinesService(t, &stubRand{})

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockMinesRepo.On("GetSessionForUpdate", ctx, int64(7), mock.Anything).Return(&model.MinesSession{
		ID:            7,
		AccountID:     1,
		Stake:         decimal.NewFromInt(100),
		GridSize:      5,
		MineCount:     3,
		MinePositions: []int{5, 10, 15},
		Revealed:      []int{0, 1},
		Multiplier:    decimal.RequireFromString("1.4"),
		Status:        model.SessionActive,
	}, nil)
	mockMinesRepo.On("UpdateSession", ctx, mock.MatchedBy(func(s *model.MinesSession) bool {
		return s.Status == model.SessionCashedOut
	}), mock.Anything).Return(nil)
	mockAccountRepo.On("GetAccountForUpdate", ctx, int64(1), mock.Anything).Return(&model.Account{
		ID:       1,
		Balance:  decimal.NewFromInt(900),
		IsActive: true,
	}, nil)
	mockAccountRepo.On("UpdateBalance", ctx, int64(1), decimal.NewFromInt(1040), mock.Anything).Return(nil)
	mockLedgerRepo.On("InsertEntry", ctx, mock.MatchedBy(func(entry *model.LedgerEntry) bool {
		return entry.AccountID == 1 &&
			entry.Type == model.EntryGame &&
			entry.Amount.Equal(decimal.NewFromInt(140))
	}), mock.Anything).Return(nil)
	mockAccountRepo.On("UpdateStats", ctx, mock.MatchedBy(func(acct *model.Account) bool {
		return acct.GamesPlayed == 1 && acct.CurrentStreak == 1 &&
			acct.TotalWinnings.Equal(decimal.NewFromInt(140))
	}), mock.Anything).Return(nil)

	resp, err := svc.Cashout(ctx, 1, 7)

	require.NoError(t, err)
	assert.Equal(t, "cashed_out", resp.Status)
	assert.Equal(t, "140", resp.Payout)
	assert.Equal(t, "1040.00", resp.Balance)
}

func TestCashoutMines_NoReveals_ReturnsStake(t *testing.T) {
	ctx := context.Background()

	svc, mockAccountRepo, mockLedgerRepo, mockMinesRepo, mockDBManager := newMinesService(t, &stubRand{})

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockMinesRepo.On("GetSessionForUpdate", ctx, int64(7), mock.Anything).Return(&model.MinesSession{
		ID:            7,
		AccountID:     1,
		Stake:         decimal.NewFromInt(100),
		GridSize:      5,
		MineCount:     3,
		MinePositions: []int{5, 10, 15},
		Revealed:      []int{},
		Multiplier:    decimal.NewFromInt(1),
		Status:        model.SessionActive,
	}, nil)
	mockMinesRepo.On("UpdateSession", ctx, mock.Anything, mock.Anything).Return(nil)
	mockAccountRepo.On("GetAccountForUpdate", ctx, int64(1), mock.Anything).Return(&model.Account{
		ID:       1,
		Balance:  decimal.NewFromInt(900),
		IsActive: true,
	}, nil)
	mockAccountRepo.On("UpdateBalance", ctx, int64(1), decimal.NewFromInt(1000), mock.Anything).Return(nil)
	mockLedgerRepo.On("InsertEntry", ctx, mock.Anything, mock.Anything).Return(nil)
	mockAccountRepo.On("UpdateStats", ctx, mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.Cashout(ctx, 1, 7)

	require.NoError(t, err)
	assert.Equal(t, "100", resp.Payout)
	assert.Equal(t, "1000.00", resp.Balance)
}

func TestCashoutMines_TerminalSession(t *testing.T) {
	ctx := context.Background()

	svc, _, _, mockMinesRepo, mockDBManager := newMinesService(t, &stubRand{})

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockMinesRepo.On("GetSessionForUpdate", ctx, int64(7), mock.Anything).Return(&model.MinesSession{
		ID:        7,
		AccountID: 1,
		Status:    model.SessionCashedOut,
	}, nil)

	resp, err := svc.Cashout(ctx, 1, 7)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrSessionTerminal)
}

func TestSweepTerminalSessions(t *testing.T) {
	ctx := context.Background()

	svc, _, _, mockMinesRepo, _ := newMinesService(t, &stubRand{})

	mockMinesRepo.On("DeleteTerminalBefore", ctx, mock.MatchedBy(func(cutoff time.Time) bool {
		return time.Since(cutoff) >= 24*time.Hour
	})).Return(int64(3), nil)

	removed, err := svc.SweepTerminalSessions(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
