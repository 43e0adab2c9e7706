package service

import (
	"context"
	"fmt"
	"time"

	"spinx-engine/internal/config"
	"spinx-engine/internal/game"
	"spinx-engine/internal/model"
	"spinx-engine/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type MinesServiceImpl struct {
	ledger    ledger
	sessions  repository.MinesRepository
	dbManager repository.DBManager
	cfg       config.MinesConfig
	retention time.Duration
	rng       game.Rand
	logger    zerolog.Logger
}

func NewMinesService(
	accountRepo repository.AccountRepository,
	ledgerRepo repository.LedgerRepository,
	minesRepo repository.MinesRepository,
	dbManager repository.DBManager,
	cfg config.MinesConfig,
	retention time.Duration,
	rng game.Rand,
	logger zerolog.Logger,
) *MinesServiceImpl {
	return &MinesServiceImpl{
		ledger:    ledger{accounts: accountRepo, entries: ledgerRepo},
		sessions:  minesRepo,
		dbManager: dbManager,
		cfg:       cfg,
		retention: retention,
		rng:       rng,
		logger:    logger,
	}
}

var (
	_ MinesService  = (*MinesServiceImpl)(nil)
	_ SessionReaper = (*MinesServiceImpl)(nil)
)

// Start debits the stake and opens an active session. The unique active
// index makes a concurrent double start roll the debit back too.
func (s *MinesServiceImpl) Start(ctx context.Context, accountID int64, req *model.MinesStartRequest) (*model.MinesSessionResponse, error) {
	stake, err := decimal.NewFromString(req.Stake)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidWager, err.Error())
	}
	if err := validateStake(stake, s.cfg.MinBet, s.cfg.MaxBet); err != nil {
		return nil, err
	}
	if req.MineCount < 1 || req.MineCount > s.cfg.MaxMines || req.MineCount >= s.cfg.GridSize*s.cfg.GridSize {
		return nil, fmt.Errorf("%w: mine count must be between 1 and %d", model.ErrInvalidWager, s.cfg.MaxMines)
	}

	var resp *model.MinesSessionResponse
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		acct, err := s.ledger.accounts.GetAccountForUpdate(ctx, accountID, tx)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}
		if !acct.IsActive {
			return model.ErrAccountSuspended
		}

		if _, err := s.ledger.debit(ctx, tx, acct, stake, model.EntryGame,
			"Mines game bet", "MINES_"+uuid.New().String()); err != nil {
			return err
		}

		session := &model.MinesSession{
			AccountID:     accountID,
			Stake:         stake,
			GridSize:      s.cfg.GridSize,
			MineCount:     req.MineCount,
			MinePositions: game.PlaceMines(s.cfg.GridSize, req.MineCount, s.rng),
			Revealed:      []int{},
			Multiplier:    decimal.NewFromInt(1),
			Status:        model.SessionActive,
		}
		if err := s.sessions.InsertSession(ctx, session, tx); err != nil {
			return err
		}

		s.logger.Info().
			Int64("account_id", accountID).
			Int64("session_id", session.ID).
			Int("mine_count", req.MineCount).
			Str("stake", stake.String()).
			Msg("mines session started")

		resp = &model.MinesSessionResponse{
			SessionID:  session.ID,
			Status:     string(session.Status),
			GridSize:   session.GridSize,
			MineCount:  session.MineCount,
			Multiplier: session.Multiplier.String(),
			Balance:    acct.Balance.StringFixed(2),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Reveal opens one cell. A safe cell bumps the multiplier; a mine busts the
// session and settles the loss in the same transaction.
func (s *MinesServiceImpl) Reveal(ctx context.Context, accountID, sessionID int64, cell int) (*model.MinesRevealResponse, error) {
	var resp *model.MinesRevealResponse
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		session, err := s.sessions.GetSessionForUpdate(ctx, sessionID, tx)
		if err != nil {
			return err
		}
		if session.AccountID != accountID {
			return model.ErrSessionNotFound
		}
		if session.Status.Terminal() {
			return model.ErrSessionTerminal
		}
		if cell < 0 || cell >= session.GridSize*session.GridSize {
			return model.ErrInvalidCell
		}
		if session.IsRevealed(cell) {
			return model.ErrCellAlreadyRevealed
		}

		session.Revealed = append(session.Revealed, cell)

		if session.IsMine(cell) {
			session.Status = model.SessionBusted
			if err := s.sessions.UpdateSession(ctx, session, tx); err != nil {
				return err
			}

			// The stake was debited at start; a bust settles with no credit.
			acct, err := s.ledger.accounts.GetAccountForUpdate(ctx, accountID, tx)
			if err != nil {
				return fmt.Errorf("get account for update: %w", err)
			}
			acct.CurrentStreak = 0
			acct.GamesPlayed++
			if err := s.ledger.accounts.UpdateStats(ctx, acct, tx); err != nil {
				return fmt.Errorf("update stats: %w", err)
			}

			s.logger.Info().
				Int64("account_id", accountID).
				Int64("session_id", sessionID).
				Int("cell", cell).
				Msg("mines session busted")

			resp = &model.MinesRevealResponse{
				SessionID:  sessionID,
				Cell:       cell,
				Mine:       true,
				Status:     string(session.Status),
				Multiplier: session.Multiplier.String(),
				Mines:      session.MinePositions,
				Balance:    acct.Balance.StringFixed(2),
			}
			return nil
		}

		session.Multiplier = game.MinesMultiplier(len(session.Revealed), session.MineCount)
		if err := s.sessions.UpdateSession(ctx, session, tx); err != nil {
			return err
		}

		resp = &model.MinesRevealResponse{
			SessionID:  sessionID,
			Cell:       cell,
			Mine:       false,
			Status:     string(session.Status),
			Multiplier: session.Multiplier.String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Cashout finalizes an active session, crediting floor(stake * multiplier).
// Cashing out with no reveals is allowed and returns the stake unchanged.
func (s *MinesServiceImpl) Cashout(ctx context.Context, accountID, sessionID int64) (*model.MinesCashoutResponse, error) {
	var resp *model.MinesCashoutResponse
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		session, err := s.sessions.GetSessionForUpdate(ctx, sessionID, tx)
		if err != nil {
			return err
		}
		if session.AccountID != accountID {
			return model.ErrSessionNotFound
		}
		if session.Status.Terminal() {
			return model.ErrSessionTerminal
		}

		session.Status = model.SessionCashedOut
		if err := s.sessions.UpdateSession(ctx, session, tx); err != nil {
			return err
		}

		payout := game.MinesPayout(session.Stake, session.Multiplier)

		acct, err := s.ledger.accounts.GetAccountForUpdate(ctx, accountID, tx)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}
		if _, err := s.ledger.credit(ctx, tx, acct, payout, model.EntryGame,
			"Mines game cashout", "MINES_WIN_"+uuid.New().String()); err != nil {
			return err
		}

		acct.TotalWinnings = acct.TotalWinnings.Add(payout)
		acct.CurrentStreak++
		if acct.CurrentStreak > acct.LongestStreak {
			acct.LongestStreak = acct.CurrentStreak
		}
		acct.GamesPlayed++
		if err := s.ledger.accounts.UpdateStats(ctx, acct, tx); err != nil {
			return fmt.Errorf("update stats: %w", err)
		}

		s.logger.Info().
			Int64("account_id", accountID).
			Int64("session_id", sessionID).
			Str("multiplier", session.Multiplier.String()).
			Str("payout", payout.String()).
			Str("new_balance", acct.Balance.StringFixed(2)).
			Msg("mines session cashed out")

		resp = &model.MinesCashoutResponse{
			SessionID:  sessionID,
			Status:     string(session.Status),
			Multiplier: session.Multiplier.String(),
			Payout:     payout.String(),
			Balance:    acct.Balance.StringFixed(2),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// SweepTerminalSessions deletes finished sessions older than the retention
// window. Active sessions are never touched: there is no cancel-and-refund
// path, only reveal-to-bust or cashout.
func (s *MinesServiceImpl) SweepTerminalSessions(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-s.retention)
	removed, err := s.sessions.DeleteTerminalBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete terminal sessions: %w", err)
	}
	if removed > 0 {
		s.logger.Info().Int64("removed", removed).Msg("terminal mines sessions swept")
	}
	return removed, nil
}
