package service

import (
	"context"
	"fmt"
	"strconv"

	"spinx-engine/internal/config"
	"spinx-engine/internal/game"
	"spinx-engine/internal/model"
	"spinx-engine/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type SettlementServiceImpl struct {
	ledger    ledger
	dbManager repository.DBManager
	cfg       config.GamesConfig
	rng       game.Rand
	logger    zerolog.Logger
}

func NewSettlementService(
	accountRepo repository.AccountRepository,
	ledgerRepo repository.LedgerRepository,
	dbManager repository.DBManager,
	cfg config.GamesConfig,
	rng game.Rand,
	logger zerolog.Logger,
) SettlementService {
	return &SettlementServiceImpl{
		ledger:    ledger{accounts: accountRepo, entries: ledgerRepo},
		dbManager: dbManager,
		cfg:       cfg,
		rng:       rng,
		logger:    logger,
	}
}

var gameNames = map[game.Game]string{
	game.Coin:  "Coin toss",
	game.Dice:  "Dice roll",
	game.Wheel: "Wheel spin",
	game.Lucky: "Lucky Number",
}

// PlaceWager runs one play end to end inside a single database transaction:
// the stake debit, the outcome draw, the payout credit and the stat updates
// either all land or none do.
func (s *SettlementServiceImpl) PlaceWager(ctx context.Context, accountID int64, req *model.WagerRequest) (*model.WagerResponse, error) {
	// Validate inputs early, before the transaction and locks
	g, err := game.Parse(req.Game)
	if err != nil || g == game.Mines {
		return nil, fmt.Errorf("%w: unknown game %q", model.ErrInvalidWager, req.Game)
	}

	stake, err := decimal.NewFromString(req.Stake)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidWager, err.Error())
	}
	gameCfg := s.gameConfig(g)
	if err := validateStake(stake, gameCfg.MinBet, gameCfg.MaxBet); err != nil {
		return nil, err
	}

	resolve, err := s.resolver(g, stake, req.Choice, gameCfg.HouseEdge)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidWager, err.Error())
	}

	var resp *model.WagerResponse
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		acct, err := s.ledger.accounts.GetAccountForUpdate(ctx, accountID, tx)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}
		if !acct.IsActive {
			return model.ErrAccountSuspended
		}

		name := gameNames[g]
		if _, err := s.ledger.debit(ctx, tx, acct, stake, model.EntryGame, name+" bet", wagerRef(g)); err != nil {
			return err
		}

		outcome, err := resolve()
		if err != nil {
			return fmt.Errorf("%w: %s", model.ErrInvalidWager, err.Error())
		}

		if outcome.Win {
			if _, err := s.ledger.credit(ctx, tx, acct, outcome.Payout, model.EntryGame, name+" win", winRef(g)); err != nil {
				return err
			}
			acct.TotalWinnings = acct.TotalWinnings.Add(outcome.Payout)
			acct.CurrentStreak++
			if acct.CurrentStreak > acct.LongestStreak {
				acct.LongestStreak = acct.CurrentStreak
			}
		} else {
			acct.CurrentStreak = 0
		}
		acct.GamesPlayed++

		if err := s.ledger.accounts.UpdateStats(ctx, acct, tx); err != nil {
			return fmt.Errorf("update stats: %w", err)
		}

		s.logger.Info().
			Int64("account_id", accountID).
			Str("game", string(g)).
			Str("stake", stake.String()).
			Bool("win", outcome.Win).
			Str("payout", outcome.Payout.String()).
			Str("new_balance", acct.Balance.StringFixed(2)).
			Msg("wager settled")

		resp = &model.WagerResponse{
			Game:       string(g),
			Win:        outcome.Win,
			Result:     outcome.Result,
			Multiplier: outcome.Multiplier.String(),
			Payout:     outcome.Payout.String(),
			Balance:    acct.Balance.StringFixed(2),
			Streak:     acct.CurrentStreak,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// resolver parses the choice up front so an invalid wager is rejected
// before any balance mutation, and returns the deferred draw.
func (s *SettlementServiceImpl) resolver(g game.Game, stake decimal.Decimal, choice string, edge float64) (func() (game.Outcome, error), error) {
	switch g {
	case game.Coin:
		if choice != game.Heads && choice != game.Tails {
			return nil, game.ErrInvalidChoice
		}
		return func() (game.Outcome, error) { return game.PlayCoin(stake, choice, edge, s.rng) }, nil
	case game.Dice:
		pred, err := game.ParseDicePrediction(choice)
		if err != nil {
			return nil, err
		}
		return func() (game.Outcome, error) { return game.PlayDice(stake, pred, s.rng), nil }, nil
	case game.Wheel:
		switch choice {
		case game.WheelRed, game.WheelYellow, game.WheelBlue:
		default:
			return nil, game.ErrInvalidChoice
		}
		return func() (game.Outcome, error) { return game.PlayWheel(stake, choice, edge, s.rng) }, nil
	case game.Lucky:
		pick, err := strconv.Atoi(choice)
		if err != nil || pick < 1 || pick > 10 {
			return nil, game.ErrInvalidChoice
		}
		return func() (game.Outcome, error) { return game.PlayLucky(stake, pick, edge, s.rng) }, nil
	}
	return nil, game.ErrInvalidChoice
}

func (s *SettlementServiceImpl) gameConfig(g game.Game) config.GameConfig {
	switch g {
	case game.Coin:
		return s.cfg.Coin
	case game.Dice:
		return s.cfg.Dice
	case game.Wheel:
		return s.cfg.Wheel
	default:
		return s.cfg.Lucky
	}
}

func validateStake(stake decimal.Decimal, minBet, maxBet int64) error {
	if stake.LessThan(decimal.NewFromInt(minBet)) || stake.GreaterThan(decimal.NewFromInt(maxBet)) {
		return fmt.Errorf("%w: stake must be between %d and %d", model.ErrInvalidWager, minBet, maxBet)
	}
	return nil
}

func wagerRef(g game.Game) string {
	return fmt.Sprintf("WAGER_%s_%s", g, uuid.New().String())
}

func winRef(g game.Game) string {
	return fmt.Sprintf("WIN_%s_%s", g, uuid.New().String())
}
