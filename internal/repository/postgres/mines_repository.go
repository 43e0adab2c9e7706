package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spinx-engine/internal/model"
	"spinx-engine/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.MinesRepository = (*MinesRepositoryImpl)(nil)

// MinesRepositoryImpl is the PostgreSQL implementation of MinesRepository
type MinesRepositoryImpl struct {
	*TransactionManager
}

func NewMinesRepository(pool *pgxpool.Pool) repository.MinesRepository {
	return &MinesRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func toInt32(cells []int) []int32 {
	out := make([]int32, len(cells))
	for i, c := range cells {
		out[i] = int32(c)
	}
	return out
}

func toInt(cells []int32) []int {
	out := make([]int, len(cells))
	for i, c := range cells {
		out[i] = int(c)
	}
	return out
}

// InsertSession creates an active session. The partial unique index on
// (account_id) WHERE status = 'active' turns a double start into
// model.ErrSessionAlreadyActive.
func (r *MinesRepositoryImpl) InsertSession(ctx context.Context, session *model.MinesSession, tx pgx.Tx) error {
	query := `
        INSERT INTO mines_sessions (account_id, stake, grid_size, mine_count, mine_positions, revealed, multiplier, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	err := tx.QueryRow(ctx, query, session.AccountID, session.Stake, session.GridSize,
		session.MineCount, toInt32(session.MinePositions), toInt32(session.Revealed),
		session.Multiplier, session.Status).
		Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.ErrSessionAlreadyActive
		}
		return fmt.Errorf("failed to insert mines session: %w", err)
	}
	return nil
}

// GetSessionForUpdate retrieves a session with row-level lock
func (r *MinesRepositoryImpl) GetSessionForUpdate(ctx context.Context, id int64, tx pgx.Tx) (*model.MinesSession, error) {
	query := `
        SELECT id, account_id, stake, grid_size, mine_count, mine_positions, revealed, multiplier, status, created_at, updated_at
        FROM mines_sessions WHERE id = $1 FOR UPDATE`

	session := &model.MinesSession{}
	var mines, revealed []int32
	err := tx.QueryRow(ctx, query, id).Scan(&session.ID, &session.AccountID, &session.Stake,
		&session.GridSize, &session.MineCount, &mines, &revealed, &session.Multiplier,
		&session.Status, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get mines session: %w", err)
	}
	session.MinePositions = toInt(mines)
	session.Revealed = toInt(revealed)
	return session, nil
}

// UpdateSession writes revealed cells, multiplier and status
func (r *MinesRepositoryImpl) UpdateSession(ctx context.Context, session *model.MinesSession, tx pgx.Tx) error {
	query := `
        UPDATE mines_sessions
        SET revealed = $1, multiplier = $2, status = $3, updated_at = NOW()
        WHERE id = $4`

	commandTag, err := tx.Exec(ctx, query, toInt32(session.Revealed), session.Multiplier,
		session.Status, session.ID)
	if err != nil {
		return fmt.Errorf("failed to update mines session: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrSessionNotFound
	}
	return nil
}

// DeleteTerminalBefore removes finished sessions older than the cutoff
func (r *MinesRepositoryImpl) DeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM mines_sessions WHERE status <> 'active' AND updated_at < $1`

	commandTag, err := r.pool.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete terminal mines sessions: %w", err)
	}
	return commandTag.RowsAffected(), nil
}
