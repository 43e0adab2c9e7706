package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
    id                BIGSERIAL PRIMARY KEY,
    username          TEXT NOT NULL UNIQUE,
    email             TEXT NOT NULL UNIQUE,
    password_hash     TEXT NOT NULL,
    balance           NUMERIC(20,2) NOT NULL DEFAULT 0 CONSTRAINT balance_non_negative CHECK (balance >= 0),
    total_deposits    NUMERIC(20,2) NOT NULL DEFAULT 0,
    total_withdrawals NUMERIC(20,2) NOT NULL DEFAULT 0,
    total_winnings    NUMERIC(20,2) NOT NULL DEFAULT 0,
    games_played      INT NOT NULL DEFAULT 0,
    current_streak    INT NOT NULL DEFAULT 0,
    longest_streak    INT NOT NULL DEFAULT 0,
    referral_code     TEXT NOT NULL UNIQUE,
    referred_by       BIGINT REFERENCES accounts(id),
    referrals_count   INT NOT NULL DEFAULT 0,
    referral_earnings NUMERIC(20,2) NOT NULL DEFAULT 0,
    kyc_status        TEXT NOT NULL DEFAULT 'pending',
    is_active         BOOLEAN NOT NULL DEFAULT TRUE,
    version           INT NOT NULL DEFAULT 0,
    created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS ledger_entries (
    id            BIGSERIAL PRIMARY KEY,
    reference     TEXT NOT NULL UNIQUE,
    account_id    BIGINT NOT NULL REFERENCES accounts(id),
    type          TEXT NOT NULL,
    amount        NUMERIC(20,2) NOT NULL,
    balance_after NUMERIC(20,2) NOT NULL,
    description   TEXT NOT NULL DEFAULT '',
    status        TEXT NOT NULL DEFAULT 'completed',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_ledger_entries_account ON ledger_entries (account_id, created_at DESC);

CREATE TABLE IF NOT EXISTS withdrawal_requests (
    id              BIGSERIAL PRIMARY KEY,
    account_id      BIGINT NOT NULL REFERENCES accounts(id),
    amount          NUMERIC(20,2) NOT NULL,
    fee             NUMERIC(20,2) NOT NULL,
    net_amount      NUMERIC(20,2) NOT NULL,
    method          TEXT NOT NULL,
    account_details TEXT NOT NULL,
    status          TEXT NOT NULL DEFAULT 'pending',
    reference       TEXT NOT NULL UNIQUE,
    reason          TEXT,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_withdrawal_requests_status ON withdrawal_requests (status, created_at DESC);

CREATE TABLE IF NOT EXISTS mines_sessions (
    id             BIGSERIAL PRIMARY KEY,
    account_id     BIGINT NOT NULL REFERENCES accounts(id),
    stake          NUMERIC(20,2) NOT NULL,
    grid_size      INT NOT NULL,
    mine_count     INT NOT NULL,
    mine_positions INT[] NOT NULL,
    revealed       INT[] NOT NULL DEFAULT '{}',
    multiplier     NUMERIC(10,4) NOT NULL DEFAULT 1,
    status         TEXT NOT NULL DEFAULT 'active',
    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_mines_sessions_one_active
    ON mines_sessions (account_id) WHERE status = 'active';
`

// EnsureSchema applies the DDL. Statements are idempotent so repeated
// startups are safe.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
