package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Worker   WorkerConfig
	Games    GamesConfig
	Wallet   WalletConfig
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"spinx"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}

// DSN renders the pgx connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

type WorkerConfig struct {
	ReaperInterval   time.Duration `env:"WORKER_REAPER_INTERVAL" envDefault:"10m"`
	SessionRetention time.Duration `env:"WORKER_SESSION_RETENTION" envDefault:"24h"`
}

// GamesConfig carries the tunables of every game variant. House edges are
// fractions in [0,1). The dice edge is structural (sub-fair multipliers)
// and has no tunable here.
type GamesConfig struct {
	Coin  GameConfig  `envPrefix:"COIN_"`
	Dice  GameConfig  `envPrefix:"DICE_"`
	Wheel GameConfig  `envPrefix:"WHEEL_"`
	Lucky GameConfig  `envPrefix:"LUCKY_"`
	Mines MinesConfig `envPrefix:"MINES_"`
}

type GameConfig struct {
	HouseEdge float64 `env:"HOUSE_EDGE"`
	MinBet    int64   `env:"MIN_BET" envDefault:"10"`
	MaxBet    int64   `env:"MAX_BET" envDefault:"100000"`
}

type MinesConfig struct {
	MinBet   int64 `env:"MIN_BET" envDefault:"10"`
	MaxBet   int64 `env:"MAX_BET" envDefault:"100000"`
	GridSize int   `env:"GRID_SIZE" envDefault:"5"`
	MaxMines int   `env:"MAX_MINES" envDefault:"12"`
}

type WalletConfig struct {
	Deposit  DepositMethodsConfig
	Withdraw WithdrawMethodsConfig
	Referral ReferralConfig
}

type DepositMethodsConfig struct {
	MobileMoneyMin int64 `env:"DEPOSIT_MOBILE_MONEY_MIN" envDefault:"100"`
	MobileMoneyMax int64 `env:"DEPOSIT_MOBILE_MONEY_MAX" envDefault:"500000"`
	CardMin        int64 `env:"DEPOSIT_CARD_MIN" envDefault:"100"`
	CardMax        int64 `env:"DEPOSIT_CARD_MAX" envDefault:"1000000"`
	CryptoMin      int64 `env:"DEPOSIT_CRYPTO_MIN" envDefault:"1000"`
	CryptoMax      int64 `env:"DEPOSIT_CRYPTO_MAX" envDefault:"10000000"`
}

type WithdrawMethodsConfig struct {
	MobileMoneyMin int64   `env:"WITHDRAW_MOBILE_MONEY_MIN" envDefault:"1000"`
	MobileMoneyMax int64   `env:"WITHDRAW_MOBILE_MONEY_MAX" envDefault:"500000"`
	MobileMoneyFee float64 `env:"WITHDRAW_MOBILE_MONEY_FEE" envDefault:"0.01"`
	BankMin        int64   `env:"WITHDRAW_BANK_MIN" envDefault:"2000"`
	BankMax        int64   `env:"WITHDRAW_BANK_MAX" envDefault:"1000000"`
	BankFee        float64 `env:"WITHDRAW_BANK_FEE" envDefault:"0.01"`
}

type ReferralConfig struct {
	MinDeposit int64 `env:"REFERRAL_MIN_DEPOSIT" envDefault:"1000"`
	Bonus      int64 `env:"REFERRAL_BONUS" envDefault:"500"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	applyEdgeDefaults(cfg)
	return cfg, nil
}

// applyEdgeDefaults fills the house edges that env/v10 cannot default to
// distinct values via a shared struct.
func applyEdgeDefaults(cfg *Config) {
	if cfg.Games.Coin.HouseEdge == 0 {
		cfg.Games.Coin.HouseEdge = 0.02
	}
	if cfg.Games.Wheel.HouseEdge == 0 {
		cfg.Games.Wheel.HouseEdge = 0.05
	}
	if cfg.Games.Lucky.HouseEdge == 0 {
		cfg.Games.Lucky.HouseEdge = 0.08
	}
}
