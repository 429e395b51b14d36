package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
)

const (
	BackendFile     = "file"
	BackendBolt     = "bolt"
	BackendPostgres = "postgres"
)

type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV" envDefault:"production"`

	LedgerBackend    string `env:"LEDGER_BACKEND" envDefault:"file"`
	TransfersPath    string `env:"TRANSFERS_PATH" envDefault:"data/stored_transactions.json"`
	DepositsPath     string `env:"DEPOSITS_PATH" envDefault:"data/deposits.json"`
	TransactionsPath string `env:"TRANSACTIONS_PATH" envDefault:"data/all_transactions.json"`
	BalancesPath     string `env:"BALANCES_PATH" envDefault:"data/account_balances.json"`
	BoltPath         string `env:"BOLT_PATH" envDefault:"data/ledger.db"`

	IBANCountryPrefix string `env:"IBAN_COUNTRY_PREFIX" envDefault:"ES"`

	DatabaseURL        string `env:"DATABASE_URL"`
	DBMaxOpenConns     int    `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBMaxIdleConns     int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBConnMaxLifetimeS int    `env:"DB_CONN_MAX_LIFETIME_S" envDefault:"300"`
	DBConnMaxIdleTimeS int    `env:"DB_CONN_MAX_IDLE_TIME_S" envDefault:"60"`
	DBConnectAttempts  int    `env:"DB_CONNECT_ATTEMPTS" envDefault:"30"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	switch c.LedgerBackend {
	case BackendFile, BackendBolt:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s backend", BackendPostgres)
		}
	default:
		return fmt.Errorf("unknown LEDGER_BACKEND %q", c.LedgerBackend)
	}
	if len(c.IBANCountryPrefix) != 2 {
		return fmt.Errorf("IBAN_COUNTRY_PREFIX must be two letters, got %q", c.IBANCountryPrefix)
	}
	return nil
}
