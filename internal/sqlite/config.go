package sqlite

import (
	"time"
)

type Config struct {
	DatabasePath    string        `envconfig:"DATABASE_PATH" default:"ledger.db"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"1"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"1"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"5m"`
	ConnMaxIdleTime time.Duration `envconfig:"CONN_MAX_IDLE_TIME" default:"1m"`
	BusyTimeout     time.Duration `envconfig:"BUSY_TIMEOUT" default:"5s"`
	EnableWAL       bool          `envconfig:"ENABLE_WAL" default:"false"`
}
