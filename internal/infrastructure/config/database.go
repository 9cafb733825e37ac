package config

import "time"

// DatabaseConfig selects and configures the plan store. The default is a
// local SQLite file next to the binary; postgres is for shared setups where
// several machines work against the same set of plans.
type DatabaseConfig struct {
	// Type: "sqlite" or "postgres"
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`

	// Path is the SQLite database file, or ":memory:" for a throwaway store.
	Path string `mapstructure:"path"`

	// URL is a full postgres connection string and wins over the individual
	// fields below when set (also settable via DATABASE_URL).
	URL string `mapstructure:"url"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode" validate:"omitempty,oneof=disable require verify-ca verify-full"`

	// Pool settings only apply to postgres; SQLite is effectively
	// single-connection.
	Pool PoolConfig `mapstructure:"pool"`
}

// PoolConfig tunes the postgres connection pool.
type PoolConfig struct {
	MaxOpen     int           `mapstructure:"max_open" validate:"min=1"`
	MaxIdle     int           `mapstructure:"max_idle" validate:"min=1"`
	MaxLifetime time.Duration `mapstructure:"max_lifetime"`
}
