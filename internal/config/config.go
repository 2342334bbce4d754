package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"   validate:"required"`
	Auth       AuthConfig       `mapstructure:"auth"       validate:"required"`
	Pagination PaginationConfig `mapstructure:"pagination" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"     validate:"gte=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"    validate:"gte=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gte=0"`
	// RateLimitRPS of 0 disables per-client rate limiting.
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"   validate:"gte=0"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst" validate:"gte=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Driver selects the storage backend: postgres, sqlite or memory.
	Driver          string        `mapstructure:"driver"             validate:"required,oneof=postgres sqlite memory"`
	URL             string        `mapstructure:"url"                validate:"required_unless=Driver memory"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"     validate:"gte=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"     validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"  validate:"gte=0"`
	MigrateOnStart  bool          `mapstructure:"migrate_on_start"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0,lt=44641"` // Max 31 days (44640 minutes)
	BCryptCost           int    `mapstructure:"bcrypt_cost"            validate:"gte=4,lte=31"`

	// AdminUsername and AdminPassword, when set, seed an administrator on
	// startup if no user with that name exists yet.
	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password" validate:"required_with=AdminUsername"`
}

// PaginationConfig bounds the page sizes clients may request.
type PaginationConfig struct {
	DefaultSize int `mapstructure:"default_size" validate:"required,gt=0,ltefield=MaxSize"`
	MaxSize     int `mapstructure:"max_size"     validate:"required,gt=0"`
}
