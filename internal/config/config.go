package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication settings.
//
// DefaultJWTSecret and the default admin credentials exist so the service
// starts out of the box in development. A deployment must override them;
// bootstrap logs a warning when any default is still in use.
type AuthConfig struct {
	JWTSecret     string        `mapstructure:"jwt_secret"     validate:"required"`
	AdminUsername string        `mapstructure:"admin_username" validate:"required"`
	AdminPassword string        `mapstructure:"admin_password" validate:"required"`
	TokenLifetime time.Duration `mapstructure:"token_lifetime" validate:"required"`
}

// Defaults mirrored by Load. Exposed so bootstrap can detect that a
// production deployment forgot to override them.
const (
	DefaultJWTSecret     = "dev_secret"
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "123"
	DefaultTokenLifetime = 12 * time.Hour
)
