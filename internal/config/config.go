// Package config loads application configuration from environment variables.
package config

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Loading is permissive: a missing value falls back
// to its default instead of aborting startup, so an unconfigured store leaves
// the server running in a degraded state rather than crashing it.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	DBUser         string // database username
	DBPass         string // database password (optional)
	DBHost         string // database host address
	DBPort         string // database port number
	DBName         string // database name
	JWTSecret      string // secret used to sign JWTs (empty logs a warning)
	AccessTTLMin   int    // access token time-to-live in minutes
	RefreshTTLDays int    // refresh token time-to-live in days
	BcryptCost     int    // bcrypt cost for password hashing
}

// Load reads configuration values from environment variables and returns a
// Config populated with defaults for anything unset.
func Load() Config {
	return Config{
		Env:            envStr("APP_ENV", "dev"),
		Port:           envStr("APP_PORT", "8080"),
		DBUser:         envStr("DB_USER", "root"),
		DBPass:         envStr("DB_PASS", ""),
		DBHost:         envStr("DB_HOST", "localhost"),
		DBPort:         envStr("DB_PORT", "3306"),
		DBName:         envStr("DB_NAME", "restaurant"),
		JWTSecret:      envStr("JWT_SECRET", ""),
		AccessTTLMin:   envInt("ACCESS_TOKEN_TTL_MIN", 15),
		RefreshTTLDays: envInt("REFRESH_TOKEN_TTL_DAYS", 30),
		BcryptCost:     envInt("BCRYPT_COST", 12),
	}
}
