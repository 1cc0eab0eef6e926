package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"

	"github.com/comite-ethique/backend/internal/utils"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable; defaults keep a development setup zero-config.
type Config struct {
	Env           string // application environment ("development" or "production")
	Port          string // HTTP port to listen on
	DBPath        string // path of the SQLite database file
	StaticDir     string // directory holding the frontend assets
	SessionSecret string // secret signing the session cookie
	BcryptCost    int    // bcrypt cost for password hashing
}

// Load reads configuration from the environment.  SESSION_SECRET is
// mandatory in production; in development a random per-process secret is
// generated, which invalidates existing sessions on restart.
func Load() Config {
	cfg := Config{
		Env:           envStr("APP_ENV", "development"),
		Port:          envStr("PORT", "3000"),
		DBPath:        envStr("DB_PATH", "comite.db"),
		StaticDir:     envStr("STATIC_DIR", "public"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		BcryptCost:    envInt("BCRYPT_COST", 12),
	}
	if cfg.SessionSecret == "" {
		if cfg.IsProd() {
			log.Fatalf("SESSION_SECRET must be set when APP_ENV=production")
		}
		secret, err := utils.RandomHex(32)
		if err != nil {
			log.Fatalf("generate fallback session secret: %v", err)
		}
		cfg.SessionSecret = secret
		log.Println("[config] SESSION_SECRET not set, using a random per-process secret (development only)")
	}
	return cfg
}

// IsProd reports whether the application runs in production mode, which
// hardens cookie attributes and makes the session secret mandatory.
func (c Config) IsProd() bool { return c.Env == "production" }

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}
