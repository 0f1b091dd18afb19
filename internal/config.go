package internal

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Development fallbacks mirroring the legacy deployment. Running with these
// is a deployment risk; startup logs a warning instead of refusing to boot.
const (
	DefaultAccessSecret  = "dev-secret-key"
	DefaultRefreshSecret = "dev-refresh-secret-key"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"http_server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Storage       StorageConfig       `mapstructure:"storage"`
	Security      SecurityConfig      `mapstructure:"security"`
	Payment       PaymentConfig       `mapstructure:"payment"`
	Email         EmailConfig         `mapstructure:"email"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	BaseURL           string        `mapstructure:"base_url"`
	AllowedOrigins    string        `mapstructure:"allowed_origins"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	// Source is the Postgres DSN. When empty the service runs against the
	// JSON-file store under Storage.DataDir instead.
	Source          string        `mapstructure:"source"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

type SecurityConfig struct {
	AccessSecret    string        `mapstructure:"jwt_secret"`
	RefreshSecret   string        `mapstructure:"jwt_refresh_secret"`
	AccessTokenTTL  time.Duration `mapstructure:"jwt_expires"`
	RefreshTokenTTL time.Duration `mapstructure:"jwt_refresh_expires"`
	BCryptCost      int           `mapstructure:"bcrypt_cost"`
}

type PaymentConfig struct {
	// Daraja credentials; when empty the STK push flow is simulated.
	ConsumerKey    string        `mapstructure:"mpesa_consumer_key"`
	ConsumerSecret string        `mapstructure:"mpesa_consumer_secret"`
	SimulatedDelay time.Duration `mapstructure:"simulated_delay"`
}

type EmailConfig struct {
	From       string `mapstructure:"from"`
	SalesEmail string `mapstructure:"sales_email"`
}

type ObservabilityConfig struct {
	Logging LoggingConfig `mapstructure:"logging"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ----------------- DEFAULTS / ENV -----------------

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultVal
}

// LoadConfigFromEnv builds the config purely from environment variables,
// used for container deployments where no config.yml is mounted.
func LoadConfigFromEnv() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Port:              getEnvAsInt("PORT", 4000),
			BaseURL:           getEnv("BASE_URL", "http://localhost:4000"),
			AllowedOrigins:    getEnv("ALLOWED_ORIGINS", "*"),
			ReadHeaderTimeout: getEnvAsDuration("READ_HEADER_TIMEOUT", 5*time.Second),
			ReadTimeout:       getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
			WriteTimeout:      getEnvAsDuration("WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:       getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Source:          getEnv("DATABASE_URL", ""),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			ConnMaxIdleTime: getEnvAsDuration("DB_CONN_MAX_IDLE_TIME", 5*time.Minute),
		},
		Storage: StorageConfig{
			DataDir: getEnv("DATA_DIR", "data"),
		},
		Security: SecurityConfig{
			AccessSecret:    getEnv("JWT_SECRET", DefaultAccessSecret),
			RefreshSecret:   getEnv("JWT_REFRESH_SECRET", DefaultRefreshSecret),
			AccessTokenTTL:  getEnvAsDuration("JWT_EXPIRES", 15*time.Minute),
			RefreshTokenTTL: getEnvAsDuration("JWT_REFRESH_EXPIRES", 7*24*time.Hour),
			BCryptCost:      getEnvAsInt("BCRYPT_COST", 10),
		},
		Payment: PaymentConfig{
			ConsumerKey:    getEnv("MPESA_CONSUMER_KEY", ""),
			ConsumerSecret: getEnv("MPESA_CONSUMER_SECRET", ""),
			SimulatedDelay: getEnvAsDuration("MPESA_SIMULATED_DELAY", time.Second),
		},
		Email: EmailConfig{
			From:       getEnv("EMAIL_FROM", "noreply@megapark-hotel.com"),
			SalesEmail: getEnv("SALES_EMAIL", "sales@megapark-hotel.com"),
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{
				Level:  getEnv("LOG_LEVEL", "info"),
				Format: getEnv("LOG_FORMAT", "json"),
			},
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills zero values so a partial config.yml still yields a
// runnable configuration.
func (c *Config) ApplyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 4000
	}
	if c.Server.ReadHeaderTimeout == 0 {
		c.Server.ReadHeaderTimeout = 5 * time.Second
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60 * time.Second
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = "data"
	}
	if c.Security.AccessSecret == "" {
		c.Security.AccessSecret = DefaultAccessSecret
	}
	if c.Security.RefreshSecret == "" {
		c.Security.RefreshSecret = DefaultRefreshSecret
	}
	if c.Security.AccessTokenTTL == 0 {
		c.Security.AccessTokenTTL = 15 * time.Minute
	}
	if c.Security.RefreshTokenTTL == 0 {
		c.Security.RefreshTokenTTL = 7 * 24 * time.Hour
	}
	if c.Security.BCryptCost == 0 {
		c.Security.BCryptCost = 10
	}
	if c.Payment.SimulatedDelay == 0 {
		c.Payment.SimulatedDelay = time.Second
	}
	if c.Observability.Logging.Level == "" {
		c.Observability.Logging.Level = "info"
	}
	if c.Observability.Logging.Format == "" {
		c.Observability.Logging.Format = "text"
	}
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.Server.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("server config: %v", err))
	}

	if err := c.Database.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("database config: %v", err))
	}

	if err := c.Security.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("security config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *ServerConfig) Validate() error {
	if c.AllowedOrigins != "" {
		origins := strings.Split(c.AllowedOrigins, ",")
		for _, origin := range origins {
			origin = strings.TrimSpace(origin)
			if origin == "*" {
				continue
			}
			if _, err := url.Parse(origin); err != nil {
				return fmt.Errorf("invalid allowed origin %s: %w", origin, err)
			}
		}
	}
	if c.ReadTimeout < c.ReadHeaderTimeout {
		return errors.New("read_timeout must be >= read_header_timeout")
	}
	return nil
}

func (c *DatabaseConfig) Validate() error {
	if c.Source == "" {
		// JSON-file fallback mode, nothing to check
		return nil
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		return errors.New("max_idle_conns cannot be greater than max_open_conns")
	}
	return nil
}

func (c *DatabaseConfig) GetDSN() string {
	return c.Source
}

// UsesPostgres reports whether a database source is configured; when false
// the service falls back to the JSON-file store.
func (c *DatabaseConfig) UsesPostgres() bool {
	return c.Source != ""
}

func (c *SecurityConfig) Validate() error {
	if c.AccessSecret == c.RefreshSecret {
		return errors.New("jwt_secret and jwt_refresh_secret must differ")
	}
	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		return errors.New("token TTLs must be positive")
	}
	if c.BCryptCost < 4 || c.BCryptCost > 31 {
		return errors.New("bcrypt_cost out of range")
	}
	return nil
}

// UsesDefaultSecrets reports whether either JWT secret is still the
// development fallback.
func (c *SecurityConfig) UsesDefaultSecrets() bool {
	return c.AccessSecret == DefaultAccessSecret || c.RefreshSecret == DefaultRefreshSecret
}
