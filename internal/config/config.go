package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverOracle   = "oracle"
	DriverPostgres = "postgres"
)

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	Logger    LoggerConfig
	Trivia    TriviaConfig
	CacheTTLs CacheTTLConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	BodyLimit    int
}

type DBConfig struct {
	Driver          string
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig holds the cache connection. An empty Address disables caching.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type LoggerConfig struct {
	Env   string
	Level string
}

// TriviaConfig configures the Open Trivia DB client used for online generation.
type TriviaConfig struct {
	Enabled        bool
	BaseURL        string
	Timeout        time.Duration
	ConnectTimeout time.Duration
}

// CacheTTLConfig keeps TTLs as strings so a bad value falls back to a default
// instead of failing startup.
type CacheTTLConfig struct {
	Quiz        string
	Leaderboard string
}

type RateLimitConfig struct {
	GenerateMax    int
	GenerateWindow time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "20s")
	v.SetDefault("server.write_timeout", "20s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.body_limit", 4*1024*1024)

	v.SetDefault("db.driver", DriverPostgres)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "quiz")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "quizmaster")
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")

	v.SetDefault("trivia.enabled", true)
	v.SetDefault("trivia.base_url", "https://opentdb.com/api.php")
	v.SetDefault("trivia.timeout", "10s")
	v.SetDefault("trivia.connect_timeout", "5s")

	v.SetDefault("cache_ttls.quiz", "1h")
	v.SetDefault("cache_ttls.leaderboard", "30s")

	v.SetDefault("ratelimit.generate_max", 10)
	v.SetDefault("ratelimit.generate_window", "1m")
}

// LoadConfig reads config.yaml and applies APP_-prefixed environment
// overrides, e.g. APP_DB_HOST or APP_REDIS_ADDRESS.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		fmt.Println("No config file found, using defaults and environment")
	} else if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			IdleTimeout:  v.GetDuration("server.idle_timeout"),
			BodyLimit:    v.GetInt("server.body_limit"),
		},
		DB: DBConfig{
			Driver:          strings.ToLower(v.GetString("db.driver")),
			Host:            v.GetString("db.host"),
			Port:            v.GetInt("db.port"),
			User:            v.GetString("db.user"),
			Password:        v.GetString("db.password"),
			DBName:          v.GetString("db.name"),
			MaxOpenConns:    v.GetInt("db.max_open_conns"),
			MaxIdleConns:    v.GetInt("db.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("db.conn_max_lifetime"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		Trivia: TriviaConfig{
			Enabled:        v.GetBool("trivia.enabled"),
			BaseURL:        v.GetString("trivia.base_url"),
			Timeout:        v.GetDuration("trivia.timeout"),
			ConnectTimeout: v.GetDuration("trivia.connect_timeout"),
		},
		CacheTTLs: CacheTTLConfig{
			Quiz:        v.GetString("cache_ttls.quiz"),
			Leaderboard: v.GetString("cache_ttls.leaderboard"),
		},
		RateLimit: RateLimitConfig{
			GenerateMax:    v.GetInt("ratelimit.generate_max"),
			GenerateWindow: v.GetDuration("ratelimit.generate_window"),
		},
	}

	if cfg.DB.Driver != DriverOracle && cfg.DB.Driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DB.Driver)
	}
	return cfg, nil
}

// GetDSN builds the connection string for the configured driver.
func (c *Config) GetDSN() string {
	u := url.URL{
		User: url.UserPassword(c.DB.User, c.DB.Password),
		Host: fmt.Sprintf("%s:%d", c.DB.Host, c.DB.Port),
		Path: "/" + c.DB.DBName,
	}
	switch c.DB.Driver {
	case DriverOracle:
		u.Scheme = "oracle"
	default:
		u.Scheme = "postgres"
		u.RawQuery = "sslmode=disable"
	}
	return u.String()
}

// ParseTTLStringOrDefault parses a duration string, returning def when the
// value is empty, malformed or not positive.
func ParseTTLStringOrDefault(ttl string, def time.Duration) time.Duration {
	if ttl == "" {
		return def
	}
	d, err := time.ParseDuration(ttl)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
