package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvTest  = "test"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Env             string
	ServerPort      string
	DBDriver        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPass          string
	DBName          string
	DBSSLMode       string
	SQLitePath      string
	DBMaxOpenConns  int
	DBMaxIdleConns  int
	FrontendURL     string
	SwaggerPath     string
	SwaggerUser     string
	SwaggerPassword string
	DefaultLanguage string
	MaxPageSize     int
	SeedSampleData  bool
	ShutdownTimeout time.Duration
}

func LoadConfig() Config {
	shutdownTimeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		shutdownTimeout = 10 * time.Second
	}

	env := getEnv("ENV", EnvLocal)

	// local and test runs default to an on-disk SQLite file so the service starts without Postgres.
	defaultDriver := DriverPostgres
	if env == EnvLocal || env == EnvTest {
		defaultDriver = DriverSQLite
	}

	return Config{
		Env:             env,
		ServerPort:      getEnv("PORT", "3000"),
		DBDriver:        getEnv("DB_DRIVER", defaultDriver),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPass:          getEnv("DB_PASSWORD", "password"),
		DBName:          getEnv("DB_NAME", "boards"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		SQLitePath:      getEnv("SQLITE_PATH", "boards.db"),
		DBMaxOpenConns:  getEnvAsInt("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns:  getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		FrontendURL:     getEnv("FRONTEND_URL", ""),
		SwaggerPath:     getEnv("SWAGGER_PATH", "/api-docs"),
		SwaggerUser:     getEnv("SWAGGER_USER", "admin"),
		SwaggerPassword: getEnv("SWAGGER_PASSWORD", "admin"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "ko"),
		MaxPageSize:     getEnvAsInt("MAX_PAGE_SIZE", 100),
		SeedSampleData:  getEnvAsBool("SEED_SAMPLE_DATA", env == EnvLocal),
		ShutdownTimeout: shutdownTimeout,
	}
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd, EnvTest:
	default:
		return fmt.Errorf("invalid ENV %q: must be one of local, dev, prod, test", c.Env)
	}

	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("invalid DB_DRIVER %q: must be postgres or sqlite", c.DBDriver)
	}

	if c.MaxPageSize < 1 {
		return fmt.Errorf("invalid MAX_PAGE_SIZE %d: must be positive", c.MaxPageSize)
	}

	if c.Env != EnvLocal && (c.SwaggerUser == "" || c.SwaggerPassword == "") {
		return fmt.Errorf("SWAGGER_USER and SWAGGER_PASSWORD are required outside %s", EnvLocal)
	}

	return nil
}

func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

func (c *Config) AllowedOrigins() []string {
	if c.FrontendURL == "" {
		return []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	origins := strings.Split(c.FrontendURL, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return fallback
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
