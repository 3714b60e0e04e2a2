package db

import (
	"fmt"
	"time"

	"board-api/internal/config"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Connect(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverSQLite:
		dialector = sqlite.Open(SQLiteDSN(cfg.SQLitePath))
	default:
		dialector = postgres.Open(cfg.PostgresDSN())
	}

	logLevel := gormlogger.Silent
	if cfg.Env == config.EnvLocal || cfg.Env == config.EnvDev {
		logLevel = gormlogger.Warn
	}

	db, err := Open(dialector, logLevel)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	if cfg.DBDriver == config.DriverSQLite {
		logger.Info("Connected to SQLite", zap.String("path", cfg.SQLitePath))
	} else {
		logger.Info("Connected to PostgreSQL",
			zap.String("host", cfg.DBHost),
			zap.String("database", cfg.DBName),
		)
	}

	return db, nil
}

// Open opens a gorm handle with driver errors translated to gorm's sentinel
// errors (gorm.ErrDuplicatedKey and friends).
func Open(dialector gorm.Dialector, logLevel gormlogger.LogLevel) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(logLevel),
	})
}

// SQLiteDSN adds a busy timeout so concurrent readers wait on a writer
// instead of failing with SQLITE_BUSY.
func SQLiteDSN(path string) string {
	return fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", path)
}

func Migrate(db *gorm.DB, logger *zap.Logger, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logger.Info("Database migration completed", zap.Int("models", len(models)))
	return nil
}
