package app

import (
	"board-api/internal/app/board"
	"board-api/internal/app/health"
	"board-api/internal/config"
	"board-api/internal/db"
	"board-api/internal/db/seeder"
	"board-api/internal/router"
	"board-api/internal/utils"
	"board-api/internal/validation"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Application struct {
	Router *router.Router
	DB     *gorm.DB
}

// Models lists every table the service owns, in migration order.
func Models() []any {
	return []any{&board.Board{}}
}

func Bootstrap(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, logger, Models()...); err != nil {
		return nil, err
	}

	if cfg.SeedSampleData {
		seed := seeder.NewSeeder(dbConn, logger)
		if err := seed.Seed(); err != nil {
			logger.Warn("Failed to run seeders", zap.Error(err))
		}
	}

	return New(cfg, logger, dbConn)
}

// New wires repositories, services, handlers and routes on top of an
// already migrated connection.
func New(cfg *config.Config, logger *zap.Logger, dbConn *gorm.DB) (*Application, error) {
	translator, err := validation.Setup()
	if err != nil {
		return nil, err
	}

	boardRepo := board.NewRepository(dbConn)
	boardService := board.NewService(boardRepo, logger)
	boardHandler := board.NewHandler(boardService, cfg.MaxPageSize)

	healthService := health.NewHealthService(&utils.HealthChecker{
		DB:      dbConn,
		Timeout: 2 * time.Second,
	})
	healthHandler := health.NewHandler(healthService)

	r := router.NewRouter(cfg, logger, translator)

	r.RegisterHealthRoutes(healthHandler)
	r.RegisterBoardRoutes(boardHandler)
	r.RegisterSwaggerRoutes()

	return &Application{
		Router: r,
		DB:     dbConn,
	}, nil
}
