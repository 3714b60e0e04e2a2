package router

import (
	"board-api/docs"
	"board-api/internal/app/board"
	"board-api/internal/app/health"
	"board-api/internal/apperror"
	"board-api/internal/config"
	"board-api/internal/i18n"
	"board-api/internal/middleware"
	"board-api/internal/validation"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	Engine *gin.Engine
	cfg    *config.Config
}

func NewRouter(cfg *config.Config, logger *zap.Logger, translator *validation.Translator) *Router {
	switch cfg.Env {
	case config.EnvProd:
		gin.SetMode(gin.ReleaseMode)
	case config.EnvTest:
		gin.SetMode(gin.TestMode)
	}

	engine := gin.New()
	engine.Use(middleware.CORSMiddleware(cfg.AllowedOrigins()))
	engine.Use(middleware.LoggerMiddleware(logger))
	engine.Use(gin.Recovery())
	engine.Use(middleware.LanguageMiddleware(i18n.NewNegotiator(cfg.DefaultLanguage)))
	engine.Use(middleware.ErrorHandler(logger, translator, !cfg.IsProd()))

	engine.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperror.New(apperror.KindNotFound, apperror.MsgRouteNotFound))
	})

	return &Router{Engine: engine, cfg: cfg}
}

func (r *Router) RegisterHealthRoutes(handler health.Handler) {
	health.RegisterRoutes(r.Engine, handler)
}

func (r *Router) RegisterBoardRoutes(handler board.Handler) {
	board.RegisterRoutes(r.Engine, handler)
}

// RegisterSwaggerRoutes serves the Swagger UI under cfg.SwaggerPath. Outside
// the local environment the UI sits behind HTTP basic auth.
func (r *Router) RegisterSwaggerRoutes() {
	docs.SwaggerInfo.BasePath = "/"

	group := r.Engine.Group(r.cfg.SwaggerPath)
	if r.cfg.Env != config.EnvLocal {
		group.Use(gin.BasicAuth(gin.Accounts{r.cfg.SwaggerUser: r.cfg.SwaggerPassword}))
	}
	group.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.PersistAuthorization(true),
		ginSwagger.DefaultModelsExpandDepth(1),
	))
}
