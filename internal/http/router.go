package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/endpoint/summary-panel/internal/config"
	"github.com/endpoint/summary-panel/internal/db"
	"github.com/endpoint/summary-panel/internal/host"
	"github.com/endpoint/summary-panel/internal/http/handlers"
	"github.com/endpoint/summary-panel/internal/http/middleware"
	"github.com/endpoint/summary-panel/internal/service"
	"github.com/endpoint/summary-panel/internal/view"

	_ "github.com/endpoint/summary-panel/docs"
)

// Router wires the panel API. store may be nil when the development host
// is not in use.
func Router(cfg config.Config, panels *service.PanelService, hosts host.Factory, store *db.Store, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.SetHTMLTemplate(view.Template)

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Key", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Panels:    panels,
		Sessions:  service.NewRegistry(cfg.MaxSessions),
		Hosts:     hosts,
		Store:     store,
		Validator: validator.New(),
		Logger:    logger,
		Timeout:   cfg.RequestTimeout,
	}

	r.GET("/healthz", h.Healthz)
	r.GET("/panels/:id", h.PanelPage)

	api := r.Group("/api")
	{
		api.POST("/panels", h.CreatePanel)
		api.GET("/panels/:id", h.GetPanel)
		api.POST("/panels/:id/feedback", h.SetFeedback)
		api.DELETE("/panels/:id", h.DeletePanel)
	}

	admin := api.Group("/dev")
	admin.Use(middleware.AdminKey(cfg.AdminKey))
	{
		admin.PUT("/settings", h.PutDevSettings)
		admin.PUT("/tickets/:id", h.PutDevTicket)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
