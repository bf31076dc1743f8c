package handlers

import (
	"net/http"
	"time"

	_ "sensor_bridge/docs" // swagger docs
	"sensor_bridge/internal/logger"
	"sensor_bridge/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options tune the HTTP layer. Zero values fall back to defaults.
type Options struct {
	CORSOrigins []string      // allowed origins; "*" allows any
	WSInterval  time.Duration // default websocket push interval
	Metrics     http.Handler  // served at /metrics when set
}

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}
	if opts.WSInterval <= 0 {
		opts.WSInterval = defaultInterval
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{services: services, log: log, opts: opts}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.corsMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", h.root)
	router.GET("/health", h.health)

	// The one read endpoint of the bridge.
	router.GET("/sensor", h.getSensor)

	// Same reading pushed over a websocket on a timer.
	router.GET("/ws", h.wsConnect)

	if h.opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.opts.Metrics))
	}

	return router
}
