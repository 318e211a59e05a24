package mockapi

import (
	"log/slog"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/frisklabs/frisk/apierr"
	"github.com/frisklabs/frisk/aplog"
	"github.com/frisklabs/frisk/config"
)

// Server is a self-contained review service for local development. It
// implements the wire contract the console consumes — paged endpoints with
// opaque continuation tokens, users, dashboards and dictionary lookups —
// over a seeded in-memory dataset.
type Server struct {
	cfg    config.Config
	logger *slog.Logger
	engine *gin.Engine
	data   *fixtures
}

func NewServer(cfg config.Config, logBuilder aplog.Builder) *Server {
	if !cfg.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:    cfg,
		logger: logBuilder.WithService("mockapi").Build(),
		engine: gin.New(),
		data:   seedFixtures(),
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(cors.Default())
	s.registerRoutes()

	return s
}

// Engine exposes the router for tests that mount it on httptest.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Run(addr string) error {
	s.logger.Info("mock review service listening", "addr", addr)
	return s.engine.Run(addr)
}

func (s *Server) registerRoutes() {
	v1 := s.engine.Group("/api/v1")

	v1.GET("/users", s.listUsers)
	v1.GET("/queues", s.listQueues)
	v1.GET("/queues/:queueId", s.getQueue)
	v1.GET("/queues/:queueId/items", s.listQueueItems)
	v1.GET("/items/search", s.searchItems)
	v1.GET("/items/:itemId/link-analysis/:field", s.linkAnalysis)
	v1.GET("/dashboard/queues", s.queueDashboard)
	v1.GET("/dashboard/analysts", s.analystDashboard)
	v1.GET("/dictionary/:category", s.dictionary)
}

func pageParams(gctx *gin.Context) (int, string) {
	size, _ := strconv.Atoi(gctx.Query("size"))
	return size, gctx.Query("continuationToken")
}

func writeError(gctx *gin.Context, status int, msg string) {
	gctx.PureJSON(status, apierr.ErrorResponse{Error: msg})
}
