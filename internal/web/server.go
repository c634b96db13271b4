package web

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxRequestSize = 8 << 20 // 8MB

type Config struct {
	Threshold float64
	// Token enables bearer authentication on the API group when set.
	Token string
}

// Server exposes the scoring pipeline over HTTP.
type Server struct {
	config Config
	router *gin.Engine
	logger *zap.Logger
}

// NewServer creates a new web server
func NewServer(cfg Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		config: cfg,
		router: router,
		logger: logger,
	}

	router.GET("/healthz", s.handleHealth)

	api := router.Group("/api")
	api.Use(s.authenticate, limitBody(maxRequestSize))
	{
		api.POST("/score", s.handleScore)
	}

	return s
}

// Handler returns the underlying http handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the web server
func (s *Server) Run(addr string) error {
	s.logger.Info("starting http server", zap.String("addr", addr))
	return s.router.Run(addr)
}

func (s *Server) authenticate(c *gin.Context) {
	if s.config.Token == "" {
		c.Next()
		return
	}

	token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(s.config.Token)) != 1 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "unauthorized",
		})
		return
	}

	c.Next()
}

func limitBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
