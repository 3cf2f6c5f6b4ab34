package server

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/marketlens/marketlens/internal/cache"
)

// Server exposes the forecasting pipeline over http.
type Server struct {
	echo  *echo.Echo
	port  int
	cache *cache.TTLCache
}

// New creates a server on the given port with a result cache of the given ttl.
func New(port int, ttl time.Duration) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(requestLogger)

	s := &Server{
		echo:  e,
		port:  port,
		cache: cache.New(ttl),
	}

	v1 := e.Group("/api/v1")
	v1.POST("/forecast", s.forecast)
	v1.POST("/signals", s.signals)
	e.GET("/health", s.health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return s
}

// Run blocks serving requests.
func (s *Server) Run() error {
	log.Info().Int("port", s.port).Msg("starting server")
	return s.echo.Start(fmt.Sprintf(":%d", s.port))
}

func requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := uuid.New().String()
		c.Response().Header().Set(echo.HeaderXRequestID, id)
		start := time.Now()
		err := next(c)
		log.Info().
			Str("id", id).
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Int("status", c.Response().Status).
			Dur("duration", time.Since(start)).
			Err(err).
			Msg("request")
		return err
	}
}
