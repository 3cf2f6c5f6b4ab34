package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/marketlens/marketlens/internal/analysis"
	"github.com/marketlens/marketlens/internal/cache"
	"github.com/marketlens/marketlens/internal/forecast"
	"github.com/marketlens/marketlens/internal/metrics"
	"github.com/marketlens/marketlens/internal/model"
)

const dateLayout = "2006-01-02"

// barPayload is one daily bar on the wire.
type barPayload struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// forecastRequest is the forecast endpoint payload.
type forecastRequest struct {
	Ticker  string       `json:"ticker"`
	Model   string       `json:"model"`
	Horizon int          `json:"horizon"`
	Bars    []barPayload `json:"bars"`
}

// signalsRequest is the signals endpoint payload.
type signalsRequest struct {
	Ticker string       `json:"ticker"`
	Bars   []barPayload `json:"bars"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toSeries(bars []barPayload) (model.PriceSeries, error) {
	bb := make([]model.Bar, len(bars))
	for i, b := range bars {
		date, err := time.Parse(dateLayout, b.Date)
		if err != nil {
			return model.PriceSeries{}, err
		}
		bb[i] = model.Bar{
			Date:   date,
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		}
	}
	return model.NewPriceSeries(bb)
}

func (s *Server) forecast(c echo.Context) error {
	var req forecastRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	if req.Horizon <= 0 {
		req.Horizon = 30
	}
	m, known := model.ModelFromString(req.Model)
	if !known && req.Model != "" {
		log.Warn().Str("model", req.Model).Msg("unknown model selector, falling back to random forest")
	}

	key := cache.Key(req.Ticker, m, req.Horizon)
	if req.Ticker != "" {
		if cached, ok := s.cache.Get(key); ok {
			metrics.Observer.IncrementCacheHits("hit")
			return c.JSON(http.StatusOK, cached)
		}
		metrics.Observer.IncrementCacheHits("miss")
	}

	series, err := toSeries(req.Bars)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	start := time.Now()
	result, err := forecast.Run(series, forecast.NewConfig(m, req.Horizon))
	metrics.Observer.ObserveDuration(m.String(), time.Since(start))
	if err != nil {
		metrics.Observer.IncrementForecasts(req.Ticker, m.String(), "error")
		return c.JSON(statusOf(err), errorResponse{Error: err.Error()})
	}
	metrics.Observer.IncrementForecasts(req.Ticker, m.String(), "ok")

	if req.Ticker != "" {
		s.cache.Put(key, result)
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) signals(c echo.Context) error {
	var req signalsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	series, err := toSeries(req.Bars)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	report, err := analysis.Signals(series)
	if err != nil {
		return c.JSON(statusOf(err), errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, report)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// statusOf maps pipeline failures to http codes, InsufficientData is a
// client-side problem, everything else is internal.
func statusOf(err error) int {
	if errors.Is(err, model.ErrInsufficientData) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
