package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketlens/marketlens/internal/model"
)

func makeBars(n int, close func(i int) float64) []barPayload {
	start := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]barPayload, n)
	for i := range bars {
		bars[i] = barPayload{
			Date:   start.AddDate(0, 0, i).Format(dateLayout),
			Close:  close(i),
			Volume: 1e6,
		}
	}
	return bars
}

func zigzag(i int) float64 {
	return 100 + 0.5*float64(i) + 3*float64(i%2)
}

func post(t *testing.T, s *Server, path string, payload interface{}) *httptest.ResponseRecorder {
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestForecastEndpoint(t *testing.T) {
	s := New(0, time.Minute)

	rec := post(t, s, "/api/v1/forecast", forecastRequest{
		Ticker:  "TEST",
		Model:   "ridge",
		Horizon: 3,
		Bars:    makeBars(120, zigzag),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var res model.ForecastResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "ridge", res.ModelName)
	assert.Equal(t, 3, res.Horizon)
	assert.Equal(t, 3, len(res.FuturePrices))
	assert.Equal(t, 120, len(res.InSample))
}

func TestForecastEndpoint_Cached(t *testing.T) {
	s := New(0, time.Minute)
	req := forecastRequest{
		Ticker:  "TEST",
		Model:   "ridge",
		Horizon: 3,
		Bars:    makeBars(120, zigzag),
	}

	first := post(t, s, "/api/v1/forecast", req)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 1, s.cache.Size())

	second := post(t, s, "/api/v1/forecast", req)
	require.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestForecastEndpoint_Errors(t *testing.T) {
	s := New(0, time.Minute)

	type test struct {
		payload forecastRequest
		status  int
	}

	tests := map[string]test{
		"too-few-bars": {
			payload: forecastRequest{Model: "ridge", Horizon: 3, Bars: makeBars(10, zigzag)},
			status:  http.StatusUnprocessableEntity,
		},
		"bad-date": {
			payload: forecastRequest{Model: "ridge", Horizon: 3, Bars: []barPayload{{Date: "nope", Close: 1}}},
			status:  http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rec := post(t, s, "/api/v1/forecast", tt.payload)
			assert.Equal(t, tt.status, rec.Code)

			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestSignalsEndpoint(t *testing.T) {
	s := New(0, time.Minute)

	rec := post(t, s, "/api/v1/signals", signalsRequest{
		Ticker: "TEST",
		Bars:   makeBars(60, zigzag),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "bullish", body["strength"])
	assert.Equal(t, "HOLD", body["crossover"])
	// a series this short has no 200-day average
	assert.Nil(t, body["ma200"])
}

func TestSignalsEndpoint_TooShort(t *testing.T) {
	s := New(0, time.Minute)

	rec := post(t, s, "/api/v1/signals", signalsRequest{Bars: makeBars(20, zigzag)})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	s := New(0, time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
