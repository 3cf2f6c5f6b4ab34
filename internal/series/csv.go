package series

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/marketlens/marketlens/internal/model"
)

const dateLayout = "2006-01-02"

// FromFile loads a price series from a delimited bar file.
func FromFile(path string) (model.PriceSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.PriceSeries{}, fmt.Errorf("could not open '%s': %w", path, err)
	}
	defer f.Close()
	return FromCSV(f)
}

// FromCSV parses daily bars from a csv table with a header row.
// Date and close are required, the remaining OHLCV columns are optional.
func FromCSV(r io.Reader) (model.PriceSeries, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return model.PriceSeries{}, fmt.Errorf("could not read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	dateCol, ok := cols["date"]
	if !ok {
		return model.PriceSeries{}, fmt.Errorf("no date column in header %v", header)
	}
	closeCol, ok := cols["close"]
	if !ok {
		return model.PriceSeries{}, fmt.Errorf("no close column in header %v", header)
	}

	bars := make([]model.Bar, 0)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.PriceSeries{}, fmt.Errorf("could not read line %d: %w", line, err)
		}

		date, err := time.Parse(dateLayout, strings.TrimSpace(record[dateCol]))
		if err != nil {
			return model.PriceSeries{}, fmt.Errorf("bad date on line %d: %w", line, err)
		}
		closePrice, err := strconv.ParseFloat(strings.TrimSpace(record[closeCol]), 64)
		if err != nil {
			return model.PriceSeries{}, fmt.Errorf("bad close on line %d: %w", line, err)
		}

		bar := model.Bar{Date: date, Close: closePrice}
		bar.Open = optional(record, cols, "open")
		bar.High = optional(record, cols, "high")
		bar.Low = optional(record, cols, "low")
		bar.Volume = optional(record, cols, "volume")
		bars = append(bars, bar)
	}

	return model.NewPriceSeries(bars)
}

func optional(record []string, cols map[string]int, name string) float64 {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(record[i]), 64)
	if err != nil {
		return 0
	}
	return v
}
