package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	mlmath "github.com/marketlens/marketlens/internal/math"
	"github.com/marketlens/marketlens/internal/model"
)

const dateLayout = "2006-01-02"

// WriteForecast renders the forecast as delimited rows of
// date, predicted price and percent change against the reference price.
func WriteForecast(w io.Writer, res *model.ForecastResult, reference float64) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"date", "predicted_price", "change_pct"}); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}
	for i, d := range res.FutureDates {
		price := res.FuturePrices[i]
		row := []string{
			d.Format(dateLayout),
			mlmath.Format(price),
			mlmath.Format(mlmath.PctChange(reference, price)),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("could not write row %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteImportances renders the feature importance vector in schema order.
func WriteImportances(w io.Writer, res *model.ForecastResult) error {
	if len(res.Importances) == 0 {
		return fmt.Errorf("model %s exposes no importances", res.ModelName)
	}
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"feature", "importance"}); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}
	for i, name := range res.FeatureNames {
		row := []string{name, strconv.FormatFloat(res.Importances[i], 'f', 6, 64)}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("could not write row %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
