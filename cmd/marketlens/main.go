package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/marketlens/marketlens/internal/analysis"
	"github.com/marketlens/marketlens/internal/export"
	"github.com/marketlens/marketlens/internal/forecast"
	mlmath "github.com/marketlens/marketlens/internal/math"
	"github.com/marketlens/marketlens/internal/model"
	"github.com/marketlens/marketlens/internal/series"
	"github.com/marketlens/marketlens/internal/storage"
	jsonstore "github.com/marketlens/marketlens/internal/storage/file/json"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.App{
		Name:  "marketlens",
		Usage: "price forecasting and signal analysis over daily bars",
		Commands: []*cli.Command{
			forecastCommand(),
			signalsCommand(),
			compareCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func forecastCommand() *cli.Command {
	return &cli.Command{
		Name:  "forecast",
		Usage: "train on a bar file and forecast future business days",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "csv", Usage: "bar file with date and close columns", Required: true},
			&cli.StringFlag{Name: "model", Value: "random-forest", Usage: "random-forest | gradient-boosting | ridge"},
			&cli.IntFlag{Name: "days", Value: 30, Usage: "forecast horizon in business days"},
			&cli.StringFlag{Name: "out", Usage: "write the forecast as csv to this path"},
			&cli.StringFlag{Name: "importances", Usage: "write the feature importances as csv to this path"},
			&cli.StringFlag{Name: "store", Usage: "persist the result bundle under this directory"},
			&cli.StringFlag{Name: "ticker", Usage: "ticker label for storage and logs"},
		},
		Action: runForecast,
	}
}

func runForecast(c *cli.Context) error {
	s, err := series.FromFile(c.String("csv"))
	if err != nil {
		return err
	}

	m, known := model.ModelFromString(c.String("model"))
	if !known {
		log.Warn().Str("model", c.String("model")).Msg("unknown model selector, falling back to random forest")
	}

	result, err := forecast.Run(s, forecast.NewConfig(m, c.Int("days")))
	if err != nil {
		return err
	}

	lastClose := s.Last().Close
	renderForecast(result, lastClose)

	if out := c.String("out"); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("could not create '%s': %w", out, err)
		}
		defer f.Close()
		if err := export.WriteForecast(f, result, lastClose); err != nil {
			return err
		}
		log.Info().Str("path", out).Msg("exported forecast")
	}

	if out := c.String("importances"); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("could not create '%s': %w", out, err)
		}
		defer f.Close()
		if err := export.WriteImportances(f, result); err != nil {
			return err
		}
		log.Info().Str("path", out).Msg("exported feature importances")
	}

	if dir := c.String("store"); dir != "" {
		store := jsonstore.NewStore(dir)
		key := storage.Key{Ticker: c.String("ticker"), Model: m, Horizon: result.Horizon}
		if err := store.Store(key, result); err != nil {
			return err
		}
		log.Info().Str("key", key.Path()).Msg("stored result bundle")
	}
	return nil
}

// bandWidth is the illustrative uncertainty band around the point forecast.
const bandWidth = 0.05

func renderForecast(result *model.ForecastResult, reference float64) {
	upper, lower := result.Band(bandWidth)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Date", "Predicted", "Low", "High", "Change %"})
	for i, d := range result.FutureDates {
		price := result.FuturePrices[i]
		table.Append([]string{
			d.Format("2006-01-02"),
			mlmath.Format(price),
			mlmath.Format(lower[i]),
			mlmath.Format(upper[i]),
			mlmath.Format(mlmath.PctChange(reference, price)),
		})
	}
	table.Render()

	fmt.Printf("model=%s rmse=%s mae=%s r2=%s cv_rmse=%s\n",
		result.ModelName,
		mlmath.Format(result.RMSE),
		mlmath.Format(result.MAE),
		mlmath.Format(result.R2),
		mlmath.Format(result.CVRMSE))

	if len(result.Importances) > 0 {
		imp := tablewriter.NewWriter(os.Stdout)
		imp.SetHeader([]string{"Feature", "Importance"})
		for i, name := range result.FeatureNames {
			imp.Append([]string{name, fmt.Sprintf("%.4f", result.Importances[i])})
		}
		imp.Render()
	}
}

func signalsCommand() *cli.Command {
	return &cli.Command{
		Name:  "signals",
		Usage: "print the consolidated indicator snapshot for a bar file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "csv", Required: true},
		},
		Action: func(c *cli.Context) error {
			s, err := series.FromFile(c.String("csv"))
			if err != nil {
				return err
			}
			report, err := analysis.Signals(s)
			if err != nil {
				return err
			}
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Metric", "Value"})
			table.Append([]string{"last", mlmath.Format(report.Last)})
			table.Append([]string{"change 1d %", mlmath.Format(report.Change1D)})
			table.Append([]string{"change 1w %", mlmath.Format(report.Change1W)})
			table.Append([]string{"ma20", mlmath.Format(report.MA20)})
			table.Append([]string{"ma50", mlmath.Format(report.MA50)})
			table.Append([]string{"rsi", mlmath.Format(float64(report.RSI))})
			table.Append([]string{"strength", string(report.Strength)})
			table.Append([]string{"crossover", string(report.Crossover)})
			table.Append([]string{"rsi state", string(report.RSIState)})
			table.Render()
			return nil
		},
	}
}

func compareCommand() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "performance summary and return correlation across bar files",
		ArgsUsage: "<bar file> <bar file> [...]",
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return fmt.Errorf("need at least two bar files to compare")
			}

			tickers := make([]string, 0, c.NArg())
			closes := make(map[string][]float64, c.NArg())
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Ticker", "Total %", "1-Month %", "1-Week %", "Ann. Vol %", "Sharpe", "Current", "Base-100"})
			for _, path := range c.Args().Slice() {
				s, err := series.FromFile(path)
				if err != nil {
					return err
				}
				ticker := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
				perf, err := analysis.Measure(ticker, s.Closes())
				if err != nil {
					return err
				}
				tickers = append(tickers, ticker)
				closes[ticker] = s.Closes()
				rel := analysis.Returns(s.Closes())
				table.Append([]string{
					ticker,
					mlmath.Format(perf.TotalReturn),
					mlmath.Format(perf.MonthReturn),
					mlmath.Format(perf.WeekReturn),
					mlmath.Format(perf.AnnVolatility),
					mlmath.Format(perf.Sharpe),
					mlmath.Format(perf.Current),
					mlmath.Format(rel[len(rel)-1]),
				})
			}
			table.Render()

			matrix, err := analysis.Correlation(tickers, closes)
			if err != nil {
				return err
			}
			corr := tablewriter.NewWriter(os.Stdout)
			corr.SetHeader(append([]string{""}, tickers...))
			for i, t := range tickers {
				row := []string{t}
				for j := range tickers {
					row = append(row, mlmath.Format(matrix[i][j]))
				}
				corr.Append(row)
			}
			corr.Render()
			return nil
		},
	}
}
