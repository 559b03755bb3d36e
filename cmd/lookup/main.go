// Command lookup prints the weather report for one city or position.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"weather-report/config"
	"weather-report/forecast"
	"weather-report/lookup"
	"weather-report/models"
	"weather-report/providers/openweathermap"
)

func main() {
	city := flag.String("city", "", "City name to look up")
	lat := flag.Float64("lat", 0, "Latitude (use with -lon)")
	lon := flag.Float64("lon", 0, "Longitude (use with -lat)")
	asJSON := flag.Bool("json", false, "Print the report as JSON")
	configFile := flag.String("config", "", "Path to configuration file")
	timeout := flag.Duration("timeout", 15*time.Second, "Overall lookup timeout")
	flag.Parse()

	coords := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "lat" || f.Name == "lon" {
			coords = true
		}
	})

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.OWM.APIKey == "" {
		fmt.Fprintln(os.Stderr, "No OpenWeatherMap API key configured, set WEATHER_REPORT_OWM_APIKEY")
		os.Exit(1)
	}

	logger := cfg.NewLogger()
	if cfg.Log.Level != "debug" {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	provider := openweathermap.NewProvider(cfg.OWM.APIKey, logger)
	provider.SetBaseURL(cfg.OWM.BaseURL)
	provider.SetTimeout(cfg.OWM.Timeout)

	svc := lookup.NewService(provider, provider, nil, logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var report models.Report
	if coords {
		report, err = svc.ByCoordinates(ctx, *lat, *lon)
	} else {
		report, err = svc.ByCity(ctx, *city)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, lookup.UserMessage(err))
		if cfg.Log.Level == "debug" {
			fmt.Fprintf(os.Stderr, "  %v\n", err)
		}
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(report)
		return
	}

	printReport(os.Stdout, report)
}

func printReport(w io.Writer, report models.Report) {
	current := report.Current
	sample := current.Conditions.Sample

	fmt.Fprintf(w, "📍 %s (%s)\n", report.City, current.DateLabel)
	fmt.Fprintf(w, "   🌡️ %s°C  💧 %d%%  💨 %v m/s  %s %s\n\n",
		forecast.FormatCelsius(current.TemperatureCelsius),
		sample.HumidityPercent, sample.WindSpeed, sample.ConditionDescription, current.Glyph)

	if len(report.Forecast) == 0 {
		return
	}

	fmt.Fprintln(w, "5 Day Forecast")
	for _, day := range report.Forecast {
		fmt.Fprintf(w, "   📅 %-10s 🌡️ %6s°C  💧 %3d%%  💨 %v m/s  %s %s\n",
			day.DateLabel, forecast.FormatCelsius(day.TemperatureCelsius),
			day.Sample.HumidityPercent, day.Sample.WindSpeed, day.Sample.ConditionDescription, day.Glyph)
	}
}
