package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/inaiurai/admindemo/internal/config"
	"github.com/inaiurai/admindemo/internal/dashboard"
	"github.com/inaiurai/admindemo/internal/metrics"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default $ADMINDEMO_CONFIG)")
	format := flag.String("format", "", "output format: json or yaml (overrides config)")
	dumpMetrics := flag.Bool("metrics", false, "write collected metrics to stderr after generation")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if *format != "" {
		cfg.Format = *format
		if err := cfg.Validate(); err != nil {
			slog.Error("Invalid -format", "error", err)
			os.Exit(1)
		}
	}

	level, _ := cfg.Level()
	// stdout carries the snapshot, so logs go to stderr
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	reg := prometheus.NewRegistry()
	recorder, err := metrics.New(reg)
	if err != nil {
		slog.Error("Failed to register metrics", "error", err)
		os.Exit(1)
	}

	dash, err := dashboard.New(cfg, dashboard.WithLogger(logger), dashboard.WithMetrics(recorder))
	if err != nil {
		slog.Error("Failed to generate dashboard data", "error", err)
		os.Exit(1)
	}
	slog.Info("Dashboard data generated", "seed", dash.Seed(), "now", dash.Now(), "format", cfg.Format)

	if err := dash.Snapshot().Encode(os.Stdout, cfg.Format); err != nil {
		slog.Error("Failed to write snapshot", "error", err)
		os.Exit(1)
	}

	if *dumpMetrics {
		if err := metrics.WriteText(os.Stderr, reg); err != nil {
			slog.Error("Failed to write metrics", "error", err)
			os.Exit(1)
		}
	}
}
