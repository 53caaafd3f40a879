// Package main provides the perk report generator: it extracts every perk
// data file under a directory tree into a single Markdown document.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/perkreport/internal/config"
	"github.com/cory-johannsen/perkreport/internal/importer"
	"github.com/cory-johannsen/perkreport/internal/importer/mist"
	"github.com/cory-johannsen/perkreport/internal/observability"
	"github.com/cory-johannsen/perkreport/internal/report"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "optional path to YAML configuration file")
	root := flag.String("root", "", "directory tree of perk data files (overrides report.root)")
	output := flag.String("output", "", "Markdown report path (overrides report.output)")
	flag.Parse()

	cfg, err := config.LoadWithOverrides(*configPath, map[string]string{
		"report.root":   *root,
		"report.output": *output,
	})
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging, "perk-report")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	src := mist.NewSource(cfg.Report.Extension, logger)
	imp := importer.New(src, logger, cfg.Report.Dedupe, report.FromConfig(cfg.Report)...)
	res, err := imp.Run(ctx, cfg.Report.Root)
	if err != nil {
		logger.Fatal("generating perk report", zap.Error(err))
	}

	logger.Debug("run finished",
		zap.String("run_id", res.RunID),
		zap.Strings("outputs", res.Outputs),
		zap.Duration("elapsed", time.Since(start)),
	)
	fmt.Printf("Perk information extracted and saved to %s\n", cfg.Report.Output)
}
