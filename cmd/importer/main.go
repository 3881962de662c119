package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/Liandro13/method-passion-site/internal/config"
	"github.com/Liandro13/method-passion-site/internal/importer"
	bookingRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/booking"
	"github.com/Liandro13/method-passion-site/pkg/logger"
	"github.com/Liandro13/method-passion-site/pkg/simpletxmanager"
)

func main() {
	defaultConfig := "config.toml"
	if path, ok := os.LookupEnv("CONFIG_PATH"); ok && path != "" {
		defaultConfig = path
	}

	configPath := flag.String("config", defaultConfig, "path to config.toml")
	file := flag.String("file", "", "semicolon separated export to import")
	accommodationID := flag.Int64("accommodation-id", 0, "accommodation the rows belong to")
	dryRun := flag.Bool("dry-run", false, "report what would be imported without writing")
	flag.Parse()

	if *file == "" || *accommodationID <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal("Failed to open %s: %v", *file, err)
	}
	defer f.Close()

	rows, skipped, err := importer.ReadRows(f)
	if err != nil {
		log.Fatal("Failed to read %s: %v", *file, err)
	}
	log.Info("Read %d rows from %s (%d skipped while reading)", len(rows), *file, len(skipped))

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	im := importer.New(bookingRepo.NewRepository(db), simpletxmanager.NewTransactionManager(db), log)

	report, err := im.Import(ctx, *accommodationID, rows, *dryRun)
	if err != nil {
		log.Fatal("Import failed: %v", err)
	}

	for _, skip := range append(skipped, report.Skipped...) {
		log.Warn("Line %d skipped: %s", skip.Line, skip.Reason)
	}

	verb := "Imported"
	if report.DryRun {
		verb = "Would import"
	}
	log.Info("%s %d bookings into accommodation %d, %d rows skipped",
		verb, report.Imported, report.AccommodationID, len(skipped)+len(report.Skipped))
}
