package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/alphalearn/internal/config"
	"github.com/example/alphalearn/internal/dailyset"
	"github.com/example/alphalearn/internal/database"
	"github.com/example/alphalearn/internal/dictionary"
	"github.com/example/alphalearn/internal/excel"
	"github.com/example/alphalearn/internal/notify"
	"github.com/example/alphalearn/internal/scheduler"
)

func main() {
	importFile := flag.String("import", "", "import catalog words from an .xlsx or .csv file and exit")
	flag.Parse()

	cfg := config.Load()

	dbCfg := database.Config{Driver: cfg.DBType, DSN: cfg.DBPath}
	if cfg.DBType == "postgres" {
		dbCfg.DSN = cfg.DatabaseURL
	}

	db, err := database.Connect(dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if *importFile == "" && cfg.ImportFile != "" {
		*importFile = cfg.ImportFile
	}
	if *importFile != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		result, err := excel.ImportWords(ctx, db, excel.DefaultImportConfig(*importFile))
		if err != nil {
			log.Fatalf("Import failed: %v", err)
		}
		log.Printf("Import finished: %d processed, %d created, %d skipped, %d errors",
			result.TotalProcessed, result.Created, result.Skipped, len(result.Errors))
		for _, e := range result.Errors {
			log.Printf("  %s", e)
		}
		return
	}

	dict := dictionary.New(cfg.DictionaryURL, cfg.DictionaryTimeout)
	sets := dailyset.New(db, dict, nil)

	var notifier scheduler.Notifier
	if cfg.TelegramToken != "" {
		tg, err := notify.New(cfg.TelegramToken)
		if err != nil {
			log.Fatalf("Failed to create telegram notifier: %v", err)
		}
		notifier = tg
	} else {
		log.Println("TELEGRAM_BOT_TOKEN not set, daily word delivery disabled")
	}

	sched := scheduler.New(db, sets, notifier, cfg.NotificationStartHour, cfg.NotificationEndHour)
	sched.Start(cfg.PrebuildTime)
	defer sched.Stop()

	// Build today's set on startup so the first visitor doesn't wait
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	if _, err := sets.EnsureDailySet(ctx, time.Now()); err != nil {
		log.Printf("Error building today's set: %v", err)
	}
	cancel()

	log.Println("AlphaLearn core started. Press Ctrl+C to stop.")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	log.Printf("Received signal: %v, shutting down", sig)
}
