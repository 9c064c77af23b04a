package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"ikh/dicom-master/internal/api"
	"ikh/dicom-master/internal/config"
	"ikh/dicom-master/internal/models"
	"ikh/dicom-master/internal/report"
	"ikh/dicom-master/internal/scanner"
)

const timeLayout = "2006-01-02 15:04:05"

var printer = message.NewPrinter(language.English)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML config file")
	flag.Parse()

	log.SetOutput(os.Stdout)

	err := run(*configPath)
	if err != nil {
		log.Print("ERROR: ", err)
	}

	// Keep the console window open when started by double-click.
	waitForEnter(os.Stdin, os.Stdout)

	if err != nil {
		os.Exit(1)
	}
}

func run(configPath string) error {
	start := time.Now()
	runID := uuid.NewString()

	cfg, err := config.ReadConfig(configPath)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", configPath, err)
	}
	if err := config.ApplyEnv(cfg, ".env"); err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log.Print("=== Master Excel Generator ===")
	log.Printf("Run ID              : %s", runID)
	log.Printf("Start time          : %s", start.Format(timeLayout))
	log.Printf("Scanning root       : %s", cfg.RootFolder)
	log.Printf("Will save Excel to  : %s", cfg.ExcelPath)

	s := scanner.NewScanner(osfs.New(cfg.RootFolder), cfg.ProgressEvery, func(files, rows int) {
		log.Print(printer.Sprintf("  Progress: scanned ~%d files, built %d rows...", files, rows))
	})

	rows, err := s.Run()
	if err != nil {
		return err
	}

	log.Print("Saving Excel...")
	if err := report.WriteWorkbook(cfg.ExcelPath, cfg.SheetName, runID, rows); err != nil {
		return err
	}

	elapsed := time.Since(start)
	log.Print("=== Done ===")
	log.Printf("End time            : %s", time.Now().Format(timeLayout))
	log.Print(printer.Sprintf("Total rows written  : %d", len(rows)))
	log.Printf("Excel saved to      : %s", cfg.ExcelPath)
	log.Printf("Elapsed time        : %s", formatElapsed(elapsed))

	if cfg.ApiUrl != "" {
		summary := models.Summary{
			RunID:     runID,
			Root:      cfg.RootFolder,
			ExcelPath: cfg.ExcelPath,
			Rows:      len(rows),
			Files:     s.FilesSeen(),
			Elapsed:   formatElapsed(elapsed),
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Timeout)*time.Second)
		defer cancel()
		if err := api.NotifyReportReady(ctx, cfg.ApiUrl, summary); err != nil {
			log.Println("notify error:", err)
		}
	}

	return nil
}
