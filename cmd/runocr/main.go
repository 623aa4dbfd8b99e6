// Command runocr runs the OCR stage for a single document by ID.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/yeonjae-dev/ocrean/internal/common"
	"github.com/yeonjae-dev/ocrean/internal/extract"
	"github.com/yeonjae-dev/ocrean/internal/ocr"
	processor "github.com/yeonjae-dev/ocrean/internal/pipeline"
	repo "github.com/yeonjae-dev/ocrean/internal/repository"
	"github.com/yeonjae-dev/ocrean/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runocr <document-id-uuid>")
		os.Exit(2)
	}
	documentID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid document id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		logger.Error("init storage", "error", err)
		os.Exit(1)
	}

	docsRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewProcessJobRepository(entc, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		TesseractLang:       cfg.OCR.Language,
		TessdataDir:         cfg.OCR.TessdataDir,
		HeicConverter:       cfg.OCR.HeicConverter,
		DPI:                 cfg.OCR.DPI,
		MaxPages:            cfg.OCR.MaxPages,
		EnableTSVConfidence: cfg.OCR.TSVConfidence,
	}, logger)
	textExtractor := extract.NewOCRAdapter(extractor, logger)

	stage := processor.NewOCRStage(docsRepo, jobsRepo, store, textExtractor, logger)

	start := time.Now()
	jobID, res, err := stage.Run(ctx, documentID)
	dur := time.Since(start)

	if err != nil {
		logger.Error("text extraction failed",
			"job_id", jobID, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	logger.Info("text extraction OK",
		"job_id", jobID,
		"method", res.Method,
		"pages", res.Pages,
		"bytes", len(res.Text),
		"confidence", res.Confidence,
		"duration_ms", dur.Milliseconds(),
	)
}
