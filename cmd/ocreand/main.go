// Command ocreand runs the HTTP server for the document text pipeline.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yeonjae-dev/ocrean/internal/common"
	"github.com/yeonjae-dev/ocrean/internal/export"
	"github.com/yeonjae-dev/ocrean/internal/extract"
	"github.com/yeonjae-dev/ocrean/internal/ocr"
	processor "github.com/yeonjae-dev/ocrean/internal/pipeline"
	repo "github.com/yeonjae-dev/ocrean/internal/repository"
	"github.com/yeonjae-dev/ocrean/internal/server"
	"github.com/yeonjae-dev/ocrean/internal/storage"
	"github.com/yeonjae-dev/ocrean/internal/textproc"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		Driver:           cfg.Database.Driver,
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

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

	var spacer textproc.Spacer = textproc.NopSpacer{}
	if cfg.Text.SpacerCommand != "" {
		spacer = &textproc.CommandSpacer{Command: cfg.Text.SpacerCommand, Timeout: cfg.Text.SpacerTimeout}
	}
	text := textproc.NewProcessor(nil, spacer, logger)

	ocrStage := processor.NewOCRStage(docsRepo, jobsRepo, store, textExtractor, logger)
	sentStage := processor.NewSentenceStage(docsRepo, jobsRepo, store, text, logger)
	exporter := export.NewService(docsRepo, store, text, logger)

	handler := server.NewDocumentHandler(docsRepo, store, ocrStage, sentStage, text, exporter, logger)
	engine := server.New(handler, logger)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: engine,
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	logger.Info("stopped")
}
