// Command ocrean-batch ingests a directory of scanned documents, runs the
// full pipeline over them, and optionally exports XLSX workbooks. With
// --watch it keeps running and processes files as they appear.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/yeonjae-dev/ocrean/internal/async"
	"github.com/yeonjae-dev/ocrean/internal/common"
	"github.com/yeonjae-dev/ocrean/internal/export"
	"github.com/yeonjae-dev/ocrean/internal/extract"
	"github.com/yeonjae-dev/ocrean/internal/ingest"
	"github.com/yeonjae-dev/ocrean/internal/ocr"
	processor "github.com/yeonjae-dev/ocrean/internal/pipeline"
	repo "github.com/yeonjae-dev/ocrean/internal/repository"
	"github.com/yeonjae-dev/ocrean/internal/storage"
	"github.com/yeonjae-dev/ocrean/internal/textproc"
)

func main() {
	var (
		dir       = flag.String("dir", "", "directory to ingest documents from (required)")
		out       = flag.String("out", "", "directory for XLSX exports (optional; disables export when empty)")
		minLength = flag.Int("min-length", 1, "minimum vocabulary word length for exports")
		workers   = flag.Int("workers", 4, "pipeline worker count")
		watch     = flag.Bool("watch", false, "keep running and process new files as they appear")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *dir == "" {
		logger.Error("--dir is required")
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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
	proc := processor.NewProcessor(logger, ocrStage, sentStage)
	exporter := export.NewService(docsRepo, store, text, logger)

	ingestor := ingest.NewFSIngestor(docsRepo, store, logger)

	queue := async.NewProcessorQueue(proc, logger, async.WithWorkers(*workers))

	enqueue := func(id string) {
		docID, err := uuid.Parse(id)
		if err != nil {
			logger.Error("bad document id from ingest", "id", id, "error", err)
			return
		}
		_ = queue.Enqueue(ctx, async.Job{DocumentID: docID, SubmittedAt: time.Now().UTC()})
	}

	logger.Info("starting ingestion", "dir", *dir)
	results, stats, err := ingestor.IngestDirectory(ctx, *dir, true)
	if err != nil {
		logger.Error("ingest directory", "error", err)
		os.Exit(1)
	}
	logger.Info("ingestion complete",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"deduplicated", stats.Deduplicated)

	var ingested []string
	for _, r := range results {
		if r.Err != "" {
			continue
		}
		ingested = append(ingested, r.DocumentID)
		if !r.Deduplicated {
			enqueue(r.DocumentID)
		}
	}

	if *watch {
		evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:    []string{*dir},
			Debounce: 2 * time.Second,
		})
		if err != nil {
			logger.Error("start watcher", "error", err)
			os.Exit(1)
		}
		logger.Info("watching for new documents", "dir", *dir)
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case path, ok := <-evCh:
					if !ok {
						return
					}
					r, err := ingestor.IngestPath(ctx, path)
					if err != nil {
						logger.Error("ingest new file", "path", path, "error", err)
						continue
					}
					if !r.Deduplicated {
						enqueue(r.DocumentID)
					}
				case werr, ok := <-errCh:
					if ok && werr != nil {
						logger.Error("watcher error", "error", werr)
					}
				}
			}
		}()
		<-ctx.Done()
	}

	// Drain the queue before exporting.
	drainCtx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	queue.Shutdown(drainCtx)
	cancel()

	if *out != "" {
		if err := os.MkdirAll(*out, 0o755); err != nil {
			logger.Error("create export dir", "error", err)
			os.Exit(1)
		}
		exportCtx := context.Background()
		exported := 0
		for _, id := range ingested {
			docID, err := uuid.Parse(id)
			if err != nil {
				continue
			}
			data, err := exporter.ExportDocumentXLSX(exportCtx, docID, *minLength)
			if err != nil {
				logger.Error("export document", "document_id", id, "error", err)
				continue
			}
			path := filepath.Join(*out, fmt.Sprintf("document-%s.xlsx", id))
			if err := os.WriteFile(path, data, 0o644); err != nil {
				logger.Error("write export", "path", path, "error", err)
				continue
			}
			exported++
		}
		logger.Info("export complete", "documents", len(ingested), "exported", exported, "dir", *out)
	}

	logger.Info("batch processing complete", "documents", len(ingested))
}
