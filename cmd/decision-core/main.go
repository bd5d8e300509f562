// cmd/decision-core/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"renovation-core/internal/analysis/pipeline"
	"renovation-core/internal/analysis/tagconfirm"
	"renovation-core/internal/audit"
	"renovation-core/internal/common/config"
	"renovation-core/internal/common/database"
	"renovation-core/internal/common/logger"
	"renovation-core/internal/common/observability"
	"renovation-core/internal/estimate"
	"renovation-core/internal/estimate/catalog"
	"renovation-core/internal/models"
	"renovation-core/internal/normalize"
	"renovation-core/internal/questionbank"
	"renovation-core/pkg/contract"
)

// request is the raw external document: basic facts, answers and an
// optional estimate section.
type request struct {
	BasicInfo map[string]interface{} `json:"basicInfo"`
	Answers   map[string]string      `json:"answers"`
	Estimate  *struct {
		AreaPyeong float64 `json:"areaPyeong"`
	} `json:"estimate,omitempty"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Address, mux); err != nil {
				zapLog.Warn("metrics server stopped", zap.Error(err))
			}
		}()
	}

	ctx := context.Background()

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		zapLog.Fatal("postgres init failed", zap.Error(err))
	}
	defer pg.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := pg.Ping(pingCtx); err != nil {
		cancel()
		zapLog.Fatal("postgres unreachable", zap.Error(err))
	}
	cancel()

	auditStore := audit.NewMemoryStore()
	auditOpts := []audit.Option{}
	if cfg.Audit.MirrorToES {
		es, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			zapLog.Fatal("elasticsearch init failed", zap.Error(err))
		}
		auditOpts = append(auditOpts, audit.WithMirror(
			audit.NewElasticsearchStore(es, cfg.Audit.Index)))
	}
	auditLog := audit.New(auditStore, cfg.App.Version, log, auditOpts...)
	defer auditLog.Close()

	bank, err := questionbank.NewPostgresBank(ctx, pg)
	if err != nil {
		zapLog.Warn("question bank load failed, using built-in questions", zap.Error(err))
	}
	var activeBank questionbank.Bank = bank
	if bank == nil {
		activeBank = questionbank.NewDefaultBank()
	}

	analyzer := pipeline.New(
		tagconfirm.New(cfg.Analysis.ReferenceYear),
		activeBank,
		auditLog,
		log,
	)
	engine := estimate.New(
		catalog.NewPostgresCatalog(pg),
		cfg.Estimate.VATRate,
		cfg.Estimate.ContingencyRate,
		auditLog,
		log,
	)

	envelope := run(ctx, analyzer, engine, obs, os.Args[1:])

	out, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		zapLog.Fatal("encode result failed", zap.Error(err))
	}
	fmt.Println(string(out))

	if envelope.Status != contract.StatusSuccess {
		os.Exit(1)
	}
}

// run executes one request document and returns the boundary envelope.
func run(ctx context.Context, analyzer *pipeline.Analyzer, engine *estimate.Engine, obs *observability.Observability, args []string) contract.Envelope {
	start := time.Now()

	req, err := readRequest(args)
	if err != nil {
		return contract.FromError(err)
	}

	basicInfo, err := normalize.BasicInfo(req.BasicInfo)
	if err != nil {
		return contract.FromError(err)
	}
	answers, err := normalize.Answers(req.Answers)
	if err != nil {
		return contract.FromError(err)
	}

	analysis, err := analyzer.Analyze(ctx, basicInfo, answers)
	if err != nil {
		obs.RecordRun(ctx, "failed")
		obs.RecordDuration(ctx, time.Since(start), "failed")
		return contract.FromError(err)
	}

	if req.Estimate == nil {
		obs.RecordRun(ctx, "completed")
		obs.RecordDuration(ctx, time.Since(start), "completed")
		return contract.Success(analysis)
	}

	final, err := engine.Calculate(ctx, estimate.Options{
		AreaPyeong: req.Estimate.AreaPyeong,
		Changes:    analysis.Changes,
	})
	if err != nil {
		obs.RecordRun(ctx, "failed")
		obs.RecordDuration(ctx, time.Since(start), "failed")
		return contract.FromError(err)
	}

	obs.RecordRun(ctx, "completed")
	obs.RecordDuration(ctx, time.Since(start), "completed")
	return contract.Success(struct {
		Analysis *models.AnalysisResult `json:"analysis"`
		Estimate *models.FinalEstimate  `json:"estimate"`
	}{analysis, final})
}

func readRequest(args []string) (*request, error) {
	var raw []byte
	var err error

	if len(args) > 0 {
		raw, err = os.ReadFile(args[0])
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, fmt.Errorf("read request: %w", err)
	}

	var req request
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("parse request: %w", err)
	}
	return &req, nil
}
