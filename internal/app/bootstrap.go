// Package app is the composition root: it wires configuration,
// database clients, engines, services and the HTTP router together and
// owns their lifecycle.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"iou-platform.io/iou/internal/api/handlers"
	"iou-platform.io/iou/internal/audit"
	"iou-platform.io/iou/internal/community"
	"iou-platform.io/iou/internal/config"
	"iou-platform.io/iou/internal/extract"
	"iou-platform.io/iou/internal/graph"
	"iou-platform.io/iou/internal/infrastructure"
	"iou-platform.io/iou/internal/jobs"
	"iou-platform.io/iou/internal/pipeline"
	"iou-platform.io/iou/internal/pkg/keylock"
	"iou-platform.io/iou/internal/pkg/logger"
	"iou-platform.io/iou/internal/pkg/metrics"
	"iou-platform.io/iou/internal/pkg/worker"
	"iou-platform.io/iou/internal/resolve"
	"iou-platform.io/iou/internal/rules"
	"iou-platform.io/iou/internal/service"
	"iou-platform.io/iou/internal/suggest"
)

// Application holds composed application dependencies.
type Application struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *infrastructure.DatabaseClients
	Pools    *worker.Pools
	Pipeline *pipeline.Pipeline
}

// Bootstrap initializes all dependencies using manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		IngestPoolSize:   cfg.Worker.IngestPoolSize,
		AnalysisPoolSize: cfg.Worker.AnalysisPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	m := metrics.New()
	auditLogger := audit.NewLogger(db.EntClient)

	// Engines.
	extractor := extract.New()
	resolver := resolve.New(
		resolve.NewEntStore(db.EntClient),
		keylock.New(cfg.Analysis.KeylockShards),
		auditLogger,
	)
	builder := graph.NewBuilder(graph.NewEntStore(db.EntClient), cfg.Analysis.CooccurrenceWindow).WithMetrics(m)
	ruleRunner := rules.NewRunner(db.EntClient, auditLogger, m)
	suggestSvc := suggest.NewService(db.EntClient, auditLogger, m, cfg.Analysis.SuggestionApplyThreshold)
	pipe := pipeline.New(db.EntClient, extractor, resolver, builder, ruleRunner, suggestSvc, m, pools)
	detector := community.NewRunner(db.EntClient, m, auditLogger, community.Options{
		MaxLevels: cfg.Graph.MaxLevels,
		Budget:    cfg.Graph.DetectionBudget,
		MinSize:   cfg.Graph.MinCommunitySize,
	})

	// Background jobs.
	workers := river.NewWorkers()
	river.AddWorker(workers, jobs.NewCommunityDetectWorker(detector))
	river.AddWorker(workers, jobs.NewRetentionSweepWorker(db.EntClient, auditLogger))
	river.AddWorker(workers, jobs.NewObjectAnalyzeWorker(pipe))
	river.AddWorker(workers, jobs.NewEntityDedupWorker(db.EntClient, resolver))
	if err := db.InitRiverClient(workers, cfg.River); err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}
	// Pool saturation degrades to a durable job instead of inline work.
	pipe.SetDurableFallback(func(ctx context.Context, objectID string) error {
		_, err := db.RiverClient.Insert(ctx, jobs.ObjectAnalyzeArgs{ObjectID: objectID}, nil)
		return err
	})
	db.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(cfg.Graph.DetectionInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.CommunityDetectArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: false},
		),
	)
	db.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(cfg.Retention.SweepInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.RetentionSweepArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)
	db.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(cfg.Analysis.DedupInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.EntityDedupArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: false},
		),
	)

	// Seed rules are upserted on every boot so the shipped compliance
	// baseline is always present.
	if err := seedRules(ctx, cfg, db); err != nil {
		pools.Shutdown()
		db.Close()
		return nil, err
	}

	// Services and HTTP surface.
	domainSvc := service.NewDomainService(db.EntClient, auditLogger)
	objectSvc := service.NewObjectService(db.EntClient, auditLogger, pipe)
	searchSvc := service.NewSearchService(db.EntClient)
	graphSvc := service.NewGraphService(db.EntClient)
	complianceSvc := service.NewComplianceService(db.EntClient, objectSvc, suggestSvc)

	server := handlers.NewServer(db.Pool, domainSvc, objectSvc, searchSvc, graphSvc, complianceSvc, suggestSvc)

	return &Application{
		Config:   cfg,
		Router:   newRouter(server),
		DB:       db,
		Pools:    pools,
		Pipeline: pipe,
	}, nil
}

// seedRules loads the YAML baseline when the file exists. A missing
// file is tolerated (tests, minimal deployments); a broken file is not.
func seedRules(ctx context.Context, cfg *config.Config, db *infrastructure.DatabaseClients) error {
	path := cfg.Analysis.RulesPath
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Warn("rules file not found, skipping seed", zap.String("path", path))
		return nil
	}
	specs, err := rules.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load seed rules: %w", err)
	}
	if _, err := rules.Seed(ctx, db.EntClient, specs); err != nil {
		return fmt.Errorf("seed rules: %w", err)
	}
	return nil
}
