// Package pipeline runs the per-object analysis chain: entity
// extraction, resolution, relationship observation, rule evaluation and
// suggestion processing. Stages degrade independently; a failed stage
// is logged and skipped, it never fails object ingestion.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"iou-platform.io/iou/ent"
	"iou-platform.io/iou/internal/extract"
	"iou-platform.io/iou/internal/graph"
	"iou-platform.io/iou/internal/pkg/logger"
	"iou-platform.io/iou/internal/pkg/metrics"
	"iou-platform.io/iou/internal/pkg/worker"
	"iou-platform.io/iou/internal/resolve"
	"iou-platform.io/iou/internal/rules"
	"iou-platform.io/iou/internal/suggest"
)

// Pipeline wires the analysis stages together.
type Pipeline struct {
	client    *ent.Client
	extractor *extract.Extractor
	resolver  *resolve.Resolver
	builder   *graph.Builder
	rules     *rules.Runner
	suggest   *suggest.Service
	metrics   *metrics.Metrics
	pools     *worker.Pools

	// insertJob inserts a durable analysis job when the pools reject a
	// task. Set after the job queue client exists.
	insertJob func(ctx context.Context, objectID string) error
}

// New creates a Pipeline. metrics and pools may be nil; with nil pools
// Enqueue degrades to synchronous processing.
func New(client *ent.Client, extractor *extract.Extractor, resolver *resolve.Resolver, builder *graph.Builder, ruleRunner *rules.Runner, suggestSvc *suggest.Service, m *metrics.Metrics, pools *worker.Pools) *Pipeline {
	return &Pipeline{
		client:    client,
		extractor: extractor,
		resolver:  resolver,
		builder:   builder,
		rules:     ruleRunner,
		suggest:   suggestSvc,
		metrics:   m,
		pools:     pools,
	}
}

// Enqueue schedules analysis of one object on the ingest pool. The
// object row is already committed; analysis failures never surface to
// the caller.
func (p *Pipeline) Enqueue(objectID string) {
	p.submit("ingest", objectID)
}

// Process runs the full chain synchronously. Exposed for the seed
// command and tests.
func (p *Pipeline) Process(ctx context.Context, objectID string) error {
	return p.process(ctx, objectID)
}

// EnqueueReanalysis schedules a fresh analysis pass for an already
// ingested object on the analysis pool, keeping reanalysis bursts from
// starving first-time ingestion.
func (p *Pipeline) EnqueueReanalysis(objectID string) {
	p.submit("analysis", objectID)
}

// SetDurableFallback registers a durable job insert used when the
// pools reject a submission (saturation, shutdown). The analysis then
// survives a restart instead of running inline on the caller.
func (p *Pipeline) SetDurableFallback(insert func(ctx context.Context, objectID string) error) {
	p.insertJob = insert
}

// submit runs the chain on the named pool. Without pools it degrades to
// synchronous execution; a rejected submission falls back to a durable
// job when one is registered, and to inline execution otherwise.
func (p *Pipeline) submit(pool, objectID string) {
	if p.pools == nil {
		p.run(context.Background(), objectID)
		return
	}
	err := p.pools.SubmitDetached(pool, func(ctx context.Context) {
		p.run(ctx, objectID)
	})
	if err == nil {
		return
	}
	if p.insertJob != nil {
		jobErr := p.insertJob(context.Background(), objectID)
		if jobErr == nil {
			logger.Info("pool rejected task, queued durable analysis job",
				zap.String("pool", pool),
				zap.String("object_id", objectID),
			)
			return
		}
		logger.Warn("durable fallback insert failed",
			zap.String("object_id", objectID),
			zap.Error(jobErr),
		)
	}
	logger.Warn("pool submission failed, running inline",
		zap.String("pool", pool),
		zap.String("object_id", objectID),
		zap.Error(err),
	)
	p.run(context.Background(), objectID)
}

func (p *Pipeline) run(ctx context.Context, objectID string) {
	if err := p.process(ctx, objectID); err != nil {
		logger.Error("object analysis failed",
			zap.String("object_id", objectID),
			zap.Error(err),
		)
	}
}

func (p *Pipeline) process(ctx context.Context, objectID string) error {
	obj, err := p.client.InformationObject.Get(ctx, objectID)
	if err != nil {
		return fmt.Errorf("load object: %w", err)
	}
	domain, err := p.client.InformationDomain.Get(ctx, obj.DomainID)
	if err != nil {
		return fmt.Errorf("load domain: %w", err)
	}
	domainType := string(domain.DomainType)

	mentions, candidates := p.extractAndResolve(ctx, obj)

	if len(mentions) > 0 {
		started := time.Now()
		if err := p.builder.Observe(ctx, obj.DomainID, obj.ID, mentions); err != nil {
			logger.Warn("relationship observation failed",
				zap.String("object_id", obj.ID),
				zap.Error(err),
			)
		}
		p.metrics.ObservePipelineStage("relate", time.Since(started))
	}

	started := time.Now()
	outcome, err := p.rules.Run(ctx, obj, domainType)
	p.metrics.ObservePipelineStage("rules", time.Since(started))
	if err != nil {
		// Rule infrastructure failure; individual rule faults are already
		// absorbed inside the runner.
		logger.Warn("rule evaluation failed",
			zap.String("object_id", obj.ID),
			zap.Error(err),
		)
	}

	started = time.Now()
	drafts := append(p.entityDrafts(candidates), ruleDrafts(outcome.Suggestions)...)
	if len(drafts) > 0 {
		// Reload: rule field writes may have refreshed the row.
		fresh, err := p.client.InformationObject.Get(ctx, obj.ID)
		if err != nil {
			return fmt.Errorf("reload object: %w", err)
		}
		applied, queued, err := p.suggest.Process(ctx, fresh, drafts)
		if err != nil {
			logger.Warn("suggestion processing failed",
				zap.String("object_id", obj.ID),
				zap.Error(err),
			)
		} else if applied+queued > 0 {
			logger.Debug("suggestions processed",
				zap.String("object_id", obj.ID),
				zap.Int("applied", applied),
				zap.Int("queued", queued),
			)
		}
	}
	p.metrics.ObservePipelineStage("suggest", time.Since(started))
	p.metrics.IncrementObjectAnalyzed()
	return nil
}

// extractAndResolve runs the extraction and resolution stages, turning
// text candidates into graph mentions. Either stage failing yields an
// empty mention set; downstream stages still run.
func (p *Pipeline) extractAndResolve(ctx context.Context, obj *ent.InformationObject) ([]graph.Mention, []extract.Candidate) {
	started := time.Now()
	candidates := p.extractor.Extract(obj.ContentText, obj.MimeType)
	p.metrics.ObservePipelineStage("extract", time.Since(started))
	if len(candidates) == 0 {
		return nil, nil
	}
	perType := map[string]int{}
	for _, c := range candidates {
		perType[c.Type]++
	}
	for typ, n := range perType {
		p.metrics.AddEntitiesExtracted(typ, n)
	}

	started = time.Now()
	mentions := make([]graph.Mention, 0, len(candidates))
	for _, cand := range candidates {
		res, err := p.resolver.Resolve(ctx, cand, obj.DomainID)
		if err != nil {
			logger.Warn("entity resolution failed",
				zap.String("object_id", obj.ID),
				zap.String("surface", cand.Surface),
				zap.Error(err),
			)
			continue
		}
		p.metrics.IncrementEntityResolved(res.Created)
		mentions = append(mentions, graph.Mention{
			EntityID:           res.EntityID,
			EntityType:         cand.Type,
			Start:              cand.Start,
			End:                cand.End,
			Confidence:         cand.Confidence,
			ProvenanceDomainID: res.SourceDomainID,
		})
	}
	p.metrics.ObservePipelineStage("resolve", time.Since(started))
	return mentions, candidates
}

// entityDrafts proposes policy-theme tags from extracted entities.
// These carry the extractor confidence and the ner source, so the trust
// loop can learn per theme.
func (p *Pipeline) entityDrafts(candidates []extract.Candidate) []suggest.Draft {
	seen := map[string]bool{}
	var drafts []suggest.Draft
	for _, c := range candidates {
		if c.Type != extract.TypePolicy || seen[c.Surface] {
			continue
		}
		seen[c.Surface] = true
		drafts = append(drafts, suggest.Draft{
			Field:      "tags",
			Value:      c.Surface,
			Confidence: c.Confidence,
			Source:     "ner",
			Pattern:    "policy_theme:" + c.Surface,
			Reasoning:  fmt.Sprintf("beleidsthema %q aangetroffen in de inhoud", c.Surface),
		})
	}
	return drafts
}

func ruleDrafts(in []rules.SuggestionDraft) []suggest.Draft {
	out := make([]suggest.Draft, 0, len(in))
	for _, d := range in {
		out = append(out, suggest.Draft{
			Field:      d.Field,
			Value:      d.Value,
			Confidence: d.Confidence,
			Source:     "rule_based",
			Pattern:    "rule:" + d.RuleName,
			Reasoning:  fmt.Sprintf("voorgesteld door regel %s", d.RuleName),
		})
	}
	return out
}
