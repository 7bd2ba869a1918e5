// Package metrics provides Prometheus instrumentation for the analysis
// pipeline and the two engines.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for ingest, rule evaluation and graph
// maintenance.
type Metrics struct {
	// Per-object pipeline latency by stage
	PipelineLatency *prometheus.HistogramVec

	// Rule executions by rule name and outcome
	RuleExecutions *prometheus.CounterVec

	// Entities extracted by entity type
	EntitiesExtracted *prometheus.CounterVec

	// Objects that went through the analysis pipeline
	ObjectsAnalyzed prometheus.Counter

	// Entity resolutions split by outcome (created vs matched)
	EntitiesResolved *prometheus.CounterVec

	// Relationship edge upserts split by operation
	RelationshipsObserved *prometheus.CounterVec

	// Suggestions by field and review action
	SuggestionReviews *prometheus.CounterVec

	// Community detection run latency
	DetectionLatency prometheus.Histogram

	// Modularity of the latest published generation
	GraphModularity prometheus.Gauge

	// Current graph size
	GraphEntities prometheus.Gauge
}

// New creates a Metrics instance with all collectors registered on the
// default registry.
func New() *Metrics {
	return &Metrics{
		PipelineLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "iou_pipeline_stage_duration_seconds",
			Help:    "Duration of per-object pipeline stages",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"stage"}), // stage: "extract", "resolve", "relate", "rules", "suggest"

		RuleExecutions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "iou_rule_executions_total",
			Help: "Total rule executions by rule and outcome",
		}, []string{"rule", "outcome"}), // outcome: "matched", "skipped", "error"

		EntitiesExtracted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "iou_entities_extracted_total",
			Help: "Total entities extracted by entity type",
		}, []string{"entity_type"}),

		ObjectsAnalyzed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "iou_objects_analyzed_total",
			Help: "Total objects processed by the analysis pipeline",
		}),

		EntitiesResolved: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "iou_entities_resolved_total",
			Help: "Total entity resolutions by outcome",
		}, []string{"outcome"}), // outcome: "created", "matched"

		RelationshipsObserved: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "iou_relationships_observed_total",
			Help: "Total relationship edge upserts by operation",
		}, []string{"op"}), // op: "created", "strengthened"

		SuggestionReviews: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "iou_suggestion_reviews_total",
			Help: "Total suggestion reviews by field and action",
		}, []string{"field", "action"}),

		DetectionLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "iou_community_detection_duration_seconds",
			Help:    "Duration of a full community detection run",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),

		GraphModularity: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "iou_graph_modularity",
			Help: "Modularity of the latest published graph generation",
		}),

		GraphEntities: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "iou_graph_entities",
			Help: "Entity count of the latest published graph generation",
		}),
	}
}

// ObservePipelineStage records the duration of one pipeline stage.
func (m *Metrics) ObservePipelineStage(stage string, d time.Duration) {
	if m != nil {
		m.PipelineLatency.WithLabelValues(stage).Observe(d.Seconds())
	}
}

// IncrementRuleExecution records a rule execution outcome.
func (m *Metrics) IncrementRuleExecution(rule, outcome string) {
	if m != nil {
		m.RuleExecutions.WithLabelValues(rule, outcome).Inc()
	}
}

// AddEntitiesExtracted records extracted entity counts per type.
func (m *Metrics) AddEntitiesExtracted(entityType string, n int) {
	if m != nil && n > 0 {
		m.EntitiesExtracted.WithLabelValues(entityType).Add(float64(n))
	}
}

// IncrementObjectAnalyzed records one completed pipeline run.
func (m *Metrics) IncrementObjectAnalyzed() {
	if m != nil {
		m.ObjectsAnalyzed.Inc()
	}
}

// IncrementEntityResolved records one resolution outcome.
func (m *Metrics) IncrementEntityResolved(created bool) {
	if m != nil {
		outcome := "matched"
		if created {
			outcome = "created"
		}
		m.EntitiesResolved.WithLabelValues(outcome).Inc()
	}
}

// IncrementRelationshipObserved records one edge upsert.
func (m *Metrics) IncrementRelationshipObserved(created bool) {
	if m != nil {
		op := "strengthened"
		if created {
			op = "created"
		}
		m.RelationshipsObserved.WithLabelValues(op).Inc()
	}
}

// IncrementSuggestionReview records a reviewer action on a suggestion.
func (m *Metrics) IncrementSuggestionReview(field, action string) {
	if m != nil {
		m.SuggestionReviews.WithLabelValues(field, action).Inc()
	}
}

// ObserveDetection records a detection run and the published graph shape.
func (m *Metrics) ObserveDetection(d time.Duration, modularity float64, entities int) {
	if m != nil {
		m.DetectionLatency.Observe(d.Seconds())
		m.GraphModularity.Set(modularity)
		m.GraphEntities.Set(float64(entities))
	}
}
