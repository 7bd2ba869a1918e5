package community

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"iou-platform.io/iou/ent"
	entcommunity "iou-platform.io/iou/ent/community"
	"iou-platform.io/iou/ent/entitycommunitymembership"
	"iou-platform.io/iou/ent/graphgeneration"
	"iou-platform.io/iou/internal/audit"
	"iou-platform.io/iou/internal/pkg/logger"
	"iou-platform.io/iou/internal/pkg/metrics"
)

// Runner executes a full detection pass: snapshot load, clustering, and
// atomic generation swap.
type Runner struct {
	client  *ent.Client
	metrics *metrics.Metrics
	audit   *audit.Logger
	opts    Options
}

// NewRunner creates a Runner. metrics and audit may be nil.
func NewRunner(client *ent.Client, m *metrics.Metrics, auditLogger *audit.Logger, opts Options) *Runner {
	return &Runner{client: client, metrics: m, audit: auditLogger, opts: opts}
}

// Run performs one detection pass. Failure or cancellation at any point
// before the final commit leaves the previous generation untouched.
func (r *Runner) Run(ctx context.Context) error {
	started := time.Now()

	g, err := r.loadSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("load graph snapshot: %w", err)
	}
	if len(g.Nodes) == 0 {
		logger.Info("community detection skipped: empty graph")
		return nil
	}

	res := Detect(ctx, g, r.opts)
	if res.BudgetExceeded {
		// A coarser partition is still a valid result.
		logger.Warn("community detection budget exceeded, publishing current partition",
			zap.Duration("budget", r.opts.Budget),
		)
	}
	if len(res.Levels) == 0 {
		logger.Info("community detection produced no merges, keeping previous generation")
		return nil
	}

	gen, count, err := r.writeGeneration(ctx, g, res)
	if err != nil {
		return fmt.Errorf("write generation: %w", err)
	}

	r.metrics.ObserveDetection(time.Since(started), res.Modularity, len(g.Nodes))
	if r.audit != nil {
		_ = r.audit.LogAction(ctx, "detection.swap", "graph_generation",
			fmt.Sprintf("%d", gen), "system", map[string]interface{}{
				"communities": count,
				"entities":    len(g.Nodes),
				"modularity":  res.Modularity,
			})
	}
	logger.Info("community detection completed",
		zap.Int64("generation", gen),
		zap.Int("levels", len(res.Levels)),
		zap.Int("communities", count),
		zap.Int("entities", len(g.Nodes)),
		zap.Float64("modularity", res.Modularity),
		zap.Bool("budget_exceeded", res.BudgetExceeded),
	)
	return nil
}

// loadSnapshot reads a consistent view of entities and relationships.
// The two reads run in parallel; nodes are ordered by entity id so the
// arena layout is deterministic.
func (r *Runner) loadSnapshot(ctx context.Context) (Graph, error) {
	var (
		entities []*ent.Entity
		rels     []*ent.EntityRelationship
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		entities, err = r.client.Entity.Query().All(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		rels, err = r.client.EntityRelationship.Query().All(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return Graph{}, err
	}

	sort.Slice(entities, func(i, j int) bool { return entities[i].ID < entities[j].ID })
	index := make(map[string]int, len(entities))
	g := Graph{Nodes: make([]Node, len(entities))}
	for i, e := range entities {
		g.Nodes[i] = Node{ID: e.ID, Type: string(e.EntityType), Name: e.CanonicalName}
		index[e.ID] = i
	}

	// Sum weights across types and directions into undirected edges.
	agg := map[[2]int]float64{}
	for _, rel := range rels {
		a, okA := index[rel.SourceEntityID]
		b, okB := index[rel.TargetEntityID]
		if !okA || !okB || a == b {
			continue
		}
		agg[pairKey(a, b)] += rel.Weight
	}
	keys := make([][2]int, 0, len(agg))
	for k := range agg {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})
	for _, k := range keys {
		g.Edges = append(g.Edges, WeightedEdge{A: k[0], B: k[1], Weight: agg[k]})
	}
	return g, nil
}

// writeGeneration commits the new generation in one transaction:
// community rows, membership rows, old-generation cleanup, and the
// GraphGeneration marker last. Readers join on the latest marker, so a
// partially written generation is never observable.
func (r *Runner) writeGeneration(ctx context.Context, g Graph, res Result) (int64, int, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("begin tx: %w", err)
	}
	rollback := func(err error) (int64, int, error) {
		_ = tx.Rollback()
		return 0, 0, err
	}

	latest, err := tx.GraphGeneration.Query().
		Order(ent.Desc(graphgeneration.FieldNumber)).
		First(ctx)
	var gen int64 = 1
	if err == nil {
		gen = latest.Number + 1
	} else if !ent.IsNotFound(err) {
		return rollback(fmt.Errorf("query latest generation: %w", err))
	}

	// Assign ids level by level; parents are written with their level so
	// children can reference them.
	ids := make([][]string, len(res.Levels))
	for l := range res.Levels {
		ids[l] = make([]string, len(res.Levels[l].Clusters))
		for c := range res.Levels[l].Clusters {
			ids[l][c] = newCommunityID()
		}
	}

	count := 0
	for l := len(res.Levels) - 1; l >= 0; l-- {
		for c, cluster := range res.Levels[l].Clusters {
			// Leaf communities below the size floor are noise; their
			// members stay visible through the coarser levels.
			if l == 0 && len(cluster.Members) < r.opts.MinSize {
				continue
			}
			name, keywords, summary := Describe(g, cluster.Members)
			create := tx.Community.Create().
				SetID(ids[l][c]).
				SetName(name).
				SetLevel(l).
				SetGeneration(gen).
				SetKeywords(keywords).
				SetSummary(summary)
			if cluster.Parent >= 0 && l+1 < len(res.Levels) {
				create.SetParentCommunityID(ids[l+1][cluster.Parent])
			}
			if _, err := create.Save(ctx); err != nil {
				return rollback(fmt.Errorf("create community: %w", err))
			}
			count++

			for _, member := range cluster.Members {
				score := MembershipScore(g, cluster.Members, member)
				_, err := tx.EntityCommunityMembership.Create().
					SetID(newMembershipID()).
					SetEntityID(g.Nodes[member].ID).
					SetCommunityID(ids[l][c]).
					SetMembershipScore(score).
					SetGeneration(gen).
					Save(ctx)
				if err != nil {
					return rollback(fmt.Errorf("create membership: %w", err))
				}
			}
		}
	}

	// Drop the superseded generations inside the same transaction.
	if _, err := tx.EntityCommunityMembership.Delete().
		Where(entitycommunitymembership.GenerationLT(gen)).
		Exec(ctx); err != nil {
		return rollback(fmt.Errorf("delete old memberships: %w", err))
	}
	if _, err := tx.Community.Delete().
		Where(entcommunity.GenerationLT(gen)).
		Exec(ctx); err != nil {
		return rollback(fmt.Errorf("delete old communities: %w", err))
	}

	// Marker row last.
	if _, err := tx.GraphGeneration.Create().
		SetID(newGenerationID()).
		SetNumber(gen).
		SetModularity(res.Modularity).
		SetLevels(len(res.Levels)).
		SetCommunityCount(count).
		SetEntityCount(len(g.Nodes)).
		SetBudgetExceeded(res.BudgetExceeded).
		Save(ctx); err != nil {
		return rollback(fmt.Errorf("create generation marker: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("commit generation: %w", err)
	}
	return gen, count, nil
}

func newCommunityID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "comm-" + uuid.New().String()
	}
	return "comm-" + id.String()
}

func newMembershipID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "ecm-" + uuid.New().String()
	}
	return "ecm-" + id.String()
}

func newGenerationID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "gen-" + uuid.New().String()
	}
	return "gen-" + id.String()
}
