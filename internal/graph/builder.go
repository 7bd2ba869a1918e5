package graph

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"iou-platform.io/iou/internal/extract"
	"iou-platform.io/iou/internal/pkg/metrics"
)

// Mention is one resolved entity occurrence inside an object's text.
// ProvenanceDomainID is the domain the canonical entity was first seen
// in, which may differ from the observing object's domain.
type Mention struct {
	EntityID           string
	EntityType         string
	Start, End         int
	Confidence         float64
	ProvenanceDomainID string
}

// Builder turns co-resolved mentions into graph edges and domain
// relations.
type Builder struct {
	store   Store
	window  int
	metrics *metrics.Metrics
}

// NewBuilder creates a Builder. window is the maximum character
// distance between two mentions for them to count as co-occurring.
func NewBuilder(store Store, window int) *Builder {
	return &Builder{store: store, window: window}
}

// WithMetrics attaches edge upsert instrumentation.
func (b *Builder) WithMetrics(m *metrics.Metrics) *Builder {
	b.metrics = m
	return b
}

// Observe processes the mentions of one object: every in-window pair
// strengthens or creates an edge, and shared cross-domain entities are
// aggregated into automatic DomainRelation rows. Re-observing the same
// object against unchanged state is a no-op on weights.
func (b *Builder) Observe(ctx context.Context, domainID, objectID string, mentions []Mention) error {
	ordered := make([]Mention, len(mentions))
	copy(ordered, mentions)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Start < ordered[j].Start })

	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			if ordered[j].Start-ordered[i].End > b.window {
				break
			}
			if ordered[i].EntityID == ordered[j].EntityID {
				continue
			}
			if err := b.upsertEdge(ctx, domainID, objectID, ordered[i], ordered[j]); err != nil {
				return err
			}
		}
	}

	return b.deriveDomainLinks(ctx, domainID, ordered)
}

func (b *Builder) upsertEdge(ctx context.Context, domainID, objectID string, a, m Mention) error {
	relType, swapped := inferRelationship(a.EntityType, m.EntityType)
	src, tgt := a, m
	if swapped {
		src, tgt = m, a
	}

	obsConf := (a.Confidence + m.Confidence) / 2

	existing, err := b.store.FindEdge(ctx, src.EntityID, tgt.EntityID, relType)
	if err != nil {
		return fmt.Errorf("find edge: %w", err)
	}
	if existing == nil {
		b.metrics.IncrementRelationshipObserved(true)
		return b.store.CreateEdge(ctx, &Edge{
			ID:             newEdgeID(),
			SourceID:       src.EntityID,
			TargetID:       tgt.EntityID,
			Type:           relType,
			Weight:         1,
			Confidence:     obsConf,
			Observations:   1,
			SourceDomainID: domainID,
			LastObjectID:   objectID,
		})
	}
	if existing.LastObjectID == objectID {
		// Same object re-processed with unchanged state: no new signal.
		return nil
	}

	// Weight accumulates and never decreases; confidence is the running
	// average over all contributing observations.
	weight := existing.Weight + 1
	obs := existing.Observations + 1
	conf := (existing.Confidence*float64(existing.Observations) + obsConf) / float64(obs)
	b.metrics.IncrementRelationshipObserved(false)
	return b.store.UpdateEdge(ctx, existing.ID, weight, conf, obs, objectID)
}

// deriveDomainLinks aggregates entities whose provenance domain differs
// from the observing domain into one automatic relation per domain pair.
// Strength is the proportion of the object's distinct entities shared
// with the other domain, so it is recomputed (not decayed) each pass.
func (b *Builder) deriveDomainLinks(ctx context.Context, domainID string, mentions []Mention) error {
	distinct := map[string]string{} // entity id -> provenance domain
	for _, m := range mentions {
		distinct[m.EntityID] = m.ProvenanceDomainID
	}
	if len(distinct) == 0 {
		return nil
	}

	sharedByDomain := map[string]int{}
	for _, prov := range distinct {
		if prov != "" && prov != domainID {
			sharedByDomain[prov]++
		}
	}

	// Deterministic order for stable writes.
	others := make([]string, 0, len(sharedByDomain))
	for d := range sharedByDomain {
		others = append(others, d)
	}
	sort.Strings(others)

	for _, other := range others {
		shared := sharedByDomain[other]
		strength := float64(shared) / float64(len(distinct))
		if strength > 1 {
			strength = 1
		}
		link := &DomainLink{
			ID:                newDomainLinkID(),
			FromDomainID:      domainID,
			ToDomainID:        other,
			Strength:          strength,
			SharedEntityCount: shared,
			Explanation:       fmt.Sprintf("%d shared entities", shared),
		}
		if err := b.store.UpsertDomainLink(ctx, link); err != nil {
			return fmt.Errorf("upsert domain link %s -> %s: %w", domainID, other, err)
		}
	}
	return nil
}

// inferRelationship maps a pair of entity types to an edge type. The
// returned swapped flag means the second mention is the edge source.
func inferRelationship(aType, bType string) (relType string, swapped bool) {
	switch {
	case aType == extract.TypePerson && bType == extract.TypeOrganization:
		return RelWorksFor, false
	case aType == extract.TypeOrganization && bType == extract.TypePerson:
		return RelWorksFor, true
	case aType != extract.TypeLaw && bType == extract.TypeLaw:
		return RelSubjectTo, false
	case aType == extract.TypeLaw && bType != extract.TypeLaw:
		return RelSubjectTo, true
	case aType == extract.TypeOrganization && bType == extract.TypeLocation:
		return RelLocatedIn, false
	case aType == extract.TypeLocation && bType == extract.TypeOrganization:
		return RelLocatedIn, true
	case aType == extract.TypeOrganization && bType == extract.TypeOrganization:
		return RelCollaboratesWith, false
	case bType == extract.TypePolicy:
		return RelRelatesTo, false
	case aType == extract.TypePolicy:
		return RelRelatesTo, true
	case bType == extract.TypeMoney:
		return RelRefersTo, false
	case aType == extract.TypeMoney:
		return RelRefersTo, true
	default:
		return RelRelatesTo, false
	}
}

func newEdgeID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "rel-" + uuid.New().String()
	}
	return "rel-" + id.String()
}

func newDomainLinkID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "dr-" + uuid.New().String()
	}
	return "dr-" + id.String()
}
