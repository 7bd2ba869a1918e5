package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"iou-platform.io/iou/ent"
	"iou-platform.io/iou/ent/informationobject"
	apperrors "iou-platform.io/iou/internal/pkg/errors"
	"iou-platform.io/iou/internal/pkg/normalize"
)

// Field weights for search ranking. Title matches count heaviest,
// content matches lightest.
const (
	weightTitle       = 3
	weightTags        = 2
	weightDescription = 2
	weightContent     = 1

	minQueryLength = 2
	maxSearchHits  = 50
)

// SearchService ranks objects by field-weighted term matches.
type SearchService struct {
	client *ent.Client
}

// NewSearchService creates a SearchService.
func NewSearchService(client *ent.Client) *SearchService {
	return &SearchService{client: client}
}

// SearchHit is one ranked result.
type SearchHit struct {
	Object *ent.InformationObject `json:"object"`
	Score  int                    `json:"score"`
}

// Search returns ranked hits for a free-text query, optionally scoped
// to one domain. Queries below two characters are rejected.
func (s *SearchService) Search(ctx context.Context, query, domainID string) ([]SearchHit, error) {
	terms := queryTerms(query)
	if len(terms) == 0 {
		return nil, apperrors.BadRequest(apperrors.CodeQueryTooShort,
			fmt.Sprintf("search query needs at least %d characters", minQueryLength))
	}

	// Broad candidate fetch; exact ranking happens in memory where the
	// tag list is available.
	q := s.client.InformationObject.Query()
	if domainID != "" {
		q = q.Where(informationobject.DomainID(domainID))
	}
	candidates, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search objects: %w", err)
	}

	hits := make([]SearchHit, 0)
	for _, obj := range candidates {
		score := scoreObject(obj, terms)
		if score > 0 {
			hits = append(hits, SearchHit{Object: obj, Score: score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].Object.CreatedAt.After(hits[j].Object.CreatedAt)
	})
	if len(hits) > maxSearchHits {
		hits = hits[:maxSearchHits]
	}
	return hits, nil
}

// queryTerms folds and splits the query; terms shorter than the minimum
// are dropped, and an empty result means the query was too short.
func queryTerms(query string) []string {
	folded := normalize.Fold(query)
	var terms []string
	for _, t := range strings.Fields(folded) {
		if len([]rune(t)) >= minQueryLength {
			terms = append(terms, t)
		}
	}
	return terms
}

// scoreObject sums the field weights of every term that matches. Every
// term must hit at least one field for the object to score at all.
func scoreObject(obj *ent.InformationObject, terms []string) int {
	title := normalize.Fold(obj.Title)
	description := normalize.Fold(obj.Description)
	content := normalize.Fold(obj.ContentText)
	tags := make([]string, len(obj.Tags))
	for i, t := range obj.Tags {
		tags[i] = normalize.Fold(t)
	}

	total := 0
	for _, term := range terms {
		score := 0
		if strings.Contains(title, term) {
			score += weightTitle
		}
		for _, tag := range tags {
			if strings.Contains(tag, term) {
				score += weightTags
				break
			}
		}
		if strings.Contains(description, term) {
			score += weightDescription
		}
		if strings.Contains(content, term) {
			score += weightContent
		}
		if score == 0 {
			return 0
		}
		total += score
	}
	return total
}
