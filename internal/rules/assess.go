package rules

import (
	"time"
)

// Compliance area statuses.
const (
	StatusCompliant      = "compliant"
	StatusPendingReview  = "pending_review"
	StatusActionRequired = "action_required"
	StatusNotApplicable  = "not_applicable"
)

// severityWeights drive the overall score: each open issue subtracts
// its severity weight from a perfect 1.0.
var severityWeights = map[string]float64{
	SeverityCritical: 0.40,
	SeverityHigh:     0.25,
	SeverityMedium:   0.15,
	SeverityLow:      0.05,
}

// Issue is one open compliance problem on an object.
type Issue struct {
	Severity string `json:"severity"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Assessment is the compliance view of one object: per-area status,
// open issues, and an overall score in [0,1].
type Assessment struct {
	ObjectID       string    `json:"object_id"`
	WooStatus      string    `json:"woo_status"`
	PrivacyStatus  string    `json:"privacy_status"`
	ArchivalStatus string    `json:"archival_status"`
	Issues         []Issue   `json:"issues"`
	OverallScore   float64   `json:"overall_score"`
	AssessedAt     time.Time `json:"assessed_at"`
}

// ObjectState is the object snapshot an assessment is computed from.
type ObjectState struct {
	ID                 string
	IsWooRelevant      bool
	WooPublicationDate *time.Time
	PrivacyLevel       string
	RetentionPeriod    int
	RetentionTrigger   string
	DestructionDate    *time.Time
	PendingSuggestions int
}

// Assess derives the compliance view from the object state plus any
// flags raised by the latest rule evaluation. Deterministic for a given
// state and instant.
func Assess(state ObjectState, flags []Flag, now time.Time) Assessment {
	a := Assessment{ObjectID: state.ID, AssessedAt: now}

	// Openness: a Woo-relevant object must have a publication date.
	switch {
	case state.IsWooRelevant && state.WooPublicationDate == nil:
		a.WooStatus = StatusActionRequired
		a.Issues = append(a.Issues, Issue{
			Severity: SeverityHigh,
			Category: "openness",
			Message:  "Woo-relevant object zonder publicatiedatum",
		})
	case state.IsWooRelevant:
		a.WooStatus = StatusCompliant
	case state.PendingSuggestions > 0:
		a.WooStatus = StatusPendingReview
	default:
		a.WooStatus = StatusNotApplicable
	}

	// Privacy: special categories require an explicit processing basis.
	switch state.PrivacyLevel {
	case "special", "criminal":
		a.PrivacyStatus = StatusActionRequired
		a.Issues = append(a.Issues, Issue{
			Severity: SeverityHigh,
			Category: "privacy",
			Message:  "Bijzondere persoonsgegevens aanwezig, AVG-grondslag vereist",
		})
	case "personal":
		a.PrivacyStatus = StatusCompliant
		a.Issues = append(a.Issues, Issue{
			Severity: SeverityLow,
			Category: "privacy",
			Message:  "Persoonsgegevens aanwezig",
		})
	default:
		a.PrivacyStatus = StatusNotApplicable
	}

	// Archival: a retention period must be set and honored.
	switch {
	case state.RetentionPeriod == 0 && state.RetentionTrigger != "permanent":
		a.ArchivalStatus = StatusActionRequired
		a.Issues = append(a.Issues, Issue{
			Severity: SeverityMedium,
			Category: "archival",
			Message:  "Geen bewaartermijn vastgesteld",
		})
	case state.DestructionDate != nil && state.DestructionDate.Before(now):
		a.ArchivalStatus = StatusActionRequired
		a.Issues = append(a.Issues, Issue{
			Severity: SeverityHigh,
			Category: "archival",
			Message:  "Vernietigingsdatum verstreken",
		})
	default:
		a.ArchivalStatus = StatusCompliant
	}

	for _, f := range flags {
		a.Issues = append(a.Issues, Issue{Severity: f.Severity, Category: f.Category, Message: f.Message})
	}

	penalty := 0.0
	for _, issue := range a.Issues {
		penalty += severityWeights[issue.Severity]
	}
	a.OverallScore = clamp01(1 - penalty)
	return a
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
