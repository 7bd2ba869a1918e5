package extract

// Entity type labels. Values match the persisted entity_type enum.
const (
	TypePerson       = "person"
	TypeOrganization = "organization"
	TypeLocation     = "location"
	TypeLaw          = "law"
	TypeDate         = "date"
	TypeMoney        = "money"
	TypePolicy       = "policy"
)

// Candidate is one entity mention found in object text.
// Spans are byte offsets into the folded text, so distances between
// candidates from the same extraction run are comparable.
type Candidate struct {
	// Surface is the canonical display form for gazetteer hits, or the
	// matched text for pattern hits.
	Surface    string
	Type       string
	Start, End int
	Confidence float64
}

// typePriority orders candidate types for overlap resolution.
// Lower wins. Law outranks everything else.
func typePriority(t string) int {
	switch t {
	case TypeLaw:
		return 0
	case TypeOrganization:
		return 1
	case TypeLocation:
		return 2
	case TypePerson:
		return 3
	case TypeDate:
		return 4
	case TypeMoney:
		return 5
	default: // policy and anything future
		return 6
	}
}
