package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findByType(cands []Candidate, entityType string) []Candidate {
	var out []Candidate
	for _, c := range cands {
		if c.Type == entityType {
			out = append(out, c)
		}
	}
	return out
}

func TestExtract_UnsupportedContent(t *testing.T) {
	e := New()

	tests := []struct {
		name string
		mime string
	}{
		{"pdf", "application/pdf"},
		{"image", "image/png"},
		{"zip", "application/zip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract("Gemeente Amsterdam besluit over de Woo", tt.mime)
			assert.Empty(t, got, "binary content must yield an empty sequence, not an error")
		})
	}
}

func TestExtract_EmptyContent(t *testing.T) {
	e := New()
	assert.Empty(t, e.Extract("", "text/plain"))
}

func TestExtract_Organizations(t *testing.T) {
	e := New()

	got := e.Extract("De Gemeente Amsterdam overlegt met het Ministerie van Financiën.", "text/plain")

	orgs := findByType(got, TypeOrganization)
	require.Len(t, orgs, 2)
	assert.Equal(t, "Gemeente Amsterdam", orgs[0].Surface)
	assert.Equal(t, 0.93, orgs[0].Confidence)
	assert.Equal(t, "Ministerie van Financiën", orgs[1].Surface)
	assert.Equal(t, 0.97, orgs[1].Confidence)
}

func TestExtract_ProvinceIsLocation(t *testing.T) {
	e := New()

	tests := []struct {
		name string
		text string
	}{
		{"english form", "A letter from the Province of Utrecht arrived."},
		{"dutch form", "Een brief van de Provincie Utrecht."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.text, "text/plain")
			locs := findByType(got, TypeLocation)
			require.Len(t, locs, 1)
			assert.Equal(t, "Province of Utrecht", locs[0].Surface)
			assert.Equal(t, 0.95, locs[0].Confidence)
		})
	}
}

func TestExtract_Laws(t *testing.T) {
	e := New()

	got := e.Extract("Op grond van de Wet open overheid en artikel 5 lid 2 van de AVG.", "text/plain")

	laws := findByType(got, TypeLaw)
	require.Len(t, laws, 3)
	assert.Equal(t, "Wet open overheid", laws[0].Surface)
	assert.Equal(t, "artikel 5 lid 2", laws[1].Surface)
	assert.Equal(t, "Algemene verordening gegevensbescherming", laws[2].Surface)
	for _, l := range laws {
		assert.Equal(t, 0.98, l.Confidence)
	}
}

func TestExtract_Dates(t *testing.T) {
	e := New()

	got := e.Extract("Besluit genomen op 12 maart 2024, gepubliceerd op 01-04-2024.", "text/plain")

	dates := findByType(got, TypeDate)
	require.Len(t, dates, 2)
	assert.Equal(t, "12 maart 2024", dates[0].Surface)
	assert.Equal(t, "01-04-2024", dates[1].Surface)
	assert.Equal(t, 0.90, dates[0].Confidence)
}

func TestExtract_Money(t *testing.T) {
	e := New()

	tests := []struct {
		name string
		text string
		want int // expected money candidates
	}{
		{"above threshold", "Een subsidie van € 1.250,50 is toegekend.", 1},
		{"below threshold skipped", "Zie € 42 voor details.", 0},
		{"exactly threshold skipped", "Kosten: € 100.", 0},
		{"eur prefix", "Totaal EUR 25.000 beschikbaar.", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.text, "text/plain")
			assert.Len(t, findByType(got, TypeMoney), tt.want)
		})
	}
}

func TestExtract_PolicyTerms(t *testing.T) {
	e := New()

	got := e.Extract("Het programma richt zich op duurzaamheid en energietransitie.", "text/plain")

	policies := findByType(got, TypePolicy)
	require.Len(t, policies, 2)
	assert.Equal(t, 0.80, policies[0].Confidence)
}

func TestExtract_LongestMatchWins(t *testing.T) {
	e := New()

	// "Gemeente Utrecht" must win over the bare location "Utrecht".
	got := e.Extract("De Gemeente Utrecht heeft besloten.", "text/plain")

	require.Len(t, got, 1)
	assert.Equal(t, "Gemeente Utrecht", got[0].Surface)
	assert.Equal(t, TypeOrganization, got[0].Type)
}

func TestExtract_WordBoundaries(t *testing.T) {
	e := New()

	// "woo" inside a longer word must not match the law alias.
	got := e.Extract("De wooncorporatie bouwt nieuwe woningen.", "text/plain")
	assert.Empty(t, findByType(got, TypeLaw))
}

func TestExtract_Deterministic(t *testing.T) {
	e := New()
	text := "De Provincie Utrecht en de Gemeente Amsterdam bespreken de Woo op 12 maart 2024 met een budget van € 50.000."

	first := e.Extract(text, "text/plain")
	second := e.Extract(text, "text/plain")

	assert.Equal(t, first, second, "repeated extraction over unchanged text must be identical")
}

func TestExtract_OrderedByPosition(t *testing.T) {
	e := New()
	got := e.Extract("Woo geldt voor de Gemeente Amsterdam en de Provincie Utrecht.", "text/plain")

	require.True(t, len(got) >= 3)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i].Start, got[i-1].End, "candidates must be non-overlapping and ordered")
	}
}
