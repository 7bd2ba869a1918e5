package extract

import "iou-platform.io/iou/internal/pkg/normalize"

// gazEntry is one gazetteer concept: a canonical display name, its
// entity type and confidence, and the folded surface forms that map to
// it. Dutch and English forms share an entry so both resolve to the
// same canonical entity.
type gazEntry struct {
	canonical  string
	entityType string
	confidence float64
	forms      []string
}

// Extraction confidences per source category.
const (
	confProvince     = 0.95
	confMunicipality = 0.93
	confMinistry     = 0.97
	confLaw          = 0.98
	confDate         = 0.90
	confMoney        = 0.85
	confPolicy       = 0.80
)

var provinceNames = []string{
	"Drenthe", "Flevoland", "Friesland", "Gelderland", "Groningen",
	"Limburg", "Noord-Brabant", "Noord-Holland", "Overijssel",
	"Utrecht", "Zeeland", "Zuid-Holland",
}

var municipalityNames = []string{
	"Amsterdam", "Rotterdam", "Den Haag", "Utrecht", "Eindhoven",
	"Groningen", "Tilburg", "Almere", "Breda", "Nijmegen",
	"Apeldoorn", "Haarlem", "Arnhem", "Amersfoort", "Zaanstad",
}

var ministries = []gazEntry{
	{canonical: "Ministerie van Binnenlandse Zaken en Koninkrijksrelaties", forms: []string{
		"ministerie van binnenlandse zaken en koninkrijksrelaties",
		"ministerie van binnenlandse zaken", "ministry of the interior", "bzk"}},
	{canonical: "Ministerie van Justitie en Veiligheid", forms: []string{
		"ministerie van justitie en veiligheid", "ministry of justice and security", "jenv"}},
	{canonical: "Ministerie van Financiën", forms: []string{
		"ministerie van financiën", "ministerie van financien", "ministry of finance"}},
	{canonical: "Ministerie van Infrastructuur en Waterstaat", forms: []string{
		"ministerie van infrastructuur en waterstaat",
		"ministry of infrastructure and water management", "ienw"}},
	{canonical: "Ministerie van Economische Zaken en Klimaat", forms: []string{
		"ministerie van economische zaken en klimaat",
		"ministry of economic affairs and climate policy", "ezk"}},
	{canonical: "Ministerie van Onderwijs, Cultuur en Wetenschap", forms: []string{
		"ministerie van onderwijs, cultuur en wetenschap",
		"ministry of education, culture and science", "ocw"}},
}

var laws = []gazEntry{
	{canonical: "Wet open overheid", forms: []string{
		"wet open overheid", "woo", "open government act"}},
	{canonical: "Algemene verordening gegevensbescherming", forms: []string{
		"algemene verordening gegevensbescherming", "avg",
		"general data protection regulation", "gdpr"}},
	{canonical: "Archiefwet", forms: []string{"archiefwet", "archives act"}},
	{canonical: "Omgevingswet", forms: []string{"omgevingswet", "environment and planning act"}},
	{canonical: "Algemene wet bestuursrecht", forms: []string{
		"algemene wet bestuursrecht", "awb", "general administrative law act"}},
	{canonical: "Wet hergebruik van overheidsinformatie", forms: []string{
		"wet hergebruik van overheidsinformatie", "who"}},
}

var policyTerms = []string{
	"mobiliteit", "duurzaamheid", "energietransitie", "woningbouw",
	"klimaatadaptatie", "digitalisering", "participatie", "circulaire economie",
	"stikstof", "bereikbaarheid", "leefbaarheid", "veiligheid",
	// English forms
	"mobility", "sustainability", "energy transition", "housing",
	"climate adaptation", "digitalization",
}

// buildGazetteer assembles the full entry set with folded forms.
func buildGazetteer() []gazEntry {
	var entries []gazEntry

	// Provinces are territorial locations; both the bare name with
	// prefix and the English "Province of X" form resolve to one node.
	for _, name := range provinceNames {
		folded := normalize.Fold(name)
		entries = append(entries, gazEntry{
			canonical:  "Province of " + name,
			entityType: TypeLocation,
			confidence: confProvince,
			forms: []string{
				"provincie " + folded,
				"province of " + folded,
			},
		})
	}

	// Municipal governments are organizations when prefixed.
	for _, name := range municipalityNames {
		folded := normalize.Fold(name)
		entries = append(entries, gazEntry{
			canonical:  "Gemeente " + name,
			entityType: TypeOrganization,
			confidence: confMunicipality,
			forms: []string{
				"gemeente " + folded,
				"municipality of " + folded,
			},
		})
	}

	// Bare place names are locations. Lower confidence than the
	// prefixed forms, which subsume them via longest-match-wins.
	seen := map[string]bool{}
	for _, name := range append(append([]string{}, provinceNames...), municipalityNames...) {
		folded := normalize.Fold(name)
		if seen[folded] {
			continue
		}
		seen[folded] = true
		entries = append(entries, gazEntry{
			canonical:  name,
			entityType: TypeLocation,
			confidence: confMunicipality,
			forms:      []string{folded},
		})
	}

	for _, m := range ministries {
		m.entityType = TypeOrganization
		m.confidence = confMinistry
		entries = append(entries, m)
	}

	for _, l := range laws {
		l.entityType = TypeLaw
		l.confidence = confLaw
		entries = append(entries, l)
	}

	for _, term := range policyTerms {
		entries = append(entries, gazEntry{
			canonical:  term,
			entityType: TypePolicy,
			confidence: confPolicy,
			forms:      []string{normalize.Fold(term)},
		})
	}

	return entries
}
