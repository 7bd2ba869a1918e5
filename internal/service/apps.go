package service

// AppRecommendation is one suggested application for working in a
// domain, ranked by relevance for the domain type.
type AppRecommendation struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Rank        int    `json:"rank"`
}

// appCatalog maps domain types to their curated application set. The
// catalog is static; ranking within a type is the declaration order.
var appCatalog = map[string][]AppRecommendation{
	"case": {
		{Name: "Zaakdossier", Category: "case_management", Description: "Dossiervorming en zaakafhandeling"},
		{Name: "Documentgenerator", Category: "documents", Description: "Sjabloongestuurde brieven en besluiten"},
		{Name: "Termijnbewaking", Category: "compliance", Description: "Beslistermijnen en verdagingen bewaken"},
	},
	"project": {
		{Name: "Projectbord", Category: "collaboration", Description: "Taken, mijlpalen en voortgang"},
		{Name: "Documentgenerator", Category: "documents", Description: "Sjabloongestuurde projectdocumenten"},
		{Name: "Besluitenlijst", Category: "governance", Description: "Projectbesluiten vastleggen"},
	},
	"policy": {
		{Name: "Beleidsmonitor", Category: "analysis", Description: "Beleidsdoelen en indicatoren volgen"},
		{Name: "Consultatieportaal", Category: "participation", Description: "Internetconsultatie en inspraak"},
		{Name: "Publicatieplanner", Category: "openness", Description: "Actieve openbaarmaking plannen"},
	},
	"expertise": {
		{Name: "Kennisbank", Category: "knowledge", Description: "Kennisartikelen en expertise delen"},
		{Name: "Expertzoeker", Category: "knowledge", Description: "Collega's op onderwerp vinden"},
	},
}

// RecommendApps returns the ranked application list for a domain type.
// Unknown types get an empty list, never an error.
func RecommendApps(domainType string) []AppRecommendation {
	catalog := appCatalog[domainType]
	out := make([]AppRecommendation, len(catalog))
	for i, app := range catalog {
		app.Rank = i + 1
		out[i] = app
	}
	return out
}
