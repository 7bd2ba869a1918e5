package normalize

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lower cases", "Provincie Utrecht", "provincie utrecht"},
		{"collapses whitespace", "Gemeente   Den\t Haag", "gemeente den haag"},
		{"trims edges", "  Woo  ", "woo"},
		{"keeps diacritics", "Curaçao", "curaçao"},
		{"nfkc compatibility forms", "ﬁnanciën", "financiën"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fold(tt.in); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips diacritics", "Curaçao", "curacao"},
		{"folds and strips", "  Ministerie van Financiën ", "ministerie van financien"},
		{"plain ascii unchanged", "province of utrecht", "province of utrecht"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.in); got != tt.want {
				t.Errorf("Key(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestKey_StableForEquivalentForms(t *testing.T) {
	// The same name typed with and without diacritics must collide.
	if Key("Financiën") != Key("Financien") {
		t.Error("diacritic and plain forms should share a key")
	}
	if Key("PROVINCIE UTRECHT") != Key("provincie   utrecht") {
		t.Error("case and whitespace variants should share a key")
	}
}
