package lexicon

import "testing"

func TestCanonicalMaterial(t *testing.T) {
	lex := Default()

	tests := []struct {
		token     string
		canonical string
		ok        bool
	}{
		{"silber", "silver", true},
		{"silver", "silver", true},
		{"keramik", "ceramic", true},
		{"tuerkis", "turquoise", true},
		{"brosche", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := lex.CanonicalMaterial(tt.token)
			if ok != tt.ok || got != tt.canonical {
				t.Errorf("CanonicalMaterial(%q) = (%q, %v), want (%q, %v)", tt.token, got, ok, tt.canonical, tt.ok)
			}
		})
	}
}

func TestNonArtworkTerm(t *testing.T) {
	lex := Default()

	term, ok := lex.NonArtworkTerm([]string{"anke", "hennig", "portrait"})
	if !ok || term != "portrait" {
		t.Errorf("NonArtworkTerm = (%q, %v), want (portrait, true)", term, ok)
	}

	if _, ok := lex.NonArtworkTerm([]string{"anke", "hennig", "brosche"}); ok {
		t.Error("expected no non-artwork term for artwork filename tokens")
	}
}

func TestGermanIndicatorsFolded(t *testing.T) {
	lex := Default()
	// "Ausstellung" and "Porträt" enter the tables in folded form.
	if !lex.IsNonArtwork("ausstellung") {
		t.Error("expected ausstellung to be a non-artwork indicator")
	}
	if !lex.IsNonArtwork("portraet") {
		t.Error("expected portraet to be a non-artwork indicator")
	}
}

func TestMergeOverrides(t *testing.T) {
	lex := Default()
	lex.MergeMaterials(map[string]string{"Beton": "concrete"})
	lex.MergeNonArtwork([]string{"Messestand"})
	lex.MergeStopwords([]string{"Manufaktur"})

	if got, ok := lex.CanonicalMaterial("beton"); !ok || got != "concrete" {
		t.Errorf("merged material lookup = (%q, %v)", got, ok)
	}
	if !lex.IsNonArtwork("messestand") {
		t.Error("merged non-artwork term not found")
	}
	if !lex.IsStopword("manufaktur") {
		t.Error("merged stopword not found")
	}
}

func TestStopwords(t *testing.T) {
	lex := Default()
	if !lex.IsStopword("schmuck") {
		t.Error("expected schmuck to be a stopword")
	}
	if lex.IsStopword("hennig") {
		t.Error("surname must not be a stopword")
	}
}
