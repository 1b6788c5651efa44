package match

import (
	"strings"
	"testing"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := New(DefaultPolicy(), nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return engine
}

func TestScoreExactFilenameMatch(t *testing.T) {
	engine := newTestEngine(t)
	rec := Record{ID: "r1", CreatorName: "Anke Hennig", Title: "Brosche", Year: "2015"}

	for _, filename := range []string{
		"anke-hennig-brosche-2015.jpg",
		"anke-hennig-brosche-2015-1024x693.jpg",
		"Anke-Hennig-Brosche.jpg",
	} {
		cand, gate := engine.Score(rec, Asset{ID: "a1", Filename: filename})
		if cand == nil {
			t.Fatalf("Score(%q) rejected at gate %q", filename, gate)
		}
		if cand.Score != 100 || cand.Tier != TierHigh {
			t.Errorf("Score(%q) = %v (%v), want 100 HIGH", filename, cand.Score, cand.Tier)
		}
		if len(cand.Reasons) != 1 || cand.Reasons[0] != "exact filename match" {
			t.Errorf("Reasons = %v, want [exact filename match]", cand.Reasons)
		}
	}
}

func TestScoreNonArtworkGate(t *testing.T) {
	engine := newTestEngine(t)
	rec := Record{ID: "r1", CreatorName: "Anke Hennig", Year: "2015"}

	cand, gate := engine.Score(rec, Asset{ID: "a3", Filename: "portrait-anke-hennig.jpg"})
	if cand != nil {
		t.Fatalf("expected nil candidate, got score %v", cand.Score)
	}
	if !strings.Contains(gate, "portrait") {
		t.Errorf("gate reason %q should name the indicator", gate)
	}
}

func TestScoreCreatorGate(t *testing.T) {
	engine := newTestEngine(t)
	rec := Record{ID: "r1", CreatorName: "Anke Hennig"}

	cand, gate := engine.Score(rec, Asset{ID: "a1", Filename: "maria-schmidt-ring.jpg"})
	if cand != nil {
		t.Fatal("expected creator gate rejection")
	}
	if gate != "no creator-name token in filename" {
		t.Errorf("gate reason = %q", gate)
	}
}

func TestScoreSizeVariantsTie(t *testing.T) {
	engine := newTestEngine(t)
	rec := Record{ID: "r1", CreatorName: "Anke Hennig", Year: "2015"}

	a, _ := engine.Score(rec, Asset{ID: "a1", Filename: "anke-hennig-brosche-2015.jpg"})
	b, _ := engine.Score(rec, Asset{ID: "a2", Filename: "anke-hennig-brosche-2015-1024x693.jpg"})
	if a == nil || b == nil {
		t.Fatal("expected both variants to be candidates")
	}
	if a.Score != b.Score {
		t.Errorf("variant scores differ: %v vs %v", a.Score, b.Score)
	}
	if len(a.Reasons) != len(b.Reasons) {
		t.Errorf("variant reasons differ: %v vs %v", a.Reasons, b.Reasons)
	}
}

func TestScoreYearBonus(t *testing.T) {
	engine := newTestEngine(t)
	withYear := Record{ID: "r1", CreatorName: "Anke Hennig", Year: "2015"}
	withoutYear := Record{ID: "r2", CreatorName: "Anke Hennig"}
	asset := Asset{ID: "a1", Filename: "anke-hennig-armband-kette-lang-2015.jpg"}

	a, _ := engine.Score(withYear, asset)
	b, _ := engine.Score(withoutYear, asset)
	if a == nil || b == nil {
		t.Fatal("expected candidates")
	}
	if a.Score != b.Score+10 {
		t.Errorf("year bonus missing: %v vs %v", a.Score, b.Score)
	}
	if !containsReason(a.Reasons, "year match in filename") {
		t.Errorf("Reasons = %v, want year match reason", a.Reasons)
	}
}

func TestScoreOverlapBonuses(t *testing.T) {
	engine := newTestEngine(t)

	// All record tokens appear in the filename and vice versa.
	high := Record{ID: "r1", CreatorName: "Maria Schmidt", Title: "Goldene Kette"}
	cand, _ := engine.Score(high, Asset{ID: "a1", Filename: "maria-schmidt-goldene-kette-detail.jpg"})
	if cand == nil {
		t.Fatal("expected candidate")
	}
	// 4 shared tokens over max(4, 5) = 0.8: partial overlap.
	if !containsReason(cand.Reasons, "partial word overlap") {
		t.Errorf("Reasons = %v, want partial word overlap", cand.Reasons)
	}
	if cand.Score != 70 || cand.Tier != TierMedium {
		t.Errorf("Score = %v (%v), want 70 MEDIUM", cand.Score, cand.Tier)
	}
}

func TestScoreFirstNameOnlyHeldBack(t *testing.T) {
	engine := newTestEngine(t)
	rec := Record{ID: "r1", CreatorName: "Anke Hennig"}

	cand, _ := engine.Score(rec, Asset{ID: "a1", Filename: "anke-brosche-silber-ring.jpg"})
	if cand == nil {
		t.Fatal("expected candidate")
	}
	if cand.Tier != TierLow {
		t.Errorf("Tier = %v, want LOW for uncorroborated first-name match", cand.Tier)
	}
	if !containsReason(cand.Reasons, "first-name-only creator match without corroboration") {
		t.Errorf("Reasons = %v, want first-name-only reason", cand.Reasons)
	}
}

func TestScoreFirstNameWithYearCorroboration(t *testing.T) {
	engine := newTestEngine(t)
	rec := Record{ID: "r1", CreatorName: "Anke Hennig", Year: "2015"}

	cand, _ := engine.Score(rec, Asset{ID: "a1", Filename: "anke-brosche-silber-ring-2015.jpg"})
	if cand == nil {
		t.Fatal("expected candidate")
	}
	if containsReason(cand.Reasons, "first-name-only creator match without corroboration") {
		t.Errorf("year hit should corroborate a first-name match: %v", cand.Reasons)
	}
}

func TestScoreHardPreconditions(t *testing.T) {
	engine := newTestEngine(t)

	if cand, gate := engine.Score(
		Record{ID: "r1", CreatorName: "Anke Hennig"},
		Asset{ID: "a1", Filename: "anke-hennig.jpg", Used: true},
	); cand != nil || gate != "asset already linked" {
		t.Errorf("used asset: cand=%v gate=%q", cand, gate)
	}

	if cand, gate := engine.Score(
		Record{ID: "r1", CreatorName: "Anke Hennig", AssetID: "a9"},
		Asset{ID: "a1", Filename: "anke-hennig.jpg"},
	); cand != nil || gate != "record already linked" {
		t.Errorf("linked record: cand=%v gate=%q", cand, gate)
	}
}

func TestScoreCaptionDerivedTitle(t *testing.T) {
	engine := newTestEngine(t)
	rec := Record{
		ID:          "r1",
		CreatorName: "Anke Hennig",
		CaptionDE:   "Ring. Silber, 2018, H 2,1 cm",
	}

	cand, _ := engine.Score(rec, Asset{ID: "a1", Filename: "anke-hennig-ring-2018.jpg"})
	if cand == nil {
		t.Fatal("expected candidate")
	}
	if cand.Score != 100 {
		t.Errorf("Score = %v, want exact match via caption-derived title", cand.Score)
	}
}

func TestScoreIsPure(t *testing.T) {
	engine := newTestEngine(t)
	rec := Record{ID: "r1", CreatorName: "Maria Schmidt", Title: "Kette", Year: "2011"}
	asset := Asset{ID: "a1", Filename: "maria-schmidt-kette-2011.jpg"}

	first, _ := engine.Score(rec, asset)
	for i := 0; i < 5; i++ {
		again, _ := engine.Score(rec, asset)
		if again == nil || first == nil {
			t.Fatal("expected candidates")
		}
		if again.Score != first.Score || len(again.Reasons) != len(first.Reasons) {
			t.Fatalf("scoring not pure: %+v vs %+v", again, first)
		}
	}
}

func containsReason(reasons []string, want string) bool {
	for _, reason := range reasons {
		if reason == want {
			return true
		}
	}
	return false
}
