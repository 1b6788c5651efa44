package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"artlink/internal/match"
)

func sampleReport() (match.Report, []match.Record, []match.Asset) {
	records := []match.Record{
		{ID: "rec-1", CreatorName: "Anke Hennig", Title: "Brosche"},
		{ID: "rec-2", CreatorName: "Beate Klockmann", Title: "Ring"},
	}
	assets := []match.Asset{
		{ID: "asset-1", Filename: "anke-hennig-brosche-2015.jpg"},
	}
	rep := match.Report{
		AutoLink: []match.Candidate{{
			RecordID: "rec-1",
			AssetID:  "asset-1",
			Score:    100,
			Reasons:  []string{"exact filename match"},
			Tier:     match.TierHigh,
		}},
		Unmatched: []match.Unmatched{{
			RecordID: "rec-2",
			Reason:   "no unused assets available",
		}},
	}
	return rep, records, assets
}

func TestFlatten(t *testing.T) {
	rep, records, assets := sampleReport()
	rows := Flatten(rep, records, assets)

	if len(rows.AutoLink) != 1 {
		t.Fatalf("expected one auto-link row, got %d", len(rows.AutoLink))
	}
	row := rows.AutoLink[0]
	if row.Creator != "Anke Hennig" || row.Filename != "anke-hennig-brosche-2015.jpg" {
		t.Errorf("row should carry record and asset context: %+v", row)
	}
	if row.Score != "100" || row.Tier != "HIGH" {
		t.Errorf("unexpected score formatting: %+v", row)
	}

	if len(rows.Unmatched) != 1 {
		t.Fatalf("expected one unmatched row, got %d", len(rows.Unmatched))
	}
	if rows.Unmatched[0].Reasons != "no unused assets available" {
		t.Errorf("unmatched reason missing: %+v", rows.Unmatched[0])
	}
}

func TestWriteCSV(t *testing.T) {
	rep, records, assets := sampleReport()
	rows := Flatten(rep, records, assets)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows.AutoLink); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d lines", len(lines))
	}
	if lines[0] != strings.Join(CSVHeader, ",") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "anke-hennig-brosche-2015.jpg") {
		t.Errorf("row missing filename: %q", lines[1])
	}
}

func TestSaveAndLoad(t *testing.T) {
	rep, records, assets := sampleReport()
	artifact := NewArtifact(rep, match.DefaultPolicy())
	if artifact.RunID == "" {
		t.Fatal("artifact should carry a run id")
	}

	dir := t.TempDir()
	written, err := Save(dir, artifact, Flatten(rep, records, assets))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(written) != 5 {
		t.Fatalf("expected json plus four csv files, got %d", len(written))
	}
	for _, path := range written {
		if _, statErr := os.Stat(path); statErr != nil {
			t.Errorf("missing artifact %s: %v", path, statErr)
		}
	}

	loaded, err := Load(filepath.Join(dir, "report-"+artifact.RunID+".json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.RunID != artifact.RunID {
		t.Errorf("run id mismatch: %q vs %q", loaded.RunID, artifact.RunID)
	}
	if len(loaded.Report.AutoLink) != 1 || loaded.Report.AutoLink[0].AssetID != "asset-1" {
		t.Errorf("report content lost on round trip: %+v", loaded.Report)
	}
	if loaded.Policy.HighThreshold != match.DefaultPolicy().HighThreshold {
		t.Errorf("policy not preserved: %+v", loaded.Policy)
	}
}
