// Package report turns a match report into reviewable artifacts: flat
// rows for tables, per-partition CSV files, and a JSON document that
// captures the run id and scoring policy alongside the results.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"artlink/internal/match"
)

// Row is one candidate or unmatched record flattened for presentation.
type Row struct {
	RecordID string `json:"record_id"`
	Creator  string `json:"creator"`
	Title    string `json:"title"`
	AssetID  string `json:"asset_id"`
	Filename string `json:"filename"`
	Score    string `json:"score"`
	Tier     string `json:"tier"`
	Reasons  string `json:"reasons"`
}

// Rows holds the flattened partitions of one match run.
type Rows struct {
	AutoLink    []Row
	NeedsReview []Row
	Rejected    []Row
	Unmatched   []Row
}

// Artifact is the JSON document written for one run.
type Artifact struct {
	RunID       string       `json:"run_id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Policy      match.Policy `json:"policy"`
	Report      match.Report `json:"report"`
}

// NewArtifact wraps a report with a fresh run id.
func NewArtifact(rep match.Report, policy match.Policy) Artifact {
	return Artifact{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Policy:      policy,
		Report:      rep,
	}
}

// Flatten joins the report with record and asset metadata so every row
// carries human-readable context, not just ids.
func Flatten(rep match.Report, records []match.Record, assets []match.Asset) Rows {
	recordByID := make(map[string]match.Record, len(records))
	for _, record := range records {
		recordByID[record.ID] = record
	}
	assetByID := make(map[string]match.Asset, len(assets))
	for _, asset := range assets {
		assetByID[asset.ID] = asset
	}

	candidateRow := func(cand match.Candidate) Row {
		record := recordByID[cand.RecordID]
		asset := assetByID[cand.AssetID]
		return Row{
			RecordID: cand.RecordID,
			Creator:  record.CreatorName,
			Title:    record.Title,
			AssetID:  cand.AssetID,
			Filename: asset.Filename,
			Score:    strconv.FormatFloat(cand.Score, 'f', -1, 64),
			Tier:     string(cand.Tier),
			Reasons:  strings.Join(cand.Reasons, "; "),
		}
	}

	var rows Rows
	for _, cand := range rep.AutoLink {
		rows.AutoLink = append(rows.AutoLink, candidateRow(cand))
	}
	for _, cand := range rep.NeedsReview {
		rows.NeedsReview = append(rows.NeedsReview, candidateRow(cand))
	}
	for _, cand := range rep.Rejected {
		rows.Rejected = append(rows.Rejected, candidateRow(cand))
	}
	for _, entry := range rep.Unmatched {
		record := recordByID[entry.RecordID]
		rows.Unmatched = append(rows.Unmatched, Row{
			RecordID: entry.RecordID,
			Creator:  record.CreatorName,
			Title:    record.Title,
			Reasons:  entry.Reason,
		})
	}
	return rows
}

// CSVHeader is the column order used by WriteCSV.
var CSVHeader = []string{"record_id", "creator", "title", "asset_id", "filename", "score", "tier", "reasons"}

// WriteCSV writes rows in CSVHeader order.
func WriteCSV(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(CSVHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		fields := []string{row.RecordID, row.Creator, row.Title, row.AssetID, row.Filename, row.Score, row.Tier, row.Reasons}
		if err := writer.Write(fields); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteJSON writes the artifact with stable indentation so repeated runs
// over the same input diff cleanly.
func WriteJSON(w io.Writer, artifact Artifact) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(artifact); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// Save writes the JSON artifact and the four partition CSVs into dir,
// named by run id. It returns the paths written.
func Save(dir string, artifact Artifact, rows Rows) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure report directory: %w", err)
	}

	var written []string
	jsonPath := filepath.Join(dir, fmt.Sprintf("report-%s.json", artifact.RunID))
	if err := writeFile(jsonPath, func(w io.Writer) error { return WriteJSON(w, artifact) }); err != nil {
		return nil, err
	}
	written = append(written, jsonPath)

	partitions := []struct {
		name string
		rows []Row
	}{
		{"auto-link", rows.AutoLink},
		{"needs-review", rows.NeedsReview},
		{"rejected", rows.Rejected},
		{"unmatched", rows.Unmatched},
	}
	for _, partition := range partitions {
		path := filepath.Join(dir, fmt.Sprintf("%s-%s.csv", partition.name, artifact.RunID))
		rows := partition.rows
		if err := writeFile(path, func(w io.Writer) error { return WriteCSV(w, rows) }); err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	return written, nil
}

func writeFile(path string, fill func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fill(file); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// Load reads a previously saved JSON artifact.
func Load(path string) (Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("read report: %w", err)
	}
	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return Artifact{}, fmt.Errorf("parse report %s: %w", path, err)
	}
	return artifact, nil
}
