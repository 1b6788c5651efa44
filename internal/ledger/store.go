package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"artlink/internal/logging"
)

// ErrAssetConflict is returned when an asset is already linked to a
// different record.
var ErrAssetConflict = errors.New("asset already linked to a different record")

// ErrRecordConflict is returned when a record is already linked to a
// different asset.
var ErrRecordConflict = errors.New("record already linked to a different asset")

// Link is one applied record-asset assignment.
type Link struct {
	RecordID  string    `json:"record_id"`
	AssetID   string    `json:"asset_id"`
	RunID     string    `json:"run_id"`
	AppliedAt time.Time `json:"applied_at"`
}

// Outcome describes what Apply did for one link.
type Outcome struct {
	Applied        bool
	AlreadyApplied bool
}

// Store manages link persistence backed by SQLite.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// Open initializes or connects to the ledger database and applies the
// schema.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure ledger directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, logger: logging.NewComponentLogger(logger, "ledger")}
	if err := store.applySchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) applySchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS links (
    record_id  TEXT PRIMARY KEY,
    asset_id   TEXT NOT NULL UNIQUE,
    run_id     TEXT NOT NULL,
    applied_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_links_run ON links(run_id);
`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Apply records one link. Re-applying an identical link is a no-op;
// conflicting links return ErrRecordConflict or ErrAssetConflict so the
// caller can re-run matching instead of silently overwriting catalog state.
func (s *Store) Apply(ctx context.Context, recordID, assetID, runID string) (Outcome, error) {
	if recordID == "" || assetID == "" {
		return Outcome{}, errors.New("apply link: record id and asset id must be set")
	}

	var existingAsset string
	err := s.db.QueryRowContext(ctx, `SELECT asset_id FROM links WHERE record_id = ?`, recordID).Scan(&existingAsset)
	switch {
	case err == nil:
		if existingAsset == assetID {
			return Outcome{AlreadyApplied: true}, nil
		}
		return Outcome{}, fmt.Errorf("record %s has asset %s: %w", recordID, existingAsset, ErrRecordConflict)
	case errors.Is(err, sql.ErrNoRows):
		// fall through to the asset check
	default:
		return Outcome{}, fmt.Errorf("query record link: %w", err)
	}

	var existingRecord string
	err = s.db.QueryRowContext(ctx, `SELECT record_id FROM links WHERE asset_id = ?`, assetID).Scan(&existingRecord)
	switch {
	case err == nil:
		return Outcome{}, fmt.Errorf("asset %s belongs to record %s: %w", assetID, existingRecord, ErrAssetConflict)
	case errors.Is(err, sql.ErrNoRows):
	default:
		return Outcome{}, fmt.Errorf("query asset link: %w", err)
	}

	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO links (record_id, asset_id, run_id, applied_at) VALUES (?, ?, ?, ?)`,
		recordID, assetID, runID, timestamp,
	); err != nil {
		return Outcome{}, fmt.Errorf("insert link: %w", err)
	}

	s.logger.Info("link applied",
		logging.String("record_id", recordID),
		logging.String("asset_id", assetID),
		logging.String("run_id", runID))
	return Outcome{Applied: true}, nil
}

// UsedAssetIDs returns the set of asset ids already linked to any record.
func (s *Store) UsedAssetIDs(ctx context.Context) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT asset_id FROM links`)
	if err != nil {
		return nil, fmt.Errorf("query used assets: %w", err)
	}
	defer rows.Close()

	used := make(map[string]struct{})
	for rows.Next() {
		var assetID string
		if err := rows.Scan(&assetID); err != nil {
			return nil, fmt.Errorf("scan asset id: %w", err)
		}
		used[assetID] = struct{}{}
	}
	return used, rows.Err()
}

// LinkedRecords returns record id to asset id for every applied link.
func (s *Store) LinkedRecords(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT record_id, asset_id FROM links`)
	if err != nil {
		return nil, fmt.Errorf("query linked records: %w", err)
	}
	defer rows.Close()

	linked := make(map[string]string)
	for rows.Next() {
		var recordID, assetID string
		if err := rows.Scan(&recordID, &assetID); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		linked[recordID] = assetID
	}
	return linked, rows.Err()
}

// List returns all links ordered by record id.
func (s *Store) List(ctx context.Context) ([]Link, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT record_id, asset_id, run_id, applied_at FROM links ORDER BY record_id`)
	if err != nil {
		return nil, fmt.Errorf("query links: %w", err)
	}
	defer rows.Close()

	var links []Link
	for rows.Next() {
		var link Link
		var appliedAt string
		if err := rows.Scan(&link.RecordID, &link.AssetID, &link.RunID, &appliedAt); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		if parsed, parseErr := time.Parse(time.RFC3339Nano, appliedAt); parseErr == nil {
			link.AppliedAt = parsed
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

// Clear removes every link and returns how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM links`)
	if err != nil {
		return 0, fmt.Errorf("clear links: %w", err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return count, nil
}
