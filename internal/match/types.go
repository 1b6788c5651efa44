package match

// Tier buckets a candidate score into an operator-facing confidence level.
type Tier string

const (
	// TierHigh marks candidates safe to auto-link.
	TierHigh Tier = "HIGH"
	// TierMedium marks candidates that need human review before linking.
	TierMedium Tier = "MEDIUM"
	// TierLow marks candidates reported only as diagnostics.
	TierLow Tier = "LOW"
	// TierNone marks pairs that never became candidates.
	TierNone Tier = "NONE"
)

// Record is a catalog entry describing one artwork.
type Record struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	CreatorName string `json:"creator_name"`
	Year        string `json:"year,omitempty"`
	CaptionEN   string `json:"caption_en,omitempty"`
	CaptionDE   string `json:"caption_de,omitempty"`
	// AssetID carries an existing link. Records that already have one are
	// excluded from candidate generation entirely.
	AssetID string `json:"asset_id,omitempty"`
}

// Asset is a media file known only by its original filename.
type Asset struct {
	ID        string `json:"id"`
	Filename  string `json:"filename"`
	SizeBytes int64  `json:"size_bytes,omitempty"`
	// Used is true when the asset is already linked to some record, in this
	// run or a prior one. Used assets never become candidates.
	Used bool `json:"used,omitempty"`
}

// Candidate is a scored, gate-passing (record, asset) pairing.
type Candidate struct {
	RecordID string   `json:"record_id"`
	AssetID  string   `json:"asset_id"`
	Score    float64  `json:"score"`
	Reasons  []string `json:"reasons"`
	Tier     Tier     `json:"tier"`
}

// Unmatched reports a record that ended the run without an actionable
// candidate, with the first gate or condition that eliminated every asset.
type Unmatched struct {
	RecordID string `json:"record_id"`
	Reason   string `json:"reason"`
}

// Report partitions one resolution pass. AutoLink entries are safe to
// apply; NeedsReview entries require a human decision; Rejected entries are
// low-confidence diagnostics and must never be applied.
type Report struct {
	AutoLink    []Candidate `json:"auto_link"`
	NeedsReview []Candidate `json:"needs_review"`
	Rejected    []Candidate `json:"rejected"`
	Unmatched   []Unmatched `json:"unmatched"`
}
