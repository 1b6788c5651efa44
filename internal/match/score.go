package match

import (
	"fmt"
	"strings"

	"artlink/internal/caption"
	"artlink/internal/textnorm"
)

// Reason strings attached to scored candidates, in evaluation order.
const (
	reasonExactFilename  = "exact filename match"
	reasonCreatorToken   = "creator name token match"
	reasonHighOverlap    = "high word overlap"
	reasonPartialOverlap = "partial word overlap"
	reasonYearMatch      = "year match in filename"
	reasonFirstNameOnly  = "first-name-only creator match without corroboration"
)

// recordView caches the normalized view of a record for scoring.
type recordView struct {
	rec           Record
	creatorTokens []string
	gateTokens    []string
	recordTokens  []string
	recordKey     string
	year          string
}

// assetView caches the normalized view of an asset for scoring.
type assetView struct {
	asset          Asset
	tokens         []string
	tokenSet       map[string]struct{}
	key            string
	years          map[string]struct{}
	nonArtworkTerm string
}

func (e *Engine) newRecordView(rec Record) recordView {
	view := recordView{
		rec:           rec,
		creatorTokens: textnorm.NameTokens(rec.CreatorName),
		year:          rec.Year,
	}

	for _, token := range view.creatorTokens {
		if len(token) < e.policy.CreatorTokenMinLength || e.lex.IsStopword(token) {
			continue
		}
		view.gateTokens = append(view.gateTokens, token)
	}

	title := rec.Title
	if title == "" || view.year == "" {
		// Fall back to caption-derived fields. German captions carry the
		// structured tail more reliably, so they are parsed first.
		for _, parsed := range e.parsedCaptions(rec) {
			if title == "" {
				title = parsed.Title
			}
			if view.year == "" {
				view.year = parsed.Year
			}
		}
	}

	seen := make(map[string]struct{})
	for _, token := range append(append([]string{}, view.creatorTokens...), textnorm.NameTokens(title)...) {
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		view.recordTokens = append(view.recordTokens, token)
	}
	view.recordKey = joinKey(view.recordTokens)
	return view
}

func (e *Engine) parsedCaptions(rec Record) []caption.Fields {
	var parsed []caption.Fields
	if rec.CaptionDE != "" {
		parsed = append(parsed, caption.Parse(rec.CaptionDE, caption.German, e.lex))
	}
	if rec.CaptionEN != "" {
		parsed = append(parsed, caption.Parse(rec.CaptionEN, caption.English, e.lex))
	}
	return parsed
}

func (e *Engine) newAssetView(asset Asset) assetView {
	tokens := textnorm.FilenameTokens(asset.Filename)
	view := assetView{
		asset:    asset,
		tokens:   tokens,
		tokenSet: make(map[string]struct{}, len(tokens)),
		key:      joinKey(tokens),
		years:    make(map[string]struct{}),
	}
	for _, token := range tokens {
		view.tokenSet[token] = struct{}{}
	}
	for _, year := range textnorm.Years(asset.Filename) {
		view.years[year] = struct{}{}
	}
	if term, ok := e.lex.NonArtworkTerm(tokens); ok {
		view.nonArtworkTerm = term
	}
	return view
}

// Score evaluates one (record, asset) pair. A nil candidate means a hard
// gate failed; the second return value names the gate so callers can
// distinguish "considered and rejected" from "never considered". Scoring is
// a pure function of the normalized inputs.
func (e *Engine) Score(rec Record, asset Asset) (*Candidate, string) {
	if asset.Used {
		return nil, "asset already linked"
	}
	if rec.AssetID != "" {
		return nil, "record already linked"
	}
	return e.scorePair(e.newRecordView(rec), e.newAssetView(asset))
}

func (e *Engine) scorePair(rv recordView, av assetView) (*Candidate, string) {
	if av.nonArtworkTerm != "" {
		return nil, fmt.Sprintf("non-artwork indicator %q in filename", av.nonArtworkTerm)
	}
	if len(rv.gateTokens) == 0 {
		return nil, "creator name has no significant tokens"
	}

	var matched []string
	for _, token := range rv.gateTokens {
		if _, ok := av.tokenSet[token]; ok {
			matched = append(matched, token)
		}
	}
	if len(matched) == 0 {
		return nil, "no creator-name token in filename"
	}

	if av.key != "" && av.key == rv.recordKey {
		return &Candidate{
			RecordID: rv.rec.ID,
			AssetID:  av.asset.ID,
			Score:    e.policy.ExactFilenameScore,
			Reasons:  []string{reasonExactFilename},
			Tier:     e.policy.Classify(e.policy.ExactFilenameScore),
		}, ""
	}

	score := e.policy.CreatorTokenWeight
	reasons := []string{reasonCreatorToken}

	ratio := overlapRatio(rv.recordTokens, av.tokenSet, len(av.tokens))
	switch {
	case ratio >= e.policy.HighOverlapRatio:
		score += e.policy.HighOverlapBonus
		reasons = append(reasons, reasonHighOverlap)
	case ratio >= e.policy.MediumOverlapRatio:
		score += e.policy.MediumOverlapBonus
		reasons = append(reasons, reasonPartialOverlap)
	}

	yearHit := false
	if rv.year != "" {
		if _, ok := av.years[rv.year]; ok {
			score += e.policy.YearBonus
			reasons = append(reasons, reasonYearMatch)
			yearHit = true
		}
	}

	// A match carried only by the creator's first name is too weak to reach
	// review on its own: two different "Eva ..." creators must not swap
	// artworks. A year hit or decent title overlap restores eligibility.
	if e.firstNameOnly(rv, matched) && !yearHit && ratio < e.policy.MediumOverlapRatio {
		reasons = append(reasons, reasonFirstNameOnly)
		if score >= e.policy.MediumThreshold {
			score = e.policy.MediumThreshold - 1
		}
	}

	return &Candidate{
		RecordID: rv.rec.ID,
		AssetID:  av.asset.ID,
		Score:    score,
		Reasons:  reasons,
		Tier:     e.policy.Classify(score),
	}, ""
}

func (e *Engine) firstNameOnly(rv recordView, matched []string) bool {
	if len(rv.creatorTokens) < 2 {
		return false
	}
	first := rv.creatorTokens[0]
	for _, token := range matched {
		if token != first {
			return false
		}
	}
	return true
}

// overlapRatio is the shared-token count divided by the larger side's token
// count.
func overlapRatio(recordTokens []string, assetSet map[string]struct{}, assetCount int) float64 {
	if len(recordTokens) == 0 || assetCount == 0 {
		return 0
	}
	shared := 0
	for _, token := range recordTokens {
		if _, ok := assetSet[token]; ok {
			shared++
		}
	}
	denom := len(recordTokens)
	if assetCount > denom {
		denom = assetCount
	}
	return float64(shared) / float64(denom)
}

func joinKey(tokens []string) string {
	return strings.Join(tokens, "-")
}
