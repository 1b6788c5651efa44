package match

import (
	"fmt"
	"sort"

	"artlink/internal/logging"
)

// recordOutcome carries one record's sorted candidates plus gate
// bookkeeping for the unmatched diagnostics.
type recordOutcome struct {
	record         Record
	candidates     []Candidate
	noSignal       bool
	nonArtworkHits int
}

// Resolve scores every unmatched record against every unused asset and
// returns the partitioned report. The pass is deterministic: records are
// processed in ascending record-id order, candidate ties break on the
// lexicographically smaller asset id, and an asset is claimed by at most
// one actionable entry.
func (e *Engine) Resolve(records []Record, assets []Asset) Report {
	assetViews := make([]assetView, 0, len(assets))
	for _, asset := range assets {
		if asset.Used {
			continue
		}
		assetViews = append(assetViews, e.newAssetView(asset))
	}
	sort.Slice(assetViews, func(i, j int) bool { return assetViews[i].asset.ID < assetViews[j].asset.ID })

	outcomes := make([]recordOutcome, 0, len(records))
	skippedLinked := 0
	for _, rec := range records {
		if rec.AssetID != "" {
			skippedLinked++
			continue
		}
		outcomes = append(outcomes, e.scoreRecord(rec, assetViews))
	}
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].record.ID < outcomes[j].record.ID })

	report := e.claim(outcomes, len(assetViews))

	e.logger.Info("resolution pass complete",
		logging.Int("records", len(records)),
		logging.Int("records_already_linked", skippedLinked),
		logging.Int("assets_unused", len(assetViews)),
		logging.Int("auto_link", len(report.AutoLink)),
		logging.Int("needs_review", len(report.NeedsReview)),
		logging.Int("rejected", len(report.Rejected)),
		logging.Int("unmatched", len(report.Unmatched)))
	return report
}

func (e *Engine) scoreRecord(rec Record, assetViews []assetView) recordOutcome {
	outcome := recordOutcome{record: rec}
	rv := e.newRecordView(rec)
	if len(rv.gateTokens) == 0 {
		outcome.noSignal = true
		return outcome
	}
	for _, av := range assetViews {
		cand, _ := e.scorePair(rv, av)
		if cand == nil {
			if av.nonArtworkTerm != "" {
				outcome.nonArtworkHits++
			}
			continue
		}
		outcome.candidates = append(outcome.candidates, *cand)
	}
	// Asset views arrive in ascending id order; a stable sort by descending
	// score preserves that order within ties.
	sort.SliceStable(outcome.candidates, func(i, j int) bool {
		return outcome.candidates[i].Score > outcome.candidates[j].Score
	})
	return outcome
}

// claim runs the greedy, order-stable allocation pass. An asset claimed by
// an earlier record forces later records onto their next-best candidate.
func (e *Engine) claim(outcomes []recordOutcome, assetCount int) Report {
	report := Report{}
	claimed := make(map[string]struct{})

	for _, outcome := range outcomes {
		if len(outcome.candidates) == 0 {
			report.Unmatched = append(report.Unmatched, Unmatched{
				RecordID: outcome.record.ID,
				Reason:   e.unmatchedReason(outcome, assetCount),
			})
			continue
		}

		var winner *Candidate
		blockedAsset := ""
		for i := range outcome.candidates {
			cand := &outcome.candidates[i]
			if cand.Tier != TierHigh && cand.Tier != TierMedium {
				continue
			}
			if _, taken := claimed[cand.AssetID]; taken {
				if blockedAsset == "" {
					blockedAsset = cand.AssetID
				}
				continue
			}
			winner = cand
			break
		}

		switch {
		case winner != nil:
			claimed[winner.AssetID] = struct{}{}
			if winner.Tier == TierHigh {
				report.AutoLink = append(report.AutoLink, *winner)
			} else {
				report.NeedsReview = append(report.NeedsReview, *winner)
			}
		case blockedAsset != "":
			report.Unmatched = append(report.Unmatched, Unmatched{
				RecordID: outcome.record.ID,
				Reason:   fmt.Sprintf("asset %s already claimed by another record", blockedAsset),
			})
		default:
			// Low-confidence diagnostics only; never applied and never
			// claiming an asset.
			report.Rejected = append(report.Rejected, outcome.candidates[0])
		}
	}
	return report
}

// unmatchedReason names the first gate or condition that eliminated every
// asset for a record. "No reason given" is a defect, never an output.
func (e *Engine) unmatchedReason(outcome recordOutcome, assetCount int) string {
	switch {
	case assetCount == 0:
		return "no unused assets available"
	case outcome.noSignal:
		return "creator name has no significant tokens"
	case outcome.nonArtworkHits == assetCount:
		return "all assets rejected by non-artwork indicators"
	default:
		return "no creator-name token present in any filename"
	}
}
