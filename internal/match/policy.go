package match

import (
	"errors"
	"fmt"
)

// Policy centralizes matching thresholds and rule weights. Operators tune
// these per dataset to trade recall for safety; the scoring logic never
// hard-codes them.
type Policy struct {
	// HighThreshold is the minimum score for the HIGH (auto-link) tier.
	HighThreshold float64
	// MediumThreshold is the minimum score for the MEDIUM (review) tier.
	MediumThreshold float64
	// CreatorTokenMinLength is the minimum length of a creator-name token
	// for the creator gate.
	CreatorTokenMinLength int

	ExactFilenameScore float64
	CreatorTokenWeight float64
	HighOverlapBonus   float64
	MediumOverlapBonus float64
	YearBonus          float64

	// HighOverlapRatio and MediumOverlapRatio are the word-overlap ratios
	// at which the corresponding bonus applies.
	HighOverlapRatio   float64
	MediumOverlapRatio float64
}

// DefaultPolicy returns conservative defaults tuned on the source catalog.
func DefaultPolicy() Policy {
	return Policy{
		HighThreshold:         90,
		MediumThreshold:       70,
		CreatorTokenMinLength: 4,
		ExactFilenameScore:    100,
		CreatorTokenWeight:    40,
		HighOverlapBonus:      50,
		MediumOverlapBonus:    30,
		YearBonus:             10,
		HighOverlapRatio:      0.9,
		MediumOverlapRatio:    0.7,
	}
}

func (p Policy) normalized() Policy {
	d := DefaultPolicy()

	if p.HighThreshold <= 0 {
		p.HighThreshold = d.HighThreshold
	}
	if p.MediumThreshold <= 0 {
		p.MediumThreshold = d.MediumThreshold
	}
	if p.CreatorTokenMinLength <= 0 {
		p.CreatorTokenMinLength = d.CreatorTokenMinLength
	}
	if p.ExactFilenameScore <= 0 {
		p.ExactFilenameScore = d.ExactFilenameScore
	}
	if p.CreatorTokenWeight <= 0 {
		p.CreatorTokenWeight = d.CreatorTokenWeight
	}
	if p.HighOverlapBonus <= 0 {
		p.HighOverlapBonus = d.HighOverlapBonus
	}
	if p.MediumOverlapBonus <= 0 {
		p.MediumOverlapBonus = d.MediumOverlapBonus
	}
	if p.YearBonus <= 0 {
		p.YearBonus = d.YearBonus
	}
	if p.HighOverlapRatio <= 0 || p.HighOverlapRatio > 1 {
		p.HighOverlapRatio = d.HighOverlapRatio
	}
	if p.MediumOverlapRatio <= 0 || p.MediumOverlapRatio > 1 {
		p.MediumOverlapRatio = d.MediumOverlapRatio
	}
	return p
}

// Validate reports malformed policy values. Inconsistent thresholds would
// corrupt every subsequent decision, so engine construction fails fast.
func (p Policy) Validate() error {
	if p.HighThreshold <= p.MediumThreshold {
		return fmt.Errorf("matching: high threshold (%.0f) must be greater than medium threshold (%.0f)", p.HighThreshold, p.MediumThreshold)
	}
	if p.MediumThreshold <= 0 {
		return errors.New("matching: medium threshold must be positive")
	}
	if p.CreatorTokenMinLength < 3 {
		return errors.New("matching: creator token minimum length must be at least 3")
	}
	if p.HighOverlapRatio <= p.MediumOverlapRatio {
		return fmt.Errorf("matching: high overlap ratio (%.2f) must be greater than medium overlap ratio (%.2f)", p.HighOverlapRatio, p.MediumOverlapRatio)
	}
	if p.ExactFilenameScore < p.HighThreshold {
		return errors.New("matching: exact filename score must reach the high threshold")
	}
	return nil
}

// Classify maps a score to its confidence tier.
func (p Policy) Classify(score float64) Tier {
	switch {
	case score >= p.HighThreshold:
		return TierHigh
	case score >= p.MediumThreshold:
		return TierMedium
	case score > 0:
		return TierLow
	default:
		return TierNone
	}
}
