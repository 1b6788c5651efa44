package config

import "artlink/internal/match"

// Default returns the baseline configuration before any file overrides.
func Default() Config {
	policy := match.DefaultPolicy()
	return Config{
		Paths: Paths{
			LedgerPath: "~/.local/share/artlink/ledger.db",
			ReportDir:  "~/.local/share/artlink/reports",
		},
		Matching: Matching{
			HighThreshold:         policy.HighThreshold,
			MediumThreshold:       policy.MediumThreshold,
			CreatorTokenMinLength: policy.CreatorTokenMinLength,
			ExactFilenameScore:    policy.ExactFilenameScore,
			CreatorTokenWeight:    policy.CreatorTokenWeight,
			HighOverlapBonus:      policy.HighOverlapBonus,
			MediumOverlapBonus:    policy.MediumOverlapBonus,
			YearBonus:             policy.YearBonus,
			HighOverlapRatio:      policy.HighOverlapRatio,
			MediumOverlapRatio:    policy.MediumOverlapRatio,
		},
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
	}
}
