package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeMatching()
	c.normalizeLexicon()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.RecordsFile, err = expandOptional(c.Paths.RecordsFile); err != nil {
		return fmt.Errorf("paths.records_file: %w", err)
	}
	if c.Paths.AssetsFile, err = expandOptional(c.Paths.AssetsFile); err != nil {
		return fmt.Errorf("paths.assets_file: %w", err)
	}
	if c.Paths.LedgerPath, err = expandPath(c.Paths.LedgerPath); err != nil {
		return fmt.Errorf("paths.ledger_path: %w", err)
	}
	if c.Paths.ReportDir, err = expandPath(c.Paths.ReportDir); err != nil {
		return fmt.Errorf("paths.report_dir: %w", err)
	}
	return nil
}

func expandOptional(pathValue string) (string, error) {
	if strings.TrimSpace(pathValue) == "" {
		return "", nil
	}
	return expandPath(pathValue)
}

func (c *Config) normalizeMatching() {
	defaults := Default().Matching
	if c.Matching.HighThreshold == 0 {
		c.Matching.HighThreshold = defaults.HighThreshold
	}
	if c.Matching.MediumThreshold == 0 {
		c.Matching.MediumThreshold = defaults.MediumThreshold
	}
	if c.Matching.CreatorTokenMinLength == 0 {
		c.Matching.CreatorTokenMinLength = defaults.CreatorTokenMinLength
	}
	if c.Matching.ExactFilenameScore == 0 {
		c.Matching.ExactFilenameScore = defaults.ExactFilenameScore
	}
	if c.Matching.CreatorTokenWeight == 0 {
		c.Matching.CreatorTokenWeight = defaults.CreatorTokenWeight
	}
	if c.Matching.HighOverlapBonus == 0 {
		c.Matching.HighOverlapBonus = defaults.HighOverlapBonus
	}
	if c.Matching.MediumOverlapBonus == 0 {
		c.Matching.MediumOverlapBonus = defaults.MediumOverlapBonus
	}
	if c.Matching.YearBonus == 0 {
		c.Matching.YearBonus = defaults.YearBonus
	}
	if c.Matching.HighOverlapRatio == 0 {
		c.Matching.HighOverlapRatio = defaults.HighOverlapRatio
	}
	if c.Matching.MediumOverlapRatio == 0 {
		c.Matching.MediumOverlapRatio = defaults.MediumOverlapRatio
	}
}

func (c *Config) normalizeLexicon() {
	materials := make(map[string]string, len(c.Lexicon.Materials))
	for term, canonical := range c.Lexicon.Materials {
		term = strings.ToLower(strings.TrimSpace(term))
		canonical = strings.ToLower(strings.TrimSpace(canonical))
		if term == "" || canonical == "" {
			continue
		}
		materials[term] = canonical
	}
	c.Lexicon.Materials = materials
	c.Lexicon.NonArtwork = normalizeTerms(c.Lexicon.NonArtwork)
	c.Lexicon.Stopwords = normalizeTerms(c.Lexicon.Stopwords)
}

func normalizeTerms(terms []string) []string {
	cleaned := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		cleaned = append(cleaned, term)
	}
	return cleaned
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
