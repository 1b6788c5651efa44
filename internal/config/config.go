package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"artlink/internal/lexicon"
	"artlink/internal/match"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains file and directory configuration.
type Paths struct {
	RecordsFile string `toml:"records_file"`
	AssetsFile  string `toml:"assets_file"`
	LedgerPath  string `toml:"ledger_path"`
	ReportDir   string `toml:"report_dir"`
}

// Matching contains scoring thresholds and weights.
type Matching struct {
	HighThreshold         float64 `toml:"high_threshold"`
	MediumThreshold       float64 `toml:"medium_threshold"`
	CreatorTokenMinLength int     `toml:"creator_token_min_length"`
	ExactFilenameScore    float64 `toml:"exact_filename_score"`
	CreatorTokenWeight    float64 `toml:"creator_token_weight"`
	HighOverlapBonus      float64 `toml:"high_overlap_bonus"`
	MediumOverlapBonus    float64 `toml:"medium_overlap_bonus"`
	YearBonus             float64 `toml:"year_bonus"`
	HighOverlapRatio      float64 `toml:"high_overlap_ratio"`
	MediumOverlapRatio    float64 `toml:"medium_overlap_ratio"`
}

// Lexicon contains vocabulary extensions merged over the built-in lists.
type Lexicon struct {
	Materials  map[string]string `toml:"materials"`
	NonArtwork []string          `toml:"non_artwork"`
	Stopwords  []string          `toml:"stopwords"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values.
type Config struct {
	Paths    Paths    `toml:"paths"`
	Matching Matching `toml:"matching"`
	Lexicon  Lexicon  `toml:"lexicon"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/artlink/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("artlink.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// MatchPolicy converts the matching section into an engine policy.
func (c *Config) MatchPolicy() match.Policy {
	return match.Policy{
		HighThreshold:         c.Matching.HighThreshold,
		MediumThreshold:       c.Matching.MediumThreshold,
		CreatorTokenMinLength: c.Matching.CreatorTokenMinLength,
		ExactFilenameScore:    c.Matching.ExactFilenameScore,
		CreatorTokenWeight:    c.Matching.CreatorTokenWeight,
		HighOverlapBonus:      c.Matching.HighOverlapBonus,
		MediumOverlapBonus:    c.Matching.MediumOverlapBonus,
		YearBonus:             c.Matching.YearBonus,
		HighOverlapRatio:      c.Matching.HighOverlapRatio,
		MediumOverlapRatio:    c.Matching.MediumOverlapRatio,
	}
}

// BuildLexicon merges the configured vocabulary extensions over the
// built-in lists.
func (c *Config) BuildLexicon() *lexicon.Lexicon {
	lex := lexicon.Default()
	lex.MergeMaterials(c.Lexicon.Materials)
	lex.MergeNonArtwork(c.Lexicon.NonArtwork)
	lex.MergeStopwords(c.Lexicon.Stopwords)
	return lex
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
