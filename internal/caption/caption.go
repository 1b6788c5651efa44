package caption

import (
	"regexp"
	"strings"

	"artlink/internal/lexicon"
	"artlink/internal/textnorm"
)

// Language tags the caption text being parsed. Keyword tables are bilingual
// and always consulted in full because real captions mix both languages; the
// tag is carried through for reporting.
type Language string

const (
	// English marks captions from the en caption field.
	English Language = "en"
	// German marks captions from the de caption field.
	German Language = "de"
)

// Fields holds the structured values extracted from one caption.
type Fields struct {
	Language   Language `json:"language"`
	Title      string   `json:"title,omitempty"`
	Year       string   `json:"year,omitempty"`
	Dimensions string   `json:"dimensions,omitempty"`
	Materials  []string `json:"materials,omitempty"`
}

var yearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// dimensionPatterns are tried in order; the first pattern with any match
// wins, and among its matches the longest is kept so multi-part dimensions
// like "36 × 6,8 × 9 cm/19 × 12,5 cm" are not truncated.
var dimensionPatterns = []*regexp.Regexp{
	// Runs of cm-suffixed numeric groups, optionally slash-separated.
	regexp.MustCompile(`(?i)(?:[høbltd]\s*)?\d+(?:[.,]\d+)?(?:\s*[×x*]\s*\d+(?:[.,]\d+)?)*\s*cm(?:\s*/\s*(?:[høbltd]\s*)?\d+(?:[.,]\d+)?(?:\s*[×x*]\s*\d+(?:[.,]\d+)?)*\s*cm)*`),
	// Fallback: a single measure-letter value, e.g. "H 2,1 cm" or "Ø 5 cm".
	regexp.MustCompile(`(?i)[hø]\s*\d+(?:[.,]\d+)?\s*cm`),
}

var emphasisPatterns = []*regexp.Regexp{
	regexp.MustCompile(`<em>\s*(.+?)\s*</em>`),
	regexp.MustCompile(`\*([^*]+)\*`),
}

// wordPattern splits folded caption text into letter runs for lexicon scans.
var wordPattern = regexp.MustCompile(`\p{L}+`)

var commaYearPattern = regexp.MustCompile(`,\s*(?:19|20)\d{2}\b`)

// periodWordPattern locates words preceded by a period, the position where
// German captions switch from title to material list.
var periodWordPattern = regexp.MustCompile(`\.\s*(\p{L}+)`)

// Parse extracts structured fields from caption text. Empty input yields
// zero-valued fields; parsing never fails.
func Parse(text string, lang Language, lex *lexicon.Lexicon) Fields {
	fields := Fields{Language: lang}
	text = strings.TrimSpace(text)
	if text == "" {
		return fields
	}
	if lex == nil {
		lex = lexicon.Default()
	}

	fields.Year = yearPattern.FindString(text)
	fields.Dimensions, _ = findDimensions(text)
	fields.Materials = findMaterials(text, lex)
	fields.Title = findTitle(text, lex)
	return fields
}

// findDimensions returns the longest dimension match and its start offset,
// or ("", -1) when no pattern matches.
func findDimensions(text string) (string, int) {
	for _, pattern := range dimensionPatterns {
		locs := pattern.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			continue
		}
		best := locs[0]
		for _, loc := range locs[1:] {
			if loc[1]-loc[0] > best[1]-best[0] {
				best = loc
			}
		}
		return strings.TrimSpace(text[best[0]:best[1]]), best[0]
	}
	return "", -1
}

// findMaterials scans caption words against the bilingual material lexicon
// and returns English canonical forms, deduplicated in scan order.
func findMaterials(text string, lex *lexicon.Lexicon) []string {
	folded := textnorm.Fold(text)
	seen := make(map[string]struct{})
	var materials []string
	for _, word := range wordPattern.FindAllString(folded, -1) {
		canonical, ok := lex.CanonicalMaterial(word)
		if !ok {
			continue
		}
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		materials = append(materials, canonical)
	}
	return materials
}

// findTitle extracts the caption's leading clause. An explicit emphasis span
// wins outright: curators encode the canonical title there when present.
// Otherwise the title ends at the earliest of a period-prefixed material
// keyword, a comma-prefixed year, or the start of a dimension pattern.
func findTitle(text string, lex *lexicon.Lexicon) string {
	for _, pattern := range emphasisPatterns {
		if m := pattern.FindStringSubmatch(text); len(m) == 2 {
			if title := strings.TrimSpace(m[1]); title != "" {
				return title
			}
		}
	}

	cut := len(text)
	if idx := materialSplitIndex(text, lex); idx >= 0 && idx < cut {
		cut = idx
	}
	if loc := commaYearPattern.FindStringIndex(text); loc != nil && loc[0] < cut {
		cut = loc[0]
	}
	if _, idx := findDimensions(text); idx >= 0 && idx < cut {
		cut = idx
	}

	title := strings.TrimRight(strings.TrimSpace(text[:cut]), " .,;:–-")
	return strings.TrimSpace(title)
}

// materialSplitIndex finds the position of the first period followed by a
// material keyword. Returns -1 when no such marker exists.
func materialSplitIndex(text string, lex *lexicon.Lexicon) int {
	for _, loc := range periodWordPattern.FindAllStringSubmatchIndex(text, -1) {
		word := textnorm.Fold(text[loc[2]:loc[3]])
		if _, ok := lex.CanonicalMaterial(word); ok {
			return loc[0]
		}
	}
	return -1
}
