package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// sizeSuffixPattern matches WordPress thumbnail suffixes like "-1024x693".
	sizeSuffixPattern = regexp.MustCompile(`-\d+x\d+$`)
	// idPrefixPattern matches numeric upload ID prefixes like "20180412_".
	idPrefixPattern = regexp.MustCompile(`^\d+_`)
	// extensionPattern matches a trailing file extension.
	extensionPattern = regexp.MustCompile(`\.[A-Za-z0-9]{1,5}$`)
	// tokenSplitPattern splits normalized text into tokens.
	tokenSplitPattern = regexp.MustCompile(`[-_\s]+`)
	// yearPattern matches a plausible production year.
	yearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// umlautReplacer applies German transliteration before generic diacritic
// folding. NFD stripping alone would turn "ü" into "u", which never matches
// the "ue" spelling the source filenames use.
var umlautReplacer = strings.NewReplacer(
	"ä", "ae", "Ä", "ae",
	"ö", "oe", "Ö", "oe",
	"ü", "ue", "Ü", "ue",
	"ß", "ss",
)

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases text, transliterates German umlauts, and strips any
// remaining combining marks (é -> e, å -> a).
func Fold(raw string) string {
	folded := umlautReplacer.Replace(raw)
	stripped, _, err := transform.String(diacriticStripper, folded)
	if err != nil {
		stripped = folded
	}
	return strings.ToLower(stripped)
}

// StripFilenameNoise removes the extension, a WordPress size suffix, and a
// numeric upload prefix from a filename. The order matters: the size suffix
// sits immediately before the extension.
func StripFilenameNoise(name string) string {
	name = strings.TrimSpace(name)
	name = extensionPattern.ReplaceAllString(name, "")
	name = sizeSuffixPattern.ReplaceAllString(name, "")
	name = idPrefixPattern.ReplaceAllString(name, "")
	return name
}

// Tokenize folds text and splits it into significant tokens. Tokens shorter
// than three characters or consisting only of digits are treated as noise.
func Tokenize(raw string) []string {
	folded := Fold(raw)
	parts := tokenSplitPattern.Split(folded, -1)
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if len(part) < 3 || isNumeric(part) {
			continue
		}
		tokens = append(tokens, part)
	}
	return tokens
}

// FilenameTokens normalizes a media filename into significant tokens.
// Empty or unparseable input yields an empty slice, never an error.
func FilenameTokens(filename string) []string {
	return Tokenize(StripFilenameNoise(filename))
}

// NameTokens normalizes a person or title string into significant tokens.
func NameTokens(name string) []string {
	return Tokenize(name)
}

// FilenameKey returns a canonical comparison key for a filename: the joined
// normalized tokens. Two size variants of the same upload share a key.
func FilenameKey(filename string) string {
	return strings.Join(FilenameTokens(filename), "-")
}

// Years extracts the 4-digit year tokens present in a filename after noise
// stripping. Size suffixes are removed first so "1024x2048" never reads as
// a year.
func Years(filename string) []string {
	return yearPattern.FindAllString(StripFilenameNoise(filename), -1)
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
