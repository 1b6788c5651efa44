package lexicon

import (
	"artlink/internal/textnorm"
)

// Lexicon bundles the keyword tables used by the caption parser and the
// candidate scorer. Keys are stored in folded form (see textnorm.Fold) so
// lookups work on normalized tokens.
type Lexicon struct {
	materials  map[string]string
	nonArtwork map[string]struct{}
	stopwords  map[string]struct{}
}

// defaultMaterials maps German and English material keywords to their
// English canonical form. Folded spellings (tuerkis) are listed explicitly
// where the source data uses them.
var defaultMaterials = map[string]string{
	"gold":       "gold",
	"feingold":   "gold",
	"silber":     "silver",
	"feinsilber": "silver",
	"silver":     "silver",
	"keramik":    "ceramic",
	"ceramic":    "ceramic",
	"porzellan":  "porcelain",
	"porcelain":  "porcelain",
	"holz":       "wood",
	"wood":       "wood",
	"glas":       "glass",
	"glass":      "glass",
	"stahl":      "steel",
	"edelstahl":  "steel",
	"steel":      "steel",
	"eisen":      "iron",
	"iron":       "iron",
	"kupfer":     "copper",
	"copper":     "copper",
	"messing":    "brass",
	"brass":      "brass",
	"bronze":     "bronze",
	"titan":      "titanium",
	"titanium":   "titanium",
	"platin":     "platinum",
	"platinum":   "platinum",
	"emaille":    "enamel",
	"email":      "enamel",
	"enamel":     "enamel",
	"perle":      "pearl",
	"perlen":     "pearl",
	"pearl":      "pearl",
	"koralle":    "coral",
	"coral":      "coral",
	"bernstein":  "amber",
	"amber":      "amber",
	"diamant":    "diamond",
	"diamond":    "diamond",
	"granat":     "garnet",
	"garnet":     "garnet",
	"tuerkis":    "turquoise",
	"turquoise":  "turquoise",
	"achat":      "agate",
	"agate":      "agate",
	"onyx":       "onyx",
	"jade":       "jade",
	"leder":      "leather",
	"leather":    "leather",
	"textil":     "textile",
	"textile":    "textile",
	"papier":     "paper",
	"paper":      "paper",
	"kunststoff": "plastic",
	"plastic":    "plastic",
	"lack":       "lacquer",
	"lacquer":    "lacquer",
}

// defaultNonArtwork lists filename tokens that mark a different content
// category: people, venues, and event photography. A single hit rejects the
// asset outright.
var defaultNonArtwork = []string{
	"portrait",
	"portraet",
	"studio",
	"atelier",
	"werkstatt",
	"ausstellung",
	"exhibition",
	"galerie",
	"gallery",
	"vernissage",
	"messe",
	"pressefoto",
	"interview",
}

// defaultStopwords are creator-name tokens too generic to identify anyone:
// trade words and name particles that appear across unrelated creators.
var defaultStopwords = []string{
	"schmuck",
	"jewellery",
	"jewelry",
	"goldschmiede",
	"design",
	"von",
	"van",
	"der",
	"und",
	"and",
}

// Default returns the built-in bilingual lexicon.
func Default() *Lexicon {
	lex := &Lexicon{
		materials:  make(map[string]string, len(defaultMaterials)),
		nonArtwork: make(map[string]struct{}, len(defaultNonArtwork)),
		stopwords:  make(map[string]struct{}, len(defaultStopwords)),
	}
	for keyword, canonical := range defaultMaterials {
		lex.materials[textnorm.Fold(keyword)] = canonical
	}
	for _, term := range defaultNonArtwork {
		lex.nonArtwork[textnorm.Fold(term)] = struct{}{}
	}
	for _, term := range defaultStopwords {
		lex.stopwords[textnorm.Fold(term)] = struct{}{}
	}
	return lex
}

// MergeMaterials adds dataset-specific material keywords. Existing entries
// are overridden so operators can correct canonical forms.
func (l *Lexicon) MergeMaterials(extra map[string]string) {
	for keyword, canonical := range extra {
		if keyword == "" || canonical == "" {
			continue
		}
		l.materials[textnorm.Fold(keyword)] = canonical
	}
}

// MergeNonArtwork adds dataset-specific non-artwork indicator terms.
func (l *Lexicon) MergeNonArtwork(terms []string) {
	for _, term := range terms {
		if term == "" {
			continue
		}
		l.nonArtwork[textnorm.Fold(term)] = struct{}{}
	}
}

// MergeStopwords adds dataset-specific creator-name stopwords.
func (l *Lexicon) MergeStopwords(terms []string) {
	for _, term := range terms {
		if term == "" {
			continue
		}
		l.stopwords[textnorm.Fold(term)] = struct{}{}
	}
}

// CanonicalMaterial resolves a folded token to its English canonical
// material name.
func (l *Lexicon) CanonicalMaterial(token string) (string, bool) {
	canonical, ok := l.materials[token]
	return canonical, ok
}

// IsNonArtwork reports whether a folded token indicates non-artwork content.
func (l *Lexicon) IsNonArtwork(token string) bool {
	_, ok := l.nonArtwork[token]
	return ok
}

// NonArtworkTerm returns the first token in the list that indicates
// non-artwork content, for use in rejection reasons.
func (l *Lexicon) NonArtworkTerm(tokens []string) (string, bool) {
	for _, token := range tokens {
		if l.IsNonArtwork(token) {
			return token, true
		}
	}
	return "", false
}

// IsStopword reports whether a folded creator-name token is too generic to
// count as identifying.
func (l *Lexicon) IsStopword(token string) bool {
	_, ok := l.stopwords[token]
	return ok
}
