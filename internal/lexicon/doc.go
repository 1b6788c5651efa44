// Package lexicon holds the bilingual keyword tables consulted during
// caption parsing and candidate scoring: material terms with their English
// canonical forms, non-artwork context indicators, and creator-name
// stopwords. All tables are data, injectable per dataset.
package lexicon
