// Package textnorm normalizes filenames and names for token comparison.
//
// Catalog filenames arrive with WordPress size suffixes, numeric upload
// prefixes, and inconsistently transliterated umlauts. Normalization folds
// all of that into lowercase ASCII tokens so that variants of the same
// image compare equal.
package textnorm
