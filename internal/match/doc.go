// Package match implements the media-to-record matching engine: candidate
// scoring with hard gates, confidence classification, and deterministic
// assignment resolution.
//
// The engine is a pure decision function over in-memory records and assets.
// It never touches the network, the filesystem, or the catalog store; it
// only reports decisions, and a wrong decision silently corrupts the
// catalog, so every rule is conservative and every outcome carries a
// human-readable reason.
package match
