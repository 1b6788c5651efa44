// Package ledger persists applied record-asset links in a local SQLite
// database. The ledger is what makes the external apply step safe: it
// derives which assets are already used, refuses conflicting links, and
// turns re-application of an existing link into a no-op.
package ledger
