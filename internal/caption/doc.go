// Package caption extracts structured artwork fields from free-form
// bilingual caption text: title, production year, dimensions, and materials.
// Parsing is purely textual; unknown captions degrade to a permissive
// whole-caption title rather than an error, because an over-long title is a
// reviewable defect while a dropped caption is not.
package caption
