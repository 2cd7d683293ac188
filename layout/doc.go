// Package layout word-wraps the transformed message for display and maps
// between flat rune indexes and wrapped (row, col) positions.
//
// Wrapped lines are derived data: they are rebuilt from the current text on
// every frame. The rune count of the wrapped lines is not guaranteed to equal
// the rune count of the source text, so lookups report out-of-range indexes
// instead of assuming the two agree.
package layout
