// Package standings provides the immutable snapshot of a division: every
// competitor's record and the pairwise counts of games still to be played.
//
// A Model is built once with New (or read from the whitespace table format
// with Read/ReadFile) and is then only read. Accessors return copies, so a
// Model can be shared freely between goroutines and between elimination
// queries without locking.
//
// Validation policy:
//
//   - Structural problems are fatal and reported as ErrInvalidModel:
//     ID not equal to its position, negative counts, an Against row of the
//     wrong length, asymmetric pairwise counts, empty or duplicate names.
//   - A Remaining value that disagrees with the sum of the Against row is NOT
//     fatal. It is recorded as an InconsistentScheduleWarning (see Warnings);
//     consumers use the Against values, which are what bound pairwise games.
//
// Errors:
//
//	ErrNotFound      - id or name absent from the model.
//	ErrInvalidPair   - GamesRemaining(i, j) with i == j or an unknown id.
//	ErrInvalidModel  - structural validation failure in New.
//	ErrMalformedRow  - Read could not parse a row (wrapped in *ParseError).
//
// Table format (Read):
//
//	4
//	Atlanta       83 71  8  0 1 6 1
//	Philadelphia  80 79  3  1 0 0 2
//	New_York      78 78  6  6 0 0 0
//	Montreal      77 82  3  1 2 0 0
//
// The first line is a header and is discarded; row order defines the id.
package standings
