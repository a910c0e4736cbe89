// Package place performs the file-system mutations of a run: idempotent
// category folder creation and collision-safe moves.
package place
