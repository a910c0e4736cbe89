// Package preflight validates run preconditions before any mutation occurs.
package preflight
