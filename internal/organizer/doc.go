// Package organizer sequences enumeration, classification, and placement
// for one target directory and reports per-file outcomes. A single bad file
// never aborts the batch; only enumeration failures are fatal.
package organizer
