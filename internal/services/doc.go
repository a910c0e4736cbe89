// Package services provides the shared error taxonomy and context carriers
// used across downsort components. Sentinel markers distinguish fatal
// configuration and enumeration problems from per-entry placement failures.
package services
