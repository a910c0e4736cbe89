// Package classify decides where a file belongs. The extension table and age
// threshold live in an immutable Ruleset so the policy is data-driven and
// testable in isolation from the file system.
package classify
