// Package history records organizing run outcomes in a SQLite ledger so past
// runs can be inspected from the CLI. The engine treats every write here as
// best-effort: history failures never fail a run.
package history
