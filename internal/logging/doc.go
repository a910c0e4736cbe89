// Package logging configures slog output for downsort. It offers a console
// handler for interactive use, a JSON handler for machine consumption, and
// helpers for attaching run-scoped fields from the context.
package logging
