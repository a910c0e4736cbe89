package services

import "context"

type contextKey string

const (
	runIDKey  contextKey = "run_id"
	targetKey contextKey = "target"
)

// WithRunID attaches a run identifier to the context for log correlation.
func WithRunID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the run identifier, if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(runIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// WithTarget attaches the directory being organized to the context.
func WithTarget(ctx context.Context, target string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, targetKey, target)
}

// TargetFromContext extracts the target directory, if present.
func TargetFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	target, ok := ctx.Value(targetKey).(string)
	if !ok || target == "" {
		return "", false
	}
	return target, true
}
