package services

import "context"

type contextKey string

const (
	projectKey contextKey = "project"
	stageKey   contextKey = "stage"
	batchKey   contextKey = "batch"
	runIDKey   contextKey = "run_id"
)

// WithProject annotates context with the active project name.
func WithProject(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, projectKey, name)
}

// ProjectFromContext returns the project name if present.
func ProjectFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(projectKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithStage annotates context with the pipeline stage name.
func WithStage(ctx context.Context, stage string) context.Context {
	if stage == "" {
		return ctx
	}
	return context.WithValue(ctx, stageKey, stage)
}

// StageFromContext returns the stage name if present.
func StageFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(stageKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithBatch annotates context with the zero-based generation batch index.
func WithBatch(ctx context.Context, index int) context.Context {
	return context.WithValue(ctx, batchKey, index)
}

// BatchFromContext returns the batch index if present.
func BatchFromContext(ctx context.Context) (int, bool) {
	switch v := ctx.Value(batchKey).(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	default:
		return 0, false
	}
}

// WithRunID annotates context with a correlation identifier for one pipeline run.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the correlation identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
