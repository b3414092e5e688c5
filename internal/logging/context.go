package logging

import (
	"context"
	"log/slog"

	"mcarve/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldProject is the standardized structured logging key for project names.
	FieldProject = "project"
	// FieldStage is the standardized structured logging key for pipeline stage names.
	FieldStage = "stage"
	// FieldBatch is the standardized structured logging key for generation batch indexes.
	FieldBatch = "batch"
	// FieldRunID is the standardized structured logging key for run correlation identifiers.
	FieldRunID = "run_id"
	// FieldTile is the standardized structured logging key for source tile paths.
	FieldTile = "tile"
	// FieldRegion is the standardized structured logging key for region file names.
	FieldRegion = "region"
	// FieldEventType is the standardized structured logging key for machine-readable event tags.
	FieldEventType = "event_type"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 4)
	if project, ok := services.ProjectFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldProject, project))
	}
	if stage, ok := services.StageFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldStage, stage))
	}
	if batch, ok := services.BatchFromContext(ctx); ok {
		fields = append(fields, slog.Int(FieldBatch, batch))
	}
	if id, ok := services.RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
