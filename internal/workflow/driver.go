// Package workflow sequences the pipeline stages for one project run. The
// driver owns the checkpoint lifecycle: it flushes the document at stage
// boundaries, leaves the last saved state intact on any failure or
// interruption, and deletes the checkpoint only after every selected stage
// has finished.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"mcarve/internal/checkpoint"
	"mcarve/internal/logging"
	"mcarve/internal/services"
	"mcarve/internal/stage"
)

// State describes where a project run stands.
type State string

const (
	StateNotStarted    State = "not-started"
	StateReprojecting  State = "reprojecting"
	StateReprojectDone State = "reproject-done"
	StateGenerating    State = "generating"
	StateGenerateDone  State = "generate-done"
	StateFinalized     State = "finalized"
)

// StateOf derives the run state from a checkpoint document. A nil document
// means the project either never started or finished cleanly.
func StateOf(doc *checkpoint.Document) State {
	switch {
	case doc == nil:
		return StateNotStarted
	case doc.GenerateDone:
		return StateGenerateDone
	case doc.Stage == checkpoint.StageGenerate:
		return StateGenerating
	case doc.ReprojectDone:
		return StateReprojectDone
	case doc.Stage == checkpoint.StageReproject:
		return StateReprojecting
	default:
		return StateNotStarted
	}
}

// Driver runs the staged pipeline against one checkpoint document.
type Driver struct {
	store     *checkpoint.Store
	saver     *checkpoint.TimedSaver
	reproject stage.Handler
	generate  stage.Handler
	logger    *slog.Logger
}

// New creates a driver. A nil logger disables logging.
func New(store *checkpoint.Store, saver *checkpoint.TimedSaver, reproject, generate stage.Handler, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Driver{
		store:     store,
		saver:     saver,
		reproject: reproject,
		generate:  generate,
		logger:    logger,
	}
}

// Run executes the document's remaining stages in order. It serves both
// fresh starts and resumes: the handlers re-enter their loops at the
// persisted cursors. On success the checkpoint is deleted; on any error the
// latest progress is flushed and the error returned.
func (d *Driver) Run(ctx context.Context, doc *checkpoint.Document) error {
	runID := uuid.NewString()
	ctx = services.WithProject(ctx, doc.Project)
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, d.logger)

	logger.Info("run started",
		logging.String(logging.FieldEventType, "run_start"),
		logging.String("mode", string(doc.Mode)),
		logging.String("state", string(StateOf(doc))))

	if err := d.saver.Flush(ctx, doc); err != nil {
		return err
	}

	if doc.Mode.IncludesReproject() && !doc.ReprojectDone {
		if err := d.runStage(ctx, "reproject", d.reproject, doc); err != nil {
			return err
		}
	}
	if doc.Mode.IncludesGenerate() && !doc.GenerateDone {
		if err := d.runStage(ctx, "generate", d.generate, doc); err != nil {
			return err
		}
	}

	// Finalized: every selected stage succeeded, so the checkpoint's job
	// is done and its absence becomes the "finished cleanly" signal.
	if err := d.store.Delete(ctx, doc.Project); err != nil {
		return fmt.Errorf("finalize run: %w", err)
	}
	logger.Info("run finalized",
		logging.String(logging.FieldEventType, "run_complete"),
		logging.Int("regions", doc.RegionCount))
	return nil
}

func (d *Driver) runStage(ctx context.Context, name string, handler stage.Handler, doc *checkpoint.Document) error {
	stageCtx := services.WithStage(ctx, name)
	logger := logging.WithContext(stageCtx, d.logger)

	if health := handler.HealthCheck(stageCtx); !health.Ready {
		return services.Wrap(services.ErrFatal, name, "health check", health.Detail, nil)
	}
	if err := handler.Prepare(stageCtx, doc); err != nil {
		return err
	}

	logger.Info("stage started", logging.String(logging.FieldEventType, "stage_start"))
	started := time.Now()
	if err := handler.Execute(stageCtx, doc); err != nil {
		// Preserve the latest cursor even when the stage context is
		// already cancelled.
		if flushErr := d.saver.Flush(context.WithoutCancel(stageCtx), doc); flushErr != nil {
			logger.Error("checkpoint flush failed after stage error", logging.Error(flushErr))
		}
		logger.Warn("stage halted",
			logging.String(logging.FieldEventType, "stage_halt"),
			logging.Error(err))
		return err
	}

	if err := d.saver.Flush(stageCtx, doc); err != nil {
		return err
	}
	logger.Info("stage finished",
		logging.String(logging.FieldEventType, "stage_complete"),
		logging.Duration("elapsed", time.Since(started)))
	return nil
}
