package stage

import (
	"context"

	"mcarve/internal/checkpoint"
)

// Handler describes the contract the stage driver needs from each pipeline
// stage. Prepare validates inputs and preconditions without mutating state;
// Execute runs the stage loop from the document's persisted cursor and
// updates the document as it goes.
type Handler interface {
	Prepare(context.Context, *checkpoint.Document) error
	Execute(context.Context, *checkpoint.Document) error
	HealthCheck(context.Context) Health
}
