package checkpoint

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Mode selects which stages a project runs.
type Mode string

const (
	ModeReproject Mode = "reproject"
	ModeGenerate  Mode = "generate"
	ModeAll       Mode = "all"
)

// ParseMode normalizes a user-supplied mode string.
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case ModeReproject:
		return ModeReproject, nil
	case ModeGenerate:
		return ModeGenerate, nil
	case ModeAll, "":
		return ModeAll, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want reproject, generate, or all)", raw)
	}
}

// IncludesReproject reports whether the mode runs the reprojection stage.
func (m Mode) IncludesReproject() bool { return m == ModeReproject || m == ModeAll }

// IncludesGenerate reports whether the mode runs the generation stage.
func (m Mode) IncludesGenerate() bool { return m == ModeGenerate || m == ModeAll }

// DataKind distinguishes bare-terrain elevation models from surface models
// that include buildings and vegetation.
type DataKind string

const (
	KindDEM DataKind = "dem"
	KindDSM DataKind = "dsm"
)

// Stage tags the stage a checkpointed run is currently inside.
type Stage string

const (
	StageReproject Stage = "reproject"
	StageGenerate  Stage = "generate"
)

// Document is the versioned pipeline-state record for one project. It is the
// sole source of truth for run parameters after creation: resumed runs read
// everything from here, never from the live config.
type Document struct {
	Project         string
	Mode            Mode
	DataKind        DataKind
	TargetCRS       string
	OffsetX         int
	OffsetY         int
	BatchSize       int
	Stage           Stage
	ReprojectCursor int
	ReprojectDone   bool
	GenerateCursor  int
	GenerateDone    bool
	Floor           *int
	RegionCount     int
	UpdatedAt       time.Time
}

// SetFloor freezes the elevation floor. Once set it is never recomputed for
// the project; callers must check HasFloor before estimating.
func (d *Document) SetFloor(floor int) {
	v := floor
	d.Floor = &v
}

// HasFloor reports whether the elevation floor has been frozen.
func (d *Document) HasFloor() bool { return d.Floor != nil }

// Validate checks the structural integrity of a document. A persisted
// document failing validation is treated as corrupt: fatal on an explicit
// resume, silently excluded from listings.
func (d *Document) Validate() error {
	if strings.TrimSpace(d.Project) == "" {
		return errors.New("checkpoint: empty project name")
	}
	switch d.Mode {
	case ModeReproject, ModeGenerate, ModeAll:
	default:
		return fmt.Errorf("checkpoint: unknown mode %q", d.Mode)
	}
	switch d.DataKind {
	case KindDEM, KindDSM:
	default:
		return fmt.Errorf("checkpoint: unknown data kind %q", d.DataKind)
	}
	switch d.Stage {
	case "", StageReproject, StageGenerate:
	default:
		return fmt.Errorf("checkpoint: unknown stage tag %q", d.Stage)
	}
	if strings.TrimSpace(d.TargetCRS) == "" {
		return errors.New("checkpoint: empty target CRS")
	}
	if d.BatchSize <= 0 {
		return fmt.Errorf("checkpoint: non-positive batch size %d", d.BatchSize)
	}
	if d.ReprojectCursor < 0 {
		return fmt.Errorf("checkpoint: negative reprojection cursor %d", d.ReprojectCursor)
	}
	if d.GenerateCursor < 0 {
		return fmt.Errorf("checkpoint: negative generation cursor %d", d.GenerateCursor)
	}
	return nil
}
