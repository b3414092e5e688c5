// Package project manages the fixed on-disk layout of one conversion
// project: an input directory of source tiles, an intermediate directory of
// reprojected tiles, and the output directory of region files.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"mcarve/internal/services"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateName checks a user-supplied project name. Names become directory
// names, so only a conservative charset is allowed.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", services.Wrap(services.ErrValidation, "project", "validate name",
			"Project name is required", nil)
	}
	if !namePattern.MatchString(name) {
		return "", services.Wrap(services.ErrValidation, "project", "validate name",
			fmt.Sprintf("Project name %q may only contain letters, digits, hyphens, and underscores", name), nil)
	}
	return name, nil
}

// Project locates one project's directories under the projects root.
type Project struct {
	Name string
	Root string
}

// New resolves a project's layout without touching the filesystem.
func New(projectsDir, name string) Project {
	root := filepath.Join(projectsDir, name)
	return Project{Name: name, Root: root}
}

// InputDir holds the source raster tiles supplied by the operator.
func (p Project) InputDir() string { return filepath.Join(p.Root, "input") }

// ProjectedDir holds the reprojected tiles produced by the first stage.
func (p Project) ProjectedDir() string { return filepath.Join(p.Root, "projected") }

// RegionsDir holds the finished region container files.
func (p Project) RegionsDir() string { return filepath.Join(p.Root, "regions") }

// Exists reports whether the project root directory is present.
func (p Project) Exists() bool {
	info, err := os.Stat(p.Root)
	return err == nil && info.IsDir()
}

// Create materializes the directory layout. Creating an already-existing
// project is an error: each project exclusively owns its state.
func (p Project) Create() error {
	if p.Exists() {
		return services.Wrap(services.ErrValidation, "project", "create",
			fmt.Sprintf("Project %q already exists", p.Name), nil)
	}
	for _, dir := range []string{p.InputDir(), p.ProjectedDir(), p.RegionsDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create project directory %s: %w", dir, err)
		}
	}
	return nil
}

// EnsureLayout creates any missing directories for an existing project.
// Resumed runs call this so a manually pruned intermediate directory does
// not fail the stage with a confusing error.
func (p Project) EnsureLayout() error {
	for _, dir := range []string{p.InputDir(), p.ProjectedDir(), p.RegionsDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure project directory %s: %w", dir, err)
		}
	}
	return nil
}
