package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir     string
	configPath  string
	projectsDir string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	projectsDir := filepath.Join(base, "projects")
	logDir := filepath.Join(base, "logs")

	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf("[paths]\nprojects_dir = %q\nlog_dir = %q\n", projectsDir, logDir)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}

	return &cliTestEnv{baseDir: base, configPath: configPath, projectsDir: projectsDir}
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func TestNewCreatesProjectLayoutAndCheckpoint(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env, "new", "alpha")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	requireContains(t, out, "Project alpha created")

	for _, sub := range []string{"input", "projected", "regions"} {
		dir := filepath.Join(env.projectsDir, "alpha", sub)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", dir, err)
		}
	}

	out, err = runCLI(t, env, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "alpha")
	requireContains(t, out, "not-started")
}

func TestNewRejectsDuplicateProject(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, err := runCLI(t, env, "new", "alpha"); err != nil {
		t.Fatalf("first new: %v", err)
	}
	if _, err := runCLI(t, env, "new", "alpha"); err == nil {
		t.Fatal("expected duplicate project creation to fail")
	}
}

func TestNewRejectsInvalidName(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, err := runCLI(t, env, "new", "bad/name"); err == nil {
		t.Fatal("expected invalid project name to fail")
	}
}

func TestNewDSMFlagRecordsDataKind(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, err := runCLI(t, env, "new", "surface", "--dsm"); err != nil {
		t.Fatalf("new --dsm: %v", err)
	}

	out, err := runCLI(t, env, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "DSM")
}

func TestListWithoutProjects(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "No projects available to resume")
}

func TestResumeWithoutArgumentListsResumable(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env, "resume")
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	requireContains(t, out, "No projects available to resume")

	if _, err := runCLI(t, env, "new", "alpha"); err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err = runCLI(t, env, "resume")
	if err != nil {
		t.Fatalf("resume after new: %v", err)
	}
	requireContains(t, out, "alpha (not-started)")
}

func TestResumeUnknownProjectFails(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, err := runCLI(t, env, "resume", "ghost"); err == nil {
		t.Fatal("expected resume of unknown project to fail")
	}
}

func TestStatusUnknownProjectFails(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, err := runCLI(t, env, "status", "ghost"); err == nil {
		t.Fatal("expected status of unknown project to fail")
	}
}

func TestStatusShowsProjectState(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, err := runCLI(t, env, "new", "alpha"); err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := runCLI(t, env, "status", "alpha")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "Project alpha")
	requireContains(t, out, "state: not-started")
	requireContains(t, out, "input tiles: 0")
}

func TestConfigInitWritesSample(t *testing.T) {
	env := setupCLITestEnv(t)

	target := filepath.Join(env.baseDir, "fresh", "config.toml")
	out, err := runCLI(t, env, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, err := runCLI(t, env, "config", "init", "--path", target); err == nil {
		t.Fatal("expected second init to refuse overwriting")
	}
}

func TestConfigShowReportsResolvedValues(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, env.configPath)
	requireContains(t, out, env.projectsDir)
	requireContains(t, out, "nodata value:       -9999")
}
