package preflight

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()
	if result := CheckDirectoryAccess("dir", dir); !result.Passed {
		t.Fatalf("writable temp dir failed: %+v", result)
	}

	if result := CheckDirectoryAccess("dir", filepath.Join(dir, "absent")); result.Passed {
		t.Fatal("missing directory must fail")
	}

	file := filepath.Join(dir, "plain")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckDirectoryAccess("dir", file); result.Passed {
		t.Fatal("regular file must fail the directory check")
	}
}

func TestCheckDiskSpace(t *testing.T) {
	dir := t.TempDir()
	if result := CheckDiskSpace("space", dir, 0); !result.Passed {
		t.Fatalf("zero requirement failed: %+v", result)
	}
	// No filesystem has an exbibyte free.
	if result := CheckDiskSpace("space", dir, 1<<30); result.Passed {
		t.Fatal("absurd requirement must fail")
	}
}

func TestAllPassed(t *testing.T) {
	if !AllPassed([]Result{{Passed: true}, {Passed: true}}) {
		t.Fatal("all passing should report true")
	}
	if AllPassed([]Result{{Passed: true}, {Passed: false}}) {
		t.Fatal("one failure should report false")
	}
	if !AllPassed(nil) {
		t.Fatal("empty result set counts as passed")
	}
}
