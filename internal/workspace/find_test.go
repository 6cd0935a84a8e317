package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func realPath(t *testing.T, path string) string {
	t.Helper()
	real, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("realpath: %v", err)
	}
	return real
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("index_base = 1\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestFindWithPrimaryMarker(t *testing.T) {
	root := realPath(t, t.TempDir())
	writeFile(t, filepath.Join(root, PrimaryMarker))

	nested := filepath.Join(root, "shots", "010", "cache")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}

	found, err := Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if found != root {
		t.Errorf("Find = %q, want %q", found, root)
	}
	if got := ConfigPath(found); got != filepath.Join(root, PrimaryMarker) {
		t.Errorf("ConfigPath = %q", got)
	}
}

func TestFindWithSecondaryMarker(t *testing.T) {
	root := realPath(t, t.TempDir())
	writeFile(t, filepath.Join(root, SecondaryMarker, "config.toml"))

	found, err := Find(root)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if found != root {
		t.Errorf("Find = %q, want %q", found, root)
	}
	if got := ConfigPath(found); got != filepath.Join(root, SecondaryMarker, "config.toml") {
		t.Errorf("ConfigPath = %q", got)
	}
}

func TestFindNearestWins(t *testing.T) {
	root := realPath(t, t.TempDir())
	writeFile(t, filepath.Join(root, PrimaryMarker))
	inner := filepath.Join(root, "show", "seq")
	writeFile(t, filepath.Join(inner, PrimaryMarker))

	found, err := Find(filepath.Join(inner, "shot"))
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if found != inner {
		t.Errorf("Find = %q, want %q", found, inner)
	}
}

func TestEmptyMarkerDirectoryIsIgnored(t *testing.T) {
	root := realPath(t, t.TempDir())
	if err := os.MkdirAll(filepath.Join(root, SecondaryMarker), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if hasMarker(root) {
		t.Error("a bare .kpart directory should not mark a workspace")
	}
}

func TestFindNoWorkspace(t *testing.T) {
	root, err := Find(t.TempDir())
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if root != "" {
		t.Errorf("Find returned %q, want no workspace", root)
	}
}

func TestStartDirUsesCwd(t *testing.T) {
	dir := realPath(t, t.TempDir())
	t.Chdir(dir)
	t.Setenv(EnvRoot, "")

	if got := realPath(t, StartDir()); got != dir {
		t.Errorf("StartDir() = %q, want %q", got, dir)
	}
}

func TestFindPreservesSymlinkPath(t *testing.T) {
	resolved := realPath(t, t.TempDir())

	symRoot := filepath.Join(t.TempDir(), "symlink-workspace")
	if err := os.Symlink(resolved, symRoot); err != nil {
		t.Skipf("symlink not supported: %v", err)
	}
	writeFile(t, filepath.Join(symRoot, PrimaryMarker))

	subdir := filepath.Join(symRoot, "shots", "020")
	if err := os.MkdirAll(subdir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	root, err := Find(subdir)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if root != symRoot {
		t.Errorf("Find returned %q, want %q (symlink path preserved)", root, symRoot)
	}
}
