package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsConfigName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"tsconfig.json", true},
		{"tsconfig.base.json", true},
		{"tsconfig.build.json", true},
		{"TSCONFIG.JSON", true},
		{"TsConfig.Base.Json", true},
		{"tsconfig.json.bak", false},
		{"mytsconfig.json", false},
		{"config.json", false},
		{"tsconfig", false},
		{"tsconfig.a.b.json", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsConfigName(tt.name); got != tt.want {
			t.Errorf("IsConfigName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	nested := filepath.Join(root, "src", "app")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(nested, "tsconfig.json")
	if err := os.WriteFile(file, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := FindRoot(file)
	if got != root {
		t.Errorf("FindRoot(%q) = %q, want %q", file, got, root)
	}
}

func TestFindRootNone(t *testing.T) {
	// A bare temp dir has no markers anywhere up to the filesystem root
	// in the common case; tolerate environments where an ancestor does.
	dir := t.TempDir()
	file := filepath.Join(dir, "tsconfig.json")
	if err := os.WriteFile(file, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := FindRoot(file)
	if got != "" && !isAncestor(got, dir) {
		t.Errorf("FindRoot() = %q, want empty or an ancestor of %q", got, dir)
	}
}

func isAncestor(root, dir string) bool {
	rel, err := filepath.Rel(root, dir)
	return err == nil && rel != ".." && !filepath.IsAbs(rel)
}

func TestRelativePath(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "packages", "core", "tsconfig.json")

	got := RelativePath(root, file)
	want := filepath.Join("packages", "core", "tsconfig.json")
	if got != want {
		t.Errorf("RelativePath() = %q, want %q", got, want)
	}
}

func TestRelativePathNoRoot(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tsconfig.json")

	got := RelativePath("", file)
	if !filepath.IsAbs(got) {
		t.Errorf("RelativePath with empty root = %q, want absolute path", got)
	}
}

func TestRelativePathUnrelated(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(t.TempDir(), "tsconfig.json")

	got := RelativePath(root, file)
	if !filepath.IsAbs(got) {
		t.Errorf("RelativePath with unrelated root = %q, want absolute path", got)
	}
}
