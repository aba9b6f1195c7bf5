package sink

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func realDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestValidatePathRootItself(t *testing.T) {
	root := realDir(t)

	resolved, err := ValidatePath(root, root)
	if err != nil {
		t.Fatalf("ValidatePath for root itself: %v", err)
	}
	if resolved != root {
		t.Errorf("got %q, want %q", resolved, root)
	}
}

func TestValidatePathInside(t *testing.T) {
	root := realDir(t)

	resolved, err := ValidatePath(root, filepath.Join(root, "web", "vite.config.js"))
	if err != nil {
		t.Fatalf("ValidatePath: %v", err)
	}
	if want := filepath.Join(root, "web", "vite.config.js"); resolved != want {
		t.Errorf("got %q, want %q", resolved, want)
	}
}

func TestValidatePathMissingRoot(t *testing.T) {
	root := filepath.Join(realDir(t), ".web")

	if _, err := ValidatePath(root, filepath.Join(root, "vite.config.js")); err != nil {
		t.Fatalf("a root that does not exist yet should be accepted: %v", err)
	}
}

func TestValidatePathRejectsDotDot(t *testing.T) {
	root := realDir(t)

	for _, rel := range []string{"../escape.txt", "sub/../../escape.txt", "a/b/c/../../../../escape.txt"} {
		_, err := ValidatePath(root, filepath.Join(root, rel))
		if err == nil {
			t.Fatalf("expected error for %s", rel)
		}
		if !strings.Contains(err.Error(), "outside the output root") {
			t.Errorf("unexpected error: %v", err)
		}
	}
}

func TestValidatePathRejectsSiblingPrefix(t *testing.T) {
	parent := realDir(t)
	root := filepath.Join(parent, "web")

	if _, err := ValidatePath(root, filepath.Join(parent, "web2", "file.js")); err == nil {
		t.Fatal("expected error for sibling directory sharing the root prefix")
	}
}

func TestValidatePathRejectsSymlinkEscape(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink test not reliable on Windows")
	}

	root := realDir(t)
	outside := realDir(t)
	link := filepath.Join(root, "escape-link")
	if err := os.Symlink(outside, link); err != nil {
		t.Fatalf("creating symlink: %v", err)
	}

	_, err := ValidatePath(root, filepath.Join(link, "file.txt"))
	if err == nil {
		t.Fatal("expected error for symlink escape")
	}
	if !strings.Contains(err.Error(), "outside the output root") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFileSinkWritesNewFile(t *testing.T) {
	root := realDir(t)
	path := filepath.Join(root, ".web", "vite.config.js")
	s := &FileSink{Root: root}

	action, err := s.Save(path, "export default {};")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if action != ActionNew {
		t.Errorf("action = %q, want %q", action, ActionNew)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(data) != "export default {};" {
		t.Errorf("content = %q", string(data))
	}
}

func TestFileSinkUnchangedAndModified(t *testing.T) {
	root := realDir(t)
	path := filepath.Join(root, "vite.config.js")
	s := &FileSink{Root: root}

	if _, err := s.Save(path, "one"); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	action, err := s.Save(path, "one")
	if err != nil {
		t.Fatal(err)
	}
	if action != ActionUnchanged {
		t.Errorf("action = %q, want %q", action, ActionUnchanged)
	}
	after, _ := os.Stat(path)
	if !after.ModTime().Equal(info.ModTime()) {
		t.Error("unchanged content should not be rewritten")
	}

	action, err = s.Save(path, "two")
	if err != nil {
		t.Fatal(err)
	}
	if action != ActionModified {
		t.Errorf("action = %q, want %q", action, ActionModified)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "two" {
		t.Errorf("content = %q, want %q", string(data), "two")
	}
}

func TestFileSinkDryRun(t *testing.T) {
	root := realDir(t)
	path := filepath.Join(root, "vite.config.js")
	s := &FileSink{Root: root, DryRun: true}

	action, err := s.Save(path, "text")
	if err != nil {
		t.Fatal(err)
	}
	if action != ActionNew {
		t.Errorf("action = %q, want %q", action, ActionNew)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("dry run must not create the file")
	}
}

func TestFileSinkRejectsEscape(t *testing.T) {
	root := filepath.Join(realDir(t), "web")
	s := &FileSink{Root: root}

	if _, err := s.Save(filepath.Join(root, "..", "vite.config.js"), "bad"); err == nil {
		t.Fatal("expected error for escape attempt")
	}
}

func TestFileSinkPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission test not reliable on Windows")
	}

	root := realDir(t)
	path := filepath.Join(root, "vite.config.js")
	s := &FileSink{Root: root, Perm: 0600}

	if _, err := s.Save(path, "x"); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected permission 0600, got %04o", perm)
	}
}

func TestFileSinkLeavesNoTempFiles(t *testing.T) {
	root := realDir(t)
	s := &FileSink{Root: root}

	if _, err := s.Save(filepath.Join(root, "vite.config.js"), "x"); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}
