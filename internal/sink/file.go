package sink

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSink writes files to disk. Every path must resolve inside Root,
// symlinks included. Writes are atomic and files whose content already
// matches are left untouched.
type FileSink struct {
	// Root bounds every write. Empty means the working directory.
	Root string

	// DryRun reports the action without touching the file system.
	DryRun bool

	// Perm is the mode of written files. Zero means 0644.
	Perm os.FileMode
}

// Save implements Sink.
func (s *FileSink) Save(path, text string) (Action, error) {
	resolved, err := ValidatePath(s.root(), path)
	if err != nil {
		return "", err
	}

	content := []byte(text)
	action := ActionNew
	existing, err := os.ReadFile(resolved)
	switch {
	case err == nil && bytes.Equal(existing, content):
		return ActionUnchanged, nil
	case err == nil:
		action = ActionModified
	case !errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	if s.DryRun {
		return action, nil
	}
	if err := writeAtomic(resolved, content, s.perm()); err != nil {
		return "", err
	}
	return action, nil
}

func (s *FileSink) root() string {
	if s.Root == "" {
		return "."
	}
	return s.Root
}

func (s *FileSink) perm() os.FileMode {
	if s.Perm == 0 {
		return 0644
	}
	return s.Perm
}

// ValidatePath checks that target, taken relative to the working directory
// unless absolute, resolves inside root. Symlinks are followed as far as the
// path exists. Returns the resolved absolute path.
func ValidatePath(root, target string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving root: %w", err)
	}
	realRoot, err := resolveExistingPath(filepath.Clean(absRoot))
	if err != nil {
		return "", fmt.Errorf("resolving root symlinks: %w", err)
	}

	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("resolving target path: %w", err)
	}
	resolved, err := resolveExistingPath(filepath.Clean(absTarget))
	if err != nil {
		return "", fmt.Errorf("resolving target path: %w", err)
	}

	// The separator keeps "root2" from matching "root".
	rootPrefix := realRoot + string(filepath.Separator)
	if resolved != realRoot && !strings.HasPrefix(resolved, rootPrefix) {
		return "", fmt.Errorf("path '%s' resolves to '%s' which is outside the output root '%s'", target, resolved, realRoot)
	}
	return resolved, nil
}

// resolveExistingPath resolves symlinks for the longest existing prefix of
// path and appends the rest.
func resolveExistingPath(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}

	dir := filepath.Dir(path)
	if dir == path {
		return path, nil
	}
	resolvedDir, err := resolveExistingPath(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(resolvedDir, filepath.Base(path)), nil
}

// writeAtomic writes content to a temp file beside path and renames it into
// place.
func writeAtomic(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".viteconf-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}

	success = true
	return nil
}
