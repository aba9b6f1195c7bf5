package sink

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"sync"
)

// Drift describes a file whose content differs from what would be written.
type Drift struct {
	Path     string
	Expected string // sha256 of the generated text
	Actual   string // sha256 of the file on disk; empty when Missing
	Missing  bool
}

// Checker is a Sink that compares generated files with the disk instead of
// writing them. It is safe for concurrent use.
type Checker struct {
	mu      sync.Mutex
	checked []string
	drift   []Drift
}

// Save implements Sink. The returned action is the one a FileSink would
// take.
func (c *Checker) Save(path, text string) (Action, error) {
	d, err := Compare(path, text)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.checked = append(c.checked, path)
	if d == nil {
		return ActionUnchanged, nil
	}
	c.drift = append(c.drift, *d)
	if d.Missing {
		return ActionNew, nil
	}
	return ActionModified, nil
}

// Clean reports whether every checked file matched.
func (c *Checker) Clean() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.drift) == 0
}

// Drift returns the files that did not match, in check order.
func (c *Checker) Drift() []Drift {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Drift(nil), c.drift...)
}

// Checked returns every path compared so far.
func (c *Checker) Checked() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.checked...)
}

// Compare checks the file at path against text by sha256. It returns nil
// when they match.
func Compare(path, text string) (*Drift, error) {
	expected := sha256Hex([]byte(text))

	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Drift{Path: path, Expected: expected, Missing: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	actual := sha256Hex(content)
	if actual == expected {
		return nil, nil
	}
	return &Drift{Path: path, Expected: expected, Actual: actual}, nil
}

func sha256Hex(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
