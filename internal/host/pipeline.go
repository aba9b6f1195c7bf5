// Package host is a minimal pre-compile host: plugins register save tasks
// and the pipeline runs them through a sink.
package host

import (
	"context"
	"fmt"
	"sync"

	"github.com/bianoble/viteconf/internal/ctxlog"
	"github.com/bianoble/viteconf/internal/sink"
)

// SaveTask produces one file: its destination path and content.
type SaveTask = func() (path, text string, err error)

// PreCompileContext is what a plugin sees during the pre-compile phase.
type PreCompileContext interface {
	AddSaveTask(task SaveTask)
}

// Plugin hooks into the pre-compile phase.
type Plugin interface {
	Name() string
	PreCompile(ctx PreCompileContext)
}

// FileAction records what the sink did with one file.
type FileAction struct {
	Path   string
	Action sink.Action
}

// Pipeline collects save tasks and runs them in registration order. Tasks
// may be added concurrently.
type Pipeline struct {
	mu    sync.Mutex
	tasks []SaveTask
	sink  sink.Sink
}

// New creates a Pipeline writing through s.
func New(s sink.Sink) *Pipeline {
	return &Pipeline{sink: s}
}

// AddSaveTask implements PreCompileContext.
func (p *Pipeline) AddSaveTask(task SaveTask) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tasks = append(p.tasks, task)
}

// PreCompile gives each plugin the chance to register tasks.
func (p *Pipeline) PreCompile(ctx context.Context, plugins ...Plugin) {
	log := ctxlog.FromContext(ctx)
	for _, pl := range plugins {
		before := p.Len()
		pl.PreCompile(p)
		log.Debug("pre-compile hook ran", "plugin", pl.Name(), "tasks", p.Len()-before)
	}
}

// Len returns the number of registered tasks.
func (p *Pipeline) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.tasks)
}

// Run executes every registered task and saves its output. It stops at the
// first failure and returns the actions completed so far.
func (p *Pipeline) Run(ctx context.Context) ([]FileAction, error) {
	p.mu.Lock()
	tasks := append([]SaveTask(nil), p.tasks...)
	p.mu.Unlock()

	log := ctxlog.FromContext(ctx)
	var done []FileAction
	for i, task := range tasks {
		if err := ctx.Err(); err != nil {
			return done, err
		}

		path, text, err := task()
		if err != nil {
			return done, fmt.Errorf("save task %d: %w", i, err)
		}
		action, err := p.sink.Save(path, text)
		if err != nil {
			return done, fmt.Errorf("saving %s: %w", path, err)
		}

		log.Debug("saved file", "path", path, "action", string(action), "bytes", len(text))
		done = append(done, FileAction{Path: path, Action: action})
	}
	return done, nil
}
