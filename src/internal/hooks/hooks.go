// Package hooks holds the lifecycle callbacks of a single build run.
package hooks

import "github.com/maksimkurb/hosts-concat/src/internal/config"

// StartFunc is called once before any I/O.
type StartFunc func(cfg *config.Config)

// ErrorFunc is called once per non-fatal failure.
type ErrorFunc func(err error)

// BuildFunc transforms the serialized output before it is persisted.
type BuildFunc func(text string, cfg *config.Config) string

// FinishFunc is called once after the output file has been saved.
type FinishFunc func(cfg *config.Config)

// Hooks is an ordered callback table. Handlers run in registration order on
// the goroutine that fires the event. A nil *Hooks fires nothing.
type Hooks struct {
	start  []StartFunc
	errors []ErrorFunc
	build  []BuildFunc
	finish []FinishFunc
}

// New returns an empty callback table.
func New() *Hooks {
	return &Hooks{}
}

// OnStart registers a start handler.
func (h *Hooks) OnStart(fn StartFunc) *Hooks {
	if fn != nil {
		h.start = append(h.start, fn)
	}
	return h
}

// OnError registers an error handler.
func (h *Hooks) OnError(fn ErrorFunc) *Hooks {
	if fn != nil {
		h.errors = append(h.errors, fn)
	}
	return h
}

// OnBuild registers a build transform.
func (h *Hooks) OnBuild(fn BuildFunc) *Hooks {
	if fn != nil {
		h.build = append(h.build, fn)
	}
	return h
}

// OnFinish registers a finish handler.
func (h *Hooks) OnFinish(fn FinishFunc) *Hooks {
	if fn != nil {
		h.finish = append(h.finish, fn)
	}
	return h
}

// Start fires the start handlers.
func (h *Hooks) Start(cfg *config.Config) {
	if h == nil {
		return
	}
	for _, fn := range h.start {
		fn(cfg)
	}
}

// Error fires the error handlers.
func (h *Hooks) Error(err error) {
	if h == nil || err == nil {
		return
	}
	for _, fn := range h.errors {
		fn(err)
	}
}

// Build threads text through every build transform, each receiving the
// previous one's result, and returns the final text.
func (h *Hooks) Build(text string, cfg *config.Config) string {
	if h == nil {
		return text
	}
	for _, fn := range h.build {
		text = fn(text, cfg)
	}
	return text
}

// Finish fires the finish handlers.
func (h *Hooks) Finish(cfg *config.Config) {
	if h == nil {
		return
	}
	for _, fn := range h.finish {
		fn(cfg)
	}
}
