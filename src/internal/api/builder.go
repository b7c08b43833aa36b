package api

import (
	"errors"
	"sync"
	"time"

	"github.com/maksimkurb/hosts-concat/src/internal/concat"
	"github.com/maksimkurb/hosts-concat/src/internal/config"
	"github.com/maksimkurb/hosts-concat/src/internal/hooks"
	"github.com/maksimkurb/hosts-concat/src/internal/log"
)

// ErrBuildInProgress is returned by Builder.Build while another build runs.
var ErrBuildInProgress = errors.New("build is already in progress")

// Builder runs builds one at a time and remembers the last result.
type Builder struct {
	cfg        *config.Config
	transforms []hooks.BuildFunc

	running sync.Mutex

	mu   sync.RWMutex
	last *BuildInfo
}

// NewBuilder creates a builder for cfg. transforms are applied to the output
// of every build, in order.
func NewBuilder(cfg *config.Config, transforms ...hooks.BuildFunc) *Builder {
	return &Builder{cfg: cfg, transforms: transforms}
}

// Config returns the configuration the builder runs with.
func (b *Builder) Config() *config.Config {
	return b.cfg
}

// Build runs a build and returns its summary, or ErrBuildInProgress.
func (b *Builder) Build() (*BuildInfo, error) {
	if !b.running.TryLock() {
		return nil, ErrBuildInProgress
	}
	defer b.running.Unlock()

	info := &BuildInfo{StartedAt: time.Now()}

	h := hooks.New().
		OnStart(func(cfg *config.Config) {
			log.Infof("Building %s", cfg.GetAbsOutputPath())
		}).
		OnError(func(err error) {
			log.Warnf("%v", err)
			info.Errors = append(info.Errors, err.Error())
		})
	for _, transform := range b.transforms {
		h.OnBuild(transform)
	}

	report := concat.Run(b.cfg, h)

	info.DurationMs = time.Since(info.StartedAt).Milliseconds()
	info.Files = report.Files
	info.FailedFiles = report.FailedFiles
	info.Size = report.Size
	info.Entries = report.Entries
	info.Excluded = report.Excluded
	info.Written = report.Written
	info.InvalidNames = report.InvalidNames
	info.Saved = report.Saved
	info.Unchanged = report.Unchanged

	b.mu.Lock()
	b.last = info
	b.mu.Unlock()

	return info, nil
}

// Building reports whether a build is currently running.
func (b *Builder) Building() bool {
	if b.running.TryLock() {
		b.running.Unlock()
		return false
	}
	return true
}

// Last returns the summary of the last build, or nil.
func (b *Builder) Last() *BuildInfo {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.last
}
