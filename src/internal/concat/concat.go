package concat

import (
	"github.com/maksimkurb/hosts-concat/src/internal/config"
	"github.com/maksimkurb/hosts-concat/src/internal/errors"
	"github.com/maksimkurb/hosts-concat/src/internal/hooks"
	"github.com/maksimkurb/hosts-concat/src/internal/hosts"
	"github.com/maksimkurb/hosts-concat/src/internal/lists"
	"github.com/maksimkurb/hosts-concat/src/internal/log"
)

// Report describes the outcome of a run.
type Report struct {
	// Files is the number of input files found in the scan directory.
	Files int
	// FailedFiles is the number of input files that could not be read.
	FailedFiles int
	// Size is the aggregate length in bytes of the inputs that were read.
	Size int
	// Entries is the number of distinct hosts after merging.
	Entries int
	// Excluded is the number of merged hosts dropped by the allow-list.
	Excluded int
	// Written is the number of hosts in the output.
	Written int
	// InvalidNames lists output names that are not valid DNS names.
	InvalidNames []string
	// Saved is set when the output file was written.
	Saved bool
	// Unchanged is set when the write was skipped because the file already
	// had the same content.
	Unchanged bool
}

// Run performs a full build with the given configuration. Hooks are fired on
// the calling goroutine; h may be nil.
func Run(cfg *config.Config, h *hooks.Hooks) Report {
	h.Start(cfg)

	merged, report := collect(cfg, h)

	text := hosts.Build(merged, hosts.Format{
		HostIP:    cfg.HostIP,
		LineSpace: cfg.LineSpace,
		LineBreak: cfg.LineBreak,
	})
	text = h.Build(text, cfg)

	outputPath := cfg.GetAbsOutputPath()
	written, err := lists.SaveOutput(outputPath, text, cfg.SkipUnchanged)
	if err != nil {
		h.Error(errors.NewWriteError(outputPath, err))
		return report
	}
	report.Saved = written
	report.Unchanged = !written
	log.Debugf("Output %s: %d hosts, %d bytes", outputPath, report.Written, len(text))

	h.Finish(cfg)
	return report
}

// Check performs every step of a run up to rendering, without firing the
// start, build and finish hooks and without touching the output file. Errors
// are still delivered to the error hooks.
func Check(cfg *config.Config, h *hooks.Hooks) Report {
	_, report := collect(cfg, h)
	return report
}

func collect(cfg *config.Config, h *hooks.Hooks) (hosts.Mapping, Report) {
	var report Report

	allow := loadAllowList(cfg, h)

	scanDir := cfg.GetAbsScanDir()
	paths, err := lists.Scan(scanDir, cfg.ScanPattern)
	if err != nil {
		h.Error(errors.NewScanError(scanDir, err))
		paths = nil
	}
	report.Files = len(paths)
	log.Debugf("Found %d files in %s", len(paths), scanDir)

	mappings := make([]hosts.Mapping, 0, len(paths))
	for _, result := range lists.ReadAll(paths, cfg.Concurrency) {
		if result.Err != nil {
			report.FailedFiles++
			h.Error(errors.NewReadError(result.Path, result.Err))
			continue
		}
		report.Size += len(result.Text)
		mappings = append(mappings, hosts.Parse(result.Text))
	}

	merged := hosts.MergeAll(mappings...)
	filtered := hosts.Exclude(merged, allow)

	report.Entries = len(merged)
	report.Excluded = len(merged) - len(filtered)
	report.Written = len(filtered)
	report.InvalidNames = hosts.InvalidNames(filtered)

	return filtered, report
}

func loadAllowList(cfg *config.Config, h *hooks.Hooks) hosts.Mapping {
	path := cfg.GetAbsAllowListPath()
	if path == "" {
		log.Debugf("Allow-list is disabled")
		return hosts.Mapping{}
	}

	text, err := lists.ReadFile(path)
	if err != nil {
		h.Error(errors.NewAllowListError(path, err))
		return hosts.Mapping{}
	}

	allow := hosts.Parse(text)
	log.Debugf("Loaded %d allowed hosts from %s", len(allow), path)
	return allow
}
