package api

import (
	"time"

	"github.com/maksimkurb/hosts-concat/src/internal/config"
)

// DataResponse wraps successful responses with a "data" field.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// VersionInfo contains build version information.
type VersionInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// BuildInfo describes a finished build.
type BuildInfo struct {
	StartedAt    time.Time `json:"started_at"`
	DurationMs   int64     `json:"duration_ms"`
	Files        int       `json:"files"`
	FailedFiles  int       `json:"failed_files"`
	Size         int       `json:"size"`
	Entries      int       `json:"entries"`
	Excluded     int       `json:"excluded"`
	Written      int       `json:"written"`
	InvalidNames []string  `json:"invalid_names,omitempty"`
	Saved        bool      `json:"saved"`
	Unchanged    bool      `json:"unchanged"`
	Errors       []string  `json:"errors,omitempty"`
}

// Succeeded reports whether the output file holds the result of this build.
func (b *BuildInfo) Succeeded() bool {
	return b.Saved || b.Unchanged
}

// StatusResponse returns version information and the last build, which is
// nil until the first build has run.
type StatusResponse struct {
	Version   VersionInfo `json:"version"`
	Building  bool        `json:"building"`
	LastBuild *BuildInfo  `json:"last_build"`
}

// ConfigResponse returns the effective configuration.
type ConfigResponse struct {
	Config     *config.Config `json:"config"`
	ScanDir    string         `json:"scan_dir"`
	OutputPath string         `json:"output_path"`
	AllowList  string         `json:"allow_list,omitempty"`
}

// HealthCheckResponse returns health check results.
type HealthCheckResponse struct {
	Healthy bool                   `json:"healthy"`
	Checks  map[string]CheckResult `json:"checks"`
}

// CheckResult contains the result of a single health check.
type CheckResult struct {
	Passed  bool   `json:"passed"`
	Message string `json:"message,omitempty"`
}
