package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/maksimkurb/hosts-concat/src/internal/log"
	"github.com/maksimkurb/hosts-concat/src/internal/utils"
)

var (
	// Version information set via ldflags at build time
	Version = "dev"
	Date    = "n/a"
	Commit  = "n/a"
)

// Handler serves the API endpoints on top of a Builder.
type Handler struct {
	builder *Builder
}

// NewHandler creates a new API handler.
func NewHandler(builder *Builder) *Handler {
	return &Handler{builder: builder}
}

// GetHosts streams the output file.
// GET /hosts.txt
func (h *Handler) GetHosts(w http.ResponseWriter, r *http.Request) {
	path := h.builder.Config().GetAbsOutputPath()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			WriteNotFound(w, "Hosts file")
			return
		}
		WriteInternalError(w, "Failed to open hosts file: "+err.Error())
		return
	}
	defer utils.CloseOrWarn(file)

	info, err := file.Stat()
	if err != nil {
		WriteInternalError(w, "Failed to stat hosts file: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	http.ServeContent(w, r, "hosts.txt", info.ModTime(), file)
}

// GetStatus returns version information and the last build.
// GET /api/v1/status
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, StatusResponse{
		Version: VersionInfo{
			Version: Version,
			Date:    Date,
			Commit:  Commit,
		},
		Building:  h.builder.Building(),
		LastBuild: h.builder.Last(),
	})
}

// RunBuild runs a build and returns its summary.
// POST /api/v1/build
func (h *Handler) RunBuild(w http.ResponseWriter, r *http.Request) {
	info, err := h.builder.Build()
	if errors.Is(err, ErrBuildInProgress) {
		WriteConflict(w, err.Error())
		return
	}
	if err != nil {
		WriteInternalError(w, err.Error())
		return
	}

	if !info.Succeeded() {
		WriteBuildError(w, "Output file was not saved", info.Errors)
		return
	}

	writeJSONData(w, info)
}

// GetConfig returns the effective configuration.
// GET /api/v1/config
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg := h.builder.Config()
	writeJSONData(w, ConfigResponse{
		Config:     cfg,
		ScanDir:    cfg.GetAbsScanDir(),
		OutputPath: cfg.GetAbsOutputPath(),
		AllowList:  cfg.GetAbsAllowListPath(),
	})
}

// CheckHealth checks that the configuration is valid and the input
// directory and output file exist.
// GET /api/v1/health
func (h *Handler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	cfg := h.builder.Config()
	response := HealthCheckResponse{
		Healthy: true,
		Checks:  make(map[string]CheckResult),
	}

	check := func(name string, err error, okMessage string) {
		if err != nil {
			response.Healthy = false
			response.Checks[name] = CheckResult{Passed: false, Message: err.Error()}
			return
		}
		response.Checks[name] = CheckResult{Passed: true, Message: okMessage}
	}

	check("config_validation", cfg.ValidateConfig(), "Configuration is valid")

	check("scan_directory", requireDir(cfg.GetAbsScanDir()), "Input directory exists")

	_, err := os.Stat(cfg.GetAbsOutputPath())
	check("output_file", err, "Output file exists")

	statusCode := http.StatusOK
	if !response.Healthy {
		statusCode = http.StatusServiceUnavailable
	}
	writeJSON(w, statusCode, response)
}

func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(DataResponse{Data: data}); err != nil {
		log.Debugf("Failed to write response: %v", err)
	}
}

// writeJSONData writes a successful JSON response with data.
func writeJSONData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}
