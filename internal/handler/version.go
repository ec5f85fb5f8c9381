package handler

import (
	"net/http"
	"runtime"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version     string `json:"version"`
	SaveVersion string `json:"save_version"`
	GoVersion   string `json:"go_version"`
	BuildTime   string `json:"build_time,omitempty"`
	GitCommit   string `json:"git_commit,omitempty"`
}

// Build-time variables (injected via ldflags)
var (
	BuildTime = "unknown"
	GitCommit = "unset"
)

// HandleVersion reports the running build and the save format it writes
// @Summary Build and save format version
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(version, saveVersion string) http.HandlerFunc {
	if version == "" {
		version = "dev"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Version:     version,
			SaveVersion: saveVersion,
			GoVersion:   runtime.Version(),
			BuildTime:   BuildTime,
			GitCommit:   GitCommit,
		})
	}
}
