// Package deps reports the availability of the external binaries the
// pipeline shells out to.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/ConnorNovak/cd-ripper/internal/config"
)

// Requirement defines an external dependency cdrip relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// Defaults lists the external tools for the configured binaries.
func Defaults(cfg *config.Config) []Requirement {
	return []Requirement{
		{Name: "cdparanoia", Command: cfg.Tools.Cdparanoia, Description: "extracts raw audio tracks from the disc"},
		{Name: "ffmpeg", Command: cfg.Tools.FFmpeg, Description: "converts .wav tracks to .mp3"},
		{Name: "mid3v2", Command: cfg.Tools.Mid3v2, Description: "writes ID3 tags to .mp3 files"},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
