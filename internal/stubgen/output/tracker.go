package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// TrackerFilename is the build-state file kept in the output root. It records
// every path the previous run wrote, so the next run can delete output left
// behind by songs removed from the content file.
const TrackerFilename = ".stubgen-manifest.json"

type trackerState struct {
	GeneratedAt string   `json:"generatedAt"`
	Paths       []string `json:"paths"`
}

// ReadTracker returns the set of output-relative paths written by the
// previous run. A missing or unreadable tracker is a first run: empty set.
func ReadTracker(outDir string) map[string]bool {
	data, err := os.ReadFile(filepath.Join(outDir, TrackerFilename))
	if err != nil {
		return map[string]bool{}
	}

	var state trackerState
	if err := json.Unmarshal(data, &state); err != nil {
		return map[string]bool{}
	}

	paths := make(map[string]bool, len(state.Paths))
	for _, p := range state.Paths {
		paths[p] = true
	}
	return paths
}

// WriteTracker persists the paths written by this run.
func WriteTracker(outDir string, paths map[string]bool, now time.Time) error {
	sorted := make([]string, 0, len(paths))
	for p := range paths {
		sorted = append(sorted, p)
	}
	sort.Strings(sorted)

	state := trackerState{
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Paths:       sorted,
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tracker: %w", err)
	}
	return os.WriteFile(filepath.Join(outDir, TrackerFilename), data, 0644)
}

// StalePaths returns previous-run paths that were not written this run,
// sorted for deterministic logs.
func StalePaths(prev, current map[string]bool) []string {
	var stale []string
	for p := range prev {
		if !current[p] {
			stale = append(stale, p)
		}
	}
	sort.Strings(stale)
	return stale
}
