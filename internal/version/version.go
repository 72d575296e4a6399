// Package version собирает сведения о сборке, проставленные через -ldflags:
//
//	go build -ldflags "-X github.com/aravasio/simworld/internal/version.BuildDate=2026-01-15"
package version

import (
	"fmt"
	"time"
)

var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
	BuildCI     string
)

// buildEpoch - день 0 нумерации сборок.
var buildEpoch = time.Date(
	2025, time.December, 4,
	0, 0, 0, 0,
	time.UTC,
)

// VersionInfo describes the build metadata in structured form.
type VersionInfo struct {
	BuildID    int    `json:"buildId"`
	BuildDate  string `json:"buildDate"`
	Commit     string `json:"commit"`
	Branch     string `json:"branch"`
	CI         string `json:"ci"`
	Calculated bool   `json:"calculated"`
	Error      string `json:"error,omitempty"`
}

// CalculateBuildID - номер сборки для BuildDate.
func CalculateBuildID() (int, error) {
	return BuildIDFor(BuildDate)
}

// BuildIDFor - число дней от эпохи до date.
func BuildIDFor(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", date, err)
	}

	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", date)
	}

	// Using hours avoids DST issues; epoch and build date are both UTC.
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Info - сведения о сборке. Без BuildDate Calculated == false, причина в Error.
func Info() VersionInfo {
	info := VersionInfo{
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
		CI:        BuildCI,
	}

	if id, err := CalculateBuildID(); err != nil {
		info.Error = err.Error()
	} else {
		info.BuildID, info.Calculated = id, true
	}
	return info
}

// String - строка для `simworld version`.
func String() string {
	info := Info()

	if !info.Calculated {
		return fmt.Sprintf("simworld build unknown (%s)", info.Error)
	}

	return fmt.Sprintf(
		"simworld build %d (%s) commit[%s] branch[%s] ci[%s]",
		info.BuildID,
		info.BuildDate,
		coalesce(info.Commit, "unknown"),
		coalesce(info.Branch, "unknown"),
		coalesce(info.CI, "local"),
	)
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
