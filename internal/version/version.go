// Package version holds build and version information for treectl.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Build information, overridable with -ldflags at build time.
var (
	// Version is the semantic version of the application
	Version = "0.3.0"

	// GitCommit is the git commit hash when the binary was built
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built
	BuildDate = "unknown"
)

// Info represents comprehensive version information
type Info struct {
	Version   string          `json:"version"`
	GitCommit string          `json:"gitCommit"`
	BuildDate string          `json:"buildDate"`
	GoVersion string          `json:"goVersion"`
	Platform  string          `json:"platform"`
	SemVer    *semver.Version `json:"-"`
}

// GetInfo returns the version information of this build.
func GetInfo() (*Info, error) {
	sv, err := semver.NewVersion(Version)
	if err != nil {
		return nil, fmt.Errorf("invalid semantic version '%s': %w", Version, err)
	}

	return &Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		SemVer:    sv,
	}, nil
}

// GetFormattedVersion returns a one-line version string.
func GetFormattedVersion() string {
	info, err := GetInfo()
	if err != nil {
		return fmt.Sprintf("treectl v%s (invalid version)", Version)
	}

	parts := []string{fmt.Sprintf("treectl v%s", info.Version)}

	if info.GitCommit != "unknown" && info.GitCommit != "" {
		shortCommit := info.GitCommit
		if len(shortCommit) > 7 {
			shortCommit = shortCommit[:7]
		}
		parts = append(parts, fmt.Sprintf("commit %s", shortCommit))
	}

	if info.BuildDate != "unknown" && info.BuildDate != "" {
		parts = append(parts, fmt.Sprintf("built %s", info.BuildDate))
	}

	return strings.Join(parts, ", ")
}

// GetDetailedVersion returns multi-line version information for debugging.
func GetDetailedVersion() string {
	info, err := GetInfo()
	if err != nil {
		return fmt.Sprintf("treectl v%s (error: %v)", Version, err)
	}

	buildType := "release"
	if IsDevelopment() {
		buildType = "development"
	}

	lines := []string{
		fmt.Sprintf("treectl v%s", info.Version),
		fmt.Sprintf("Build Type: %s", buildType),
		fmt.Sprintf("Git Commit: %s", info.GitCommit),
		fmt.Sprintf("Build Date: %s", info.BuildDate),
	}
	if meta := info.SemVer.Metadata(); meta != "" {
		lines = append(lines, fmt.Sprintf("Build Metadata: %s", meta))
	}
	lines = append(lines,
		fmt.Sprintf("Go Version: %s", info.GoVersion),
		fmt.Sprintf("Platform: %s", info.Platform))

	return strings.Join(lines, "\n")
}

// CompareVersions returns -1, 0 or 1 as v1 is older, equal or newer than v2.
func CompareVersions(v1, v2 string) (int, error) {
	sv1, err := semver.NewVersion(v1)
	if err != nil {
		return 0, fmt.Errorf("invalid version v1 '%s': %w", v1, err)
	}

	sv2, err := semver.NewVersion(v2)
	if err != nil {
		return 0, fmt.Errorf("invalid version v2 '%s': %w", v2, err)
	}

	return sv1.Compare(sv2), nil
}

// IsDevelopment reports whether the binary was built without commit or date
// information.
func IsDevelopment() bool {
	return GitCommit == "unknown" || BuildDate == "unknown"
}
