package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionFormat(t *testing.T) {
	if Version == "" {
		t.Fatal("Version is empty")
	}
	if !semverRegex.MatchString(Version) {
		t.Errorf("Version %q does not match semver format (x.y.z)", Version)
	}
	if Short() != "v"+Version {
		t.Errorf("Short() = %q", Short())
	}
}

func TestInfo(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"version", Short()},
		{"commit", GitCommit},
		{"build date", BuildDate},
		{"go version", runtime.Version()},
		{"platform", runtime.GOOS + "/" + runtime.GOARCH},
	}

	info := Info()
	if !strings.HasPrefix(info, "mystring ") {
		t.Errorf("Info() = %q, want prefix %q", info, "mystring ")
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(info, tt.want) {
				t.Errorf("Info() does not contain %q:\n%s", tt.want, info)
			}
		})
	}
}
