package textbox

import (
	_ "embed"
	"fmt"
	"regexp"
	"runtime"
	"strings"
)

//go:embed VERSION
var releaseVersion string

var releaseRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version is the release of this module, without a leading v.
func Version() string { return strings.TrimSpace(releaseVersion) }

// Release identifies the controller a host is built against.
type Release struct {
	Version string
	Go      string
}

func CurrentRelease() Release {
	return Release{Version: Version(), Go: runtime.Version()}
}

// Valid reports whether the release version is SemVer 2.0.0.
func (r Release) Valid() bool { return releaseRE.MatchString(r.Version) }

func (r Release) Tag() string { return "v" + r.Version }

func (r Release) String() string {
	return fmt.Sprintf("%s (%s)", r.Tag(), r.Go)
}
