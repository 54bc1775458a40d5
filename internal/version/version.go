// Package version carries build metadata. Commit and BuildDate are set at
// link time with -ldflags "-X".
package version

import "fmt"

// Version is the release version of lumen.
var Version = "0.1.0"

var (
	Commit    string
	BuildDate string // YYYY-MM-DD (UTC)
)

// ModulePath is the Go module path of lumen.
const ModulePath = "github.com/mesh-intelligence/lumen"

// Info describes the build in structured form.
type Info struct {
	Version   string `json:"version"`
	Module    string `json:"module"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

// Get returns the current build Info.
func Get() Info {
	return Info{
		Version:   Version,
		Module:    ModulePath,
		Commit:    Commit,
		BuildDate: BuildDate,
	}
}

// String renders Info on one line, e.g. "lumen v0.1.0 (abc123)".
func (i Info) String() string {
	if i.Commit == "" {
		return fmt.Sprintf("lumen v%s", i.Version)
	}
	return fmt.Sprintf("lumen v%s (%s)", i.Version, i.Commit)
}
