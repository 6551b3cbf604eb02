package rpgeditor

import (
	_ "embed"
	"runtime"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Name is the program name shown in the welcome banner.
const Name = "RPGEditor"

// Version returns the contents of the VERSION file, e.g. "0.0.1".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// Banner is the line centered on an empty document.
func Banner() string {
	return Name + " version " + Version()
}

// VersionLine is printed by -version.
func VersionLine() string {
	return strings.ToLower(Name) + " v" + Version() + " " + runtime.GOOS + "/" + runtime.GOARCH
}
