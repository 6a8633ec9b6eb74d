package version

import (
	"fmt"
	"runtime"
)

// Overridden at build time via -ldflags.
var (
	gitVersion = "v0.1.0"
	gitCommit  = "unknown"
	buildDate  = "unknown"
)

// Info holds the build metadata of the running binary.
type Info struct {
	GitVersion string
	GitCommit  string
	BuildDate  string
	GoVersion  string
	Platform   string
}

func (info Info) String() string {
	return fmt.Sprintf("%s, commit %s, built %s, %s, %s",
		info.GitVersion, info.GitCommit, info.BuildDate, info.GoVersion, info.Platform)
}

// Get returns the version info of the running binary.
func Get() Info {
	return Info{
		GitVersion: gitVersion,
		GitCommit:  gitCommit,
		BuildDate:  buildDate,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
