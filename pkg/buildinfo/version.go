// Package buildinfo reports which dot2tikz build is running and which
// Graphviz engine it carries.
//
// Release builds stamp the dot2tikz fields with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/dot2tikz/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/dot2tikz/pkg/buildinfo.Commit=$(git rev-parse HEAD)"
//
// Layout engines run in-process through go-graphviz, which embeds a fixed
// Graphviz release. Its version is part of every cached layout key, since a
// different engine may place nodes differently.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// GraphvizModule is the Go module that embeds the layout engines.
const GraphvizModule = "github.com/goccy/go-graphviz"

var (
	Version = "dev"
	Commit  = "none"

	// Graphviz is the Graphviz release embedded by the go-graphviz version
	// pinned in go.mod. Bump it together with that dependency.
	Graphviz = "12.1.2"
)

// GraphvizBinding returns the go-graphviz module version linked into the
// binary, or "unknown" when build information is unavailable.
func GraphvizBinding() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	return moduleVersion(info, GraphvizModule)
}

func moduleVersion(info *debug.BuildInfo, path string) string {
	for _, dep := range info.Deps {
		if dep.Path != path {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return "unknown"
}

// Engine identifies the layout engine build, e.g. "graphviz 12.1.2".
func Engine() string {
	return "graphviz " + Graphviz
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nengine: %s (go-graphviz %s)\n",
		Version, Commit, Engine(), GraphvizBinding())
}
