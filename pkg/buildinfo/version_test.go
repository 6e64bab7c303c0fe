package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	tmpl := Template()
	for _, want := range []string{
		"{{.Name}} version " + Version,
		"commit: " + Commit,
		"engine: graphviz " + Graphviz + " (go-graphviz ",
	} {
		if !strings.Contains(tmpl, want) {
			t.Errorf("Template() = %q, missing %q", tmpl, want)
		}
	}
}

func TestModuleVersion(t *testing.T) {
	info := &debug.BuildInfo{Deps: []*debug.Module{
		{Path: "github.com/spf13/cobra", Version: "v1.10.1"},
		{Path: GraphvizModule, Version: "v0.2.9"},
	}}
	if got := moduleVersion(info, GraphvizModule); got != "v0.2.9" {
		t.Errorf("moduleVersion() = %q, want %q", got, "v0.2.9")
	}

	info.Deps[1].Replace = &debug.Module{Path: "../go-graphviz", Version: "v0.3.0"}
	if got := moduleVersion(info, GraphvizModule); got != "v0.3.0" {
		t.Errorf("moduleVersion() with replace = %q, want %q", got, "v0.3.0")
	}

	if got := moduleVersion(&debug.BuildInfo{}, GraphvizModule); got != "unknown" {
		t.Errorf("moduleVersion() without dep = %q, want unknown", got)
	}
}
