package layout

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dot2tikz/pkg/errors"
)

// Layout engines bundled with go-graphviz.
const (
	EngineDot       = "dot"
	EngineNeato     = "neato"
	EngineFDP       = "fdp"
	EngineSFDP      = "sfdp"
	EngineCirco     = "circo"
	EngineTwopi     = "twopi"
	EngineOsage     = "osage"
	EnginePatchwork = "patchwork"
)

// DefaultEngine is used when no engine is named.
const DefaultEngine = EngineDot

// ValidEngines maps engine names to their go-graphviz layouts.
var ValidEngines = map[string]graphviz.Layout{
	EngineDot:       graphviz.DOT,
	EngineNeato:     graphviz.NEATO,
	EngineFDP:       graphviz.FDP,
	EngineSFDP:      graphviz.SFDP,
	EngineCirco:     graphviz.CIRCO,
	EngineTwopi:     graphviz.TWOPI,
	EngineOsage:     graphviz.OSAGE,
	EnginePatchwork: graphviz.PATCHWORK,
}

// Engines returns the supported engine names in sorted order.
func Engines() []string {
	names := make([]string, 0, len(ValidEngines))
	for name := range ValidEngines {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ValidateEngine checks that engine names a supported layout engine.
func ValidateEngine(engine string) error {
	if _, ok := ValidEngines[engine]; !ok {
		return errors.New(errors.ErrCodeInvalidEngine, "invalid layout engine: %q (must be one of: %s)",
			engine, strings.Join(Engines(), ", "))
	}
	return nil
}

// Run lays out the DOT source src with engine and returns the result as DOT
// with pos attributes on every node and edge.
func Run(ctx context.Context, engine string, src []byte) ([]byte, error) {
	if engine == "" {
		engine = DefaultEngine
	}
	if err := ValidateEngine(engine); err != nil {
		return nil, err
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(ValidEngines[engine])

	g, err := graphviz.ParseBytes(src)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	if g == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "parse DOT: no graph in input")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.XDOT, &buf); err != nil {
		return nil, fmt.Errorf("%s layout: %w", engine, err)
	}
	return buf.Bytes(), nil
}
