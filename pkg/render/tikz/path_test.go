package tikz

import (
	"testing"

	"github.com/matzehuels/dot2tikz/pkg/errors"
	"github.com/matzehuels/dot2tikz/pkg/geom"
)

func compilePath(t *testing.T, p *Path) string {
	t.Helper()
	s, err := p.compile(func(string) bool { return true })
	if err != nil {
		t.Fatalf("compile() error: %v", err)
	}
	return s
}

func TestPathCompile(t *testing.T) {
	a := NewNode("a", geom.Pt(0, 0), "")
	b := NewNode("b", geom.Pt(1, 0), "")
	c := NewNode("c", geom.Pt(1, 1), "")

	tests := []struct {
		name string
		path *Path
		want string
	}{
		{
			name: "single step",
			path: NewPath(a, "").To(b),
			want: `\path[draw] (a) to (b);`,
		},
		{
			name: "custom style",
			path: NewPath(a, "draw,->,thick").To(b),
			want: `\path[draw,->,thick] (a) to (b);`,
		},
		{
			name: "point target",
			path: NewPath(a, "").To(geom.Pt(2.5, -1)),
			want: `\path[draw] (a) to (2.5,-1);`,
		},
		{
			name: "styled step",
			path: NewPath(a, "").ToWith(b, "to", "bend left").ToWith(c, "--", ""),
			want: `\path[draw] (a) to[bend left] (b) -- (c);`,
		},
		{
			name: "two controls",
			path: NewPath(a, "").CurveTo(c, geom.Pt(3, 0), geom.Pt(1, 2)),
			want: `\path[draw] (a) .. controls (3,0) and (1,2) .. (c);`,
		},
		{
			name: "one control",
			path: NewPath(a, "").CurveTo(b, geom.Pt(0.5, 1)),
			want: `\path[draw] (a) .. controls (0.5,1) .. (b);`,
		},
		{
			name: "closed",
			path: NewPath(a, "").To(b).To(c).Close(),
			want: `\path[draw] (a) to (b) to (c) to cycle;`,
		},
		{
			name: "closed styled",
			path: NewPath(a, "").To(b).CloseWith("--", "dashed"),
			want: `\path[draw] (a) to (b) --[dashed] cycle;`,
		},
		{
			name: "no steps",
			path: NewPath(a, ""),
			want: `\path[draw] (a);`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compilePath(t, tt.path); got != tt.want {
				t.Errorf("compile() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPathCompile_Errors(t *testing.T) {
	a := NewNode("a", geom.Pt(0, 0), "")
	all := func(string) bool { return true }

	tests := []struct {
		name string
		path *Path
		code errors.Code
	}{
		{"no start", NewPath(nil, ""), errors.ErrCodeInvalidInput},
		{"nil target", NewPath(a, "").To(nil), errors.ErrCodeInvalidInput},
		{"no controls", NewPath(a, "").CurveTo(geom.Pt(1, 1)), errors.ErrCodeInvalidInput},
		{"three controls", NewPath(a, "").CurveTo(geom.Pt(1, 1), geom.Pt(0, 0), geom.Pt(0, 0), geom.Pt(0, 0)), errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.path.compile(all)
			if !errors.Is(err, tt.code) {
				t.Errorf("compile() error = %v, want %v", err, tt.code)
			}
		})
	}
}

func TestPathSteps(t *testing.T) {
	a := NewNode("a", geom.Pt(0, 0), "")
	b := NewNode("b", geom.Pt(1, 0), "")
	p := NewPath(a, "").To(geom.Pt(0, 0)).CurveTo(b, geom.Pt(1, 1), geom.Pt(2, 2)).Close()

	steps := p.Steps()
	if len(steps) != 3 || p.Len() != 3 {
		t.Fatalf("Steps() len = %d, Len() = %d, want 3", len(steps), p.Len())
	}
	kinds := []StepKind{StepLine, StepCurve, StepClose}
	for i, k := range kinds {
		if steps[i].Kind != k {
			t.Errorf("step %d kind = %v, want %v", i, steps[i].Kind, k)
		}
	}

	// Mutating the copy must not affect the path.
	steps[0].Op = "--"
	if p.Steps()[0].Op != DefaultOp {
		t.Error("Steps() should return a copy")
	}
}

func TestStepKindString(t *testing.T) {
	tests := map[StepKind]string{
		StepLine:     "line",
		StepCurve:    "curve",
		StepClose:    "close",
		StepKind(42): "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("StepKind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
