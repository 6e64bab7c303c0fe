package tikz

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/dot2tikz/pkg/errors"
	"github.com/matzehuels/dot2tikz/pkg/geom"
)

func TestSplinePath_NoPositions(t *testing.T) {
	a := NewNode("a", geom.Pt(0, 0), "")
	b := NewNode("b", geom.Pt(1, 1), "")

	p, err := SplinePath(a, b, nil, "")
	if err != nil {
		t.Fatalf("SplinePath() error: %v", err)
	}
	steps := p.Steps()
	if len(steps) != 1 {
		t.Fatalf("SplinePath() steps = %d, want 1", len(steps))
	}
	if steps[0].Kind != StepLine || steps[0].Target != Target(b) {
		t.Errorf("SplinePath() step = %+v, want straight step to b", steps[0])
	}
}

func TestSplinePath_SingleCurve(t *testing.T) {
	a := NewNode("a", geom.Pt(0, 0), "")
	b := NewNode("b", geom.Pt(3, 0), "")
	pts := []geom.Point{{0, 0}, {1, 2}, {2, 2}, {3, 0}}

	p, err := SplinePath(a, b, pts, "")
	if err != nil {
		t.Fatalf("SplinePath() error: %v", err)
	}

	want := []Step{
		{Kind: StepLine, Op: DefaultOp, Target: geom.Pt(0, 0)},
		{Kind: StepCurve, Controls: []geom.Point{{3, 0}, {1, 2}}, Target: geom.Pt(2, 2)},
		{Kind: StepLine, Op: DefaultOp, Target: b},
	}
	if diff := cmp.Diff(want, p.Steps(), cmp.AllowUnexported(Node{})); diff != "" {
		t.Errorf("SplinePath() steps mismatch (-want +got):\n%s", diff)
	}

	got := compilePath(t, p)
	wantCmd := `\path[draw] (a) to (0,0) .. controls (3,0) and (1,2) .. (2,2) to (b);`
	if got != wantCmd {
		t.Errorf("compile() = %q, want %q", got, wantCmd)
	}
}

func TestSplinePath_SegmentCount(t *testing.T) {
	a := NewNode("a", geom.Pt(0, 0), "")
	b := NewNode("b", geom.Pt(9, 9), "")

	for k := 0; k <= 5; k++ {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			pts := make([]geom.Point, 3*k+1)
			for i := range pts {
				pts[i] = geom.Pt(float64(i), float64(i*i))
			}

			p, err := SplinePath(a, b, pts, "")
			if err != nil {
				t.Fatalf("SplinePath() error: %v", err)
			}
			steps := p.Steps()

			// Anchor step, then k curves plus one trailing line.
			if len(steps)-1 != k+1 {
				t.Fatalf("segments = %d, want %d", len(steps)-1, k+1)
			}
			curves := 0
			for _, s := range steps[1 : len(steps)-1] {
				if s.Kind != StepCurve {
					t.Errorf("middle step kind = %v, want curve", s.Kind)
				}
				curves++
			}
			if curves != k {
				t.Errorf("curves = %d, want %d", curves, k)
			}
			last := steps[len(steps)-1]
			if last.Kind != StepLine || last.Target != Target(b) {
				t.Errorf("last step = %+v, want straight step to b", last)
			}
			for j, s := range steps[1 : len(steps)-1] {
				i := 1 + 3*j
				want := []geom.Point{pts[i+2], pts[i]}
				if diff := cmp.Diff(want, s.Controls); diff != "" {
					t.Errorf("curve %d controls mismatch (-want +got):\n%s", j, diff)
				}
				if s.Target != Target(pts[i+1]) {
					t.Errorf("curve %d target = %v, want %v", j, s.Target, pts[i+1])
				}
			}
		})
	}
}

func TestSplinePath_Malformed(t *testing.T) {
	a := NewNode("a", geom.Pt(0, 0), "")
	b := NewNode("b", geom.Pt(1, 1), "")

	for _, n := range []int{2, 3, 5, 6, 8} {
		pts := make([]geom.Point, n)
		_, err := SplinePath(a, b, pts, "")
		if !errors.Is(err, errors.ErrCodeMalformedSpline) {
			t.Errorf("SplinePath(%d points) error = %v, want %v", n, err, errors.ErrCodeMalformedSpline)
		}
	}
}

func TestSplinePath_Style(t *testing.T) {
	a := NewNode("a", geom.Pt(0, 0), "")
	b := NewNode("b", geom.Pt(1, 1), "")

	p, err := SplinePath(a, b, []geom.Point{{0, 0}}, "draw,->")
	if err != nil {
		t.Fatalf("SplinePath() error: %v", err)
	}
	if got, want := compilePath(t, p), `\path[draw,->] (a) to (0,0) to (b);`; got != want {
		t.Errorf("compile() = %q, want %q", got, want)
	}
}
