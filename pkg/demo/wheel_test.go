package demo

import (
	"strings"
	"testing"

	"github.com/matzehuels/dot2tikz/pkg/convert"
	"github.com/matzehuels/dot2tikz/pkg/errors"
)

func TestWheel(t *testing.T) {
	f, err := Wheel(DefaultRim, convert.Options{})
	if err != nil {
		t.Fatalf("Wheel() error: %v", err)
	}
	if f.NodeCount() != 8 {
		t.Errorf("NodeCount() = %d, want 8", f.NodeCount())
	}
	if f.PathCount() != 5 {
		t.Errorf("PathCount() = %d, want 5", f.PathCount())
	}

	doc, err := f.Compile()
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}

	for _, want := range []string{
		`\coordinate (v0) at (1,0);`,
		`\coordinate (v1) at (0.707106781,0.707106781);`,
		`\coordinate (v2) at (0,1);`,
		`\coordinate (v4) at (-1,0);`,
		`\coordinate (v6) at (0,-1);`,
		`\path[draw] (v0) to (v1) to (v2) to (v3) to (v4) to (v5) to (v6) to (v7) to cycle;`,
		`\path[draw] (v0) to (v4);`,
		`\path[draw] (v1) to (v5);`,
		`\path[draw] (v2) to (v6);`,
		`\path[draw] (v3) to (v7);`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("Wheel() document missing %q", want)
		}
	}
}

func TestWheel_Odd(t *testing.T) {
	f, err := Wheel(5, convert.Options{PathStyle: "draw,red"})
	if err != nil {
		t.Fatalf("Wheel() error: %v", err)
	}
	doc, err := f.Compile()
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}

	// rim plus spokes 0->2 and 1->3
	if f.PathCount() != 3 {
		t.Errorf("PathCount() = %d, want 3", f.PathCount())
	}
	if !strings.Contains(doc, `\path[draw,red] (v1) to (v3);`) {
		t.Errorf("Wheel(5) missing spoke v1 -> v3:\n%s", doc)
	}
}

func TestWheel_TooSmall(t *testing.T) {
	for _, k := range []int{-1, 0, 1, 2} {
		if _, err := Wheel(k, convert.Options{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("Wheel(%d) error = %v, want %v", k, err, errors.ErrCodeInvalidInput)
		}
	}
}
