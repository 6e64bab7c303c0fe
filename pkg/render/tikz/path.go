package tikz

import (
	"strings"

	"github.com/matzehuels/dot2tikz/pkg/errors"
	"github.com/matzehuels/dot2tikz/pkg/geom"
)

// DefaultPathStyle strokes the path.
const DefaultPathStyle = "draw"

// DefaultOp is the connector used by straight and closing steps.
const DefaultOp = "to"

// Target is the destination of a path step: a *Node, referenced by name and
// checked against the figure on compile, or a geom.Point literal.
type Target interface {
	String() string
}

// StepKind identifies the kind of a path step.
type StepKind int

const (
	StepLine  StepKind = iota // straight "to" step
	StepCurve                 // ".. controls .." cubic step
	StepClose                 // "to cycle"
)

// String returns a short name for the kind.
func (k StepKind) String() string {
	switch k {
	case StepLine:
		return "line"
	case StepCurve:
		return "curve"
	case StepClose:
		return "close"
	default:
		return "unknown"
	}
}

// Step is one drawing instruction of a [Path].
type Step struct {
	Kind     StepKind
	Op       string       // connector for line and close steps
	Style    string       // optional per-step style, rendered as Op[Style]
	Controls []geom.Point // one or two control points for curve steps
	Target   Target       // nil for close steps
}

// Path is an append-only chain of steps anchored at a start node.
// The builder methods return the path so calls can be chained.
type Path struct {
	start *Node
	style string
	steps []Step
}

// NewPath starts a path at n. An empty style selects [DefaultPathStyle].
func NewPath(start *Node, style string) *Path {
	if style == "" {
		style = DefaultPathStyle
	}
	return &Path{start: start, style: style}
}

// Start returns the anchor node.
func (p *Path) Start() *Node { return p.start }

// Style returns the \path[...] style.
func (p *Path) Style() string { return p.style }

// Len returns the number of steps.
func (p *Path) Len() int { return len(p.steps) }

// Steps returns a copy of the steps in order.
func (p *Path) Steps() []Step {
	out := make([]Step, len(p.steps))
	copy(out, p.steps)
	return out
}

// To appends a straight step to t.
func (p *Path) To(t Target) *Path {
	return p.ToWith(t, DefaultOp, "")
}

// ToWith appends a straight step using connector op (e.g. "to", "--") and
// an optional step style.
func (p *Path) ToWith(t Target, op, style string) *Path {
	if op == "" {
		op = DefaultOp
	}
	p.steps = append(p.steps, Step{Kind: StepLine, Op: op, Style: style, Target: t})
	return p
}

// CurveTo appends a Bézier step to t through one or two control points.
// Any other number of controls is reported by [Figure.Compile].
func (p *Path) CurveTo(t Target, controls ...geom.Point) *Path {
	c := make([]geom.Point, len(controls))
	copy(c, controls)
	p.steps = append(p.steps, Step{Kind: StepCurve, Controls: c, Target: t})
	return p
}

// Close appends a "to cycle" step.
func (p *Path) Close() *Path {
	return p.CloseWith(DefaultOp, "")
}

// CloseWith appends a closing step using connector op and an optional style.
func (p *Path) CloseWith(op, style string) *Path {
	if op == "" {
		op = DefaultOp
	}
	p.steps = append(p.steps, Step{Kind: StepClose, Op: op, Style: style})
	return p
}

// compile renders the path as a single \path command. Every node the path
// references is resolved through lookup.
func (p *Path) compile(lookup func(name string) bool) (string, error) {
	if p.start == nil {
		return "", errors.New(errors.ErrCodeInvalidInput, "path has no start node")
	}
	if !lookup(p.start.name) {
		return "", errors.New(errors.ErrCodeLookup, "path starts at unknown node %q", p.start.name)
	}

	var b strings.Builder
	b.WriteString(`\path[`)
	b.WriteString(p.style)
	b.WriteString("] ")
	b.WriteString(p.start.String())

	for i, s := range p.steps {
		if s.Kind != StepClose {
			if s.Target == nil {
				return "", errors.New(errors.ErrCodeInvalidInput, "path from %q: step %d has no target", p.start.name, i)
			}
			if n, ok := s.Target.(*Node); ok && !lookup(n.name) {
				return "", errors.New(errors.ErrCodeLookup, "path from %q references unknown node %q", p.start.name, n.name)
			}
		}
		b.WriteByte(' ')
		switch s.Kind {
		case StepLine:
			writeOp(&b, s.Op, s.Style)
			b.WriteByte(' ')
			b.WriteString(s.Target.String())
		case StepCurve:
			b.WriteString(".. controls ")
			switch len(s.Controls) {
			case 1:
				b.WriteString(s.Controls[0].String())
			case 2:
				b.WriteString(s.Controls[0].String())
				b.WriteString(" and ")
				b.WriteString(s.Controls[1].String())
			default:
				return "", errors.New(errors.ErrCodeInvalidInput,
					"path from %q: curve step %d has %d control points, want 1 or 2", p.start.name, i, len(s.Controls))
			}
			b.WriteString(" .. ")
			b.WriteString(s.Target.String())
		case StepClose:
			writeOp(&b, s.Op, s.Style)
			b.WriteString(" cycle")
		default:
			return "", errors.New(errors.ErrCodeInternal, "unknown step kind %d", s.Kind)
		}
	}
	b.WriteByte(';')
	return b.String(), nil
}

func writeOp(b *strings.Builder, op, style string) {
	b.WriteString(op)
	if style != "" {
		b.WriteByte('[')
		b.WriteString(style)
		b.WriteByte(']')
	}
}
