package geom

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/dot2tikz/pkg/errors"
)

// enclosing maps an opening bracket to the closing character it pairs with.
var enclosing = map[byte]byte{
	'(': ')',
	'[': ']',
	'{': '}',
	'"': '"',
}

// Spline is a parsed edge position.
type Spline struct {
	// Start and End are the optional arrowhead endpoints ("s," and "e,"
	// tokens). Nil when absent.
	Start, End *Point

	// Points is the control list: one anchor followed by k (control,
	// control, knot) groups.
	Points []Point
}

// ParsePos parses a position string into an ordered list of points.
//
// The string must hold at least one "x,y" pair. Pairs are separated by
// whitespace and may be wrapped in one pair of enclosing brackets:
//
//	ParsePos("(0,0 1,1)") // [(0,0) (1,1)]
//
// Non-numeric fields, pairs without exactly one comma, and empty input all
// return an errors.ErrCodeParse error.
func ParsePos(s string) ([]Point, error) {
	return parseFields(s, trimEnclosing(s))
}

// parseFields parses the pairs in body, which has already had its
// enclosing brackets removed. s is the original text, used in errors.
func parseFields(s, body string) ([]Point, error) {
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return nil, errors.New(errors.ErrCodeParse, "empty position %q", s)
	}

	pts := make([]Point, 0, len(fields))
	for _, tok := range fields {
		p, err := parsePair(tok)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

// ParsePoint parses a node position. Graphviz marks pinned nodes with a
// trailing "!", which is ignored. When the string holds more than one pair
// the first is returned.
func ParsePoint(s string) (Point, error) {
	body := strings.TrimSuffix(strings.TrimSpace(trimEnclosing(s)), "!")
	pts, err := parseFields(s, body)
	if err != nil {
		return Point{}, err
	}
	return pts[0], nil
}

// ParseSpline parses an edge position in Graphviz spline syntax:
//
//	[s,x,y] [e,x,y] x1,y1 x2,y2 ... xn,yn
//
// Endpoint tokens may appear in either order but must precede the control
// list. Multi-segment edges (";"-separated splines) are not supported.
// ParseSpline does not check the 3k+1 length; that is the translator's job.
func ParseSpline(s string) (Spline, error) {
	body := trimEnclosing(s)
	if strings.Contains(body, ";") {
		return Spline{}, errors.New(errors.ErrCodeParse, "multiple splines in position %q", s)
	}

	var sp Spline
	fields := strings.Fields(body)
	for len(fields) > 0 {
		tok := fields[0]
		var dst **Point
		switch {
		case strings.HasPrefix(tok, "s,"):
			dst = &sp.Start
		case strings.HasPrefix(tok, "e,"):
			dst = &sp.End
		}
		if dst == nil {
			break
		}
		if *dst != nil {
			return Spline{}, errors.New(errors.ErrCodeParse, "repeated endpoint %q in position %q", tok, s)
		}
		p, err := parsePair(tok[2:])
		if err != nil {
			return Spline{}, err
		}
		*dst = &p
		fields = fields[1:]
	}

	if len(fields) == 0 {
		return Spline{}, errors.New(errors.ErrCodeParse, "no control points in position %q", s)
	}
	sp.Points = make([]Point, 0, len(fields))
	for _, tok := range fields {
		p, err := parsePair(tok)
		if err != nil {
			return Spline{}, err
		}
		sp.Points = append(sp.Points, p)
	}
	return sp, nil
}

func parsePair(tok string) (Point, error) {
	parts := strings.Split(tok, ",")
	if len(parts) != 2 {
		return Point{}, errors.New(errors.ErrCodeParse, "expected x,y pair, got %q", tok)
	}
	x, err := parseCoord(parts[0], tok)
	if err != nil {
		return Point{}, err
	}
	y, err := parseCoord(parts[1], tok)
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

func parseCoord(field, tok string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeParse, err, "invalid coordinate %q in %q", field, tok)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New(errors.ErrCodeParse, "non-finite coordinate %q in %q", field, tok)
	}
	return v, nil
}

// trimEnclosing strips surrounding whitespace and one pair of matching
// enclosing characters.
func trimEnclosing(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if closer, ok := enclosing[s[0]]; ok && s[len(s)-1] == closer {
		return s[1 : len(s)-1]
	}
	return s
}
