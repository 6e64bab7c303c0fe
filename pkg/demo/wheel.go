// Package demo builds a fixed sample drawing without any input graph.
package demo

import (
	"math"

	"github.com/matzehuels/dot2tikz/pkg/convert"
	"github.com/matzehuels/dot2tikz/pkg/errors"
	"github.com/matzehuels/dot2tikz/pkg/geom"
	"github.com/matzehuels/dot2tikz/pkg/render/tikz"
)

const (
	// DefaultRim is the number of rim nodes drawn when none is given.
	DefaultRim = 8

	// MinRim is the smallest wheel that closes into a polygon.
	MinRim = 3

	// DefaultOutput is where the CLI writes the demo document.
	DefaultOutput = "test.tex"
)

// Wheel draws k nodes evenly spaced on the unit circle, a rim path through
// them in order closed with "cycle", and a spoke from node i to node i+k/2
// for every i < k/2. Node i sits at angle 2πi/k; positions are rounded to
// nine decimal places so that sin(π) prints as 0.
func Wheel(k int, opts convert.Options) (*tikz.Figure, error) {
	if k < MinRim {
		return nil, errors.New(errors.ErrCodeInvalidInput, "wheel needs at least %d rim nodes, got %d", MinRim, k)
	}

	f := tikz.NewFigure()
	f.PictureOptions = opts.PictureOptions

	rim := make([]*tikz.Node, k)
	for i := range rim {
		theta := float64(i) * 2 * math.Pi / float64(k)
		n, err := f.NewNode(geom.Pt(round9(math.Cos(theta)), round9(math.Sin(theta))), opts.NodeStyle)
		if err != nil {
			return nil, err
		}
		rim[i] = n
	}

	p := tikz.NewPath(rim[0], opts.PathStyle)
	for _, n := range rim[1:] {
		p.To(n)
	}
	f.AddPath(p.Close())

	for i := 0; i < k/2; i++ {
		f.AddPath(tikz.NewPath(rim[i], opts.PathStyle).To(rim[i+k/2]))
	}
	return f, nil
}

func round9(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}
