package tikz_test

import (
	"fmt"

	"github.com/matzehuels/dot2tikz/pkg/geom"
	"github.com/matzehuels/dot2tikz/pkg/render/tikz"
)

func ExampleSplinePath() {
	f := tikz.NewFigure()
	a := tikz.NewNode("a", geom.Pt(0, 0), "")
	b := tikz.NewNode("b", geom.Pt(3, 0), "")
	f.AddNode(a)
	f.AddNode(b)

	p, err := tikz.SplinePath(a, b, []geom.Point{{0, 0}, {1, 2}, {2, 2}, {3, 0}}, "")
	if err != nil {
		fmt.Println(err)
		return
	}
	f.AddPath(p)

	doc, err := f.Compile()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(doc)
	// Output:
	// \documentclass[tikz]{standalone}
	// \usepackage{tikz}
	// \begin{document}
	// \begin{tikzpicture}[]
	// \coordinate (a) at (0,0);
	// \coordinate (b) at (3,0);
	// \path[draw] (a) to (0,0) .. controls (3,0) and (1,2) .. (2,2) to (b);
	// \node[draw,circle,fill,radius=0.5pt,scale=0.2] at (a) {};
	// \node[draw,circle,fill,radius=0.5pt,scale=0.2] at (b) {};
	// \end{tikzpicture}
	// \end{document}
}
