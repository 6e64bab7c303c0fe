// Package geom parses layout-engine position strings into 2D points.
//
// # Position Strings
//
// A layout engine such as Graphviz annotates nodes and edges with a pos
// attribute. Node positions are a single pair, edge positions are a
// whitespace-separated list of pairs:
//
//	"27,18"
//	"27,71.7 27,63.98 27,54.71 27,46.11"
//
// The list may be wrapped in one pair of enclosing brackets or quotes, which
// [ParsePos] strips before splitting. Every well-formed position string
// yields at least one [Point]; malformed text is reported as an
// errors.ErrCodeParse error and never replaced by a default point.
//
// # Splines
//
// Graphviz prefixes edge positions with optional arrowhead endpoints
// ("s,x,y" and "e,x,y"). [ParseSpline] splits those off and returns the
// remaining control list, which for a well-formed spline holds 3k+1 points.
//
// All functions in this package are pure.
package geom
