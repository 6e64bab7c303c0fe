package tikz

import "strconv"

// DefaultNamePrefix is the prefix of generated node names.
const DefaultNamePrefix = "v"

// NameGen hands out sequential names: prefix0, prefix1, ...
// Each Figure owns its own generator, so naming restarts at zero per
// document. Not safe for concurrent use.
type NameGen struct {
	prefix string
	next   int
}

// NewNameGen returns a generator starting at zero. An empty prefix selects
// [DefaultNamePrefix].
func NewNameGen(prefix string) *NameGen {
	if prefix == "" {
		prefix = DefaultNamePrefix
	}
	return &NameGen{prefix: prefix}
}

// Next returns the next name and advances the counter.
func (g *NameGen) Next() string {
	name := g.prefix + strconv.Itoa(g.next)
	g.next++
	return name
}
