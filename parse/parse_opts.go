package parse

import (
	"github.com/hexon-format/go-hexon/ir"
	"github.com/hexon-format/go-hexon/token"
)

type parseOpts struct {
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// WithPositions records the source position of each parsed node in m.
// Useful for tooling that maps nodes back to source, such as editors.
func WithPositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}
