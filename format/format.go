// Package format renders parsed doc blocks: back to source with
// PrintBlock, or as JSON and text listings through the encoders.
package format

import (
	"github.com/dhamidi/docfront/docblock"
)

type Encoder interface {
	Encode(block *docblock.Block) error
	MarshalText(block *docblock.Block) ([]byte, error)
}

var (
	_ Encoder = (*BlockJSONEncoder)(nil)
	_ Encoder = (*TextEncoder)(nil)
)
