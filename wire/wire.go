// Package wire turns transport documents into ir token trees.
//
// Readers keep every scalar exactly as written and preserve field order, so
// that validation and error paths refer to what the document says. No
// reader interprets values; that is left to the record package.
package wire

import (
	"errors"
	"fmt"

	"github.com/signadot/mxl/debug"
	"github.com/signadot/mxl/ir"
)

var (
	ErrEmptyDocument = errors.New("empty document")
	ErrUnsupported   = errors.New("unsupported construct")
)

// FromMap converts nested maps, slices and scalars as produced by generic
// decoders. Map keys are sorted; scalars other than strings are formatted
// with fmt.Sprint.
func FromMap(m map[string]any) *ir.Node {
	return fromAny(m)
}

func fromAny(v any) *ir.Node {
	switch x := v.(type) {
	case nil:
		return ir.Null()
	case *ir.Node:
		return x
	case string:
		return ir.FromString(x)
	case map[string]any:
		fields := make(map[string]*ir.Node, len(x))
		for k, v := range x {
			fields[k] = fromAny(v)
		}
		return ir.FromMap(fields)
	case []any:
		elems := make([]*ir.Node, len(x))
		for i := range x {
			elems[i] = fromAny(x[i])
		}
		return ir.FromSlice(elems)
	default:
		return ir.FromString(fmt.Sprint(x))
	}
}

func trace(format string, node *ir.Node) {
	if !debug.Wire() {
		return
	}
	debug.Logf("wire %s: %s with %d values", format, node.Type, len(node.Values))
}
