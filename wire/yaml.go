package wire

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/signadot/mxl/ir"
)

// FromYAML reads the first document of data. Mapping order is kept and
// scalars are taken from their tokens, so 1.50 stays "1.50" and yes stays
// "yes". Null values read as null nodes, which the record package treats as
// absent.
func FromYAML(data []byte) (*ir.Node, error) {
	f, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	if len(f.Docs) == 0 || f.Docs[0].Body == nil {
		return nil, fmt.Errorf("yaml: %w", ErrEmptyDocument)
	}
	node, err := fromYAMLNode(f.Docs[0].Body)
	if err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	trace("yaml", node)
	return node, nil
}

func fromYAMLNode(n ast.Node) (*ir.Node, error) {
	switch x := n.(type) {
	case *ast.MappingNode:
		res := &ir.Node{Type: ir.ObjectType}
		for _, mv := range x.Values {
			if err := appendYAMLValue(res, mv); err != nil {
				return nil, err
			}
		}
		return res, nil
	case *ast.MappingValueNode:
		res := &ir.Node{Type: ir.ObjectType}
		if err := appendYAMLValue(res, x); err != nil {
			return nil, err
		}
		return res, nil
	case *ast.SequenceNode:
		elems := make([]*ir.Node, len(x.Values))
		for i, v := range x.Values {
			elem, err := fromYAMLNode(v)
			if err != nil {
				return nil, err
			}
			elems[i] = elem
		}
		return ir.FromSlice(elems), nil
	case *ast.NullNode:
		return ir.Null(), nil
	case *ast.StringNode:
		return ir.FromString(x.Value), nil
	case *ast.LiteralNode:
		return ir.FromString(x.Value.Value), nil
	case *ast.TagNode:
		return fromYAMLNode(x.Value)
	case *ast.AnchorNode:
		return fromYAMLNode(x.Value)
	case *ast.AliasNode:
		return nil, fmt.Errorf("%w: alias at %s", ErrUnsupported, x.GetToken().Position)
	}
	tok := n.GetToken()
	if tok == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, n.Type())
	}
	return ir.FromString(tok.Value), nil
}

func appendYAMLValue(obj *ir.Node, mv *ast.MappingValueNode) error {
	kt := mv.Key.GetToken()
	if kt == nil {
		return fmt.Errorf("%w: mapping key %s", ErrUnsupported, mv.Key.Type())
	}
	v, err := fromYAMLNode(mv.Value)
	if err != nil {
		return err
	}
	obj.Append(kt.Value, v)
	return nil
}
