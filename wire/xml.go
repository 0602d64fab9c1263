package wire

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/mxl/ir"
)

type xmlFrame struct {
	name string
	node *ir.Node
	text strings.Builder
}

// FromXML reads the root element of data. Attributes and then child
// elements become fields in document order; repeated child elements become
// an array under one field. An element without attributes or children is a
// string node holding its text unchanged, so <x/> reads as "". Text next to
// attributes or children is kept in the object's String unless it is all
// white space.
func FromXML(data []byte) (*ir.Node, error) {
	_, node, err := FromXMLElement(data)
	return node, err
}

// FromXMLElement is FromXML which also returns the local name of the root
// element.
func FromXMLElement(data []byte) (string, *ir.Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var stack []*xmlFrame
	var root *ir.Node
	var rootName string
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", nil, fmt.Errorf("xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil {
				return "", nil, fmt.Errorf("xml: %w: content after root element", ErrUnsupported)
			}
			f := &xmlFrame{name: t.Name.Local, node: &ir.Node{Type: ir.ObjectType}}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				f.node.Append(a.Name.Local, ir.FromString(a.Value))
			}
			stack = append(stack, f)
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		case xml.EndElement:
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			node := f.finish()
			if len(stack) == 0 {
				root, rootName = node, f.name
				continue
			}
			addChild(stack[len(stack)-1].node, f.name, node)
		}
	}
	if root == nil {
		return "", nil, fmt.Errorf("xml: %w", ErrEmptyDocument)
	}
	trace("xml", root)
	return rootName, root, nil
}

func (f *xmlFrame) finish() *ir.Node {
	text := f.text.String()
	if len(f.node.Fields) == 0 {
		return ir.FromString(text)
	}
	if strings.TrimSpace(text) != "" {
		f.node.String = text
	}
	return f.node
}

func addChild(parent *ir.Node, name string, child *ir.Node) {
	for i, field := range parent.Fields {
		if field != name {
			continue
		}
		existing := parent.Values[i]
		if existing.Type != ir.ArrayType {
			arr := ir.FromSlice([]*ir.Node{existing})
			arr.Parent = parent
			arr.ParentIndex = i
			arr.ParentField = name
			parent.Values[i] = arr
			existing = arr
		}
		existing.Append("", child)
		return
	}
	parent.Append(name, child)
}
