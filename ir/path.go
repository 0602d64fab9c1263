package ir

import (
	"strconv"
	"strings"
)

// Root is the path of a node without parent.
const Root = "$"

// Path renders the location of y from its root, e.g. "$.key.fifths" or
// "$.measure[2].number".
func (y *Node) Path() string {
	if y.Parent == nil {
		return Root
	}
	switch y.Parent.Type {
	case ObjectType:
		return FieldPath(y.Parent.Path(), y.ParentField)
	case ArrayType:
		return IndexPath(y.Parent.Path(), y.ParentIndex)
	default:
		panic("parent but not in container")
	}
}

// FieldPath appends a field selector to path, quoting field names which
// contain path syntax.
func FieldPath(path, f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[] ") == -1 {
		return path + "." + f
	}
	return path + ".'" + strings.Replace(f, "'", "\\'", -1) + "'"
}

func IndexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
