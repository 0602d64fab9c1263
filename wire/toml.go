package wire

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/signadot/mxl/ir"
)

// FromTOML reads a TOML document. Keys keep the order in which they first
// appear in the document; arrays of tables become arrays of objects.
// Numbers are formatted back in decimal notation and dates in RFC 3339.
func FromTOML(data []byte) (*ir.Node, error) {
	var m map[string]any
	md, err := toml.Decode(string(data), &m)
	if err != nil {
		return nil, fmt.Errorf("toml: %w", err)
	}
	order := make(map[string]int)
	for i, k := range md.Keys() {
		s := strings.Join(k, "\x00")
		if _, ok := order[s]; !ok {
			order[s] = i
		}
	}
	t := &tomlTree{order: order}
	node := t.object(nil, m)
	trace("toml", node)
	return node, nil
}

type tomlTree struct {
	order map[string]int
}

func (t *tomlTree) rank(path []string, k string) int {
	s := strings.Join(append(path[:len(path):len(path)], k), "\x00")
	if i, ok := t.order[s]; ok {
		return i
	}
	return len(t.order)
}

func (t *tomlTree) object(path []string, m map[string]any) *ir.Node {
	keys := slices.Sorted(maps.Keys(m))
	slices.SortStableFunc(keys, func(a, b string) int {
		return t.rank(path, a) - t.rank(path, b)
	})
	kvs := make([]ir.KeyVal, len(keys))
	for i, k := range keys {
		kvs[i] = ir.KeyVal{Key: k, Val: t.value(append(path[:len(path):len(path)], k), m[k])}
	}
	return ir.FromKeyVals(kvs)
}

func (t *tomlTree) value(path []string, v any) *ir.Node {
	switch x := v.(type) {
	case map[string]any:
		return t.object(path, x)
	case []map[string]any:
		elems := make([]*ir.Node, len(x))
		for i := range x {
			elems[i] = t.object(path, x[i])
		}
		return ir.FromSlice(elems)
	case []any:
		elems := make([]*ir.Node, len(x))
		for i := range x {
			elems[i] = t.value(path, x[i])
		}
		return ir.FromSlice(elems)
	case string:
		return ir.FromString(x)
	case int64:
		return ir.FromString(strconv.FormatInt(x, 10))
	case float64:
		return ir.FromString(strconv.FormatFloat(x, 'f', -1, 64))
	case bool:
		return ir.FromString(strconv.FormatBool(x))
	case time.Time:
		// local values carry marker zones
		switch x.Location().String() {
		case "date-local":
			return ir.FromString(x.Format(time.DateOnly))
		case "time-local":
			return ir.FromString(x.Format("15:04:05.999999999"))
		case "datetime-local":
			return ir.FromString(x.Format("2006-01-02T15:04:05.999999999"))
		}
		return ir.FromString(x.Format(time.RFC3339Nano))
	}
	return ir.FromString(fmt.Sprint(v))
}
