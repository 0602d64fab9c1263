package record

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/signadot/mxl/label"
)

// TagKey is the struct tag key read by the record assembler.
const TagKey = "mxl"

// FieldInfo holds field metadata extracted from struct tags
type FieldInfo struct {
	// Name is the Go field name
	Name string

	// WireName is the token key, by default the Go name in kebab case
	WireName string

	// Index is the index sequence for reflect.Value.FieldByIndex; it has more
	// than one element for fields of embedded structs
	Index []int

	Type reflect.Type

	// Optional fields may be absent; pointers and slices are optional
	// unless tagged required
	Optional bool

	// Default is decoded in place of an absent token when HasDefault is set
	Default    string
	HasDefault bool

	// Text marks the field holding the character content of the node
	Text bool
}

// ParseStructTag parses a struct tag string and returns a map of key-value pairs.
// Handles comma-separated values: `mxl:"field=beat-type,default=4"`
// Supports quoted values with spaces: `mxl:"default='light barline'"`
func ParseStructTag(tag string) (map[string]string, error) {
	result := make(map[string]string)

	if tag == "" {
		return result, nil
	}

	var parts []string
	var current strings.Builder
	inSingleQuote := false
	inDoubleQuote := false

	for i := 0; i < len(tag); i++ {
		char := tag[i]

		switch {
		case char == '\'' && !inDoubleQuote:
			inSingleQuote = !inSingleQuote
			current.WriteByte(char)
		case char == '"' && !inSingleQuote:
			inDoubleQuote = !inDoubleQuote
			current.WriteByte(char)
		case char == ',' && !inSingleQuote && !inDoubleQuote:
			part := strings.TrimSpace(current.String())
			if part != "" {
				parts = append(parts, part)
			}
			current.Reset()
		default:
			current.WriteByte(char)
		}
	}
	if inSingleQuote || inDoubleQuote {
		return nil, fmt.Errorf("invalid tag: unterminated quote in %q", tag)
	}

	part := strings.TrimSpace(current.String())
	if part != "" {
		parts = append(parts, part)
	}

	for _, part := range parts {
		if idx := strings.Index(part, "="); idx >= 0 {
			key := strings.TrimSpace(part[:idx])
			value := strings.TrimSpace(part[idx+1:])
			if key == "" {
				return nil, fmt.Errorf("invalid tag: empty key in %q", part)
			}
			result[key] = unquoteValue(value)
		} else {
			result[part] = ""
		}
	}

	return result, nil
}

// unquoteValue removes surrounding single or double quotes from a value.
func unquoteValue(value string) string {
	if len(value) >= 2 && value[0] == '\'' && value[len(value)-1] == '\'' {
		return value[1 : len(value)-1]
	}
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		return value[1 : len(value)-1]
	}
	return value
}

var tagKeys = map[string]bool{
	"field":    true,
	"optional": true,
	"required": true,
	"default":  true,
	"text":     true,
}

type structInfo struct {
	fields []*FieldInfo
	byWire map[string]*FieldInfo
	text   *FieldInfo
}

var structCache sync.Map // reflect.Type -> *structInfo

func getStructInfo(typ reflect.Type) (*structInfo, error) {
	if si, ok := structCache.Load(typ); ok {
		return si.(*structInfo), nil
	}
	si := &structInfo{byWire: map[string]*FieldInfo{}}
	if err := si.add(typ, nil); err != nil {
		return nil, err
	}
	actual, _ := structCache.LoadOrStore(typ, si)
	return actual.(*structInfo), nil
}

// GetStructFields extracts field information from a struct type.
func GetStructFields(typ reflect.Type) ([]FieldInfo, error) {
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: expected struct type, got %s", ErrInvalidTarget, typ.Kind())
	}
	si, err := getStructInfo(typ)
	if err != nil {
		return nil, err
	}
	res := make([]FieldInfo, len(si.fields))
	for i, fi := range si.fields {
		res[i] = *fi
	}
	return res, nil
}

// add appends the fields of typ, flattening embedded structs the way
// encoding/json does.
func (si *structInfo) add(typ reflect.Type, index []int) error {
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get(TagKey)
		if tag == "-" {
			continue
		}
		parsed, err := ParseStructTag(tag)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", typ, field.Name, err)
		}
		for k := range parsed {
			if !tagKeys[k] {
				return fmt.Errorf("%s.%s: unknown tag key %q", typ, field.Name, k)
			}
		}
		fieldIndex := append(index[:len(index):len(index)], i)

		if field.Anonymous {
			if field.Type.Kind() != reflect.Struct {
				return fmt.Errorf("%w: embedded %s in %s", ErrUnsupportedType, field.Type, typ)
			}
			if err := si.add(field.Type, fieldIndex); err != nil {
				return err
			}
			continue
		}
		if !field.IsExported() {
			continue
		}

		fi := &FieldInfo{
			Name:     field.Name,
			WireName: label.Kebab.Apply(field.Name),
			Index:    fieldIndex,
			Type:     field.Type,
		}
		if name, ok := parsed["field"]; ok && name != "" {
			fi.WireName = name
		}
		switch field.Type.Kind() {
		case reflect.Pointer, reflect.Slice:
			fi.Optional = true
		}
		if _, ok := parsed["optional"]; ok {
			fi.Optional = true
		}
		if _, ok := parsed["required"]; ok {
			fi.Optional = false
		}
		if def, ok := parsed["default"]; ok {
			fi.Default = def
			fi.HasDefault = true
		}
		if _, ok := parsed["text"]; ok {
			if si.text != nil {
				return fmt.Errorf("%s: text fields %s and %s", typ, si.text.Name, fi.Name)
			}
			fi.Text = true
			si.text = fi
		}
		if existing, ok := si.byWire[fi.WireName]; ok {
			return fmt.Errorf("field name conflict: %s and %s both map to %q in %s", existing.Name, fi.Name, fi.WireName, typ)
		}
		si.byWire[fi.WireName] = fi
		si.fields = append(si.fields, fi)
	}
	return nil
}
