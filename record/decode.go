// Package record assembles typed structs from token trees.
//
// Each exported field of the target struct maps to one token of an object
// node. The mapping is controlled by the `mxl` struct tag:
//
//	type Time struct {
//		Beats    int
//		BeatType int `mxl:"field=beat-type,default=4"`
//		Symbol   *simpletype.TimeSymbol
//	}
//
// Tag keys are field=<wire name>, optional, required, default=<text>, text
// and the single value "-" which skips the field. Fields are decoded
// independently and every failure is reported, so one call lists all bad
// fields of a record.
package record

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/signadot/mxl/constraint"
	"github.com/signadot/mxl/debug"
	"github.com/signadot/mxl/ir"
	"go.uber.org/multierr"
)

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

var xsdBoolean = constraint.NewSet("boolean", "true", "false", "1", "0")

// Decode fills the struct pointed to by v from node. Fields which decode
// are set even when others fail; the returned error then combines a
// *FieldError or *MissingFieldError per failing field.
func Decode(node *ir.Node, v any, opts ...Option) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrInvalidTarget, v)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrNotObject)
	}
	d := &decoder{cfg: newConfig(opts)}
	path := d.cfg.pathPrefix
	if path == "" {
		path = node.Path()
	}
	d.decodeStruct(node, rv.Elem(), path)
	if debug.Record() {
		debug.Logf("record %s into %s: %d errors", path, rv.Elem().Type(), d.n)
	}
	return d.err
}

type decoder struct {
	cfg *config
	err error
	n   int
}

func (d *decoder) fail(err error) {
	d.err = multierr.Append(d.err, err)
	d.n++
}

func (d *decoder) done() bool {
	return d.cfg.stopOnFirstError && d.n > 0
}

func (d *decoder) decodeStruct(node *ir.Node, rv reflect.Value, path string) {
	si, err := getStructInfo(rv.Type())
	if err != nil {
		d.fail(&FieldError{Path: path, Err: err})
		return
	}
	switch node.Type {
	case ir.ObjectType:
	case ir.StringType:
		// an element with character content only
		if si.text == nil {
			if strings.TrimSpace(node.String) != "" {
				d.fail(&FieldError{Path: path, Raw: node.String, Err: ErrNotObject})
				return
			}
			// <x/> is an object without fields
			node = &ir.Node{Type: ir.ObjectType}
		}
	default:
		d.fail(&FieldError{Path: path, Err: fmt.Errorf("%w: %s", ErrNotObject, node.Type)})
		return
	}

	for _, fi := range si.fields {
		if d.done() {
			return
		}
		fieldPath := ir.FieldPath(path, fi.WireName)
		fv := rv.FieldByIndex(fi.Index)
		child := ir.Get(node, fi.WireName)
		if fi.Text && child == nil {
			child = textNode(node.String, fi.Type)
		}
		if debug.Record() {
			debug.Logf("record field %s present=%t", fieldPath, !ir.Absent(child))
		}
		if ir.Absent(child) {
			switch {
			case fi.HasDefault:
				d.decodeValue(ir.FromString(fi.Default), fv, fieldPath)
			case !fi.Optional:
				d.fail(&MissingFieldError{Path: fieldPath})
			}
			continue
		}
		d.decodeValue(child, fv, fieldPath)
	}

	if d.cfg.allowUnknown || node.Type != ir.ObjectType {
		return
	}
	for _, f := range node.Fields {
		if d.done() {
			return
		}
		if _, ok := si.byWire[f]; !ok {
			d.fail(&FieldError{Path: ir.FieldPath(path, f), Err: ErrUnknownField})
		}
	}
}

// textNode returns the character content as a token. Blank content is
// absent unless the field holds a string.
func textNode(text string, typ reflect.Type) *ir.Node {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.String && strings.TrimSpace(text) == "" {
		return nil
	}
	return ir.FromString(text)
}

func (d *decoder) decodeValue(node *ir.Node, fv reflect.Value, path string) {
	typ := fv.Type()
	if typ.Kind() == reflect.Pointer {
		n := d.n
		elem := reflect.New(typ.Elem())
		d.decodeValue(node, elem.Elem(), path)
		if d.n == n {
			fv.Set(elem)
		}
		return
	}
	if reflect.PointerTo(typ).Implements(textUnmarshalerType) {
		raw, ok := d.scalar(node, path)
		if !ok {
			return
		}
		u := fv.Addr().Interface().(encoding.TextUnmarshaler)
		if err := u.UnmarshalText([]byte(raw)); err != nil {
			d.fail(&FieldError{Path: path, Raw: raw, Err: err})
		}
		return
	}

	switch typ.Kind() {
	case reflect.Struct:
		d.decodeStruct(node, fv, path)
	case reflect.Slice:
		d.decodeSlice(node, fv, path)
	case reflect.String:
		if raw, ok := d.scalar(node, path); ok {
			fv.SetString(raw)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		raw, ok := d.scalar(node, path)
		if !ok {
			return
		}
		bits := typ.Bits()
		r := constraint.Ints(typ.String(), -1<<(bits-1), 1<<(bits-1)-1)
		v, err := constraint.ParseInt(r, raw)
		if err != nil {
			d.fail(&FieldError{Path: path, Raw: raw, Err: err})
			return
		}
		fv.SetInt(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		raw, ok := d.scalar(node, path)
		if !ok {
			return
		}
		hi := int64(math.MaxInt64)
		if bits := typ.Bits(); bits < 64 {
			hi = 1<<bits - 1
		}
		v, err := constraint.ParseInt(constraint.Ints(typ.String(), 0, hi), raw)
		if err != nil {
			d.fail(&FieldError{Path: path, Raw: raw, Err: err})
			return
		}
		fv.SetUint(uint64(v))
	case reflect.Float32, reflect.Float64:
		raw, ok := d.scalar(node, path)
		if !ok {
			return
		}
		v, err := constraint.ParseDecimal(constraint.AnyDecimal(typ.String()), raw)
		if err != nil {
			d.fail(&FieldError{Path: path, Raw: raw, Err: err})
			return
		}
		fv.SetFloat(v)
	case reflect.Bool:
		raw, ok := d.scalar(node, path)
		if !ok {
			return
		}
		if err := constraint.Validate(xsdBoolean, raw); err != nil {
			d.fail(&FieldError{Path: path, Raw: raw, Err: err})
			return
		}
		fv.SetBool(raw == "true" || raw == "1")
	default:
		d.fail(&FieldError{Path: path, Err: fmt.Errorf("%w: %s", ErrUnsupportedType, typ)})
	}
}

// decodeSlice accepts an array node, or a single node for a one element
// slice.
func (d *decoder) decodeSlice(node *ir.Node, fv reflect.Value, path string) {
	elems := []*ir.Node{node}
	if node.Type == ir.ArrayType {
		elems = node.Values
	}
	res := reflect.MakeSlice(fv.Type(), len(elems), len(elems))
	for i, elem := range elems {
		if d.done() {
			return
		}
		elemPath := path
		if node.Type == ir.ArrayType {
			elemPath = ir.IndexPath(path, i)
		}
		d.decodeValue(elem, res.Index(i), elemPath)
	}
	fv.Set(res)
}

func (d *decoder) scalar(node *ir.Node, path string) (string, bool) {
	if node.Type != ir.StringType {
		d.fail(&FieldError{Path: path, Err: fmt.Errorf("%w: %s", ErrNotScalar, node.Type)})
		return "", false
	}
	return node.String, true
}
