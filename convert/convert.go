// Package convert moves value trees to and from plain Go values and YAML.
package convert

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"

	"github.com/signadot/ljson/ir"

	"github.com/goccy/go-yaml"
)

// ToAny returns the Go value of node: map[string]any for objects, []any
// for arrays, and string, int64, float64, bool or nil for values. When an
// object repeats a name the first member wins.
func ToAny(node *ir.Node) (any, error) {
	switch node.Type() {
	case ir.ObjectType:
		res := make(map[string]any, node.Len())
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			if _, ok := res[c.Name()]; ok {
				continue
			}
			v, err := ToAny(c)
			if err != nil {
				return nil, err
			}
			res[c.Name()] = v
		}
		return res, nil
	case ir.ArrayType:
		res := make([]any, 0, node.Len())
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			v, err := ToAny(c)
			if err != nil {
				return nil, err
			}
			res = append(res, v)
		}
		return res, nil
	}
	return scalar(node)
}

func scalar(node *ir.Node) (any, error) {
	switch node.Type() {
	case ir.StringType:
		s, _ := node.AsString()
		return *s, nil
	case ir.LongType:
		v, _ := node.AsLong()
		return v, nil
	case ir.DoubleType:
		f, _ := node.AsDouble()
		return f, nil
	case ir.BoolType:
		b, _ := node.AsBool()
		return b, nil
	case ir.NullType:
		return nil, nil
	}
	return nil, fmt.Errorf("%w: node type %s", ErrUnsupported, node.Type())
}

// FromAny builds a tree from v. Maps become objects with sorted names,
// except yaml.MapSlice which keeps its order.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		return x.Clone(), nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return ir.FromLongRaw(i, string(x)), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %q", ErrUnsupported, string(x))
		}
		return ir.FromDoubleRaw(f, string(x)), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(x))
		for _, item := range x {
			val, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: keyString(item.Key), Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case []any:
		vs := make([]*ir.Node, 0, len(x))
		for _, item := range x {
			val, err := FromAny(item)
			if err != nil {
				return nil, err
			}
			vs = append(vs, val)
		}
		return ir.FromSlice(vs), nil
	case map[string]any:
		kvs := make([]ir.KeyVal, 0, len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			val, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: k, Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case fmt.Stringer:
		return ir.FromString(x.String()), nil
	}
	return fromValue(reflect.ValueOf(v))
}

func fromValue(rv reflect.Value) (*ir.Node, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return ir.FromBool(rv.Bool()), nil
	case reflect.String:
		return ir.FromString(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromLong(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return ir.FromDouble(float64(u)), nil
		}
		return ir.FromLong(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromDouble(rv.Float()), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ir.Null(), nil
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		vs := make([]*ir.Node, 0, rv.Len())
		for i := range rv.Len() {
			val, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			vs = append(vs, val)
		}
		return ir.FromSlice(vs), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		m := make(map[string]*ir.Node, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			val, err := FromAny(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			m[iter.Key().String()] = val
		}
		return ir.FromMap(m), nil
	}
	if !rv.IsValid() {
		return ir.Null(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, rv.Type())
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

// FromYAML decodes the first document in d keeping the order of mapping
// keys.
func FromYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromAny(v)
}

// ToYAML encodes node as YAML keeping the order of object members.
func ToYAML(node *ir.Node) ([]byte, error) {
	v, err := toOrdered(node)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(v)
}

func toOrdered(node *ir.Node) (any, error) {
	switch node.Type() {
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, node.Len())
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			v, err := toOrdered(c)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: c.Name(), Value: v})
		}
		return res, nil
	case ir.ArrayType:
		res := make([]any, 0, node.Len())
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			v, err := toOrdered(c)
			if err != nil {
				return nil, err
			}
			res = append(res, v)
		}
		return res, nil
	}
	return scalar(node)
}
