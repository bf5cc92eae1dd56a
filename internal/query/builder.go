// Package query renders request objects as URL query strings.
//
// Fields are read in declaration order. The key is taken from the `query`
// struct tag, falling back to the field name; `query:"-"` skips the field.
//
// A nil pointer or interface is skipped. Any other scalar is emitted, blank
// strings and zero numbers included. Slices and arrays produce one pair per
// element; empty slices produce nothing, and nil or blank elements are
// dropped individually. Booleans render as true/false, times as RFC 3339.
package query

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// TimeFormat is the layout used for time.Time values.
const TimeFormat = time.RFC3339

const tagName = "query"

var timeType = reflect.TypeOf(time.Time{})

// Pair is a single key=value query parameter before encoding.
type Pair struct {
	Key   string
	Value string
}

// Build returns the encoded query string for v, without a leading "?".
// A nil v, or one with nothing to emit, yields "".
func Build(v any) string {
	return Encode(Pairs(v))
}

// Encode percent-encodes pairs and joins them with "&", preserving order.
func Encode(pairs []Pair) string {
	var b strings.Builder

	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}

		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}

	return b.String()
}

// Join concatenates already encoded query strings, ignoring empty ones.
func Join(queries ...string) string {
	parts := make([]string, 0, len(queries))

	for _, q := range queries {
		if q != "" {
			parts = append(parts, q)
		}
	}

	return strings.Join(parts, "&")
}

// AppendTo attaches an encoded query to endpoint. It adds "?" (or "&" when
// endpoint already has a query) only if query is non-empty.
func AppendTo(endpoint, query string) string {
	if query == "" {
		return endpoint
	}

	switch {
	case !strings.Contains(endpoint, "?"):
		return endpoint + "?" + query
	case strings.HasSuffix(endpoint, "?"), strings.HasSuffix(endpoint, "&"):
		return endpoint + query
	default:
		return endpoint + "&" + query
	}
}

// Pairs returns the ordered parameters of v. Only structs, or pointers to
// them, contribute; anything else yields nil.
func Pairs(v any) []Pair {
	rv, ok := indirect(reflect.ValueOf(v))
	if !ok || rv.Kind() != reflect.Struct {
		return nil
	}

	return appendStruct(nil, rv)
}

func appendStruct(pairs []Pair, rv reflect.Value) []Pair {
	rt := rv.Type()

	for i := range rt.NumField() {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		tag, hasTag := field.Tag.Lookup(tagName)
		if tag == "-" {
			continue
		}

		value := rv.Field(i)

		if field.Anonymous && !hasTag {
			if embedded, ok := indirect(value); ok && embedded.Kind() == reflect.Struct && embedded.Type() != timeType {
				pairs = appendStruct(pairs, embedded)

				continue
			}
		}

		key := field.Name
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			key = name
		}

		pairs = appendField(pairs, key, value)
	}

	return pairs
}

// appendField adds the pairs of one field. A value that cannot be rendered
// contributes nothing, even if rendering panics.
func appendField(pairs []Pair, key string, value reflect.Value) (out []Pair) {
	out = pairs

	defer func() {
		if recover() != nil {
			out = pairs
		}
	}()

	value, ok := indirect(value)
	if !ok {
		return out
	}

	switch value.Kind() {
	case reflect.Slice, reflect.Array:
		for i := range value.Len() {
			elem, ok := indirect(value.Index(i))
			if !ok {
				continue
			}

			s, ok := render(elem)
			if !ok || strings.TrimSpace(s) == "" {
				continue
			}

			out = append(out, Pair{Key: key, Value: s})
		}
	default:
		if s, ok := render(value); ok {
			out = append(out, Pair{Key: key, Value: s})
		}
	}

	return out
}

// indirect dereferences pointers and interfaces, reporting false on nil.
func indirect(v reflect.Value) (reflect.Value, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, false
		}

		v = v.Elem()
	}

	return v, v.IsValid()
}

// render converts a scalar to its query form. Named types are converted by
// kind first so enums travel as their numeric value.
func render(v reflect.Value) (string, bool) {
	if v.Type() == timeType {
		t, ok := v.Interface().(time.Time)

		return t.Format(TimeFormat), ok
	}

	var (
		s   string
		err error
	)

	switch v.Kind() {
	case reflect.Bool:
		s, err = cast.ToStringE(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		s, err = cast.ToStringE(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		s, err = cast.ToStringE(v.Uint())
	case reflect.Float32:
		s, err = cast.ToStringE(float32(v.Float()))
	case reflect.Float64:
		s, err = cast.ToStringE(v.Float())
	case reflect.String:
		s = v.String()
	default:
		if !v.CanInterface() {
			return "", false
		}

		stringer, ok := v.Interface().(fmt.Stringer)
		if !ok {
			return "", false
		}

		s = stringer.String()
	}

	if err != nil {
		return "", false
	}

	return s, true
}
