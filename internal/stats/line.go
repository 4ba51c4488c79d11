package stats

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// Line is a record's stat line. A key that is absent from the map is a null stat.
type Line map[Key]float64

// Get returns the value of a stat and whether the stat is present.
func (l Line) Get(k Key) (float64, bool) {
	v, ok := l[k]
	return v, ok
}

// Or returns the value of a stat, or def if the stat is null.
func (l Line) Or(k Key, def float64) float64 {
	if v, ok := l[k]; ok {
		return v
	}
	return def
}

// With returns a copy of the line with k set to v. The receiver is not modified.
func (l Line) With(k Key, v float64) Line {
	out := make(Line, len(l)+1)
	maps.Copy(out, l)
	out[k] = v
	return out
}

// Clone returns a copy of the line.
func (l Line) Clone() Line {
	if l == nil {
		return nil
	}
	return maps.Clone(l)
}

// FromRecord builds a Line from a flat record, keeping only known stat keys with parseable numeric values.
func FromRecord(rec map[string]any) Line {
	out := make(Line)
	for name, raw := range rec {
		k, ok := LookupKey(name)
		if !ok {
			continue
		}
		if v, ok := ParseValue(raw); ok {
			out[k] = v
		}
	}
	return out
}

// FromFloats builds a Line from a string-keyed map, as stored in Firestore documents.
func FromFloats(m map[string]float64) Line {
	out := make(Line, len(m))
	for name, v := range m {
		k, ok := LookupKey(name)
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out[k] = v
	}
	return out
}

// Floats converts the line to a string-keyed map.
func (l Line) Floats() map[string]float64 {
	out := make(map[string]float64, len(l))
	for k, v := range l {
		out[string(k)] = v
	}
	return out
}

// ParseValue converts a raw record value into a float64.
// Numbers of any Go kind, json.Number, and numeric strings are accepted.
// Nil, non-numeric strings, NaN, and infinities are rejected.
func ParseValue(raw any) (float64, bool) {
	var v float64
	switch x := raw.(type) {
	case nil:
		return 0, false
	case float64:
		v = x
	case float32:
		v = float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		v = f
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		v = f
	case bool:
		return 0, false
	default:
		rv := reflect.ValueOf(raw)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			v = float64(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			v = float64(rv.Uint())
		case reflect.Float32, reflect.Float64:
			v = rv.Float()
		case reflect.Pointer:
			if rv.IsNil() {
				return 0, false
			}
			return ParseValue(rv.Elem().Interface())
		default:
			return 0, false
		}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
