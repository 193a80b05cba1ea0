package records

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Native values are the plain shapes document stores read and write: maps,
// slices, strings, bools, int64, float64, time.Time and nil.

type timestampObject struct {
	Seconds     int64 `json:"seconds"`
	Nanoseconds int64 `json:"nanoseconds"`
}

// NativeJSON encodes a native value as JSON. Times become {seconds, nanoseconds}
// objects and whole floats keep their decimal point, so JSONNative gives back
// the same types.
func NativeJSON(x any) ([]byte, error) {
	return json.Marshal(toJSONShape(x))
}

// JSONNative decodes JSON into native values: integers as int64, other numbers
// as float64 and {seconds, nanoseconds} objects as UTC times.
func JSONNative(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return nil, err
	}
	return fromJSONShape(x), nil
}

func toJSONShape(x any) any {
	switch t := x.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, v := range t {
			out[k] = toJSONShape(v)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, v := range t {
			out[i] = toJSONShape(v)
		}
		return out
	case time.Time:
		return timestampObject{Seconds: t.Unix(), Nanoseconds: int64(t.Nanosecond())}
	case float32:
		return floatNumber(float64(t))
	case float64:
		return floatNumber(t)
	}
	return x
}

func floatNumber(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return json.Number(s)
}

func fromJSONShape(x any) any {
	switch t := x.(type) {
	case map[string]any:
		if ts, ok := timeFromShape(t); ok {
			return ts
		}
		for k, v := range t {
			t[k] = fromJSONShape(v)
		}
		return t
	case []any:
		for i, v := range t {
			t[i] = fromJSONShape(v)
		}
		return t
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		f, _ := t.Float64()
		return f
	}
	return x
}

func timeFromShape(m map[string]any) (time.Time, bool) {
	if len(m) != 2 {
		return time.Time{}, false
	}
	seconds, okSec := m["seconds"].(json.Number)
	nanos, okNanos := m["nanoseconds"].(json.Number)
	if !okSec || !okNanos {
		return time.Time{}, false
	}
	s, errSec := seconds.Int64()
	n, errNanos := nanos.Int64()
	if errSec != nil || errNanos != nil {
		return time.Time{}, false
	}
	return time.Unix(s, n).UTC(), true
}
