package records

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	BodyweightMarker      = "bodyweight"
	BodyweightEmojiMarker = "🏋️‍♀️ bodyweight"
)

var (
	intPrefixRegex   = regexp.MustCompile(`^[+-]?\d+`)
	floatPrefixRegex = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

type valueKind int

const (
	valueAbsent valueKind = iota
	valueString
	valueNumber
	valueRaw
)

// Value is a set field (reps or weight) exactly as it was stored: a string the
// user typed, or a number. Numeric coercion happens on read and never fails.
type Value struct {
	kind valueKind
	text string // the string, or the literal JSON number
	raw  json.RawMessage
}

func StringValue(s string) Value {
	return Value{kind: valueString, text: s}
}

func NumberValue(f float64) Value {
	return Value{kind: valueNumber, text: strconv.FormatFloat(f, 'f', -1, 64)}
}

func IntValue(i int) Value {
	return Value{kind: valueNumber, text: strconv.Itoa(i)}
}

func (v Value) IsZero() bool {
	return v.kind == valueAbsent
}

func (v Value) IsNumber() bool {
	return v.kind == valueNumber
}

// String returns the stored text, empty when absent.
func (v Value) String() string {
	if v.kind == valueRaw {
		return string(v.raw)
	}
	return v.text
}

// IsBlank reports whether the value carries no user input.
func (v Value) IsBlank() bool {
	return v.kind == valueAbsent || (v.kind == valueString && strings.TrimSpace(v.text) == "")
}

// IsBodyweight reports whether the value is one of the bodyweight markers.
func (v Value) IsBodyweight() bool {
	if v.kind != valueString {
		return false
	}
	s := strings.ToLower(strings.TrimSpace(v.text))
	return s == BodyweightMarker || s == BodyweightEmojiMarker
}

// Int parses the leading integer of the value, 0 when there is none or when it
// does not fit an int32.
func (v Value) Int() int {
	switch v.kind {
	case valueNumber:
		f, err := strconv.ParseFloat(v.text, 64)
		if err != nil || math.IsNaN(f) || math.Abs(f) > math.MaxInt32 {
			return 0
		}
		return int(f)
	case valueString:
		m := intPrefixRegex.FindString(strings.TrimSpace(v.text))
		if m == "" {
			return 0
		}
		i, err := strconv.Atoi(m)
		if err != nil || i > math.MaxInt32 || i < -math.MaxInt32 {
			return 0
		}
		return i
	}
	return 0
}

// Float parses the leading decimal number of the value, 0 when there is none.
func (v Value) Float() float64 {
	f, _ := v.FloatOK()
	return f
}

// FloatOK is Float that also reports whether any number was found.
func (v Value) FloatOK() (float64, bool) {
	var s string
	switch v.kind {
	case valueNumber:
		s = v.text
	case valueString:
		s = floatPrefixRegex.FindString(strings.TrimSpace(v.text))
	default:
		return 0, false
	}
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == valueRaw {
		return bytes.Equal(v.raw, o.raw)
	}
	return v.text == o.text
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case valueString:
		return json.Marshal(v.text)
	case valueNumber:
		return []byte(v.text), nil
	case valueRaw:
		return v.raw, nil
	}
	return []byte("null"), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	*v = Value{}

	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")):
		return nil
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = StringValue(s)
		return nil
	case trimmed[0] == '-' || (trimmed[0] >= '0' && trimmed[0] <= '9'):
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err == nil {
			*v = Value{kind: valueNumber, text: n.String()}
			return nil
		}
	}

	v.kind = valueRaw
	v.raw = append(json.RawMessage(nil), trimmed...)
	return nil
}
