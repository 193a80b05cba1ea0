package records

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	log "github.com/sirupsen/logrus"
)

// persisted is what a decoded record remembers of its stored form. A record
// that is written back as decoded emits stored unchanged, so rewriting an array
// never alters the records an edit did not target. Fields the model does not
// know are kept in extra and survive WithUpdates.
//
// Records are values: changing a decoded record means building a new one
// (NewWorkout, WithUpdates), never assigning fields in place.
type persisted struct {
	stored json.RawMessage
	extra  map[string]json.RawMessage
}

// decodeRecord decodes data into v, tolerating fields of unexpected types, and
// returns what has to be kept to write the record back unchanged.
func decodeRecord(data []byte, v any, what string) (persisted, error) {
	trimmed := bytes.TrimSpace(data)
	p := persisted{
		stored: append(json.RawMessage(nil), trimmed...),
	}

	if len(trimmed) == 0 || trimmed[0] != '{' {
		log.Warnf("decode %s: not an object, keeping it as stored: %.40s", what, trimmed)
		return p, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return p, fmt.Errorf("decode %s: %w", what, err)
	}
	known := jsonFieldNames(reflect.TypeOf(v).Elem())
	for name, raw := range fields {
		if known[name] {
			continue
		}
		if p.extra == nil {
			p.extra = make(map[string]json.RawMessage)
		}
		p.extra[name] = raw
	}

	err := json.Unmarshal(trimmed, v)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		log.Warnf("decode %s: coercing malformed field: %s", what, err)
		return p, nil
	}
	return p, err
}

// encodeRecord encodes v and adds the extra fields the model does not cover.
func encodeRecord(v any, extra map[string]json.RawMessage) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for name, raw := range extra {
		if _, ok := fields[name]; !ok {
			fields[name] = raw
		}
	}
	return json.Marshal(fields)
}

func jsonFieldNames(t reflect.Type) map[string]bool {
	names := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		names[name] = true
	}
	return names
}
