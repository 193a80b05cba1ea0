package records

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout       = "2006-01-02"
	displayLayout    = "1/2/2006"
	UnknownDateLabel = "Unknown Date"
)

var calendarDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// fallbackLayouts are tried in order for date strings that are not plain calendar dates.
var fallbackLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"1/2/2006",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Mon Jan 2 2006",
	"Mon Jan 02 2006 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	time.UnixDate,
	"2006/01/02",
}

type dateKind int

const (
	dateAbsent dateKind = iota
	dateText
	dateTimestamp
	dateRaw
)

// DateLike is a stored date: either a YYYY-MM-DD string or a legacy
// {seconds, nanoseconds} timestamp object. Other shapes are kept verbatim
// so that rewriting a collection never alters records it did not touch.
type DateLike struct {
	kind    dateKind
	text    string
	seconds int64
	nanos   int64
	raw     json.RawMessage
}

func DateString(s string) DateLike {
	return DateLike{kind: dateText, text: s}
}

func DateTimestamp(seconds, nanos int64) DateLike {
	return DateLike{kind: dateTimestamp, seconds: seconds, nanos: nanos}
}

// DateFromTime returns the timestamp form of t, as decoded from native store timestamps.
func DateFromTime(t time.Time) DateLike {
	return DateTimestamp(t.Unix(), int64(t.Nanosecond()))
}

// DateOf returns the calendar date string of t in loc.
func DateOf(t time.Time, loc *time.Location) DateLike {
	return DateString(t.In(loc).Format(DateLayout))
}

func (d DateLike) IsZero() bool {
	return d.kind == dateAbsent
}

func (d DateLike) IsTimestamp() bool {
	return d.kind == dateTimestamp
}

// Text returns the string form, empty for non string dates.
func (d DateLike) Text() string {
	return d.text
}

func (d DateLike) Seconds() int64 {
	return d.seconds
}

func (d DateLike) Nanos() int64 {
	return d.nanos
}

// Equal compares the stored representation, not the instant.
func (d DateLike) Equal(o DateLike) bool {
	if d.kind != o.kind {
		return false
	}
	switch d.kind {
	case dateText:
		return d.text == o.text
	case dateTimestamp:
		return d.seconds == o.seconds && d.nanos == o.nanos
	case dateRaw:
		return bytes.Equal(d.raw, o.raw)
	}
	return true
}

func (d DateLike) String() string {
	switch d.kind {
	case dateText:
		return d.text
	case dateTimestamp:
		return time.Unix(d.seconds, d.nanos).UTC().Format(time.RFC3339)
	case dateRaw:
		return string(d.raw)
	}
	return ""
}

func (d DateLike) MarshalJSON() ([]byte, error) {
	switch d.kind {
	case dateText:
		return json.Marshal(d.text)
	case dateTimestamp:
		return json.Marshal(timestampObject{Seconds: d.seconds, Nanoseconds: d.nanos})
	case dateRaw:
		return d.raw, nil
	}
	return []byte("null"), nil
}

func (d *DateLike) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	*d = DateLike{}

	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")):
		return nil
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*d = DateString(s)
		return nil
	case trimmed[0] == '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err == nil {
			seconds, okSec := firstInt(obj, "seconds", "_seconds")
			if okSec {
				nanos, _ := firstInt(obj, "nanoseconds", "_nanoseconds")
				*d = DateTimestamp(seconds, nanos)
				return nil
			}
		}
	}

	d.kind = dateRaw
	d.raw = append(json.RawMessage(nil), trimmed...)
	return nil
}

func firstInt(obj map[string]json.RawMessage, keys ...string) (int64, bool) {
	for _, k := range keys {
		v, ok := obj[k]
		if !ok {
			continue
		}
		var f float64
		if err := json.Unmarshal(v, &f); err != nil {
			continue
		}
		return int64(f), true
	}
	return 0, false
}

// Instant is a normalized DateLike. Invalid instants sort before every valid one.
type Instant struct {
	Time  time.Time
	Valid bool
}

func (i Instant) Compare(o Instant) int {
	switch {
	case !i.Valid && !o.Valid:
		return 0
	case !i.Valid:
		return -1
	case !o.Valid:
		return 1
	}
	return i.Time.Compare(o.Time)
}

func (i Instant) Before(o Instant) bool {
	return i.Compare(o) < 0
}

// Label formats the instant as M/D/YYYY in loc.
func (i Instant) Label(loc *time.Location) string {
	if !i.Valid {
		return UnknownDateLabel
	}
	return i.Time.In(loc).Format(displayLayout)
}

// DayKey formats the instant as YYYY-MM-DD in loc, empty when invalid.
func (i Instant) DayKey(loc *time.Location) string {
	if !i.Valid {
		return ""
	}
	return i.Time.In(loc).Format(DateLayout)
}

// Normalize turns d into a comparable instant:
//   - timestamp objects: seconds since epoch (nanoseconds ignored);
//   - YYYY-MM-DD strings: midnight of that calendar day in loc;
//   - anything else: best effort parse of the value as given.
func Normalize(d DateLike, loc *time.Location) Instant {
	if loc == nil {
		loc = time.Local
	}

	switch d.kind {
	case dateTimestamp:
		return Instant{Time: time.Unix(d.seconds, 0).In(loc), Valid: true}
	case dateText:
		return normalizeText(d.text, loc)
	case dateRaw:
		var n float64
		if err := json.Unmarshal(d.raw, &n); err == nil {
			return Instant{Time: time.UnixMilli(int64(n)).In(loc), Valid: true}
		}
	}

	return Instant{}
}

// NormalizeDate normalizes d in the process local time zone.
func NormalizeDate(d DateLike) Instant {
	return Normalize(d, time.Local)
}

func normalizeText(s string, loc *time.Location) Instant {
	if calendarDateRegex.MatchString(s) {
		y, _ := strconv.Atoi(s[0:4])
		m, _ := strconv.Atoi(s[5:7])
		day, _ := strconv.Atoi(s[8:10])
		return Instant{Time: time.Date(y, time.Month(m), day, 0, 0, 0, 0, loc), Valid: true}
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return Instant{}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return Instant{Time: t, Valid: true}
		}
	}

	return Instant{}
}
