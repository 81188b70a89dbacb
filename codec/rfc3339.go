package codec

import (
	"fmt"
	"time"

	scbind "github.com/reoring/scbind"
)

// Time binds a time.Time field written as an RFC3339 string. Encoding
// normalizes to UTC with RFC3339Nano, which trims trailing zeros.
func Time[T any](field, wire string, get func(*T) *time.Time) Attr[T] {
	d := Descriptor{FieldName: field, WireName: wire, Tag: TagString, Format: FormatRFC3339}
	return Attr[T]{
		desc:   d,
		encode: func(v *T) any { return formatRFC3339(*get(v)) },
		decode: func(v *T, raw any, _ scbind.DecodeOpt) scbind.Issues {
			switch x := raw.(type) {
			case time.Time:
				*get(v) = x
				return nil
			case string:
				t, err := parseRFC3339(x)
				if err != nil {
					return formatIssue(d, fmt.Errorf("invalid RFC3339 time: %w", err))
				}
				*get(v) = t
				return nil
			}
			return typeIssue(d, raw)
		},
		zero: func(v *T) bool { return get(v).IsZero() },
	}
}

func parseRFC3339(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
