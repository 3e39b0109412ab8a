package record

import (
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the canonical text form of dates.
const DateLayout = "2006-01-02"

// Format converts a value to its canonical text form. This is the
// form values take in the relational store.
func Format(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return t.Format(DateLayout)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// Kind returns a one-letter tag of the value type. Together with
// Format it gives an unambiguous serialization, so "1" (string) and
// 1 (integer) never look the same.
func Kind(v any) byte {
	switch v.(type) {
	case nil:
		return 'n'
	case string:
		return 's'
	case int64, int:
		return 'i'
	case float64:
		return 'f'
	case time.Time:
		return 'd'
	case bool:
		return 'b'
	default:
		return 'x'
	}
}
