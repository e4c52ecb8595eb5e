package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Output formats understood by Format.
const (
	FormatMs      = "ms"
	FormatRFC3339 = "rfc3339"
	FormatDate    = "date"
	FormatHuman   = "human"
)

// Formats lists the supported output formats.
var Formats = []string{FormatMs, FormatRFC3339, FormatDate, FormatHuman}

// NormalizeFormat validates an output format name. Empty means FormatMs.
func NormalizeFormat(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return FormatMs, nil
	}
	for _, f := range Formats {
		if f == name {
			return name, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (expected one of: %s)", name, strings.Join(Formats, ", "))
}

// Format renders an epoch millisecond timestamp. loc defaults to UTC.
func Format(ms int64, format string, loc *time.Location) (string, error) {
	format, err := NormalizeFormat(format)
	if err != nil {
		return "", err
	}
	if loc == nil {
		loc = time.UTC
	}

	t := time.UnixMilli(ms).In(loc)
	switch format {
	case FormatRFC3339:
		return t.Format(RFC3339Milli), nil
	case FormatDate:
		return t.Format(DateLayout), nil
	case FormatHuman:
		return t.Format(HumanLayout), nil
	default:
		return strconv.FormatInt(ms, 10), nil
	}
}
