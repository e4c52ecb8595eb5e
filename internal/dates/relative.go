package dates

import (
	"fmt"

	"github.com/aidanlsb/tempio/internal/units"
)

// describeUnits are the units used for relative descriptions, largest first.
var describeUnits = []struct {
	name string
	ms   int64
}{
	{"year", units.Year},
	{"month", units.Month},
	{"week", units.Week},
	{"day", units.Day},
	{"hour", units.Hour},
	{"minute", units.Minute},
	{"second", units.Second},
}

// DescribeOffset describes ms relative to nowMs using the largest whole unit,
// e.g. "3 days ago" or "in 2 weeks". Offsets under a second are "now".
func DescribeOffset(ms, nowMs int64) string {
	delta := ms - nowMs
	abs := delta
	if abs < 0 {
		abs = -abs
	}

	for _, u := range describeUnits {
		if abs < u.ms {
			continue
		}
		n := abs / u.ms
		name := u.name
		if n != 1 {
			name += "s"
		}
		if delta < 0 {
			return fmt.Sprintf("%d %s ago", n, name)
		}
		return fmt.Sprintf("in %d %s", n, name)
	}
	return "now"
}
