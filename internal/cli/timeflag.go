package cli

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/aidanlsb/tempio/internal/config"
	"github.com/aidanlsb/tempio/internal/dates"
	"github.com/aidanlsb/tempio/internal/phrase"
)

// timeFlag holds a --now value. It is validated on Set but parsed again at
// run time, once the output zone is known.
type timeFlag struct {
	raw string
}

var _ pflag.Value = (*timeFlag)(nil)

func (f *timeFlag) String() string { return f.raw }

func (f *timeFlag) Set(s string) error {
	if _, _, err := dates.ParseNowArg(s, time.UTC); err != nil {
		return err
	}
	f.raw = s
	return nil
}

func (f *timeFlag) Type() string { return "time" }

// resolveLocation returns the zone from --tz, falling back to config.
func resolveLocation(c *config.Config) (*time.Location, error) {
	if tzFlag != "" {
		return time.LoadLocation(tzFlag)
	}
	return c.Location()
}

// newParser builds a parser that uses --now when given and the wall clock
// otherwise.
func newParser(loc *time.Location) (phrase.Parser, error) {
	now, ok, err := dates.ParseNowArg(nowFlag.raw, loc)
	if err != nil {
		return phrase.Parser{}, err
	}
	if ok {
		return phrase.Fixed(now), nil
	}
	return phrase.Parser{}, nil
}
