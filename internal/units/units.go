// Package units holds the fixed duration vocabulary used by phrase parsing.
//
// Magnitudes are fixed-length approximations in milliseconds. A month is
// always 31 days and a year always 365 days; nothing here is calendar aware.
package units

// Magnitudes in milliseconds.
const (
	Millisecond int64 = 1
	Second            = 1000 * Millisecond
	Minute            = 60 * Second
	Hour              = 60 * Minute
	Day               = 24 * Hour
	Week              = 7 * Day
	Fortnight         = 14 * Day
	Month             = 31 * Day
	Year              = 365 * Day
	Decade            = 10 * Year
	Century           = 100 * Year
)

// Unit is a named duration magnitude. Every unit except millisecond is
// defined as Factor times its Base unit.
type Unit struct {
	Name   string `json:"name" yaml:"name"`
	Ms     int64  `json:"ms" yaml:"ms"`
	Factor int64  `json:"factor,omitempty" yaml:"factor,omitempty"`
	Base   string `json:"base,omitempty" yaml:"base,omitempty"`
}

// Ordered smallest to largest.
var table = []Unit{
	{Name: "millisecond", Ms: Millisecond},
	{Name: "second", Ms: Second, Factor: 1000, Base: "millisecond"},
	{Name: "minute", Ms: Minute, Factor: 60, Base: "second"},
	{Name: "hour", Ms: Hour, Factor: 60, Base: "minute"},
	{Name: "day", Ms: Day, Factor: 24, Base: "hour"},
	{Name: "week", Ms: Week, Factor: 7, Base: "day"},
	{Name: "fortnight", Ms: Fortnight, Factor: 14, Base: "day"},
	{Name: "month", Ms: Month, Factor: 31, Base: "day"},
	{Name: "year", Ms: Year, Factor: 365, Base: "day"},
	{Name: "decade", Ms: Decade, Factor: 10, Base: "year"},
	{Name: "century", Ms: Century, Factor: 100, Base: "year"},
}

var byName = func() map[string]int64 {
	m := make(map[string]int64, len(table))
	for _, u := range table {
		m[u.Name] = u.Ms
	}
	return m
}()

// Lookup returns the magnitude of the named unit. Names are matched exactly.
func Lookup(name string) (int64, bool) {
	ms, ok := byName[name]
	return ms, ok
}

// All returns every unit ordered from smallest to largest.
func All() []Unit {
	return append([]Unit(nil), table...)
}

// Names returns the unit names ordered from smallest to largest.
func Names() []string {
	names := make([]string, len(table))
	for i, u := range table {
		names[i] = u.Name
	}
	return names
}
