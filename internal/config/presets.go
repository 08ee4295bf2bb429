package config

import (
	"sort"
	"time"
)

// EventPreset is a named yearly window; the cutoff is the end of Day.
type EventPreset struct {
	Month    time.Month
	StartDay int
	Day      int
}

var Presets = map[string]EventPreset{
	"valentine": {Month: time.February, StartDay: 13, Day: 15},
	"whiteday":  {Month: time.March, StartDay: 13, Day: 15},
	"qixi":      {Month: time.August, StartDay: 9, Day: 11},
}

func GetPreset(name string) (EventPreset, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
