package config

import (
	"sort"

	"github.com/san-kum/world2/internal/world"
)

func reducedUsage() world.Constants {
	c := world.DefaultConstants()
	c.NRUN1 = 0.25
	return c
}

var presets = map[string]Scenario{
	"standard":            {Figure: "4-1", Constants: world.DefaultConstants()},
	"resources-conserved": {Figure: "4-5", Constants: reducedUsage()},
}

// GetPreset returns a copy of the named preset, or nil when there is
// no such preset.
func GetPreset(name string) *Scenario {
	sc, ok := presets[name]
	if !ok {
		return nil
	}
	return &sc
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
