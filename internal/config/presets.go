package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/iwvelando/mat-calc/internal/matcalc"
	"github.com/iwvelando/mat-calc/pkg/validation"
)

// ErrUnknownPreset is returned when a preset name is not in the catalog.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a named frame and photo size pair.
type Preset struct {
	Frame matcalc.Rectangle `yaml:"frame" json:"frame"`
	Photo matcalc.Rectangle `yaml:"photo" json:"photo"`
}

// DefaultPresets returns the built-in preset catalog. Names are lowercase.
func DefaultPresets() map[string]Preset {
	return map[string]Preset{
		"photo-10x15": {Frame: matcalc.Rectangle{Width: 200, Height: 250}, Photo: matcalc.Rectangle{Width: 100, Height: 150}},
		"photo-13x18": {Frame: matcalc.Rectangle{Width: 230, Height: 280}, Photo: matcalc.Rectangle{Width: 130, Height: 180}},
		"photo-20x30": {Frame: matcalc.Rectangle{Width: 300, Height: 400}, Photo: matcalc.Rectangle{Width: 200, Height: 300}},
		"a4-frame":    {Frame: matcalc.Rectangle{Width: 210, Height: 297}, Photo: matcalc.Rectangle{Width: 150, Height: 200}},
	}
}

// AllPresets returns the built-in presets merged with the configured ones.
// Configured presets replace built-ins of the same name.
func (c *Configuration) AllPresets() map[string]Preset {
	presets := DefaultPresets()
	for name, preset := range c.Presets {
		presets[strings.ToLower(name)] = preset
	}
	return presets
}

// LookupPreset finds a preset by name, ignoring case.
func (c *Configuration) LookupPreset(name string) (Preset, error) {
	presets := c.AllPresets()
	key := strings.ToLower(strings.TrimSpace(name))
	if preset, ok := presets[key]; ok {
		return preset, nil
	}

	if suggestion := validation.Suggest(key, PresetNames(presets)); suggestion != "" {
		return Preset{}, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownPreset, name, suggestion)
	}
	return Preset{}, fmt.Errorf("%w %q", ErrUnknownPreset, name)
}

// PresetNames returns the preset names in sorted order.
func PresetNames(presets map[string]Preset) []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
