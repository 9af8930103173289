package editor

// Preset is a named RGB colour that can be applied to the sliders.
type Preset struct {
	Name  string
	Red   float64
	Green float64
	Blue  float64
}

// DefaultPresets are the built-in quick colours.
var DefaultPresets = []Preset{
	{Name: "Pink", Red: 0.7, Green: 0.3, Blue: 0.5},
	{Name: "Blue", Red: 0.2, Green: 0.3, Blue: 0.8},
	{Name: "Green", Red: 0.3, Green: 0.7, Blue: 0.3},
	{Name: "Red", Red: 0.8, Green: 0.2, Blue: 0.2},
}

// PresetFromHex builds a preset from a "#RRGGBB" colour.
func PresetFromHex(name, hex string) (Preset, error) {
	r, g, b, err := ParseHex(hex)
	if err != nil {
		return Preset{}, err
	}
	return Preset{Name: name, Red: r, Green: g, Blue: b}, nil
}

// ApplyTo sets the preset's RGB on c. Alpha is unchanged.
func (p Preset) ApplyTo(c *Channels) {
	c.SetRGB(p.Red, p.Green, p.Blue)
}

// FindPreset looks a preset up by name.
func FindPreset(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
