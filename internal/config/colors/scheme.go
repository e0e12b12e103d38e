package colors

// ColorScheme defines all configurable color values for menu output
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (menu header, prompts)
	Accent string `yaml:"accent"`

	// Semantic colors
	Success string `yaml:"success"` // confirmations after a mutation
	Error   string `yaml:"error"`   // validation and storage errors

	// Status colors used when listing tasks
	Pending   string `yaml:"pending"`
	Completed string `yaml:"completed"`

	// Text colors
	Subtle string `yaml:"subtle"` // Muted text (ids, hints)
	Normal string `yaml:"normal"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.Success, preset.Success)
	fill(&c.Error, preset.Error)
	fill(&c.Pending, preset.Pending)
	fill(&c.Completed, preset.Completed)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
}

// MergeFrom overrides colors with every non-empty value from other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	override(&c.Accent, other.Accent)
	override(&c.Success, other.Success)
	override(&c.Error, other.Error)
	override(&c.Pending, other.Pending)
	override(&c.Completed, other.Completed)
	override(&c.Subtle, other.Subtle)
	override(&c.Normal, other.Normal)
}

func fill(dst *string, val string) {
	if *dst == "" {
		*dst = val
	}
}

func override(dst *string, val string) {
	if val != "" {
		*dst = val
	}
}
