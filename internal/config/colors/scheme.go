package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "dragon")
	Preset string `yaml:"preset"`

	// Primary accent color (used for the selected cell, titles, highlights)
	Accent string `yaml:"accent"`

	// Score colors
	Positive string `yaml:"positive"`
	Negative string `yaml:"negative"`
	Zero     string `yaml:"zero"`
	Sum      string `yaml:"sum"`

	// UI element colors
	RowBorder      string `yaml:"row_border"`
	FirstRowBorder string `yaml:"first_row_border"` // the row that cannot be removed
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// Presets lists the names GetPreset understands
var Presets = []string{"default", "monochrome", "dragon", "lotus", "wave"}

// GetPreset returns a preset color scheme by name, falling back to Default
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "dragon":
		return Dragon()
	case "lotus":
		return Lotus()
	case "wave":
		return Wave()
	default:
		return Default()
	}
}

// colorFields returns pointers to every color value, in declaration order
func (c *ColorScheme) colorFields() []*string {
	return []*string{
		&c.Accent,
		&c.Positive, &c.Negative, &c.Zero, &c.Sum,
		&c.RowBorder, &c.FirstRowBorder, &c.SelectedBorder, &c.SelectedBg,
		&c.Title, &c.Subtle, &c.Normal,
		&c.InfoFg, &c.InfoBg, &c.WarningFg, &c.WarningBg, &c.ErrorFg, &c.ErrorBg,
		&c.StatusBarBg, &c.StatusBarText,
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	dst, src := c.colorFields(), preset.colorFields()
	for i := range dst {
		if *dst[i] == "" {
			*dst[i] = *src[i]
		}
	}
}

// MergeFrom overrides values with every non-empty value of other.
// A different preset in other resets the base colors to that preset first.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		*c = *GetPreset(other.Preset)
	}

	dst, src := c.colorFields(), other.colorFields()
	for i := range dst {
		if *src[i] != "" {
			*dst[i] = *src[i]
		}
	}
}
