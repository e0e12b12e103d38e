package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Success: "#FFFFFF",
		Error:   "#FFFFFF",

		Pending:   "#D0D0D0",
		Completed: "#FFFFFF",

		Subtle: "#585858",
		Normal: "#D0D0D0",
	}
}
