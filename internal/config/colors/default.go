package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Semantic
		Success: "#5FD75F",
		Error:   "#FF0000",

		// Status
		Pending:   "#FFD700",
		Completed: "#5FD75F",

		// Text
		Subtle: "#585858",
		Normal: "#D0D0D0",
	}
}
