package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"strict":        false,
		"format":        "text",
		"include":       []string{"**/*.md", "**/*.markdown"},
		"overrides":     map[string]string{},
		"show_progress": true,
	}
}
