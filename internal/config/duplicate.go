package config

// DuplicateConfig holds settings for duplicate position detection in batch mode.
type DuplicateConfig struct {
	// Suppress drops positions whose hash was already seen in this run
	Suppress bool `yaml:"suppress"`
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{
		Suppress: false,
	}
}
