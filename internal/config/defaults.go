package config

const (
	defaultFontSize     = 13
	defaultWindowWidth  = 800
	defaultWindowHeight = 600

	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Library: LibraryConfig{
			SearchPaths: []string{},
		},
		Font: FontConfig{
			Size: defaultFontSize,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Window: WindowConfig{
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
		},
	}
}
