// Package config loads the runtime settings of the luigi tools: where the native
// library lives, which font to activate, how to log and how large demo windows open.
package config

// Config is the full configuration tree. Field names map to TOML keys and to
// LUIGI_* environment variables (dots become underscores).
type Config struct {
	Library LibraryConfig `mapstructure:"library" toml:"library" json:"library" jsonschema:"description=Native library discovery"`
	Font    FontConfig    `mapstructure:"font" toml:"font" json:"font" jsonschema:"description=Font activated after toolkit initialisation"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging" jsonschema:"description=Structured logging"`
	Window  WindowConfig  `mapstructure:"window" toml:"window" json:"window" jsonschema:"description=Default size of demo windows"`
}

// LibraryConfig locates the luigi shared library.
type LibraryConfig struct {
	// Path is an explicit library file. LUIGI_LIBRARY still wins over it.
	Path        string   `mapstructure:"path" toml:"path" json:"path,omitempty" jsonschema:"description=Explicit path to libluigi.so or luigi.dll"`
	SearchPaths []string `mapstructure:"search_paths" toml:"search_paths" json:"search_paths,omitempty" jsonschema:"description=Extra directories probed for the library"`
}

// FontConfig selects the UI font. An empty name keeps the toolkit default.
type FontConfig struct {
	Name string `mapstructure:"name" toml:"name" json:"name,omitempty" jsonschema:"description=Font file or family name; empty keeps the built-in font"`
	Size int    `mapstructure:"size" toml:"size" json:"size" jsonschema:"minimum=1,maximum=72,default=13"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
}

// WindowConfig is the default window geometry. Zero lets the toolkit choose.
type WindowConfig struct {
	Width  int `mapstructure:"width" toml:"width" json:"width" jsonschema:"minimum=0,default=800"`
	Height int `mapstructure:"height" toml:"height" json:"height" jsonschema:"minimum=0,default=600"`
}
