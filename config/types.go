// Package config loads and merges settings for the formatting pipeline.
// Layers are applied defaults ← config file ← environment; every file and
// env field is a pointer so that "not set" and "set to the zero value" stay
// distinguishable until merge time.
package config

// FormatConfig is one layer of formatter settings as read from a file or
// the environment.
type FormatConfig struct {
	LocalPrefix *string `yaml:"local_prefix" toml:"local_prefix" json:"local_prefix"`
	TabWidth    *int    `yaml:"tab_width" toml:"tab_width" json:"tab_width"`
	TabIndent   *bool   `yaml:"tab_indent" toml:"tab_indent" json:"tab_indent"`
	FormatOnly  *bool   `yaml:"format_only" toml:"format_only" json:"format_only"`
}

// Config is the full contents of one configuration source.
type Config struct {
	Format FormatConfig `yaml:"format" toml:"format" json:"format"`
}

// FormatSettings is the resolved formatter configuration.
type FormatSettings struct {
	// LocalPrefix groups imports sharing this comma-separated module
	// prefix after third-party imports, the way goimports -local does.
	LocalPrefix string
	TabWidth    int
	TabIndent   bool
	// FormatOnly disables import additions/removals and keeps only the
	// grouping and sorting pass.
	FormatOnly bool
}

// Settings is the resolved configuration handed to callers.
type Settings struct {
	Format FormatSettings
}

// Defaults returns the baseline settings used when no layer overrides them.
func Defaults() Settings {
	return Settings{
		Format: FormatSettings{
			LocalPrefix: "",
			TabWidth:    8,
			TabIndent:   true,
			FormatOnly:  false,
		},
	}
}
