package config

// Merge applies layers over base in order; the last non-nil value of each
// field wins.
func Merge(base Settings, layers ...Config) Settings {
	out := base
	for _, layer := range layers {
		out.Format.LocalPrefix = ResolveAndTrim(out.Format.LocalPrefix, layer.Format.LocalPrefix)
		out.Format.TabWidth = ResolveInt(out.Format.TabWidth, layer.Format.TabWidth)
		out.Format.TabIndent = ResolveBool(out.Format.TabIndent, layer.Format.TabIndent)
		out.Format.FormatOnly = ResolveBool(out.Format.FormatOnly, layer.Format.FormatOnly)
	}
	if out.Format.TabWidth <= 0 {
		out.Format.TabWidth = Defaults().Format.TabWidth
	}
	return out
}
