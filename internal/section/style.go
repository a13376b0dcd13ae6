package section

import "sort"

const (
	StyleTitleSize  = "titleSize"
	StylePadding    = "padding"
	StyleBackground = "background"
	StyleAlignment  = "alignment"
)

var styleOptions = map[string][]string{
	StyleTitleSize:  {"sm", "md", "lg", "xl"},
	StylePadding:    {"none", "sm", "md", "lg"},
	StyleBackground: {"default", "muted", "primary", "dark", "image"},
	StyleAlignment:  {"left", "center", "right"},
}

var styleDefaults = map[string]string{
	StyleTitleSize:  "md",
	StylePadding:    "md",
	StyleBackground: "default",
	StyleAlignment:  "center",
}

// Value returns the option for key, or its default when unset.
func (s Style) Value(key string) string {
	if v, ok := s[key]; ok && v != "" {
		return v
	}
	return styleDefaults[key]
}

// ValidStyle reports whether value is one of key's options.
func ValidStyle(key, value string) bool {
	for _, opt := range styleOptions[key] {
		if opt == value {
			return true
		}
	}
	return false
}

func StyleKeys() []string {
	out := make([]string, 0, len(styleOptions))
	for k := range styleOptions {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
