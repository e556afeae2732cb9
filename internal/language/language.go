package language

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Normalize lowercases and trims a language code.
func Normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// IsTranslation reports whether the code names a combined translation
// release (e.g. "eng-deu").
func IsTranslation(code string) bool {
	return strings.Contains(Normalize(code), "-")
}

// Parts splits a combined code into its component codes. Single codes come
// back as a one-element slice; empty input yields nil.
func Parts(code string) []string {
	code = Normalize(code)
	if code == "" {
		return nil
	}
	return strings.Split(code, "-")
}

// DisplayName returns a human-readable name for any recognized code.
// Combined codes render as the joined component names ("English-German").
// Unrecognized codes come back uppercased, empty input as "Unknown".
func DisplayName(code string) string {
	parts := Parts(code)
	if len(parts) == 0 {
		return "Unknown"
	}
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		names = append(names, displayNameSingle(part))
	}
	return strings.Join(names, "-")
}

func displayNameSingle(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToUpper(code)
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return strings.ToUpper(code)
}

// NormalizeList deduplicates and normalizes a list of language codes,
// preserving order.
func NormalizeList(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		trimmed := Normalize(code)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}
	return normalized
}
