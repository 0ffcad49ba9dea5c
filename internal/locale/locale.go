// Package locale holds the static per-language text banks used for prompts,
// mock responses and advice phrasing. Every table is keyed by a two-letter
// language code and must contain an entry for Default; lookups that miss
// fall back to it.
package locale

import "strings"

const (
	Hindi    = "hi"
	English  = "en"
	Kannada  = "kn"
	Tamil    = "ta"
	Telugu   = "te"
	Marathi  = "mr"
	Bengali  = "bn"
	Gujarati = "gu"

	// Default is used whenever a language is unknown or missing from a table.
	Default = Hindi
)

// Supported lists the languages the assistant understands, in display order.
var Supported = []string{Hindi, English, Kannada, Tamil, Telugu, Marathi, Bengali, Gujarati}

func isSupported(code string) bool {
	for _, s := range Supported {
		if s == code {
			return true
		}
	}
	return false
}

// Normalize turns "hi", "HI", "hi-IN" or "hi_IN" into "hi". Unknown or empty
// codes become Default.
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i >= 0 {
		code = code[:i]
	}
	if !isSupported(code) {
		return Default
	}
	return code
}

// SpeechCode returns the BCP-47 code used by the speech providers,
// e.g. "hi" → "hi-IN".
func SpeechCode(code string) string {
	return Normalize(code) + "-IN"
}

// Lookup returns table[code], falling back to table[Default] when the code
// has no entry. The second result reports whether the requested code hit.
func Lookup[T any](table map[string]T, code string) (T, bool) {
	if v, ok := table[code]; ok {
		return v, true
	}
	return table[Default], false
}
