package profile

import "strings"

// Level is a coarse proficiency rating.
type Level string

const (
	Basic        Level = "Basic"
	Intermediate Level = "Intermediate"
	Fluent       Level = "Fluent"
)

// Levels lists the supported levels from lowest to highest.
func Levels() []Level {
	return []Level{Basic, Intermediate, Fluent}
}

// ParseLevel normalizes raw input to a Level, defaulting to Basic.
func ParseLevel(raw string) Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "intermediate":
		return Intermediate
	case "fluent":
		return Fluent
	default:
		return Basic
	}
}

// Dots maps a level to 1..3 filled dots for display.
func (l Level) Dots() int {
	switch l {
	case Intermediate:
		return 2
	case Fluent:
		return 3
	default:
		return 1
	}
}

var languageFlags = map[string]string{
	"english":     "🇬🇧",
	"spanish":     "🇪🇸",
	"dutch":       "🇳🇱",
	"netherlands": "🇳🇱",
	"polish":      "🇵🇱",
	"german":      "🇩🇪",
	"french":      "🇫🇷",
	// Alternative spellings.
	"español":    "🇪🇸",
	"nederlands": "🇳🇱",
	"inglés":     "🇬🇧",
	"polski":     "🇵🇱",
	"deutsch":    "🇩🇪",
	"français":   "🇫🇷",
	"allemand":   "🇩🇪",
	"francés":    "🇫🇷",
	"alemán":     "🇩🇪",
}

// Flag returns the flag emoji for a language, or a globe for unknown ones.
func Flag(language string) string {
	if language == "" {
		return "🌐"
	}
	if flag, ok := languageFlags[strings.ToLower(strings.TrimSpace(language))]; ok {
		return flag
	}
	return "🌐"
}
