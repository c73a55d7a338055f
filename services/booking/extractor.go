package booking

import (
	"regexp"
	"strings"
)

// NameExtractor is one strategy for pulling a doctor name out of an utterance.
// Strategies run in order; the first match wins.
type NameExtractor interface {
	Extract(input string) (name string, ok bool)
}

type regexExtractor struct {
	re *regexp.Regexp
}

func (e regexExtractor) Extract(input string) (string, bool) {
	m := e.re.FindStringSubmatch(input)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	if name == "" {
		return "", false
	}
	return name, true
}

// DefaultNameExtractors returns the ordered strategy list for doctor selection:
// an explicit title ("Dr. X", "doctor X") first, then the looser "with X",
// "appointment with X" and "see X" shapes.
func DefaultNameExtractors() []NameExtractor {
	return []NameExtractor{
		regexExtractor{regexp.MustCompile(`(?i)(?:dr\.?\s*|doctor\s+)([a-zA-Z\s.]+)`)},
		regexExtractor{regexp.MustCompile(`(?i)with\s+([a-zA-Z\s.]+)`)},
		regexExtractor{regexp.MustCompile(`(?i)appointment\s+with\s+([a-zA-Z\s.]+)`)},
		regexExtractor{regexp.MustCompile(`(?i)see\s+([a-zA-Z\s.]+)`)},
	}
}

// ExtractDoctorName runs the strategies in order and returns the first match.
func ExtractDoctorName(extractors []NameExtractor, input string) (string, bool) {
	for _, ex := range extractors {
		if name, ok := ex.Extract(input); ok {
			return name, true
		}
	}
	return "", false
}
