package analyzer

import (
	"regexp"
	"strings"
)

// Canonical confidence labels.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

// confidenceRe captures the rest of the line after the first "Confidence
// Level" mention, bold markers and colon included.
var confidenceRe = regexp.MustCompile(`(?i)confidence level([^\n]*)`)

// ExtractConfidence pulls a coarse confidence label out of the model's free
// text. It is a best-effort heuristic: the span after the first "Confidence
// Level" mention, up to the next line break or bold delimiter, is scanned
// for the keywords high, medium and low in that priority order. An empty
// result means no label could be determined and is not an error.
func ExtractConfidence(text string) string {
	m := confidenceRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}

	span := strings.TrimLeft(m[1], "*:-– \t")
	if i := strings.Index(span, "**"); i >= 0 {
		span = span[:i]
	}

	span = strings.ToLower(span)
	switch {
	case strings.Contains(span, "high"):
		return ConfidenceHigh
	case strings.Contains(span, "medium"):
		return ConfidenceMedium
	case strings.Contains(span, "low"):
		return ConfidenceLow
	}
	return ""
}
