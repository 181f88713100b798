package candidates

import (
	"regexp"
	"strings"
)

// NameNotFound is the sentinel stored when no name label is present in the
// OCR output.
const NameNotFound = "Name not found"

// OCR output is noisy; only a labeled "Name:" field followed by letters and
// spaces on the same line is trusted.
var nameLabelPattern = regexp.MustCompile(`(?i)name:[ \t]*([A-Za-z][A-Za-z ]*)`)

// ExtractName pulls a person's name out of raw OCR text. It takes the first
// "Name:" labeled match, trimmed, and returns NameNotFound otherwise. It is
// total and deterministic regardless of how garbled the input is.
func ExtractName(ocrText string) string {
	match := nameLabelPattern.FindStringSubmatch(ocrText)
	if match == nil {
		return NameNotFound
	}
	name := strings.TrimSpace(match[1])
	if name == "" {
		return NameNotFound
	}
	return name
}
