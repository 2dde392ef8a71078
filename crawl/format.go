package crawl

import (
	"fmt"
	"unicode/utf8"
)

// MaxProgressName bounds source names in progress lines.
const MaxProgressName = 40

// Truncate shortens s to at most maxLen runes, keeping the start and
// marking the cut with "...".
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen < 4 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// FormatCoverage renders found against expected, e.g. "42/75 (56%)".
func FormatCoverage(found, expected int) string {
	if expected <= 0 {
		return fmt.Sprintf("%d", found)
	}
	return fmt.Sprintf("%d/%d (%d%%)", found, expected, found*100/expected)
}

// FormatProgress renders a progress event as one line, or "" for events
// that print nothing.
func FormatProgress(e ProgressEvent) string {
	name := Truncate(e.Source, MaxProgressName)
	switch e.Type {
	case ProgressStarted:
		return fmt.Sprintf("Harvesting %d sources", e.Total)
	case ProgressCompleted:
		return fmt.Sprintf("[%d/%d] %s: %d organizations", e.Completed, e.Total, name, e.Found)
	case ProgressFailed:
		return fmt.Sprintf("[%d/%d] %s: %d organizations (error: %v)", e.Completed, e.Total, name, e.Found, e.Error)
	case ProgressFinished:
		return fmt.Sprintf("Done: %d sources", e.Completed)
	}
	return ""
}
