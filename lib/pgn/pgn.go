// Package pgn pulls individual tag pair values out of PGN blobs.
package pgn

import "strings"

// Fields holds the tag pair values a game record carries in its PGN
// blob. Tags that never appear stay empty strings.
type Fields struct {
	ECO     string
	ECOUrl  string
	UTCDate string
}

// ParseFields scans a PGN blob line by line for the opening code,
// opening url and UTC date tags. When a tag repeats, the last
// occurrence wins. Move text is never parsed.
func ParseFields(blob string) Fields {
	var f Fields
	for _, line := range strings.Split(blob, "\n") {
		switch {
		case strings.HasPrefix(line, `[ECO "`):
			f.ECO = tagValue(line)
		case strings.HasPrefix(line, `[ECOUrl "`):
			f.ECOUrl = tagValue(line)
		case strings.HasPrefix(line, `[UTCDate "`):
			f.UTCDate = tagValue(line)
		}
	}
	return f
}

// tagValue takes the second space-delimited token of a tag pair line
// and strips the quoting, so `[ECO "B06"]` becomes `B06`.
func tagValue(line string) string {
	parts := strings.Split(line, " ")
	if len(parts) < 2 {
		return ""
	}
	value := strings.ReplaceAll(parts[1], `"`, "")
	return strings.ReplaceAll(value, "]", "")
}
