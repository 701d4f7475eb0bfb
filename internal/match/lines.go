package match

import "strings"

// Lines returns every line of content that contains query, in the order
// they appear. Lines end at "\n" (an optional preceding "\r" is dropped); a
// final separator does not start an extra empty line. An empty query
// matches every line.
//
// The returned strings are substrings of content, no bytes are copied.
func Lines(query, content string) []string {
	var hits []string
	for line := range strings.Lines(content) {
		line = trimEOL(line)
		if strings.Contains(line, query) {
			hits = append(hits, line)
		}
	}
	return hits
}

// --- helpers -----------------------------------------------------------------

func trimEOL(line string) string {
	if !strings.HasSuffix(line, "\n") {
		return line // last line, unterminated
	}
	line = line[:len(line)-1]
	return strings.TrimSuffix(line, "\r")
}
