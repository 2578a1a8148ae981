// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
)

// Casebook sections are not closed by explicit terminators, only by the
// start of whatever section happens to come next. Every extraction rule is
// therefore a bounded capture: text between a start label and the nearest
// of several possible stop markers, or the end of the text.

// captureAfter returns the trimmed text between the end of the first match
// of start and the nearest following stop match. The second return value is
// false when the start label is absent.
func captureAfter(text string, start *regexp.Regexp, stops ...*regexp.Regexp) (string, bool) {
	loc := start.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	rest := text[loc[1]:]
	return strings.TrimSpace(rest[:nearestStop(rest, stops)]), true
}

// nearestStop returns the index of the earliest stop match, or len(text)
// when none of the stops occur.
func nearestStop(text string, stops []*regexp.Regexp) int {
	end := len(text)
	for _, stop := range stops {
		if m := stop.FindStringIndex(text); m != nil && m[0] < end {
			end = m[0]
		}
	}
	return end
}

// splitBlocks cuts text into repeated blocks. Each block begins at a match
// of start and ends at the next start match, the nearest terminator match,
// or the end of text. The terminator search begins after the start label so
// a label sharing a word with the terminator never ends its own block.
func splitBlocks(text string, start, terminator *regexp.Regexp) []string {
	locs := start.FindAllStringIndex(text, -1)
	var blocks []string
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		if m := terminator.FindStringIndex(text[loc[1]:end]); m != nil {
			end = loc[1] + m[0]
		}
		blocks = append(blocks, text[loc[0]:end])
	}
	return blocks
}
