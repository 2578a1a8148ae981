// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment locates case boundaries within a casebook text dump and
// slices the document into one text segment per candidate case. The source
// has no machine-readable delimiters between cases, only a human-authored
// heading convention: a title line followed (within a few lines) by an
// author line. The backward lookback tolerates stray blank lines and
// page-number artifacts between the true title and the author line.
package segment

import (
	"errors"
	"strings"

	"github.com/aniruddhdoki/casey/pkg/types"
)

// ErrSectionNotFound is returned when the practice-cases marker does not
// appear past the minimum line offset. Zero cases are producible without
// it, so callers treat this as fatal for the whole run.
var ErrSectionNotFound = errors.New("practice cases section not found")

const (
	defaultSectionMarker   = "Practice Cases"
	defaultMinMarkerLine   = 1000
	defaultTitleLookback   = 10
	defaultMinSegmentChars = 200

	// authorPrefix opens every case heading block. Case-sensitive; the
	// casebook never lowercases it.
	authorPrefix = "Author"

	copyrightMarker = "©"
)

// Start marks the beginning of one candidate case.
type Start struct {
	// Line is the index of the author line.
	Line int

	// Title is the nearest qualifying line above the author line.
	Title string
}

// Segment is the contiguous text block believed to correspond to one case.
type Segment struct {
	// Title is the hint carried from the boundary scan.
	Title string

	// StartLine is the document line index the segment begins at.
	StartLine int

	// Text is the segment body, title line included.
	Text string
}

// Split applies the full boundary scan to a document: locate the
// practice-cases section, find every case start after it, and slice the
// lines into segments. Segments preserve document order.
func Split(doc string, cfg types.SegmenterConfig) ([]Segment, error) {
	lines := strings.Split(doc, "\n")

	marker := cfg.SectionMarker
	if marker == "" {
		marker = defaultSectionMarker
	}
	minLine := cfg.MinMarkerLine
	if minLine == 0 {
		minLine = defaultMinMarkerLine
	}
	lookback := cfg.TitleLookback
	if lookback <= 0 {
		lookback = defaultTitleLookback
	}
	minChars := cfg.MinSegmentChars
	if minChars <= 0 {
		minChars = defaultMinSegmentChars
	}

	sectionStart, err := LocateSection(lines, marker, minLine)
	if err != nil {
		return nil, err
	}

	starts := FindCaseStarts(lines, sectionStart, lookback)
	return SliceSegments(lines, starts, minChars), nil
}

// LocateSection returns the index of the first line containing marker whose
// index exceeds minLine. The offset threshold skips the identical marker in
// the table of contents.
func LocateSection(lines []string, marker string, minLine int) (int, error) {
	for i, line := range lines {
		if i > minLine && strings.Contains(line, marker) {
			return i, nil
		}
	}
	return 0, ErrSectionNotFound
}

// FindCaseStarts scans lines from sectionStart to the end. A line is a
// case-start candidate if, after trimming, it begins with the author
// marker. For each candidate the nearest qualifying title line within
// lookback lines above it (bounded by sectionStart) becomes the case
// title; a candidate with no such title does not start a case.
func FindCaseStarts(lines []string, sectionStart, lookback int) []Start {
	var starts []Start
	for i := sectionStart; i < len(lines); i++ {
		if !strings.HasPrefix(strings.TrimSpace(lines[i]), authorPrefix) {
			continue
		}

		low := i - lookback
		if low < sectionStart {
			low = sectionStart
		}

		title := ""
		for j := i - 1; j > low; j-- {
			if candidate := strings.TrimSpace(lines[j]); isTitle(candidate) {
				title = candidate
				break
			}
		}

		if title != "" {
			starts = append(starts, Start{Line: i, Title: title})
		}
	}
	return starts
}

// isTitle reports whether a trimmed line qualifies as a case title:
// non-empty, not purely numeric, longer than 3 characters, and not a
// copyright footer.
func isTitle(line string) bool {
	if line == "" || len(line) <= 3 {
		return false
	}
	if isDigits(line) {
		return false
	}
	return !strings.HasPrefix(line, copyrightMarker)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// SliceSegments cuts the document at each case start. A segment spans from
// one line above the start (to include the title line) to one line above
// the next start, or to the end of the document for the last case.
// Segments whose trimmed length is at or below minChars are dropped as
// degenerate slices.
func SliceSegments(lines []string, starts []Start, minChars int) []Segment {
	var segments []Segment
	for i, start := range starts {
		from := start.Line - 1
		if from < 0 {
			from = 0
		}
		to := len(lines)
		if i+1 < len(starts) {
			to = starts[i+1].Line - 1
		}

		text := strings.Join(lines[from:to], "\n")
		if len(strings.TrimSpace(text)) <= minChars {
			continue
		}

		segments = append(segments, Segment{
			Title:     start.Title,
			StartLine: from,
			Text:      text,
		})
	}
	return segments
}
