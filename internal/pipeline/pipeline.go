// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the full parse: read the casebook text, slice it
// into case segments, extract and validate each segment, and write the
// normalized records as a JSON array. Segments are independent; a failure
// in one segment never aborts the run.
package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aniruddhdoki/casey/internal/extract"
	"github.com/aniruddhdoki/casey/internal/record"
	"github.com/aniruddhdoki/casey/internal/segment"
	"github.com/aniruddhdoki/casey/pkg/types"
)

// errPreviewLen caps the length of per-segment error messages in the log.
const errPreviewLen = 100

// Summary holds counts from one parse run. The caller decides how to
// report it.
type Summary struct {
	// SegmentsFound is the number of candidate segments the boundary scan
	// produced.
	SegmentsFound int

	// SegmentsRejected counts segments the validator refused (headers,
	// page numbers, stray fragments).
	SegmentsRejected int

	// Failed counts segments whose extraction raised an error; they are
	// skipped, not fatal.
	Failed int

	// Accepted is the number of normalized records written to the output.
	Accepted int
}

// HasFailures reports whether any segments failed extraction.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Run executes the parse stage. The input file is read fully into memory
// once; the output JSON is written exactly once at the end, including when
// zero valid records are produced. A missing input file or a missing
// practice-cases marker aborts the run with no output written.
func Run(cfg types.ParseConfig, w io.Writer) (Summary, error) {
	data, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return Summary{}, fmt.Errorf("reading casebook %s: %w", cfg.InputPath, err)
	}

	segments, err := segment.Split(string(data), cfg.SegmenterConfig)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{SegmentsFound: len(segments)}
	items := []types.CaseItem{}

	for _, seg := range segments {
		rec, err := extractSegment(seg)
		if err != nil {
			fmt.Fprintf(w, "failed  %q: %s\n", seg.Title, truncate(err.Error(), errPreviewLen))
			summary.Failed++
			continue
		}

		if !record.Valid(rec) {
			fmt.Fprintf(w, "rejected %q\n", rec.Metadata.Title)
			summary.SegmentsRejected++
			continue
		}

		items = append(items, record.Normalize(rec))
		summary.Accepted++
		fmt.Fprintf(w, "accepted %s (%d questions, %d exhibits)\n",
			rec.CaseID, len(rec.Questions), len(rec.Exhibits))
	}

	if err := writeJSON(cfg.OutputPath, items); err != nil {
		return summary, err
	}

	fmt.Fprintf(w, "\nsegments: %d, rejected: %d, failed: %d, accepted: %d\n",
		summary.SegmentsFound, summary.SegmentsRejected, summary.Failed, summary.Accepted)

	return summary, nil
}

// extractSegment runs the extraction rules over one segment, converting a
// panic in any rule into an error so the run can continue with the next
// segment.
func extractSegment(seg segment.Segment) (rec types.CaseRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extracting segment at line %d: %v", seg.StartLine, r)
		}
	}()
	return extract.Extract(seg.Text), nil
}

// writeJSON overwrites path with the records as an indented JSON array.
// An empty run still writes a valid empty array.
func writeJSON(path string, items []types.CaseItem) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling records: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
