// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aniruddhdoki/casey/internal/pipeline"
	"github.com/aniruddhdoki/casey/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse [casebook]",
	Short: "Parse a casebook text file into structured case records",
	Long: `Parse reads a casebook text file, locates the practice-cases section,
slices it into per-case segments, extracts labeled fields from each
segment, and writes the accepted records as a JSON array.

Rejected segments (running headers, page numbers, stray fragments) are
logged and skipped. A failed extraction skips that segment; the run
continues and the command exits nonzero at the end.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := types.ParseConfig{
		InputPath:  stringSetting(cmd, "input", "parse.input"),
		OutputPath: stringSetting(cmd, "output", "parse.output"),
		SegmenterConfig: types.SegmenterConfig{
			SectionMarker:   stringSetting(cmd, "section-marker", "parse.section_marker"),
			MinMarkerLine:   intSetting(cmd, "min-marker-line", "parse.min_marker_line"),
			TitleLookback:   intSetting(cmd, "title-lookback", "parse.title_lookback"),
			MinSegmentChars: intSetting(cmd, "min-segment-chars", "parse.min_segment_chars"),
		},
	}

	if len(args) > 0 {
		cfg.InputPath = args[0]
	}
	if cfg.InputPath == "" {
		return fmt.Errorf("casebook file required: pass it as an argument, use --input, or set parse.input in the config")
	}

	summary, err := pipeline.Run(cfg, os.Stdout)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d segment(s) failed extraction", summary.Failed)
	}
	return nil
}

func init() {
	parseCmd.Flags().String("input", "", "casebook text file to parse")
	parseCmd.Flags().String("output", "cases.json", "output JSON file")
	parseCmd.Flags().String("section-marker", "", "text that marks the practice-cases section heading")
	parseCmd.Flags().Int("min-marker-line", 0, "lines to skip before accepting the section marker (0 = default, negative = accept anywhere)")
	parseCmd.Flags().Int("title-lookback", 0, "lines to scan backward from an author line for the case title (0 = default)")
	parseCmd.Flags().Int("min-segment-chars", 0, "minimum segment length in characters (0 = default)")

	rootCmd.AddCommand(parseCmd)
}
