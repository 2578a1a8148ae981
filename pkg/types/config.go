package types

// SegmenterConfig holds settings for case-boundary detection.
type SegmenterConfig struct {
	// SectionMarker is the literal that opens the practice-cases section
	// (default "Practice Cases").
	SectionMarker string `json:"section_marker" yaml:"section_marker"`

	// MinMarkerLine is the minimum line index a marker match must exceed.
	// An identical marker appears in the table of contents near the top of
	// the document (default 1000). Negative accepts a marker anywhere.
	MinMarkerLine int `json:"min_marker_line" yaml:"min_marker_line"`

	// TitleLookback is how many lines to walk backward from an author line
	// when searching for the case title (default 10).
	TitleLookback int `json:"title_lookback" yaml:"title_lookback"`

	// MinSegmentChars drops segments whose trimmed length is at or below
	// this threshold (default 200).
	MinSegmentChars int `json:"min_segment_chars" yaml:"min_segment_chars"`
}

// ParseConfig holds settings for the parse stage.
type ParseConfig struct {
	SegmenterConfig `yaml:",inline"`

	// InputPath is the UTF-8 casebook text dump to parse.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is the JSON file the normalized records are written to.
	// Overwritten if it exists.
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// LibraryConfig holds settings for the case library stage.
type LibraryConfig struct {
	// LibraryDir is the base directory for the case library (contains index/).
	LibraryDir string `json:"library_dir" yaml:"library_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Parse   ParseConfig   `json:"parse" yaml:"parse"`
	Library LibraryConfig `json:"library" yaml:"library"`
}
