// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// QuestionType categorizes a question within a case.
type QuestionType string

const (
	QuestionMath          QuestionType = "math"
	QuestionBrainstorming QuestionType = "brainstorming"
	QuestionGeneral       QuestionType = "general"
)

// CaseMetadata holds the heading-level fields of a case.
type CaseMetadata struct {
	// Title is the case name taken from the first line of the segment.
	Title string `json:"title" yaml:"title"`

	// Author is the text between the Author label and the firm label or line end.
	Author string `json:"author" yaml:"author"`

	// FirmStyle names the consulting firm whose interview style the case imitates.
	FirmStyle string `json:"firm_style" yaml:"firm_style"`

	// CaseStyle is the bracketed interview format token, e.g. "Candidate-led".
	CaseStyle string `json:"case_style" yaml:"case_style"`

	// QuantDifficulty is the numeric quant rating. Zero when the label is absent.
	QuantDifficulty int `json:"quant_difficulty" yaml:"quant_difficulty"`

	// StructureDifficulty is the numeric structure rating. Zero when absent.
	StructureDifficulty int `json:"structure_difficulty" yaml:"structure_difficulty"`
}

// CaseOverview holds the case categorization block.
type CaseOverview struct {
	// Industry is the single-line value after the Industry label.
	Industry string `json:"industry" yaml:"industry"`

	// CaseType describes the case structure (profitability, market entry, ...).
	CaseType string `json:"case_type" yaml:"case_type"`

	// ConceptsTested lists the bulleted skill names in document order.
	ConceptsTested []string `json:"concepts_tested" yaml:"concepts_tested"`

	// InterviewerNotes is the free-text guidance block for the interviewer.
	InterviewerNotes string `json:"interviewer_notes" yaml:"interviewer_notes"`
}

// FrameworkGuide holds the expected-framework section of a case.
type FrameworkGuide struct {
	ClarifyingInfo    string `json:"clarifying_info" yaml:"clarifying_info"`
	ExpectedFramework string `json:"expected_framework" yaml:"expected_framework"`
}

// Question is one question block within a case.
type Question struct {
	Type          QuestionType `json:"type" yaml:"type"`
	Prompt        string       `json:"prompt" yaml:"prompt"`
	SolutionNotes string       `json:"solution_notes" yaml:"solution_notes"`
}

// Exhibit is one data exhibit within a case. ExhibitNumber is assigned by
// position within the case (1-based), not parsed from the source numbering.
type Exhibit struct {
	ExhibitNumber int    `json:"exhibit_number" yaml:"exhibit_number"`
	Content       string `json:"content" yaml:"content"`
}

// Recommendation holds the closing section of a case. All fields optional.
type Recommendation struct {
	Recommendation string `json:"recommendation" yaml:"recommendation"`
	Risks          string `json:"risks" yaml:"risks"`
	NextSteps      string `json:"next_steps" yaml:"next_steps"`
	ExcellenceTips string `json:"excellence_tips" yaml:"excellence_tips"`
}

// CaseRecord is the raw extraction result for one segment, before
// validation and normalization. Extraction rules that do not match leave
// their field at its zero value.
type CaseRecord struct {
	// CaseID is derived from the normalized title: lowercase, spaces to
	// underscores, apostrophes removed. Collisions between cases with
	// identical titles are possible and are not resolved here.
	CaseID string `json:"case_id" yaml:"case_id"`

	Metadata       CaseMetadata   `json:"metadata" yaml:"metadata"`
	CasePrompt     string         `json:"case_prompt" yaml:"case_prompt"`
	Overview       CaseOverview   `json:"overview" yaml:"overview"`
	FrameworkGuide FrameworkGuide `json:"framework_guide" yaml:"framework_guide"`
	Questions      []Question     `json:"questions" yaml:"questions"`
	Exhibits       []Exhibit      `json:"exhibits" yaml:"exhibits"`
	Recommendation Recommendation `json:"recommendation" yaml:"recommendation"`
}

// Difficulty groups the two numeric ratings in the output schema.
type Difficulty struct {
	Quant     int `json:"quant" yaml:"quant"`
	Structure int `json:"structure" yaml:"structure"`
}

// CaseItem is the normalized, fully-keyed representation of one case,
// ready for storage. Every key is always present: strings default to "",
// integers to 0, and slices serialize as empty arrays, never null.
type CaseItem struct {
	CaseID string `json:"case_id" yaml:"case_id"`

	Title     string `json:"title" yaml:"title"`
	Author    string `json:"author" yaml:"author"`
	FirmStyle string `json:"firm_style" yaml:"firm_style"`
	CaseStyle string `json:"case_style" yaml:"case_style"`

	Industry string `json:"industry" yaml:"industry"`
	CaseType string `json:"case_type" yaml:"case_type"`

	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`

	ConceptsTested []string `json:"concepts_tested" yaml:"concepts_tested"`

	CasePrompt        string `json:"case_prompt" yaml:"case_prompt"`
	ClarifyingInfo    string `json:"clarifying_info" yaml:"clarifying_info"`
	ExpectedFramework string `json:"expected_framework" yaml:"expected_framework"`
	InterviewerNotes  string `json:"interviewer_notes" yaml:"interviewer_notes"`

	Questions []Question `json:"questions" yaml:"questions"`
	Exhibits  []Exhibit  `json:"exhibits" yaml:"exhibits"`

	Recommendation Recommendation `json:"recommendation" yaml:"recommendation"`

	// CreatedAt and UpdatedAt are set to the same UTC time at normalization.
	// A re-run does not preserve the original creation time; there is no
	// read-modify-write path in this batch pipeline.
	CreatedAt string `json:"created_at" yaml:"created_at"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`
}
