package extract

import (
	"strings"
	"testing"

	"github.com/aniruddhdoki/casey/pkg/types"
)

// sampleSegment mirrors the heading vocabulary of a real casebook case.
const sampleSegment = `Widget Co. Market Entry
Author: Jane Doe  Firm: BigCo [Candidate-led]
Quant: 3 Structure: 2

Case Prompt:
Our client is Widget Co., a consumer goods manufacturer considering
entry into the Brazilian market.

Case Overview:
Industry: Consumer Goods
Case Structure: Market entry with
a profitability twist. Concepts Tested:
• Market sizing
● Break-even analysis
• Go-to-market strategy

Overview Information for Interviewer:
Push the candidate toward a structured sizing approach.

Clarifying Information:
The client has no existing presence in South America.
Interviewer Guide:
A strong framework covers market attractiveness, competition,
and entry economics.

Question 1: How large is the addressable market?

Notes to Interviewer: Expect a top-down sizing from population.
Math #2: Compute the break-even volume.
Math Solution: 500,000 units per year.
Brainstorming: What risks should the client consider?

Exhibit 3
Market share by competitor, 2024.
Exhibit 7
Unit economics per region.
Recommendation: Enter via a joint venture.
Risks: Currency exposure and local competition.
Next Steps: Validate distributor capacity.
Bonus: Excellence tip
Great candidates quantify the upside before recommending entry.
© 2025 Stern Management Consulting Group
`

func TestExtractMetadata(t *testing.T) {
	meta := extractMetadata(sampleSegment)

	if meta.Title != "Widget Co. Market Entry" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Author != "Jane Doe" {
		t.Errorf("Author = %q", meta.Author)
	}
	if meta.FirmStyle != "BigCo" {
		t.Errorf("FirmStyle = %q", meta.FirmStyle)
	}
	if meta.CaseStyle != "Candidate-led" {
		t.Errorf("CaseStyle = %q", meta.CaseStyle)
	}
	if meta.QuantDifficulty != 3 {
		t.Errorf("QuantDifficulty = %d, want 3", meta.QuantDifficulty)
	}
	if meta.StructureDifficulty != 2 {
		t.Errorf("StructureDifficulty = %d, want 2", meta.StructureDifficulty)
	}
}

func TestExtractMetadataAbsentLabels(t *testing.T) {
	meta := extractMetadata("Bare Title Only\nSome body text.")

	if meta.Title != "Bare Title Only" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Author != "" || meta.FirmStyle != "" || meta.CaseStyle != "" {
		t.Errorf("expected empty metadata fields, got %+v", meta)
	}
	if meta.QuantDifficulty != 0 || meta.StructureDifficulty != 0 {
		t.Errorf("expected zero difficulties, got %+v", meta)
	}
}

func TestExtractPrompt(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "bounded by blank pair",
			text: "Case Prompt:\nHelp the client.\n\nMore text later.",
			want: "Help the client.",
		},
		{
			name: "bounded by overview label",
			text: "Case Prompt:\nHelp the client.\nCase Overview: details",
			want: "Help the client.",
		},
		{
			name: "multi-line prompt",
			text: "Case Prompt:\nLine one.\nLine two.\n\nNext section.",
			want: "Line one.\nLine two.",
		},
		{
			name: "label absent",
			text: "No prompt here.",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractPrompt(tt.text); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractOverview(t *testing.T) {
	ov := extractOverview(sampleSegment)

	if ov.Industry != "Consumer Goods" {
		t.Errorf("Industry = %q", ov.Industry)
	}
	if !strings.Contains(ov.CaseType, "Market entry with") || !strings.Contains(ov.CaseType, "profitability twist") {
		t.Errorf("CaseType = %q, want multi-line block up to Concepts label", ov.CaseType)
	}
	wantConcepts := []string{"Market sizing", "Break-even analysis", "Go-to-market strategy"}
	if len(ov.ConceptsTested) != len(wantConcepts) {
		t.Fatalf("ConceptsTested = %v, want %v", ov.ConceptsTested, wantConcepts)
	}
	for i, want := range wantConcepts {
		if ov.ConceptsTested[i] != want {
			t.Errorf("ConceptsTested[%d] = %q, want %q", i, ov.ConceptsTested[i], want)
		}
	}
	if ov.InterviewerNotes != "Push the candidate toward a structured sizing approach." {
		t.Errorf("InterviewerNotes = %q", ov.InterviewerNotes)
	}
}

func TestExtractFramework(t *testing.T) {
	fg := extractFramework(sampleSegment)

	if fg.ClarifyingInfo != "The client has no existing presence in South America." {
		t.Errorf("ClarifyingInfo = %q", fg.ClarifyingInfo)
	}
	if !strings.HasPrefix(fg.ExpectedFramework, "A strong framework covers") {
		t.Errorf("ExpectedFramework = %q", fg.ExpectedFramework)
	}
	// The framework block ends where the first question begins.
	if strings.Contains(fg.ExpectedFramework, "addressable market") {
		t.Errorf("ExpectedFramework bleeds into questions: %q", fg.ExpectedFramework)
	}
}

func TestExtractQuestions(t *testing.T) {
	questions := extractQuestions(sampleSegment)
	if len(questions) != 3 {
		t.Fatalf("got %d questions, want 3: %+v", len(questions), questions)
	}

	if questions[0].Type != types.QuestionGeneral {
		t.Errorf("questions[0].Type = %q, want general", questions[0].Type)
	}
	if questions[0].Prompt != "How large is the addressable market?" {
		t.Errorf("questions[0].Prompt = %q", questions[0].Prompt)
	}
	if !strings.Contains(questions[0].SolutionNotes, "top-down sizing") {
		t.Errorf("questions[0].SolutionNotes = %q", questions[0].SolutionNotes)
	}

	if questions[1].Type != types.QuestionMath {
		t.Errorf("questions[1].Type = %q, want math", questions[1].Type)
	}
	if questions[1].Prompt != "Compute the break-even volume." {
		t.Errorf("questions[1].Prompt = %q", questions[1].Prompt)
	}
	if questions[1].SolutionNotes != "500,000 units per year." {
		t.Errorf("questions[1].SolutionNotes = %q", questions[1].SolutionNotes)
	}

	if questions[2].Type != types.QuestionBrainstorming {
		t.Errorf("questions[2].Type = %q, want brainstorming", questions[2].Type)
	}
	if questions[2].Prompt != "What risks should the client consider?" {
		t.Errorf("questions[2].Prompt = %q", questions[2].Prompt)
	}
}

func TestExtractQuestionsTypeOrder(t *testing.T) {
	text := "Math: compute X\nBrainstorming: list Y"
	questions := extractQuestions(text)
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if questions[0].Type != types.QuestionMath || questions[1].Type != types.QuestionBrainstorming {
		t.Errorf("types = %q, %q; want math, brainstorming", questions[0].Type, questions[1].Type)
	}
}

func TestExtractQuestionsDropsEmptyBlock(t *testing.T) {
	// A label with no body yields neither prompt nor notes.
	questions := extractQuestions("Question 1:\nQuestion 2: A real prompt.")
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1: %+v", len(questions), questions)
	}
	if questions[0].Prompt != "A real prompt." {
		t.Errorf("Prompt = %q", questions[0].Prompt)
	}
}

func TestExtractExhibitsRenumbersDensely(t *testing.T) {
	text := "Exhibit 3\nMarket share table.\nExhibit 7\nCost table.\nQuestion 1: Q?"
	exhibits := extractExhibits(text)
	if len(exhibits) != 2 {
		t.Fatalf("got %d exhibits, want 2", len(exhibits))
	}
	for i, ex := range exhibits {
		if ex.ExhibitNumber != i+1 {
			t.Errorf("exhibits[%d].ExhibitNumber = %d, want %d", i, ex.ExhibitNumber, i+1)
		}
	}
	if !strings.Contains(exhibits[0].Content, "Market share table.") {
		t.Errorf("exhibits[0].Content = %q", exhibits[0].Content)
	}
	if strings.Contains(exhibits[1].Content, "Question") {
		t.Errorf("exhibits[1] not bounded by question label: %q", exhibits[1].Content)
	}
}

func TestExtractRecommendation(t *testing.T) {
	rec := extractRecommendation(sampleSegment)

	if rec.Recommendation != "Enter via a joint venture." {
		t.Errorf("Recommendation = %q", rec.Recommendation)
	}
	if rec.Risks != "Currency exposure and local competition." {
		t.Errorf("Risks = %q", rec.Risks)
	}
	if rec.NextSteps != "Validate distributor capacity." {
		t.Errorf("NextSteps = %q", rec.NextSteps)
	}
	if rec.ExcellenceTips != "Great candidates quantify the upside before recommending entry." {
		t.Errorf("ExcellenceTips = %q", rec.ExcellenceTips)
	}
}

func TestExtractRecommendationAbsent(t *testing.T) {
	rec := extractRecommendation("A segment with no closing section at all.")
	if rec != (types.Recommendation{}) {
		t.Errorf("expected zero recommendation, got %+v", rec)
	}
}

func TestCaseID(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Widget Co. Market Entry", "widget_co._market_entry"},
		{"Joe's Pizza Emporium", "joes_pizza_emporium"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CaseID(tt.title); got != tt.want {
			t.Errorf("CaseID(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestExtractAssemblesRecord(t *testing.T) {
	rec := Extract(sampleSegment)

	if rec.CaseID != "widget_co._market_entry" {
		t.Errorf("CaseID = %q", rec.CaseID)
	}
	if rec.Metadata.Title != "Widget Co. Market Entry" {
		t.Errorf("Title = %q", rec.Metadata.Title)
	}
	if !strings.Contains(rec.CasePrompt, "Brazilian market") {
		t.Errorf("CasePrompt = %q", rec.CasePrompt)
	}
	if len(rec.Questions) != 3 || len(rec.Exhibits) != 2 {
		t.Errorf("got %d questions, %d exhibits; want 3, 2", len(rec.Questions), len(rec.Exhibits))
	}
}

func TestExtractEmptyText(t *testing.T) {
	rec := Extract("")
	if rec.CaseID != "" || rec.Metadata.Title != "" {
		t.Errorf("expected empty record, got %+v", rec)
	}
	if rec.Questions != nil || rec.Exhibits != nil {
		t.Errorf("expected nil block slices, got %+v", rec)
	}
}
