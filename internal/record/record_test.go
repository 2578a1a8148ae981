package record

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/aniruddhdoki/casey/pkg/types"
)

func validRecord(title string) types.CaseRecord {
	return types.CaseRecord{
		CaseID:     "x",
		Metadata:   types.CaseMetadata{Title: title},
		CasePrompt: "Help the client decide.",
	}
}

func TestValidTitleRejects(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  bool
	}{
		{"genuine title", "Widget Co. Market Entry", true},
		{"structure rating artifact", "Structure: 2", false},
		{"pure digits", "3", false},
		{"long pure digits", "12345", false},
		{"copyright footer", "© 2025 Stern Management Consulting Group", false},
		{"page number", "Page 142", false},
		{"page number lowercase", "page 142", false},
		{"exhibit label", "Exhibit 4", false},
		{"question label", "Question 2", false},
		{"question label lowercase", "question 2", false},
		{"too short", "Gas", false},
		{"whitespace padded short", "  Gas  ", false},
		{"five characters exactly", "Gases", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(validRecord(tt.title)); got != tt.want {
				t.Errorf("Valid(title=%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestValidRequiresPromptOrIndustry(t *testing.T) {
	rec := types.CaseRecord{Metadata: types.CaseMetadata{Title: "Acme Airlines Turnaround"}}

	if Valid(rec) {
		t.Error("record with neither prompt nor industry should be rejected")
	}

	rec.Overview.Industry = "Airlines"
	if !Valid(rec) {
		t.Error("record with only industry should be accepted")
	}

	rec.Overview.Industry = ""
	rec.CasePrompt = "Our client is Acme Airlines."
	if !Valid(rec) {
		t.Error("record with only prompt should be accepted")
	}
}

func TestValidDigitTitleWithPrompt(t *testing.T) {
	// A valid-looking prompt does not rescue a numeric title.
	if Valid(validRecord("3")) {
		t.Error("pure-digit title must be rejected regardless of prompt")
	}
}

func TestNormalizeEmptyRecordFullyKeyed(t *testing.T) {
	restore := nowFunc
	nowFunc = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	defer func() { nowFunc = restore }()

	item := Normalize(types.CaseRecord{})

	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := map[string]string{
		"case_id":            `""`,
		"title":              `""`,
		"author":             `""`,
		"firm_style":         `""`,
		"case_style":         `""`,
		"industry":           `""`,
		"case_type":          `""`,
		"difficulty":         `{"quant":0,"structure":0}`,
		"concepts_tested":    `[]`,
		"case_prompt":        `""`,
		"clarifying_info":    `""`,
		"expected_framework": `""`,
		"interviewer_notes":  `""`,
		"questions":          `[]`,
		"exhibits":           `[]`,
		"recommendation":     `{"recommendation":"","risks":"","next_steps":"","excellence_tips":""}`,
		"created_at":         `"2025-06-01T12:00:00Z"`,
		"updated_at":         `"2025-06-01T12:00:00Z"`,
	}

	for key, wantVal := range want {
		raw, ok := keys[key]
		if !ok {
			t.Errorf("output missing key %q", key)
			continue
		}
		if string(raw) != wantVal {
			t.Errorf("key %q = %s, want %s", key, raw, wantVal)
		}
	}
	if len(keys) != len(want) {
		t.Errorf("output has %d keys, want %d", len(keys), len(want))
	}
}

func TestNormalizeCopiesFields(t *testing.T) {
	rec := types.CaseRecord{
		CaseID: "widget_co._market_entry",
		Metadata: types.CaseMetadata{
			Title: "Widget Co. Market Entry", Author: "Jane Doe",
			FirmStyle: "BigCo", CaseStyle: "Candidate-led",
			QuantDifficulty: 3, StructureDifficulty: 2,
		},
		CasePrompt: "Our client is Widget Co.",
		Overview: types.CaseOverview{
			Industry:       "Consumer Goods",
			CaseType:       "Market entry",
			ConceptsTested: []string{"Market sizing"},
		},
		Questions: []types.Question{{Type: types.QuestionMath, Prompt: "Compute X."}},
		Exhibits:  []types.Exhibit{{ExhibitNumber: 1, Content: "Exhibit 3\ntable"}},
	}

	item := Normalize(rec)

	if item.CaseID != "widget_co._market_entry" {
		t.Errorf("CaseID = %q", item.CaseID)
	}
	if item.Title != "Widget Co. Market Entry" || item.Author != "Jane Doe" {
		t.Errorf("metadata not carried: %+v", item)
	}
	if item.Difficulty.Quant != 3 || item.Difficulty.Structure != 2 {
		t.Errorf("Difficulty = %+v", item.Difficulty)
	}
	if item.Industry != "Consumer Goods" || item.CaseType != "Market entry" {
		t.Errorf("overview not carried: %+v", item)
	}
	if len(item.Questions) != 1 || item.Questions[0].Type != types.QuestionMath {
		t.Errorf("Questions = %+v", item.Questions)
	}
	if item.CreatedAt != item.UpdatedAt {
		t.Errorf("timestamps differ at creation: %q vs %q", item.CreatedAt, item.UpdatedAt)
	}
	if !strings.HasSuffix(item.CreatedAt, "Z") {
		t.Errorf("CreatedAt not UTC: %q", item.CreatedAt)
	}
}
