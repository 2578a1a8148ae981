// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package record decides whether a raw extraction represents a genuine
// case and normalizes accepted records into the output schema. The
// boundary scan produces false positives (running headers, page numbers,
// stray exhibit labels); the acceptance rules filter them out.
package record

import (
	"regexp"
	"strings"
	"time"

	"github.com/aniruddhdoki/casey/pkg/types"
)

// minTitleLen is the shortest trimmed title accepted as a case name.
const minTitleLen = 5

// invalidTitleRes match titles that are clearly not real cases. Prefix
// matches, case-insensitive.
var invalidTitleRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^Structure:`),
	regexp.MustCompile(`^\d+$`),
	regexp.MustCompile(`^©`),
	regexp.MustCompile(`(?i)^Page \d+`),
	regexp.MustCompile(`(?i)^Exhibit`),
	regexp.MustCompile(`(?i)^Question \d+`),
}

// Valid reports whether a raw record represents a genuine case. A genuine
// case has a plausible title and carries at least one of the two content
// signals: a case prompt or an industry.
func Valid(rec types.CaseRecord) bool {
	title := strings.TrimSpace(rec.Metadata.Title)

	for _, re := range invalidTitleRes {
		if re.MatchString(title) {
			return false
		}
	}
	if len(title) < minTitleLen {
		return false
	}
	if rec.CasePrompt == "" && rec.Overview.Industry == "" {
		return false
	}
	return true
}

// nowFunc returns the current time. Tests override it for deterministic
// timestamps.
var nowFunc = time.Now

// Normalize maps a raw record into the flat, fully-keyed output schema.
// Every field defaults to "", 0, or an empty collection, never an absent
// key; slice fields are non-nil so they serialize as empty arrays. Both
// timestamps are set to the same UTC instant; a re-run does not preserve
// the original creation time.
func Normalize(rec types.CaseRecord) types.CaseItem {
	now := nowFunc().UTC().Format(time.RFC3339)

	item := types.CaseItem{
		CaseID: rec.CaseID,

		Title:     rec.Metadata.Title,
		Author:    rec.Metadata.Author,
		FirmStyle: rec.Metadata.FirmStyle,
		CaseStyle: rec.Metadata.CaseStyle,

		Industry: rec.Overview.Industry,
		CaseType: rec.Overview.CaseType,

		Difficulty: types.Difficulty{
			Quant:     rec.Metadata.QuantDifficulty,
			Structure: rec.Metadata.StructureDifficulty,
		},

		ConceptsTested: rec.Overview.ConceptsTested,

		CasePrompt:        rec.CasePrompt,
		ClarifyingInfo:    rec.FrameworkGuide.ClarifyingInfo,
		ExpectedFramework: rec.FrameworkGuide.ExpectedFramework,
		InterviewerNotes:  rec.Overview.InterviewerNotes,

		Questions: rec.Questions,
		Exhibits:  rec.Exhibits,

		Recommendation: rec.Recommendation,

		CreatedAt: now,
		UpdatedAt: now,
	}

	if item.ConceptsTested == nil {
		item.ConceptsTested = []string{}
	}
	if item.Questions == nil {
		item.Questions = []types.Question{}
	}
	if item.Exhibits == nil {
		item.Exhibits = []types.Exhibit{}
	}

	return item
}
