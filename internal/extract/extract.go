// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns one case segment's text into a raw CaseRecord by
// applying a fixed set of independent pattern-matching rules. Each rule
// tolerates absence: a label that never appears yields an empty field,
// never an error. The rules are tuned to the casebook's own heading
// vocabulary and make no attempt to generalize to other layouts.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aniruddhdoki/casey/pkg/types"
)

// Field labels and their stop sets.
var (
	authorRe       = regexp.MustCompile(`(?i)Authors?:\s*`)
	firmWordRe     = regexp.MustCompile(`Firm`)
	lineEndRe      = regexp.MustCompile(`\n`)
	firmLabelRe    = regexp.MustCompile(`(?i)Firm.*?:\s*`)
	bracketRe      = regexp.MustCompile(`\[`)
	caseStyleRe    = regexp.MustCompile(`(?i)\[(.*?-led)\]`)
	quantRe        = regexp.MustCompile(`Quant:\s*(\d+)`)
	structRatingRe = regexp.MustCompile(`Structure:\s*(\d+)`)

	promptLabelRe   = regexp.MustCompile(`Case Prompt:\s*\n`)
	blankPairRe     = regexp.MustCompile(`\n\n`)
	overviewLabelRe = regexp.MustCompile(`Case Overview:`)

	industryRe       = regexp.MustCompile(`Industry:[ \t]*`)
	caseTypeRe       = regexp.MustCompile(`Case Structure:\s*`)
	conceptsWordRe   = regexp.MustCompile(`Concepts`)
	conceptsRe       = regexp.MustCompile(`Concepts Tested:\s*`)
	copyrightRe      = regexp.MustCompile(`©`)
	bulletRe         = regexp.MustCompile(`[•●][ \t]*(.+)`)
	notesLabelRe     = regexp.MustCompile(`Overview Information for Interviewer:\s*`)
	clarifyingWordRe = regexp.MustCompile(`Clarifying`)

	clarifyingRe = regexp.MustCompile(`Clarifying Information:\s*`)
	guideLabelRe = regexp.MustCompile(`Interviewer Guide:\s*`)
	guideStopRe  = regexp.MustCompile(`\n\n\n|Question|Math|Brainstorming|Recommendation`)
)

// Extract applies every extraction rule to one segment's text and
// assembles the raw record. The rules are order-insensitive relative to
// each other; each scans the full segment.
func Extract(text string) types.CaseRecord {
	rec := types.CaseRecord{
		Metadata:       extractMetadata(text),
		CasePrompt:     extractPrompt(text),
		Overview:       extractOverview(text),
		FrameworkGuide: extractFramework(text),
		Questions:      extractQuestions(text),
		Exhibits:       extractExhibits(text),
		Recommendation: extractRecommendation(text),
	}
	rec.CaseID = CaseID(rec.Metadata.Title)
	return rec
}

// CaseID derives the storage key from a case title: lowercase, spaces to
// underscores, apostrophes removed. Cases with identical titles collide;
// the id is deterministic but uniqueness is not enforced.
func CaseID(title string) string {
	id := strings.ToLower(title)
	id = strings.ReplaceAll(id, " ", "_")
	return strings.ReplaceAll(id, "'", "")
}

// extractMetadata pulls the heading-level fields. The title is the first
// line of the segment; the segmenter slices segments so the title line
// comes first.
func extractMetadata(text string) types.CaseMetadata {
	var meta types.CaseMetadata

	lines := strings.Split(strings.TrimSpace(text), "\n")
	meta.Title = strings.TrimSpace(lines[0])

	meta.Author, _ = captureAfter(text, authorRe, firmWordRe, lineEndRe)
	meta.FirmStyle, _ = captureAfter(text, firmLabelRe, bracketRe, lineEndRe)

	if m := caseStyleRe.FindStringSubmatch(text); m != nil {
		meta.CaseStyle = strings.TrimSpace(m[1])
	}
	meta.QuantDifficulty = matchInt(text, quantRe)
	meta.StructureDifficulty = matchInt(text, structRatingRe)

	return meta
}

// matchInt returns the first captured integer, or zero when the label is
// absent.
func matchInt(text string, re *regexp.Regexp) int {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// extractPrompt captures the case prompt: the block after the label, up to
// the first blank-line pair or the Case Overview label, whichever comes
// first.
func extractPrompt(text string) string {
	prompt, _ := captureAfter(text, promptLabelRe, blankPairRe, overviewLabelRe)
	return prompt
}

func extractOverview(text string) types.CaseOverview {
	var ov types.CaseOverview

	ov.Industry, _ = captureAfter(text, industryRe, lineEndRe)
	ov.CaseType, _ = captureAfter(text, caseTypeRe, conceptsWordRe)

	if block, ok := captureAfter(text, conceptsRe, blankPairRe, copyrightRe); ok {
		for _, m := range bulletRe.FindAllStringSubmatch(block, -1) {
			ov.ConceptsTested = append(ov.ConceptsTested, strings.TrimSpace(m[1]))
		}
	}

	ov.InterviewerNotes, _ = captureAfter(text, notesLabelRe, blankPairRe, clarifyingWordRe)

	return ov
}

func extractFramework(text string) types.FrameworkGuide {
	var fg types.FrameworkGuide
	fg.ClarifyingInfo, _ = captureAfter(text, clarifyingRe, guideLabelRe)
	fg.ExpectedFramework, _ = captureAfter(text, guideLabelRe, guideStopRe)
	return fg
}
