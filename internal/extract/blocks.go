// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// blocks.go handles the repeated-block sections of a case: questions and
// exhibits, plus the closing recommendation section.
package extract

import (
	"regexp"
	"strings"

	"github.com/aniruddhdoki/casey/pkg/types"
)

var (
	questionStartRe = regexp.MustCompile(`(?:Math|Brainstorming|Question)\s*(?:#?\d+)?:`)
	questionEndRe   = regexp.MustCompile(`Recommendation:|Exhibit`)
	labelColonRe    = regexp.MustCompile(`:\s*`)
	solutionRe      = regexp.MustCompile(`(?:Math Solution|Notes to Interviewer):\s*`)
	solutionWordRe  = regexp.MustCompile(`Math Solution|Notes to Interviewer`)

	exhibitStartRe = regexp.MustCompile(`Exhibit\s+\d+`)
	exhibitEndRe   = regexp.MustCompile(`Question|Recommendation`)

	recLabelRe   = regexp.MustCompile(`Recommendation:\s*`)
	bonusLabelRe = regexp.MustCompile(`Bonus:`)
	risksRe      = regexp.MustCompile(`Risks:\s*`)
	risksWordRe  = regexp.MustCompile(`Risks:`)
	stepsRe      = regexp.MustCompile(`Next Steps:\s*`)
	stepsWordRe  = regexp.MustCompile(`Next Steps:`)
	bonusLineRe  = regexp.MustCompile(`Bonus:[^\n]*\n`)
)

// classifyWindow is how far into a block the type keyword is searched for.
const classifyWindow = 50

// extractQuestions splits the segment into question blocks. Each block
// begins at a question label and ends at the next label, a recommendation
// or exhibit marker, or the end of the segment. A block that yields
// neither a prompt nor solution notes is dropped.
func extractQuestions(text string) []types.Question {
	var questions []types.Question
	for _, block := range splitBlocks(text, questionStartRe, questionEndRe) {
		q := types.Question{Type: classifyQuestion(block)}

		// The first colon in the block belongs to the question label.
		q.Prompt, _ = captureAfter(block, labelColonRe, blankPairRe, solutionWordRe)
		q.SolutionNotes, _ = captureAfter(block, solutionRe)

		if q.Prompt == "" && q.SolutionNotes == "" {
			continue
		}
		questions = append(questions, q)
	}
	return questions
}

// classifyQuestion checks for the type keyword within the head of a block.
func classifyQuestion(block string) types.QuestionType {
	head := block
	if len(head) > classifyWindow {
		head = head[:classifyWindow]
	}
	switch {
	case strings.Contains(head, "Math"):
		return types.QuestionMath
	case strings.Contains(head, "Brainstorming"):
		return types.QuestionBrainstorming
	default:
		return types.QuestionGeneral
	}
}

// extractExhibits splits the segment into exhibit blocks. Exhibit numbers
// are assigned by position (1-based) regardless of the numbers printed in
// the source text, so the output sequence is always dense.
func extractExhibits(text string) []types.Exhibit {
	var exhibits []types.Exhibit
	for _, block := range splitBlocks(text, exhibitStartRe, exhibitEndRe) {
		exhibits = append(exhibits, types.Exhibit{
			ExhibitNumber: len(exhibits) + 1,
			Content:       strings.TrimSpace(block),
		})
	}
	return exhibits
}

// extractRecommendation captures the closing section: a single block from
// the recommendation label to a bonus label, a copyright footer, or the
// end of the segment, with sub-captures for risks and next steps.
// Excellence tips live outside the section, after the bonus label line.
func extractRecommendation(text string) types.Recommendation {
	var rec types.Recommendation

	if loc := recLabelRe.FindStringIndex(text); loc != nil {
		section := text[loc[1]:]
		section = section[:nearestStop(section, []*regexp.Regexp{bonusLabelRe, copyrightRe})]

		rec.Recommendation = strings.TrimSpace(section[:nearestStop(section, []*regexp.Regexp{risksWordRe, stepsWordRe})])
		rec.Risks, _ = captureAfter(section, risksRe, stepsWordRe)
		rec.NextSteps, _ = captureAfter(section, stepsRe, bonusLabelRe)
	}

	rec.ExcellenceTips, _ = captureAfter(text, bonusLineRe, copyrightRe)

	return rec
}
