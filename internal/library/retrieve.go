// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aniruddhdoki/casey/pkg/types"
)

// QueryOptions holds parameters for library queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string. It matches against the
	// title, case prompt, and interviewer notes.
	Query string

	// Industry filters by exact industry label.
	Industry string

	// CaseStyle filters by exact case style (e.g. "Candidate-led").
	CaseStyle string

	// Concept filters to cases whose concepts_tested list contains the
	// given concept.
	Concept string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Industry == "" && q.CaseStyle == "" && q.Concept == ""
}

// Retrieve queries the library with optional full-text search and
// structured filters. Results are ranked by relevance for full-text
// queries or sorted by title for structured-only queries.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]types.CaseItem, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT c.case_id, c.title, c.author, c.firm_style, c.case_style,
				c.industry, c.case_type, c.quant_difficulty, c.structure_difficulty,
				c.concepts_tested, c.case_prompt, c.clarifying_info,
				c.expected_framework, c.interviewer_notes,
				c.questions, c.exhibits, c.recommendation,
				c.created_at, c.updated_at
			FROM cases_fts
			JOIN cases c ON c.rowid = cases_fts.rowid
			WHERE cases_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT c.case_id, c.title, c.author, c.firm_style, c.case_style,
				c.industry, c.case_type, c.quant_difficulty, c.structure_difficulty,
				c.concepts_tested, c.case_prompt, c.clarifying_info,
				c.expected_framework, c.interviewer_notes,
				c.questions, c.exhibits, c.recommendation,
				c.created_at, c.updated_at
			FROM cases c
			WHERE 1=1`)
	}

	if opts.Industry != "" {
		qb.WriteString(` AND c.industry = ?`)
		args = append(args, opts.Industry)
	}

	if opts.CaseStyle != "" {
		qb.WriteString(` AND c.case_style = ?`)
		args = append(args, opts.CaseStyle)
	}

	if opts.Concept != "" {
		qb.WriteString(` AND EXISTS (SELECT 1 FROM json_each(c.concepts_tested) WHERE value = ?)`)
		args = append(args, opts.Concept)
	}

	if useFTS {
		qb.WriteString(` ORDER BY cases_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY c.title`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying library: %w", err)
	}
	defer rows.Close()

	var results []types.CaseItem
	for rows.Next() {
		item, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	return results, rows.Err()
}

// Get returns a single case by its case_id.
func (s *Store) Get(ctx context.Context, caseID string) (types.CaseItem, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT case_id, title, author, firm_style, case_style,
			industry, case_type, quant_difficulty, structure_difficulty,
			concepts_tested, case_prompt, clarifying_info,
			expected_framework, interviewer_notes,
			questions, exhibits, recommendation,
			created_at, updated_at
		FROM cases WHERE case_id = ?`, caseID)

	item, err := scanCase(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.CaseItem{}, fmt.Errorf("case %s not found", caseID)
		}
		return types.CaseItem{}, err
	}
	return item, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCase(row scanner) (types.CaseItem, error) {
	var (
		item         types.CaseItem
		conceptsJSON sql.NullString
		questsJSON   sql.NullString
		exhibitsJSON sql.NullString
		recJSON      sql.NullString
	)

	err := row.Scan(
		&item.CaseID, &item.Title, &item.Author, &item.FirmStyle, &item.CaseStyle,
		&item.Industry, &item.CaseType,
		&item.Difficulty.Quant, &item.Difficulty.Structure,
		&conceptsJSON, &item.CasePrompt, &item.ClarifyingInfo,
		&item.ExpectedFramework, &item.InterviewerNotes,
		&questsJSON, &exhibitsJSON, &recJSON,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.CaseItem{}, err
		}
		return types.CaseItem{}, fmt.Errorf("scanning row: %w", err)
	}

	item.ConceptsTested = []string{}
	item.Questions = []types.Question{}
	item.Exhibits = []types.Exhibit{}

	if conceptsJSON.Valid {
		json.Unmarshal([]byte(conceptsJSON.String), &item.ConceptsTested)
	}
	if questsJSON.Valid {
		json.Unmarshal([]byte(questsJSON.String), &item.Questions)
	}
	if exhibitsJSON.Valid {
		json.Unmarshal([]byte(exhibitsJSON.String), &item.Exhibits)
	}
	if recJSON.Valid {
		json.Unmarshal([]byte(recJSON.String), &item.Recommendation)
	}

	return item, nil
}
