// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library persists parsed case records in a SQLite database and
// builds a full-text retrieval index over them. It consumes the JSON file
// the parse stage produces; it never reads the casebook text itself.
package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/aniruddhdoki/casey/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "cases.db"
)

// Store manages the case library SQLite database.
type Store struct {
	db         *sql.DB
	libraryDir string
	maxResults int
}

// NewStore opens or creates the case library database at
// libraryDir/index/cases.db, creating the schema if it does not exist.
func NewStore(cfg types.LibraryConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.LibraryDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		libraryDir: cfg.LibraryDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS cases (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			case_id TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			author TEXT,
			firm_style TEXT,
			case_style TEXT,
			industry TEXT,
			case_type TEXT,
			quant_difficulty INTEGER,
			structure_difficulty INTEGER,
			concepts_tested TEXT,
			case_prompt TEXT,
			clarifying_info TEXT,
			expected_framework TEXT,
			interviewer_notes TEXT,
			questions TEXT,
			exhibits TEXT,
			recommendation TEXT,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cases_industry ON cases(industry)`,
		`CREATE INDEX IF NOT EXISTS idx_cases_case_style ON cases(case_style)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='cases_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE cases_fts USING fts5(title, case_prompt, interviewer_notes, content=cases, content_rowid=rowid)`,
			`CREATE TRIGGER cases_ai AFTER INSERT ON cases BEGIN
				INSERT INTO cases_fts(rowid, title, case_prompt, interviewer_notes)
				VALUES (new.rowid, new.title, new.case_prompt, new.interviewer_notes);
			END`,
			`CREATE TRIGGER cases_ad AFTER DELETE ON cases BEGIN
				INSERT INTO cases_fts(cases_fts, rowid, title, case_prompt, interviewer_notes)
				VALUES('delete', old.rowid, old.title, old.case_prompt, old.interviewer_notes);
			END`,
			`CREATE TRIGGER cases_au AFTER UPDATE ON cases BEGIN
				INSERT INTO cases_fts(cases_fts, rowid, title, case_prompt, interviewer_notes)
				VALUES('delete', old.rowid, old.title, old.case_prompt, old.interviewer_notes);
				INSERT INTO cases_fts(rowid, title, case_prompt, interviewer_notes)
				VALUES (new.rowid, new.title, new.case_prompt, new.interviewer_notes);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from one library ingest run.
type IngestSummary struct {
	Loaded  int
	Updated int
	Failed  int
}

// Total returns the number of records processed.
func (s IngestSummary) Total() int {
	return s.Loaded + s.Updated + s.Failed
}

// Ingest reads the parse stage's JSON output and upserts every record
// into the library. Records with an empty case_id are counted as failed
// and skipped; the run continues.
func (s *Store) Ingest(ctx context.Context, jsonPath string, w io.Writer) (IngestSummary, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("reading records %s: %w", jsonPath, err)
	}

	var items []types.CaseItem
	if err := json.Unmarshal(data, &items); err != nil {
		return IngestSummary{}, fmt.Errorf("parsing records %s: %w", jsonPath, err)
	}

	var summary IngestSummary

	for _, item := range items {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		if item.CaseID == "" {
			fmt.Fprintf(w, "failed  %q: empty case_id\n", item.Title)
			summary.Failed++
			continue
		}

		var exists int
		if err := s.db.QueryRowContext(ctx,
			`SELECT count(*) FROM cases WHERE case_id = ?`, item.CaseID,
		).Scan(&exists); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", item.CaseID, err)
			summary.Failed++
			continue
		}

		if err := s.upsertCase(ctx, item); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", item.CaseID, err)
			summary.Failed++
			continue
		}

		if exists > 0 {
			fmt.Fprintf(w, "updated %s\n", item.CaseID)
			summary.Updated++
		} else {
			fmt.Fprintf(w, "loaded  %s\n", item.CaseID)
			summary.Loaded++
		}
	}

	fmt.Fprintf(w, "\nloaded: %d, updated: %d, failed: %d\n",
		summary.Loaded, summary.Updated, summary.Failed)

	return summary, nil
}

func (s *Store) upsertCase(ctx context.Context, item types.CaseItem) error {
	conceptsJSON, _ := json.Marshal(item.ConceptsTested)
	questionsJSON, _ := json.Marshal(item.Questions)
	exhibitsJSON, _ := json.Marshal(item.Exhibits)
	recJSON, _ := json.Marshal(item.Recommendation)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cases (
			case_id, title, author, firm_style, case_style, industry, case_type,
			quant_difficulty, structure_difficulty, concepts_tested,
			case_prompt, clarifying_info, expected_framework, interviewer_notes,
			questions, exhibits, recommendation, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(case_id) DO UPDATE SET
			title=excluded.title, author=excluded.author,
			firm_style=excluded.firm_style, case_style=excluded.case_style,
			industry=excluded.industry, case_type=excluded.case_type,
			quant_difficulty=excluded.quant_difficulty,
			structure_difficulty=excluded.structure_difficulty,
			concepts_tested=excluded.concepts_tested,
			case_prompt=excluded.case_prompt,
			clarifying_info=excluded.clarifying_info,
			expected_framework=excluded.expected_framework,
			interviewer_notes=excluded.interviewer_notes,
			questions=excluded.questions, exhibits=excluded.exhibits,
			recommendation=excluded.recommendation,
			updated_at=excluded.updated_at`,
		item.CaseID, item.Title, item.Author, item.FirmStyle, item.CaseStyle,
		item.Industry, item.CaseType,
		item.Difficulty.Quant, item.Difficulty.Structure, string(conceptsJSON),
		item.CasePrompt, item.ClarifyingInfo, item.ExpectedFramework,
		item.InterviewerNotes,
		string(questionsJSON), string(exhibitsJSON), string(recJSON),
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting case: %w", err)
	}
	return nil
}
