// Package history persists composition runs so past results can be
// listed, re-read, and served over the HTTP and MCP surfaces.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hashcompose/reqforge/internal/composer"
	"github.com/hashcompose/reqforge/internal/db"
)

// Store provides persistence for composition runs.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// RunSummary is the listing row for one stored run.
type RunSummary struct {
	ID                string    `json:"id"`
	CreatedAt         time.Time `json:"created_at"`
	Requirement       string    `json:"requirement"`
	Intent            string    `json:"intent"`
	Industry          string    `json:"industry"`
	ComplianceLevel   string    `json:"compliance_level"`
	Approach          string    `json:"approach"`
	Source            string    `json:"classification_source"`
	OverallConfidence int       `json:"overall_confidence"`
	QualityScore      int       `json:"quality_score"`
	RefinementRounds  int       `json:"refinement_rounds"`
	ArtifactCount     int       `json:"artifact_count"`
}

// Save persists a finished composition run, its artifacts, and its
// quality issues in one transaction.
func (s *Store) Save(ctx context.Context, r *composer.Result) error {
	resultJSON, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshalling result: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO composition_runs (
			id, created_at, requirement, intent, industry, compliance_level,
			approach, classification_source, overall_confidence,
			quality_score, refinement_rounds, artifact_count, result_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.FinishedAt.UTC().Format(time.DateTime),
		r.Requirement.Description,
		string(r.Classification.BusinessIntent.Primary),
		r.Classification.Industry.Industry,
		string(r.Classification.Compliance.Level),
		string(r.Strategy.Approach),
		string(r.Classification.Source),
		r.Classification.ConfidenceScore.Overall,
		r.Quality.OverallScore,
		r.RefinementRounds,
		len(r.Artifacts),
		string(resultJSON),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	for _, a := range r.Artifacts {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_artifacts (run_id, file_path, language, purpose, method, confidence, content)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.ID, a.FilePath, a.Language, a.Purpose, string(a.Method), a.Confidence, a.Content,
		)
		if err != nil {
			return fmt.Errorf("inserting artifact %s: %w", a.FilePath, err)
		}
	}

	for _, issue := range r.Quality.Issues {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_issues (run_id, file_path, category, severity, message)
			VALUES (?, ?, ?, ?, ?)`,
			r.ID, issue.File, issue.Category, string(issue.Severity), issue.Message,
		)
		if err != nil {
			return fmt.Errorf("inserting issue: %w", err)
		}
	}

	return tx.Commit()
}

// Get retrieves one stored run by ID, fully rehydrated.
func (s *Store) Get(ctx context.Context, id string) (*composer.Result, error) {
	var resultJSON string
	err := s.db.QueryRowContext(ctx,
		"SELECT result_json FROM composition_runs WHERE id = ?", id,
	).Scan(&resultJSON)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying run: %w", err)
	}

	var r composer.Result
	if err := json.Unmarshal([]byte(resultJSON), &r); err != nil {
		return nil, fmt.Errorf("unmarshalling run %s: %w", id, err)
	}
	return &r, nil
}

// ListFilter controls which runs List returns.
type ListFilter struct {
	Intent   string
	Industry string
	Limit    int
	Offset   int
}

// List returns run summaries newest-first.
func (s *Store) List(ctx context.Context, filter ListFilter) ([]RunSummary, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.Intent != "" {
		clauses = append(clauses, "intent = ?")
		args = append(args, filter.Intent)
	}
	if filter.Industry != "" {
		clauses = append(clauses, "industry = ?")
		args = append(args, filter.Industry)
	}

	query := `SELECT id, created_at, requirement, intent, industry, compliance_level,
		approach, classification_source, overall_confidence, quality_score,
		refinement_rounds, artifact_count FROM composition_runs`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var summaries []RunSummary
	for rows.Next() {
		var (
			sum RunSummary
			ts  string
		)
		err := rows.Scan(&sum.ID, &ts, &sum.Requirement, &sum.Intent, &sum.Industry,
			&sum.ComplianceLevel, &sum.Approach, &sum.Source, &sum.OverallConfidence,
			&sum.QualityScore, &sum.RefinementRounds, &sum.ArtifactCount)
		if err != nil {
			return nil, err
		}
		if t, parseErr := time.Parse(time.DateTime, ts); parseErr == nil {
			sum.CreatedAt = t
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// DeleteBefore removes runs older than the given time. Returns the number
// of deleted rows.
func (s *Store) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM composition_runs WHERE created_at < ?",
		before.UTC().Format(time.DateTime),
	)
	if err != nil {
		return 0, fmt.Errorf("deleting old runs: %w", err)
	}
	return res.RowsAffected()
}
