package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mindwell/assessment-backend/internal/entity"
)

// AssessmentRepository persists completed assessment records. The session
// core only depends on this contract; persistence medium and durability are
// the implementation's concern.
type AssessmentRepository interface {
	// Add stores a record and returns it with its assigned identifier.
	// Identifiers are unique and monotonically increasing.
	Add(ctx context.Context, input entity.AssessmentRecordInput) (*entity.AssessmentRecord, error)
	// List returns all records ordered newest-first.
	List(ctx context.Context) ([]*entity.AssessmentRecord, error)
	GetByID(ctx context.Context, id int64) (*entity.AssessmentRecord, error)
	Remove(ctx context.Context, id int64) error
}

var _ AssessmentRepository = &AssessmentPostgres{}

// AssessmentPostgres implements AssessmentRepository using PostgreSQL.
type AssessmentPostgres struct {
	db *pgxpool.Pool
}

func NewAssessmentPostgres(db *pgxpool.Pool) *AssessmentPostgres {
	return &AssessmentPostgres{db: db}
}

const insertAssessment = `
INSERT INTO assessments (
	type, date, composite_score, risk_level, analysis_text,
	responses, sub_scores, trend_prediction, recommendations, safety_flag
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, created_at`

func (r *AssessmentPostgres) Add(ctx context.Context, input entity.AssessmentRecordInput) (*entity.AssessmentRecord, error) {
	responses, err := json.Marshal(input.Responses)
	if err != nil {
		return nil, fmt.Errorf("marshal responses: %w", err)
	}
	subScores, err := json.Marshal(input.SubScores)
	if err != nil {
		return nil, fmt.Errorf("marshal sub scores: %w", err)
	}
	trend, err := json.Marshal(input.Trend)
	if err != nil {
		return nil, fmt.Errorf("marshal trend prediction: %w", err)
	}
	recommendations, err := json.Marshal(input.Recommendations)
	if err != nil {
		return nil, fmt.Errorf("marshal recommendations: %w", err)
	}

	record := &entity.AssessmentRecord{AssessmentRecordInput: input}
	err = r.db.QueryRow(ctx, insertAssessment,
		string(input.Type), input.Date, input.CompositeScore, string(input.RiskLevel),
		input.AnalysisText, responses, subScores, trend, recommendations, input.SafetyFlag,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert assessment: %w", err)
	}

	return record, nil
}

const selectAssessment = `
SELECT id, type, date, composite_score, risk_level, analysis_text,
	responses, sub_scores, trend_prediction, recommendations, safety_flag, created_at
FROM assessments`

func (r *AssessmentPostgres) List(ctx context.Context) ([]*entity.AssessmentRecord, error) {
	rows, err := r.db.Query(ctx, selectAssessment+" ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	var records []*entity.AssessmentRecord
	for rows.Next() {
		record, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}

	return records, nil
}

func (r *AssessmentPostgres) GetByID(ctx context.Context, id int64) (*entity.AssessmentRecord, error) {
	rows, err := r.db.Query(ctx, selectAssessment+" WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("get assessment: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, entity.ErrRecordNotFound
	}
	return scanAssessment(rows)
}

func (r *AssessmentPostgres) Remove(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM assessments WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete assessment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrRecordNotFound
	}
	return nil
}

func scanAssessment(row pgx.Row) (*entity.AssessmentRecord, error) {
	var (
		record          entity.AssessmentRecord
		recordType      string
		riskLevel       string
		responses       []byte
		subScores       []byte
		trend           []byte
		recommendations []byte
	)

	err := row.Scan(
		&record.ID, &recordType, &record.Date, &record.CompositeScore, &riskLevel,
		&record.AnalysisText, &responses, &subScores, &trend, &recommendations,
		&record.SafetyFlag, &record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrRecordNotFound
		}
		return nil, fmt.Errorf("scan assessment: %w", err)
	}

	record.Type = entity.SessionMode(recordType)
	record.RiskLevel = entity.RiskLevel(riskLevel)

	if err := json.Unmarshal(responses, &record.Responses); err != nil {
		return nil, fmt.Errorf("unmarshal responses: %w", err)
	}
	if err := json.Unmarshal(subScores, &record.SubScores); err != nil {
		return nil, fmt.Errorf("unmarshal sub scores: %w", err)
	}
	if err := json.Unmarshal(trend, &record.Trend); err != nil {
		return nil, fmt.Errorf("unmarshal trend prediction: %w", err)
	}
	if err := json.Unmarshal(recommendations, &record.Recommendations); err != nil {
		return nil, fmt.Errorf("unmarshal recommendations: %w", err)
	}

	return &record, nil
}
