package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/bank-intelligence-api/internal/domain"
)

const (
	segmentsTable           = "customer_segments"
	segmentAssignmentsTable = "customer_segment_assignments"
)

type SegmentRepository interface {
	ListSegments() ([]*domain.CustomerSegment, error)
	ListAssignments(segmentID string) ([]*domain.SegmentAssignment, error)
	ReplaceSegments(ctx context.Context, source string, segments []*domain.CustomerSegment, assignments []*domain.SegmentAssignment) error
}

type segmentRepository struct {
	conn *postgres.Connection
}

func NewSegmentRepository(conn *postgres.Connection) SegmentRepository {
	return &segmentRepository{
		conn: conn,
	}
}

func (r *segmentRepository) ListSegments() ([]*domain.CustomerSegment, error) {
	segmentsSQL, segmentsArgs, err := squirrel.
		Select("id", "code", "name", "description", "source", "member_count",
			"avg_balance", "avg_income", "avg_risk", "avg_clv", "created_at", "updated_at").
		From(segmentsTable).
		OrderBy("member_count DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(segmentsSQL, segmentsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	segments := make([]*domain.CustomerSegment, 0)

	for rows.Next() {
		segment := &domain.CustomerSegment{}
		if err := rows.Scan(
			&segment.ID,
			&segment.Code,
			&segment.Name,
			&segment.Description,
			&segment.Source,
			&segment.MemberCount,
			&segment.AvgBalance,
			&segment.AvgIncome,
			&segment.AvgRisk,
			&segment.AvgCLV,
			&segment.CreatedAt,
			&segment.UpdatedAt,
		); err != nil {
			return nil, err
		}

		segments = append(segments, segment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return segments, nil
}

func (r *segmentRepository) ListAssignments(segmentID string) ([]*domain.SegmentAssignment, error) {
	assignmentsSQL, assignmentsArgs, err := squirrel.
		Select("id", "segment_id", "customer_id", "assigned_at").
		From(segmentAssignmentsTable).
		Where(squirrel.Eq{"segment_id": segmentID}).
		OrderBy("assigned_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(assignmentsSQL, assignmentsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	assignments := make([]*domain.SegmentAssignment, 0)

	for rows.Next() {
		assignment := &domain.SegmentAssignment{}
		if err := rows.Scan(
			&assignment.ID,
			&assignment.SegmentID,
			&assignment.CustomerID,
			&assignment.AssignedAt,
		); err != nil {
			return nil, err
		}

		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// ReplaceSegments substitui integralmente os segmentos de uma origem ("rules" ou "ai")
// e suas atribuições. A segmentação é sempre recriada por inteiro, nunca incremental,
// então a troca acontece dentro de uma única transação
func (r *segmentRepository) ReplaceSegments(
	ctx context.Context,
	source string,
	segments []*domain.CustomerSegment,
	assignments []*domain.SegmentAssignment,
) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteAssignmentsSQL := `
			DELETE FROM customer_segment_assignments
			WHERE segment_id IN (SELECT id FROM customer_segments WHERE source = $1)
		`
		if _, err := tx.Exec(deleteAssignmentsSQL, source); err != nil {
			return fmt.Errorf("erro ao remover atribuições antigas: %w", err)
		}

		if _, err := tx.Exec("DELETE FROM customer_segments WHERE source = $1", source); err != nil {
			return fmt.Errorf("erro ao remover segmentos antigos: %w", err)
		}

		if len(segments) == 0 {
			return nil
		}

		insertSegments := squirrel.StatementBuilder.
			Insert(segmentsTable).
			Columns("id", "code", "name", "description", "source", "member_count",
				"avg_balance", "avg_income", "avg_risk", "avg_clv").
			PlaceholderFormat(squirrel.Dollar)

		for _, segment := range segments {
			insertSegments = insertSegments.Values(
				segment.ID,
				segment.Code,
				segment.Name,
				segment.Description,
				segment.Source,
				segment.MemberCount,
				segment.AvgBalance,
				segment.AvgIncome,
				segment.AvgRisk,
				segment.AvgCLV,
			)
		}

		segmentsSQL, segmentsArgs, err := insertSegments.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.Exec(segmentsSQL, segmentsArgs...); err != nil {
			return fmt.Errorf("erro ao inserir segmentos: %w", err)
		}

		if len(assignments) == 0 {
			return nil
		}

		insertAssignments := squirrel.StatementBuilder.
			Insert(segmentAssignmentsTable).
			Columns("id", "segment_id", "customer_id").
			PlaceholderFormat(squirrel.Dollar)

		for _, assignment := range assignments {
			insertAssignments = insertAssignments.Values(
				assignment.ID,
				assignment.SegmentID,
				assignment.CustomerID,
			)
		}

		assignmentsSQL, assignmentsArgs, err := insertAssignments.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.Exec(assignmentsSQL, assignmentsArgs...); err != nil {
			return fmt.Errorf("erro ao inserir atribuições: %w", err)
		}

		return nil
	})
}
