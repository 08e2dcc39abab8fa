package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/bank-intelligence-api/internal/domain"
)

const insightsTable = "ai_insights"

type InsightRepository interface {
	CreateInsights(insights []*domain.AIInsight) error
	ListInsights(filters *domain.InsightFilters) ([]*domain.AIInsight, error)
	UpdateStatus(insightID string, status domain.InsightStatus) error
	CountByStatus(status domain.InsightStatus) (int, error)
}

type insightRepository struct {
	conn *postgres.Connection
}

func NewInsightRepository(conn *postgres.Connection) InsightRepository {
	return &insightRepository{
		conn: conn,
	}
}

// CreateInsights insere em lote os insights parseados da resposta da IA
func (r *insightRepository) CreateInsights(insights []*domain.AIInsight) error {
	if len(insights) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(insightsTable).
		Columns("id", "customer_id", "title", "description", "type", "priority", "confidence", "status").
		PlaceholderFormat(squirrel.Dollar)

	for _, insight := range insights {
		query = query.Values(
			insight.ID,
			insight.CustomerID,
			insight.Title,
			insight.Description,
			insight.Type,
			insight.Priority,
			insight.Confidence,
			insight.Status,
		)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *insightRepository) ListInsights(filters *domain.InsightFilters) ([]*domain.AIInsight, error) {
	queryBuilder := squirrel.
		Select("id", "customer_id", "title", "description", "type", "priority",
			"confidence", "status", "created_at", "updated_at").
		From(insightsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.CustomerID != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"customer_id": filters.CustomerID})
		}

		if filters.Status != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"status": *filters.Status})
		}

		if filters.Type != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"type": *filters.Type})
		}

		if filters.Limit > 0 {
			queryBuilder = queryBuilder.Limit(uint64(filters.Limit))
		}
	}

	insightsSQL, insightsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(insightsSQL, insightsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	insights := make([]*domain.AIInsight, 0)

	for rows.Next() {
		insight := &domain.AIInsight{}
		if err := rows.Scan(
			&insight.ID,
			&insight.CustomerID,
			&insight.Title,
			&insight.Description,
			&insight.Type,
			&insight.Priority,
			&insight.Confidence,
			&insight.Status,
			&insight.CreatedAt,
			&insight.UpdatedAt,
		); err != nil {
			return nil, err
		}

		insights = append(insights, insight)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return insights, nil
}

func (r *insightRepository) UpdateStatus(insightID string, status domain.InsightStatus) error {
	sqlQuery, args, err := squirrel.
		Update(insightsTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": insightID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("insight not found")
	}

	return nil
}

func (r *insightRepository) CountByStatus(status domain.InsightStatus) (int, error) {
	var count int
	err := r.conn.QueryRow("SELECT COUNT(*) FROM ai_insights WHERE status = $1", status).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
