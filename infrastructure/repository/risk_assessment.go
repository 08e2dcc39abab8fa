package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/bank-intelligence-api/internal/domain"
)

const riskAssessmentsTable = "risk_assessments"

type RiskAssessmentRepository interface {
	CreateRiskAssessment(assessment *domain.RiskAssessment) error
	GetRiskAssessmentByID(assessmentID string) (*domain.RiskAssessment, error)
	ListRiskAssessments(status *domain.RiskAssessmentStatus, customerID string, limit int) ([]*domain.RiskAssessment, error)
	UpdateStatus(assessmentID string, status domain.RiskAssessmentStatus) error
	ResolveExpired() (int64, error)
	CountActiveAlerts() (int, error)
}

type riskAssessmentRepository struct {
	conn *postgres.Connection
}

func NewRiskAssessmentRepository(conn *postgres.Connection) RiskAssessmentRepository {
	return &riskAssessmentRepository{
		conn: conn,
	}
}

func (r *riskAssessmentRepository) CreateRiskAssessment(assessment *domain.RiskAssessment) error {
	// Fatores e recomendações são persistidos como JSON, sem validação estrutural
	factorsJSON, err := json.Marshal(assessment.Factors)
	if err != nil {
		return fmt.Errorf("erro ao serializar fatores: %w", err)
	}

	recommendationsJSON, err := json.Marshal(assessment.Recommendations)
	if err != nil {
		return fmt.Errorf("erro ao serializar recomendações: %w", err)
	}

	sqlQuery, args, err := squirrel.
		Insert(riskAssessmentsTable).
		Columns("id", "customer_id", "risk_score", "risk_level", "factors",
			"recommendations", "status", "source", "expires_at").
		Values(
			assessment.ID,
			assessment.CustomerID,
			assessment.RiskScore,
			assessment.RiskLevel,
			factorsJSON,
			recommendationsJSON,
			assessment.Status,
			assessment.Source,
			assessment.ExpiresAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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

func (r *riskAssessmentRepository) GetRiskAssessmentByID(assessmentID string) (*domain.RiskAssessment, error) {
	assessmentSQL, assessmentArgs, err := squirrel.
		Select("id", "customer_id", "risk_score", "risk_level", "factors",
			"recommendations", "status", "source", "expires_at", "created_at", "updated_at").
		From(riskAssessmentsTable).
		Where(squirrel.Eq{"id": assessmentID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(assessmentSQL, assessmentArgs...)

	assessment, err := deserializeRiskAssessment(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return assessment, nil
}

func (r *riskAssessmentRepository) ListRiskAssessments(
	status *domain.RiskAssessmentStatus,
	customerID string,
	limit int,
) ([]*domain.RiskAssessment, error) {
	queryBuilder := squirrel.
		Select("id", "customer_id", "risk_score", "risk_level", "factors",
			"recommendations", "status", "source", "expires_at", "created_at", "updated_at").
		From(riskAssessmentsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if status != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": *status})
	}

	if customerID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"customer_id": customerID})
	}

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	assessmentsSQL, assessmentsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(assessmentsSQL, assessmentsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	assessments := make([]*domain.RiskAssessment, 0)

	for rows.Next() {
		assessment, err := deserializeRiskAssessment(rows.Scan)
		if err != nil {
			return nil, err
		}

		assessments = append(assessments, assessment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return assessments, nil
}

// UpdateStatus é a única mutação permitida após a criação de uma avaliação
func (r *riskAssessmentRepository) UpdateStatus(assessmentID string, status domain.RiskAssessmentStatus) error {
	sqlQuery, args, err := squirrel.
		Update(riskAssessmentsTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": assessmentID}).
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
		return fmt.Errorf("risk assessment not found")
	}

	return nil
}

// ResolveExpired marca como resolvidas as avaliações ativas cujo prazo expirou
func (r *riskAssessmentRepository) ResolveExpired() (int64, error) {
	result, err := r.conn.Exec(`
		UPDATE risk_assessments
		SET status = 'resolved', updated_at = NOW()
		WHERE status = 'active' AND expires_at < NOW()
	`)
	if err != nil {
		return 0, fmt.Errorf("erro ao resolver avaliações expiradas: %w", err)
	}

	return result.RowsAffected()
}

func (r *riskAssessmentRepository) CountActiveAlerts() (int, error) {
	var count int
	err := r.conn.QueryRow("SELECT COUNT(*) FROM risk_assessments WHERE status = 'active'").Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func deserializeRiskAssessment(scan func(dest ...any) error) (*domain.RiskAssessment, error) {
	assessment := &domain.RiskAssessment{}

	var factorsJSON, recommendationsJSON []byte

	if err := scan(
		&assessment.ID,
		&assessment.CustomerID,
		&assessment.RiskScore,
		&assessment.RiskLevel,
		&factorsJSON,
		&recommendationsJSON,
		&assessment.Status,
		&assessment.Source,
		&assessment.ExpiresAt,
		&assessment.CreatedAt,
		&assessment.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if len(factorsJSON) > 0 {
		if err := json.Unmarshal(factorsJSON, &assessment.Factors); err != nil {
			return nil, fmt.Errorf("erro ao deserializar fatores: %w", err)
		}
	}

	if len(recommendationsJSON) > 0 {
		if err := json.Unmarshal(recommendationsJSON, &assessment.Recommendations); err != nil {
			return nil, fmt.Errorf("erro ao deserializar recomendações: %w", err)
		}
	}

	return assessment, nil
}
