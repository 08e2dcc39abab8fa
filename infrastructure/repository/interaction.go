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

const interactionsTable = "customer_interactions"

type InteractionRepository interface {
	CreateInteractions(interactions []*domain.CustomerInteraction) error
	ListInteractionsByCustomer(customerID string, limit int) ([]*domain.CustomerInteraction, error)
}

type interactionRepository struct {
	conn *postgres.Connection
}

func NewInteractionRepository(conn *postgres.Connection) InteractionRepository {
	return &interactionRepository{
		conn: conn,
	}
}

func (r *interactionRepository) CreateInteractions(interactions []*domain.CustomerInteraction) error {
	if len(interactions) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(interactionsTable).
		Columns("id", "customer_id", "channel", "subject", "sentiment", "occurred_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, interaction := range interactions {
		query = query.Values(
			interaction.ID,
			interaction.CustomerID,
			interaction.Channel,
			interaction.Subject,
			interaction.Sentiment,
			interaction.OccurredAt,
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

func (r *interactionRepository) ListInteractionsByCustomer(customerID string, limit int) ([]*domain.CustomerInteraction, error) {
	queryBuilder := squirrel.
		Select("id", "customer_id", "channel", "subject", "sentiment", "occurred_at", "created_at").
		From(interactionsTable).
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("occurred_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	interactionsSQL, interactionsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(interactionsSQL, interactionsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	interactions := make([]*domain.CustomerInteraction, 0)

	for rows.Next() {
		interaction := &domain.CustomerInteraction{}
		if err := rows.Scan(
			&interaction.ID,
			&interaction.CustomerID,
			&interaction.Channel,
			&interaction.Subject,
			&interaction.Sentiment,
			&interaction.OccurredAt,
			&interaction.CreatedAt,
		); err != nil {
			return nil, err
		}

		interactions = append(interactions, interaction)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return interactions, nil
}
