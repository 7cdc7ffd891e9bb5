package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
)

type InterestRepository interface {
	Upsert(customerID int64, category string, level domain.InterestLevel) (*domain.CustomerInterest, error)
	ListByCustomer(customerID int64) ([]*domain.CustomerInterest, error)
	TopInterest(customerID int64) (*domain.CustomerInterest, error)
}

type interestRepository struct {
	conn *postgres.Connection
}

func NewInterestRepository(conn *postgres.Connection) InterestRepository {
	return &interestRepository{
		conn: conn,
	}
}

// Upsert cria ou atualiza o interesse; o par (cliente, categoria) é único e
// interações repetidas incrementam o contador
func (r *interestRepository) Upsert(customerID int64, category string, level domain.InterestLevel) (*domain.CustomerInterest, error) {
	query, args, err := squirrel.
		Insert("customer_interests").
		Columns("customer_id", "product_category", "interest_level", "interaction_count", "last_interaction_date").
		Values(customerID, category, level, 1, squirrel.Expr("CURRENT_TIMESTAMP")).
		Suffix(`ON CONFLICT (customer_id, product_category) DO UPDATE SET
			interest_level = EXCLUDED.interest_level,
			interaction_count = customer_interests.interaction_count + 1,
			last_interaction_date = CURRENT_TIMESTAMP
		RETURNING interest_id, customer_id, product_category, interest_level, interaction_count, last_interaction_date`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return deserializeInterest(r.conn.QueryRow(query, args...))
}

// ListByCustomer ordena por relevância: nível de interesse e depois contagem
func (r *interestRepository) ListByCustomer(customerID int64) ([]*domain.CustomerInterest, error) {
	query, args, err := r.listBuilder(customerID).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	interests := make([]*domain.CustomerInterest, 0)

	for rows.Next() {
		interest, err := deserializeInterest(rows)
		if err != nil {
			return nil, err
		}

		interests = append(interests, interest)
	}

	return interests, rows.Err()
}

func (r *interestRepository) TopInterest(customerID int64) (*domain.CustomerInterest, error) {
	query, args, err := r.listBuilder(customerID).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}

	interest, err := deserializeInterest(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return interest, nil
}

func (r *interestRepository) listBuilder(customerID int64) squirrel.SelectBuilder {
	return squirrel.
		Select("interest_id, customer_id, product_category, interest_level, interaction_count, last_interaction_date").
		From("customer_interests").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy(`CASE interest_level
			WHEN 'high' THEN 1
			WHEN 'medium' THEN 2
			ELSE 3
		END`, "interaction_count DESC").
		PlaceholderFormat(squirrel.Dollar)
}

func deserializeInterest(row rowScanner) (*domain.CustomerInterest, error) {
	interest := &domain.CustomerInterest{}

	if err := row.Scan(
		&interest.ID,
		&interest.CustomerID,
		&interest.ProductCategory,
		&interest.InterestLevel,
		&interest.InteractionCount,
		&interest.LastInteractionDate,
	); err != nil {
		return nil, err
	}

	return interest, nil
}
