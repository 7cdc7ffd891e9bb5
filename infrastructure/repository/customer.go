package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/marketing-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
)

const (
	customersTable = "customers c"
	profilesTable  = "customer_profiles cp"

	// Colunas da visão achatada cliente + perfil, com idade derivada na consulta
	customerAttributeColumns = `c.customer_id, c.email, c.first_name, c.last_name, c.phone,
		c.marketing_consent, c.consent_date, c.created_at, c.last_activity_at,
		COALESCE(cp.purchase_history_value, 0), COALESCE(cp.total_purchases, 0),
		cp.last_purchase_date, cp.avg_order_value, COALESCE(cp.engagement_score, 0),
		cp.date_of_birth, cp.location, cp.industry, cp.company_size,
		EXTRACT(YEAR FROM AGE(CURRENT_DATE, cp.date_of_birth))::INTEGER`
)

type CustomerRepository interface {
	GetAttributes(customerID int64) (*domain.CustomerAttributes, error)
	ListConsentingAttributes() ([]*domain.CustomerAttributes, error)
	FilterCustomers(filters domain.CustomerFilters, limit, offset uint64) ([]*domain.CustomerAttributes, error)
	CountCustomers(filters domain.CustomerFilters) (int, error)
	SearchCustomers(term string, fields []string, limit uint64) ([]*domain.CustomerAttributes, error)
	RevokeConsent(customerID int64) error
	TouchActivity(customerID int64) error
	ApplyPurchase(customerID int64, amount float64) error
	BoostEngagement(customerID int64, delta int) error
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) GetAttributes(customerID int64) (*domain.CustomerAttributes, error) {
	query, args, err := r.attributesBuilder().
		Where(squirrel.Eq{"c.customer_id": customerID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(query, args...)

	attrs, err := deserializeAttributes(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return attrs, nil
}

// ListConsentingAttributes retorna os clientes com consentimento de marketing;
// a associação dinâmica de segmento é avaliada sobre esta visão
func (r *customerRepository) ListConsentingAttributes() ([]*domain.CustomerAttributes, error) {
	query, args, err := r.attributesBuilder().
		Where(squirrel.Eq{"c.marketing_consent": true}).
		OrderBy("c.customer_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryAttributes(query, args)
}

func (r *customerRepository) FilterCustomers(filters domain.CustomerFilters, limit, offset uint64) ([]*domain.CustomerAttributes, error) {
	queryBuilder := applyCustomerFilters(r.attributesBuilder(), filters).
		OrderBy("c.customer_id").
		Limit(limit).
		Offset(offset)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryAttributes(query, args)
}

// CountCustomers retorna o total filtrado para paginação
func (r *customerRepository) CountCustomers(filters domain.CustomerFilters) (int, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From(customersTable).
		LeftJoin("customer_profiles cp ON c.customer_id = cp.customer_id").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := applyCustomerFilters(queryBuilder, filters).ToSql()
	if err != nil {
		return 0, err
	}

	var total int
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *customerRepository) SearchCustomers(term string, fields []string, limit uint64) ([]*domain.CustomerAttributes, error) {
	if len(fields) == 0 {
		fields = domain.SearchableCustomerFields
	}

	pattern := fmt.Sprintf("%%%s%%", term)
	conditions := squirrel.Or{}

	for _, field := range fields {
		switch field {
		case "email", "first_name", "last_name":
			conditions = append(conditions, squirrel.ILike{"c." + field: pattern})
		case "location", "industry":
			conditions = append(conditions, squirrel.ILike{"cp." + field: pattern})
		}
	}

	if len(conditions) == 0 {
		return nil, nil
	}

	query, args, err := r.attributesBuilder().
		Where(conditions).
		OrderBy("c.last_activity_at DESC NULLS LAST").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryAttributes(query, args)
}

func (r *customerRepository) RevokeConsent(customerID int64) error {
	query, args, err := squirrel.
		Update("customers").
		Set("marketing_consent", false).
		Where(squirrel.Eq{"customer_id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *customerRepository) TouchActivity(customerID int64) error {
	query, args, err := squirrel.
		Update("customers").
		Set("last_activity_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"customer_id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

// ApplyPurchase acumula o valor no perfil e registra a data da última compra
func (r *customerRepository) ApplyPurchase(customerID int64, amount float64) error {
	query, args, err := squirrel.
		Update("customer_profiles").
		Set("purchase_history_value", squirrel.Expr("purchase_history_value + ?", amount)).
		Set("total_purchases", squirrel.Expr("total_purchases + 1")).
		Set("last_purchase_date", squirrel.Expr("CURRENT_TIMESTAMP")).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"customer_id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

// BoostEngagement incrementa o score de engajamento limitado a 100
func (r *customerRepository) BoostEngagement(customerID int64, delta int) error {
	query, args, err := squirrel.
		Update("customer_profiles").
		Set("engagement_score", squirrel.Expr("LEAST(engagement_score + ?, 100)", delta)).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"customer_id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *customerRepository) attributesBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select(customerAttributeColumns).
		From(customersTable).
		LeftJoin("customer_profiles cp ON c.customer_id = cp.customer_id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *customerRepository) queryAttributes(query string, args []interface{}) ([]*domain.CustomerAttributes, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	customers := make([]*domain.CustomerAttributes, 0)

	for rows.Next() {
		attrs, err := deserializeAttributes(rows)
		if err != nil {
			return nil, err
		}

		customers = append(customers, attrs)
	}

	return customers, rows.Err()
}

// applyCustomerFilters traduz os filtros opcionais em cláusulas WHERE
func applyCustomerFilters(builder squirrel.SelectBuilder, filters domain.CustomerFilters) squirrel.SelectBuilder {
	if filters.Location != nil {
		builder = builder.Where(squirrel.ILike{"cp.location": fmt.Sprintf("%%%s%%", *filters.Location)})
	}

	if filters.Industry != nil {
		builder = builder.Where(squirrel.ILike{"cp.industry": fmt.Sprintf("%%%s%%", *filters.Industry)})
	}

	if filters.CompanySize != nil {
		builder = builder.Where(squirrel.Eq{"cp.company_size": *filters.CompanySize})
	}

	if filters.MinAge != nil {
		builder = builder.Where(squirrel.Expr("EXTRACT(YEAR FROM AGE(CURRENT_DATE, cp.date_of_birth)) >= ?", *filters.MinAge))
	}

	if filters.MaxAge != nil {
		builder = builder.Where(squirrel.Expr("EXTRACT(YEAR FROM AGE(CURRENT_DATE, cp.date_of_birth)) <= ?", *filters.MaxAge))
	}

	if filters.MinPurchaseValue != nil {
		builder = builder.Where(squirrel.GtOrEq{"cp.purchase_history_value": *filters.MinPurchaseValue})
	}

	if filters.MaxPurchaseValue != nil {
		builder = builder.Where(squirrel.LtOrEq{"cp.purchase_history_value": *filters.MaxPurchaseValue})
	}

	if filters.MinEngagementScore != nil {
		builder = builder.Where(squirrel.GtOrEq{"cp.engagement_score": *filters.MinEngagementScore})
	}

	if filters.MaxEngagementScore != nil {
		builder = builder.Where(squirrel.LtOrEq{"cp.engagement_score": *filters.MaxEngagementScore})
	}

	if filters.MarketingConsent != nil {
		builder = builder.Where(squirrel.Eq{"c.marketing_consent": *filters.MarketingConsent})
	}

	return builder
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func deserializeAttributes(row rowScanner) (*domain.CustomerAttributes, error) {
	attrs := &domain.CustomerAttributes{}

	if err := row.Scan(
		&attrs.ID,
		&attrs.Email,
		&attrs.FirstName,
		&attrs.LastName,
		&attrs.Phone,
		&attrs.MarketingConsent,
		&attrs.ConsentDate,
		&attrs.CreatedAt,
		&attrs.LastActivityAt,
		&attrs.PurchaseHistoryValue,
		&attrs.TotalPurchases,
		&attrs.LastPurchaseDate,
		&attrs.AvgOrderValue,
		&attrs.EngagementScore,
		&attrs.DateOfBirth,
		&attrs.Location,
		&attrs.Industry,
		&attrs.CompanySize,
		&attrs.Age,
	); err != nil {
		return nil, err
	}

	return attrs, nil
}
