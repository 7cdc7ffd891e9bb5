package repository

import (
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
)

type ServiceLogRepository interface {
	Insert(log *domain.ExternalServiceLog) error
}

type serviceLogRepository struct {
	conn *postgres.Connection
}

func NewServiceLogRepository(conn *postgres.Connection) ServiceLogRepository {
	return &serviceLogRepository{
		conn: conn,
	}
}

func (r *serviceLogRepository) Insert(log *domain.ExternalServiceLog) error {
	request := log.RequestPayload
	if len(request) == 0 {
		request = json.RawMessage("{}")
	}

	response := log.ResponsePayload
	if len(response) == 0 {
		response = json.RawMessage("{}")
	}

	query, args, err := squirrel.
		Insert("external_service_logs").
		Columns("service_type", "campaign_id", "request_payload", "response_payload",
			"status_code", "success").
		Values(log.ServiceType, log.CampaignID, []byte(request), []byte(response),
			log.StatusCode, log.Success).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}
