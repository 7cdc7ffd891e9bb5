package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
)

var campaignTestColumns = []string{
	"campaign_id", "campaign_name", "description", "campaign_type", "status",
	"target_segment_id", "start_date", "end_date", "budget", "message_content",
	"created_by", "created_at", "updated_at",
}

func newCampaignRepository(t *testing.T) (CampaignRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return NewCampaignRepository(&postgres.Connection{DB: db}), mock
}

func campaignRow(id int64, name string, status domain.CampaignStatus) *sqlmock.Rows {
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	return sqlmock.NewRows(campaignTestColumns).
		AddRow(id, name, "", string(domain.CampaignTypeEmail), string(status),
			nil, nil, nil, 0.0, "Olá {{first_name}}", "marketing", now, now)
}

func TestCampaignGetByID(t *testing.T) {
	repo, mock := newCampaignRepository(t)

	mock.ExpectQuery(`SELECT (.+) FROM campaigns WHERE campaign_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(campaignRow(1, "Programa VIP", domain.CampaignStatusActive))

	campaign, err := repo.GetByID(1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), campaign.ID)
	assert.Equal(t, "Programa VIP", campaign.Name)
	assert.Equal(t, domain.CampaignStatusActive, campaign.Status)
	assert.Nil(t, campaign.TargetSegmentID)
}

func TestCampaignGetByIDNotFound(t *testing.T) {
	repo, mock := newCampaignRepository(t)

	mock.ExpectQuery(`SELECT (.+) FROM campaigns WHERE campaign_id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(campaignTestColumns))

	campaign, err := repo.GetByID(42)

	require.NoError(t, err)
	assert.Nil(t, campaign)
}

func TestCampaignList(t *testing.T) {
	repo, mock := newCampaignRepository(t)

	status := domain.CampaignStatusActive

	rows := campaignRow(1, "Programa VIP", status)
	now := time.Date(2026, 6, 2, 10, 0, 0, 0, time.UTC)
	rows.AddRow(int64(2), "Reengajamento", "", string(domain.CampaignTypeEmail),
		string(status), nil, nil, nil, 0.0, "", "marketing", now, now)

	mock.ExpectQuery(`SELECT (.+) FROM campaigns WHERE status = \$1 ORDER BY created_at DESC`).
		WithArgs(string(status)).
		WillReturnRows(rows)

	campaigns, err := repo.List(&status, nil)

	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, "Reengajamento", campaigns[1].Name)
}

func TestCampaignCreate(t *testing.T) {
	repo, mock := newCampaignRepository(t)

	segmentID := int64(10)

	mock.ExpectQuery(`INSERT INTO campaigns (.+) RETURNING`).
		WithArgs("Programa VIP", "Campanha de fidelidade", string(domain.CampaignTypeEmail),
			string(domain.CampaignStatusDraft), segmentID, nil, nil, 1500.0,
			"Olá {{first_name}}", "marketing").
		WillReturnRows(campaignRow(7, "Programa VIP", domain.CampaignStatusDraft))

	campaign, err := repo.Create(&domain.Campaign{
		Name:            "Programa VIP",
		Description:     "Campanha de fidelidade",
		Type:            domain.CampaignTypeEmail,
		TargetSegmentID: &segmentID,
		Budget:          1500.0,
		MessageContent:  "Olá {{first_name}}",
		CreatedBy:       "marketing",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), campaign.ID)
	assert.Equal(t, domain.CampaignStatusDraft, campaign.Status)
}

func TestCampaignUpdateStatus(t *testing.T) {
	repo, mock := newCampaignRepository(t)

	mock.ExpectExec(`UPDATE campaigns SET status = \$1, updated_at = CURRENT_TIMESTAMP WHERE campaign_id = \$2`).
		WithArgs(string(domain.CampaignStatusPaused), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(1, domain.CampaignStatusPaused)

	assert.NoError(t, err)
}

func TestCampaignUpdateMessage(t *testing.T) {
	repo, mock := newCampaignRepository(t)

	mock.ExpectExec(`UPDATE campaigns SET message_content = \$1, updated_at = CURRENT_TIMESTAMP WHERE campaign_id = \$2`).
		WithArgs("Novo conteúdo", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateMessage(1, "Novo conteúdo")

	assert.NoError(t, err)
}

func TestCampaignUpdateStatusError(t *testing.T) {
	repo, mock := newCampaignRepository(t)

	mock.ExpectExec(`UPDATE campaigns SET status = \$1`).
		WithArgs(string(domain.CampaignStatusActive), int64(1)).
		WillReturnError(assert.AnError)

	err := repo.UpdateStatus(1, domain.CampaignStatusActive)

	assert.Error(t, err)
}
