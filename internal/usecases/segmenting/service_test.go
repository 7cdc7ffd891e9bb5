package segmenting

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketing-automation-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newServiceWithMocks(t *testing.T) (*Service, *mocks.MockSegmentRepository, *mocks.MockCustomerRepository, *mocks.MockInterestRepository) {
	ctrl := gomock.NewController(t)

	segmentRepo := mocks.NewMockSegmentRepository(ctrl)
	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	interestRepo := mocks.NewMockInterestRepository(ctrl)

	service := &Service{
		segmentRepository:  segmentRepo,
		customerRepository: customerRepo,
		interestRepository: interestRepo,
	}

	return service, segmentRepo, customerRepo, interestRepo
}

func TestCategorizeCustomer(t *testing.T) {
	service, segmentRepo, customerRepo, _ := newServiceWithMocks(t)

	attrs := &domain.CustomerAttributes{
		Customer:             domain.Customer{ID: 7, CreatedAt: time.Now().AddDate(-1, 0, 0)},
		PurchaseHistoryValue: 22000,
		EngagementScore:      95,
	}

	segments := []*domain.Segment{
		{
			ID:       1,
			Name:     "High Value Customers",
			Criteria: json.RawMessage(`{"min_purchase_value": 20000, "min_engagement_score": 90}`),
			IsActive: true,
		},
		{
			ID:       2,
			Name:     "New Leads",
			Criteria: json.RawMessage(`{"created_within_days": 30}`),
			IsActive: true,
		},
		{
			ID:       3,
			Name:     "Critérios quebrados",
			Criteria: json.RawMessage(`{"min_purchase_value":`),
			IsActive: true,
		},
	}

	customerRepo.EXPECT().GetAttributes(int64(7)).Return(attrs, nil)
	segmentRepo.EXPECT().ListActive().Return(segments, nil)

	matched, err := service.CategorizeCustomer(7)

	assert.NoError(t, err)
	assert.Len(t, matched, 1)
	assert.Equal(t, int64(1), matched[0].ID)
}

func TestCategorizeCustomerNotFound(t *testing.T) {
	service, _, customerRepo, _ := newServiceWithMocks(t)

	customerRepo.EXPECT().GetAttributes(int64(99)).Return(nil, nil)

	_, err := service.CategorizeCustomer(99)

	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCategorizeAndAssignPersistsMatches(t *testing.T) {
	service, segmentRepo, customerRepo, _ := newServiceWithMocks(t)

	attrs := &domain.CustomerAttributes{
		Customer:             domain.Customer{ID: 7, CreatedAt: time.Now().AddDate(-1, 0, 0)},
		PurchaseHistoryValue: 25000,
		EngagementScore:      92,
	}

	segments := []*domain.Segment{
		{
			ID:       1,
			Name:     "High Value Customers",
			Criteria: json.RawMessage(`{"min_purchase_value": 20000, "min_engagement_score": 90}`),
			IsActive: true,
		},
	}

	customerRepo.EXPECT().GetAttributes(int64(7)).Return(attrs, nil)
	segmentRepo.EXPECT().ListActive().Return(segments, nil)
	segmentRepo.EXPECT().AssignCustomer(int64(7), int64(1), true).Return(nil)

	matched, err := service.CategorizeAndAssign(7)

	assert.NoError(t, err)
	assert.Len(t, matched, 1)
}

func TestAddInterestValidation(t *testing.T) {
	tests := []struct {
		name     string
		category string
		level    domain.InterestLevel
		expected error
	}{
		{
			name:     "Categoria vazia deve ser rejeitada",
			category: "",
			level:    domain.InterestHigh,
			expected: ErrCategoryMissing,
		},
		{
			name:     "Nível desconhecido deve ser rejeitado",
			category: "analytics",
			level:    domain.InterestLevel("urgente"),
			expected: ErrInvalidInterest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _, _ := newServiceWithMocks(t)

			_, err := service.AddInterest(7, tt.category, tt.level)

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestAddInterestUpserts(t *testing.T) {
	service, _, customerRepo, interestRepo := newServiceWithMocks(t)

	attrs := &domain.CustomerAttributes{Customer: domain.Customer{ID: 7}}
	interest := &domain.CustomerInterest{
		CustomerID:      7,
		ProductCategory: "analytics",
		InterestLevel:   domain.InterestHigh,
	}

	customerRepo.EXPECT().GetAttributes(int64(7)).Return(attrs, nil)
	interestRepo.EXPECT().Upsert(int64(7), "analytics", domain.InterestHigh).Return(interest, nil)

	result, err := service.AddInterest(7, "analytics", domain.InterestHigh)

	assert.NoError(t, err)
	assert.Equal(t, interest, result)
}

func TestProcessTrigger(t *testing.T) {
	attrs := &domain.CustomerAttributes{
		Customer: domain.Customer{ID: 7, CreatedAt: time.Now().AddDate(0, -6, 0)},
	}

	purchaseTrigger := &domain.SegmentTrigger{
		ID:          1,
		SegmentID:   10,
		TriggerType: domain.TriggerPurchase,
		Condition:   json.RawMessage(`{"min_amount": 5000}`),
		Action:      domain.TriggerActionAdd,
		IsActive:    true,
	}

	tests := []struct {
		name    string
		payload string
		setup   func(segmentRepo *mocks.MockSegmentRepository)
		fired   int
	}{
		{
			name:    "Compra acima do mínimo dispara a regra de inclusão",
			payload: `{"amount": 6000}`,
			setup: func(segmentRepo *mocks.MockSegmentRepository) {
				segmentRepo.EXPECT().AssignCustomer(int64(7), int64(10), true).Return(nil)
			},
			fired: 1,
		},
		{
			name:    "Compra abaixo do mínimo não dispara",
			payload: `{"amount": 1200}`,
			setup:   func(segmentRepo *mocks.MockSegmentRepository) {},
			fired:   0,
		},
		{
			name:    "Sem valor observado a condição de mínimo não é satisfeita",
			payload: `{}`,
			setup:   func(segmentRepo *mocks.MockSegmentRepository) {},
			fired:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, segmentRepo, customerRepo, _ := newServiceWithMocks(t)

			customerRepo.EXPECT().GetAttributes(int64(7)).Return(attrs, nil)
			segmentRepo.EXPECT().
				ListActiveTriggers(domain.TriggerPurchase).
				Return([]*domain.SegmentTrigger{purchaseTrigger}, nil)
			tt.setup(segmentRepo)

			fired, err := service.ProcessTrigger(domain.TriggerPurchase, 7, json.RawMessage(tt.payload))

			assert.NoError(t, err)
			assert.Len(t, fired, tt.fired)
		})
	}
}

func TestCustomersBySegmentIncludesAssignments(t *testing.T) {
	service, segmentRepo, customerRepo, _ := newServiceWithMocks(t)

	segment := &domain.Segment{
		ID:       10,
		Name:     "High Value Customers",
		Criteria: json.RawMessage(`{"min_purchase_value": 20000}`),
		IsActive: true,
	}

	matching := &domain.CustomerAttributes{
		Customer:             domain.Customer{ID: 1},
		PurchaseHistoryValue: 25000,
	}
	nonMatching := &domain.CustomerAttributes{
		Customer:             domain.Customer{ID: 2},
		PurchaseHistoryValue: 500,
	}
	assigned := &domain.CustomerAttributes{
		Customer:             domain.Customer{ID: 3},
		PurchaseHistoryValue: 100,
	}

	segmentRepo.EXPECT().GetByID(int64(10)).Return(segment, nil)
	customerRepo.EXPECT().
		ListConsentingAttributes().
		Return([]*domain.CustomerAttributes{matching, nonMatching}, nil)

	// O cliente 1 já entrou pelos critérios; só o 3 vem da atribuição
	segmentRepo.EXPECT().ListAssignments(int64(10)).Return([]*domain.CustomerSegment{
		{CustomerID: 1, SegmentID: 10},
		{CustomerID: 3, SegmentID: 10, AutoAssigned: true},
	}, nil)
	customerRepo.EXPECT().GetAttributes(int64(3)).Return(assigned, nil)

	members, err := service.CustomersBySegment(10)

	assert.NoError(t, err)
	assert.Len(t, members, 2)
	assert.Equal(t, int64(1), members[0].ID)
	assert.Equal(t, int64(3), members[1].ID)
}

func TestCreateSegmentWithTriggers(t *testing.T) {
	service, segmentRepo, _, _ := newServiceWithMocks(t)

	request := &CreateSegmentRequest{
		Name:     "At Risk",
		Criteria: json.RawMessage(`{"days_since_last_activity": 60}`),
		Triggers: []TriggerRuleRequest{
			{TriggerType: domain.TriggerInactivity, Action: domain.TriggerActionAdd},
			{TriggerType: domain.TriggerPurchase, Action: domain.TriggerActionRemove},
		},
	}

	segmentRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(segment *domain.Segment) (*domain.Segment, error) {
			segment.ID = 5
			return segment, nil
		})
	segmentRepo.EXPECT().
		CreateTrigger(gomock.Any()).
		DoAndReturn(func(trigger *domain.SegmentTrigger) (*domain.SegmentTrigger, error) {
			assert.Equal(t, int64(5), trigger.SegmentID)
			return trigger, nil
		}).
		Times(2)

	segment, err := service.CreateSegment(request)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), segment.ID)
}

func TestCreateSegmentRejectsInvalidTrigger(t *testing.T) {
	service, _, _, _ := newServiceWithMocks(t)

	_, err := service.CreateSegment(&CreateSegmentRequest{
		Name: "At Risk",
		Triggers: []TriggerRuleRequest{
			{TriggerType: domain.TriggerType("BIRTHDAY"), Action: domain.TriggerActionAdd},
		},
	})

	assert.ErrorIs(t, err, ErrInvalidTrigger)
}
