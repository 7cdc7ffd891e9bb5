package segmenting

import (
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-automation-api/infrastructure/repository"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
	"github.com/vfg2006/marketing-automation-api/pkg/utils"
)

type SegmentService interface {
	GetCustomer(customerID int64) (*domain.CustomerAttributes, error)
	ListSegments() (*domain.SegmentStatistics, error)
	CreateSegment(request *CreateSegmentRequest) (*domain.Segment, error)
	GetSegment(segmentID int64) (*domain.SegmentWithCount, error)
	CustomersBySegment(segmentID int64) ([]*domain.CustomerAttributes, error)
	CategorizeCustomer(customerID int64) ([]*domain.Segment, error)
	CategorizeAndAssign(customerID int64) ([]*domain.Segment, error)
	FilterCustomers(filters domain.CustomerFilters, limit, offset uint64) ([]*domain.CustomerAttributes, int, error)
	SearchCustomers(term string, fields []string, limit uint64) ([]*domain.CustomerAttributes, error)
	AssignCustomer(customerID, segmentID int64) error
	UnassignCustomer(customerID, segmentID int64) error
	AddInterest(customerID int64, category string, level domain.InterestLevel) (*domain.CustomerInterest, error)
	ListInterests(customerID int64) ([]*domain.CustomerInterest, error)
	ProcessTrigger(triggerType domain.TriggerType, customerID int64, payload json.RawMessage) ([]*domain.SegmentTrigger, error)
}

// CreateSegmentRequest é a entrada de criação de segmento
type CreateSegmentRequest struct {
	Name        string               `json:"segment_name"`
	Description string               `json:"description"`
	Criteria    json.RawMessage      `json:"criteria"`
	Triggers    []TriggerRuleRequest `json:"triggers,omitempty"`
}

// TriggerRuleRequest é uma regra de gatilho declarada junto com o segmento
type TriggerRuleRequest struct {
	TriggerType domain.TriggerType   `json:"trigger_type"`
	Condition   json.RawMessage      `json:"condition,omitempty"`
	Action      domain.TriggerAction `json:"action"`
}

// TriggerCondition são as condições opcionais reconhecidas em regras de gatilho
type TriggerCondition struct {
	MinAmount    *float64 `json:"min_amount,omitempty"`
	DaysInactive *int     `json:"days_inactive,omitempty"`
}

// TriggerPayload é o contexto do evento observado
type TriggerPayload struct {
	Amount       *float64 `json:"amount,omitempty"`
	DaysInactive *int     `json:"days_inactive,omitempty"`
}

type Service struct {
	segmentRepository  repository.SegmentRepository
	customerRepository repository.CustomerRepository
	interestRepository repository.InterestRepository
}

func NewService(
	segmentRepository repository.SegmentRepository,
	customerRepository repository.CustomerRepository,
	interestRepository repository.InterestRepository,
) SegmentService {
	return &Service{
		segmentRepository:  segmentRepository,
		customerRepository: customerRepository,
		interestRepository: interestRepository,
	}
}

func (s *Service) GetCustomer(customerID int64) (*domain.CustomerAttributes, error) {
	attrs, err := s.customerRepository.GetAttributes(customerID)
	if err != nil {
		return nil, err
	}

	if attrs == nil {
		return nil, ErrCustomerNotFound
	}

	return attrs, nil
}

// ListSegments retorna os segmentos ativos com contagens dinâmicas de membros;
// as contagens nunca são armazenadas
func (s *Service) ListSegments() (*domain.SegmentStatistics, error) {
	segments, err := s.segmentRepository.ListActive()
	if err != nil {
		return nil, err
	}

	customers, err := s.customerRepository.ListConsentingAttributes()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	withCounts := make([]*domain.SegmentWithCount, 0, len(segments))

	for _, segment := range segments {
		count, err := s.countMembers(segment, customers, now)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"segment_id": segment.ID,
				"error":      err.Error(),
			}).Warn("segments: skipping segment with unparsable criteria")
			continue
		}

		withCounts = append(withCounts, &domain.SegmentWithCount{
			Segment:       *segment,
			CustomerCount: count,
		})
	}

	return &domain.SegmentStatistics{
		TotalSegments: len(withCounts),
		Segments:      withCounts,
	}, nil
}

func (s *Service) CreateSegment(request *CreateSegmentRequest) (*domain.Segment, error) {
	if request.Name == "" {
		return nil, ErrSegmentNameMissing
	}

	criteria, unknown, err := domain.ParseCriteria(request.Criteria)
	if err != nil {
		return nil, ErrInvalidCriteria
	}

	// Chaves desconhecidas são toleradas na avaliação, mas avisadas na escrita
	if len(unknown) > 0 {
		logrus.WithFields(logrus.Fields{
			"segment_name": request.Name,
			"unknown_keys": unknown,
		}).Warn("segments: criteria contains unrecognized keys")
	}

	if criteria.Empty() && len(unknown) == 0 && len(request.Criteria) > 0 {
		logrus.WithField("segment_name", request.Name).
			Debug("segments: segment created with empty criteria")
	}

	for _, rule := range request.Triggers {
		if !rule.TriggerType.Valid() || !rule.Action.Valid() {
			return nil, ErrInvalidTrigger
		}
	}

	segment, err := s.segmentRepository.Create(&domain.Segment{
		Name:        request.Name,
		Description: request.Description,
		Criteria:    request.Criteria,
	})
	if err != nil {
		return nil, err
	}

	for _, rule := range request.Triggers {
		if _, err := s.segmentRepository.CreateTrigger(&domain.SegmentTrigger{
			SegmentID:   segment.ID,
			TriggerType: rule.TriggerType,
			Condition:   rule.Condition,
			Action:      rule.Action,
		}); err != nil {
			logrus.WithFields(logrus.Fields{
				"segment_id":   segment.ID,
				"trigger_type": rule.TriggerType,
				"error":        err.Error(),
			}).Error("segments: failed to create trigger rule")
		}
	}

	return segment, nil
}

func (s *Service) GetSegment(segmentID int64) (*domain.SegmentWithCount, error) {
	segment, err := s.segmentRepository.GetByID(segmentID)
	if err != nil {
		return nil, err
	}

	if segment == nil || !segment.IsActive {
		return nil, ErrSegmentNotFound
	}

	customers, err := s.customerRepository.ListConsentingAttributes()
	if err != nil {
		return nil, err
	}

	count, err := s.countMembers(segment, customers, time.Now())
	if err != nil {
		return nil, ErrInvalidCriteria
	}

	return &domain.SegmentWithCount{
		Segment:       *segment,
		CustomerCount: count,
	}, nil
}

// CustomersBySegment avalia os critérios do segmento sobre os clientes com
// consentimento e junta as atribuições persistidas (manuais e de workflow),
// que valem mesmo quando os critérios não casam mais
func (s *Service) CustomersBySegment(segmentID int64) ([]*domain.CustomerAttributes, error) {
	segment, err := s.segmentRepository.GetByID(segmentID)
	if err != nil {
		return nil, err
	}

	if segment == nil || !segment.IsActive {
		return nil, ErrSegmentNotFound
	}

	criteria, _, err := domain.ParseCriteria(segment.Criteria)
	if err != nil {
		return nil, ErrInvalidCriteria
	}

	customers, err := s.customerRepository.ListConsentingAttributes()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	members := make([]*domain.CustomerAttributes, 0)
	seen := make(map[int64]struct{})

	for _, customer := range customers {
		if Matches(criteria, customer, now) {
			members = append(members, customer)
			seen[customer.ID] = struct{}{}
		}
	}

	assignments, err := s.segmentRepository.ListAssignments(segmentID)
	if err != nil {
		return nil, err
	}

	for _, assignment := range assignments {
		if _, ok := seen[assignment.CustomerID]; ok {
			continue
		}

		attrs, err := s.customerRepository.GetAttributes(assignment.CustomerID)
		if err != nil {
			return nil, err
		}

		if attrs != nil {
			members = append(members, attrs)
			seen[assignment.CustomerID] = struct{}{}
		}
	}

	return members, nil
}

// CategorizeCustomer retorna os segmentos ativos cujos critérios o cliente
// satisfaz no momento da chamada
func (s *Service) CategorizeCustomer(customerID int64) ([]*domain.Segment, error) {
	attrs, err := s.customerRepository.GetAttributes(customerID)
	if err != nil {
		return nil, err
	}

	if attrs == nil {
		return nil, ErrCustomerNotFound
	}

	segments, err := s.segmentRepository.ListActive()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	matched := make([]*domain.Segment, 0)

	for _, segment := range segments {
		criteria, _, err := domain.ParseCriteria(segment.Criteria)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"segment_id": segment.ID,
				"error":      err.Error(),
			}).Warn("segments: skipping segment with unparsable criteria")
			continue
		}

		if Matches(criteria, attrs, now) {
			matched = append(matched, segment)
		}
	}

	return matched, nil
}

// CategorizeAndAssign avalia os critérios como CategorizeCustomer e persiste
// as associações resultantes como atribuições automáticas
func (s *Service) CategorizeAndAssign(customerID int64) ([]*domain.Segment, error) {
	matched, err := s.CategorizeCustomer(customerID)
	if err != nil {
		return nil, err
	}

	for _, segment := range matched {
		if err := s.segmentRepository.AssignCustomer(customerID, segment.ID, true); err != nil {
			logrus.WithFields(logrus.Fields{
				"customer_id": customerID,
				"segment_id":  segment.ID,
				"error":       err.Error(),
			}).Error("segments: failed to persist auto assignment")
		}
	}

	return matched, nil
}

func (s *Service) FilterCustomers(filters domain.CustomerFilters, limit, offset uint64) ([]*domain.CustomerAttributes, int, error) {
	customers, err := s.customerRepository.FilterCustomers(filters, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.customerRepository.CountCustomers(filters)
	if err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

func (s *Service) SearchCustomers(term string, fields []string, limit uint64) ([]*domain.CustomerAttributes, error) {
	return s.customerRepository.SearchCustomers(term, fields, limit)
}

func (s *Service) AssignCustomer(customerID, segmentID int64) error {
	if err := s.ensureCustomerAndSegment(customerID, segmentID); err != nil {
		return err
	}

	return s.segmentRepository.AssignCustomer(customerID, segmentID, false)
}

func (s *Service) UnassignCustomer(customerID, segmentID int64) error {
	if err := s.ensureCustomerAndSegment(customerID, segmentID); err != nil {
		return err
	}

	return s.segmentRepository.UnassignCustomer(customerID, segmentID)
}

func (s *Service) AddInterest(customerID int64, category string, level domain.InterestLevel) (*domain.CustomerInterest, error) {
	if category == "" {
		return nil, ErrCategoryMissing
	}

	if !level.Valid() {
		return nil, ErrInvalidInterest
	}

	attrs, err := s.customerRepository.GetAttributes(customerID)
	if err != nil {
		return nil, err
	}

	if attrs == nil {
		return nil, ErrCustomerNotFound
	}

	return s.interestRepository.Upsert(customerID, category, level)
}

func (s *Service) ListInterests(customerID int64) ([]*domain.CustomerInterest, error) {
	return s.interestRepository.ListByCustomer(customerID)
}

// ProcessTrigger aplica as regras ativas do tipo de evento observado ao
// cliente, respeitando as condições de cada regra. Retorna as regras que
// dispararam.
func (s *Service) ProcessTrigger(triggerType domain.TriggerType, customerID int64, payload json.RawMessage) ([]*domain.SegmentTrigger, error) {
	attrs, err := s.customerRepository.GetAttributes(customerID)
	if err != nil {
		return nil, err
	}

	if attrs == nil {
		return nil, ErrCustomerNotFound
	}

	triggers, err := s.segmentRepository.ListActiveTriggers(triggerType)
	if err != nil {
		return nil, err
	}

	context := &TriggerPayload{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, context); err != nil {
			logrus.WithFields(logrus.Fields{
				"trigger_type": triggerType,
				"customer_id":  customerID,
				"error":        err.Error(),
			}).Warn("segments: ignoring unparsable trigger payload")
		}
	}

	fired := make([]*domain.SegmentTrigger, 0)

	for _, trigger := range triggers {
		if !s.conditionHolds(trigger, attrs, context) {
			continue
		}

		switch trigger.Action {
		case domain.TriggerActionAdd:
			err = s.segmentRepository.AssignCustomer(customerID, trigger.SegmentID, true)
		case domain.TriggerActionRemove:
			err = s.segmentRepository.UnassignCustomer(customerID, trigger.SegmentID)
		default:
			logrus.WithFields(logrus.Fields{
				"trigger_id": trigger.ID,
				"action":     trigger.Action,
			}).Warn("segments: skipping trigger with unknown action")
			continue
		}

		if err != nil {
			logrus.WithFields(logrus.Fields{
				"trigger_id":  trigger.ID,
				"customer_id": customerID,
				"error":       err.Error(),
			}).Error("segments: failed to apply trigger action")
			continue
		}

		fired = append(fired, trigger)
	}

	return fired, nil
}

func (s *Service) conditionHolds(trigger *domain.SegmentTrigger, attrs *domain.CustomerAttributes, payload *TriggerPayload) bool {
	condition := &TriggerCondition{}

	if len(trigger.Condition) > 0 {
		if err := json.Unmarshal(trigger.Condition, condition); err != nil {
			logrus.WithFields(logrus.Fields{
				"trigger_id": trigger.ID,
				"error":      err.Error(),
			}).Warn("segments: skipping trigger with unparsable condition")
			return false
		}
	}

	if condition.MinAmount != nil {
		if payload.Amount == nil || *payload.Amount < *condition.MinAmount {
			return false
		}
	}

	if condition.DaysInactive != nil {
		observed := payload.DaysInactive
		if observed == nil {
			days := daysSinceActivity(attrs)
			observed = &days
		}

		if *observed < *condition.DaysInactive {
			return false
		}
	}

	return true
}

func daysSinceActivity(attrs *domain.CustomerAttributes) int {
	reference := attrs.CreatedAt
	if attrs.LastActivityAt != nil {
		reference = *attrs.LastActivityAt
	}
	return utils.DaysSince(reference, time.Now())
}

func (s *Service) ensureCustomerAndSegment(customerID, segmentID int64) error {
	attrs, err := s.customerRepository.GetAttributes(customerID)
	if err != nil {
		return err
	}

	if attrs == nil {
		return ErrCustomerNotFound
	}

	segment, err := s.segmentRepository.GetByID(segmentID)
	if err != nil {
		return err
	}

	if segment == nil || !segment.IsActive {
		return ErrSegmentNotFound
	}

	return nil
}

func (s *Service) countMembers(segment *domain.Segment, customers []*domain.CustomerAttributes, now time.Time) (int, error) {
	criteria, _, err := domain.ParseCriteria(segment.Criteria)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, customer := range customers {
		if Matches(criteria, customer, now) {
			count++
		}
	}

	return count, nil
}
