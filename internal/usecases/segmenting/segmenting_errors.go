package segmenting

import (
	"errors"
)

// Erros específicos para o contexto de segmentação
var (
	ErrSegmentNotFound    = errors.New("segment not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrSegmentNameMissing = errors.New("segment name is required")
	ErrInvalidCriteria    = errors.New("invalid segment criteria")
	ErrInvalidInterest    = errors.New("invalid interest level")
	ErrCategoryMissing    = errors.New("product category is required")
	ErrInvalidTrigger     = errors.New("invalid trigger rule")
)
