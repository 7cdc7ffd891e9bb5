package segmenting

import (
	"strings"
	"time"

	"github.com/vfg2006/marketing-automation-api/internal/domain"
	"github.com/vfg2006/marketing-automation-api/pkg/utils"
)

// Matches avalia os predicados presentes nos critérios contra os atributos do
// cliente. Predicados ausentes não restringem; todos os presentes precisam
// passar.
func Matches(criteria *domain.SegmentCriteria, attrs *domain.CustomerAttributes, now time.Time) bool {
	if criteria == nil || attrs == nil {
		return false
	}

	if criteria.MinPurchaseValue != nil && attrs.PurchaseHistoryValue < *criteria.MinPurchaseValue {
		return false
	}

	if criteria.MaxPurchaseValue != nil && attrs.PurchaseHistoryValue > *criteria.MaxPurchaseValue {
		return false
	}

	if criteria.MinEngagementScore != nil && attrs.EngagementScore < *criteria.MinEngagementScore {
		return false
	}

	if criteria.MaxEngagementScore != nil && attrs.EngagementScore > *criteria.MaxEngagementScore {
		return false
	}

	if criteria.MinAge != nil || criteria.MaxAge != nil {
		age := customerAge(attrs, now)
		if age == nil {
			return false
		}

		if criteria.MinAge != nil && *age < *criteria.MinAge {
			return false
		}

		if criteria.MaxAge != nil && *age > *criteria.MaxAge {
			return false
		}
	}

	if criteria.Location != nil && !containsFold(attrs.Location, *criteria.Location) {
		return false
	}

	if criteria.Industry != nil && !containsFold(attrs.Industry, *criteria.Industry) {
		return false
	}

	if criteria.CompanySize != nil {
		if attrs.CompanySize == nil || !strings.EqualFold(*attrs.CompanySize, *criteria.CompanySize) {
			return false
		}
	}

	if criteria.MarketingConsent != nil && attrs.MarketingConsent != *criteria.MarketingConsent {
		return false
	}

	if criteria.TotalPurchases != nil && attrs.TotalPurchases != *criteria.TotalPurchases {
		return false
	}

	if criteria.MinTotalPurchases != nil && attrs.TotalPurchases < *criteria.MinTotalPurchases {
		return false
	}

	if criteria.MaxTotalPurchases != nil && attrs.TotalPurchases > *criteria.MaxTotalPurchases {
		return false
	}

	if criteria.DaysSinceLastActivity != nil {
		if utils.DaysSince(lastActivity(attrs), now) < *criteria.DaysSinceLastActivity {
			return false
		}
	}

	if criteria.DaysSinceRegistration != nil {
		if utils.DaysSince(attrs.CreatedAt, now) < *criteria.DaysSinceRegistration {
			return false
		}
	}

	if criteria.CreatedWithinDays != nil {
		if utils.DaysSince(attrs.CreatedAt, now) > *criteria.CreatedWithinDays {
			return false
		}
	}

	return true
}

// customerAge usa a idade derivada na consulta quando presente, senão deriva
// da data de nascimento
func customerAge(attrs *domain.CustomerAttributes, now time.Time) *int {
	if attrs.Age != nil {
		return attrs.Age
	}

	if attrs.DateOfBirth == nil {
		return nil
	}

	age := utils.AgeAt(*attrs.DateOfBirth, now)
	return &age
}

// lastActivity cai para a data de cadastro quando o cliente nunca interagiu
func lastActivity(attrs *domain.CustomerAttributes) time.Time {
	if attrs.LastActivityAt != nil {
		return *attrs.LastActivityAt
	}
	return attrs.CreatedAt
}

func containsFold(value *string, term string) bool {
	if value == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*value), strings.ToLower(term))
}
