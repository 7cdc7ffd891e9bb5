package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
	"github.com/vfg2006/marketing-automation-api/internal/usecases/segmenting"
	"github.com/vfg2006/marketing-automation-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-automation-api/pkg/log"
)

const (
	defaultCustomerPageSize = 50
	defaultSearchLimit      = 20
)

// ListCustomers lista clientes com filtros demográficos e de comportamento
func ListCustomers(service segmenting.SegmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := customerFiltersFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		limit, err := queryUint(r, "limit", defaultCustomerPageSize)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		offset, err := queryUint(r, "offset", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		customers, total, err := service.FilterCustomers(filters, limit, offset)
		if err != nil {
			logger.WithField("error", err.Error()).Error("customers: failed to filter customers")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"total_count": total,
			"count":       len(customers),
			"customers":   customers,
		})
	})
}

// GetCustomer resolve a rota coringa de clientes. O httprouter não aceita um
// segmento estático ao lado de :id na mesma árvore, então /search também chega
// por aqui.
func GetCustomer(service segmenting.SegmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if httprouter.ParamsFromContext(r.Context()).ByName("id") == "search" {
			searchCustomers(service, w, r)
			return
		}

		customerID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		customer, err := service.GetCustomer(customerID)
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id": customerID,
				"error":       err.Error(),
			}).Warn("customers: failed to get customer")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, customer)
	})
}

func searchCustomers(service segmenting.SegmentService, w http.ResponseWriter, r *http.Request) {
	logger := log.ForContext(r.Context())

	term := r.URL.Query().Get("q")
	if term == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro q é obrigatório", nil)
		return
	}

	fields := domain.SearchableCustomerFields
	if raw := r.URL.Query().Get("fields"); raw != "" {
		fields = strings.Split(raw, ",")
	}

	limit, err := queryUint(r, "limit", defaultSearchLimit)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return
	}

	customers, err := service.SearchCustomers(term, fields, limit)
	if err != nil {
		logger.WithFields(log.Fields{
			"term":  term,
			"error": err.Error(),
		}).Error("customers: failed to search customers")
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"query":     term,
		"count":     len(customers),
		"customers": customers,
	})
}

// GetCustomerSegments retorna os segmentos cujos critérios o cliente satisfaz
// no momento da consulta
func GetCustomerSegments(service segmenting.SegmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		customerID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		segments, err := service.CategorizeCustomer(customerID)
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id": customerID,
				"error":       err.Error(),
			}).Warn("customers: failed to categorize customer")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"customer_id":      customerID,
			"matched_segments": segments,
			"total_matched":    len(segments),
		})
	})
}

// CategorizeCustomer reavalia os segmentos do cliente e persiste as
// associações como atribuições automáticas
func CategorizeCustomer(service segmenting.SegmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		customerID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		segments, err := service.CategorizeAndAssign(customerID)
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id": customerID,
				"error":       err.Error(),
			}).Warn("customers: failed to categorize customer")
			writeServiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"customer_id":   customerID,
			"total_matched": len(segments),
		}).Info("customers: customer categorized")

		writeJSON(w, http.StatusOK, map[string]any{
			"customer_id":      customerID,
			"matched_segments": segments,
			"total_matched":    len(segments),
		})
	})
}

// AddCustomerInterest registra ou reforça o interesse do cliente em uma
// categoria de produto
func AddCustomerInterest(service segmenting.SegmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		customerID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var request struct {
			ProductCategory string               `json:"product_category"`
			InterestLevel   domain.InterestLevel `json:"interest_level"`
		}

		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		interest, err := service.AddInterest(customerID, request.ProductCategory, request.InterestLevel)
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id": customerID,
				"category":    request.ProductCategory,
				"error":       err.Error(),
			}).Warn("customers: failed to add interest")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, interest)
	})
}

// ListCustomerInterests lista os interesses declarados do cliente
func ListCustomerInterests(service segmenting.SegmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		customerID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		interests, err := service.ListInterests(customerID)
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id": customerID,
				"error":       err.Error(),
			}).Error("customers: failed to list interests")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"customer_id": customerID,
			"interests":   interests,
		})
	})
}

func customerFiltersFromQuery(r *http.Request) (domain.CustomerFilters, error) {
	filters := domain.CustomerFilters{
		Location:    queryString(r, "location"),
		Industry:    queryString(r, "industry"),
		CompanySize: queryString(r, "company_size"),
	}

	var err error

	if filters.MinAge, err = queryInt(r, "min_age"); err != nil {
		return filters, err
	}
	if filters.MaxAge, err = queryInt(r, "max_age"); err != nil {
		return filters, err
	}
	if filters.MinPurchaseValue, err = queryFloat(r, "min_purchase_value"); err != nil {
		return filters, err
	}
	if filters.MaxPurchaseValue, err = queryFloat(r, "max_purchase_value"); err != nil {
		return filters, err
	}
	if filters.MinEngagementScore, err = queryInt(r, "min_engagement_score"); err != nil {
		return filters, err
	}
	if filters.MaxEngagementScore, err = queryInt(r, "max_engagement_score"); err != nil {
		return filters, err
	}
	if filters.MarketingConsent, err = queryBool(r, "marketing_consent"); err != nil {
		return filters, err
	}

	return filters, nil
}
