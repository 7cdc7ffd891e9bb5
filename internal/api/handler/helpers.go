package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

// writeJSON serializa a resposta com o status informado
func writeJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

// pathID extrai um parâmetro numérico da rota
func pathID(r *http.Request, name string) (int64, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName(name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Errorf("parâmetro %s inválido: %q", name, raw)
	}

	return id, nil
}

func queryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.Errorf("parâmetro %s inválido: %q", name, raw)
	}

	return &value, nil
}

func queryFloat(r *http.Request, name string) (*float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.Errorf("parâmetro %s inválido: %q", name, raw)
	}

	return &value, nil
}

func queryBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.Errorf("parâmetro %s inválido: %q", name, raw)
	}

	return &value, nil
}

func queryString(r *http.Request, name string) *string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	return &raw
}

// queryUint lê um parâmetro de paginação com valor padrão
func queryUint(r *http.Request, name string, fallback uint64) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.Errorf("parâmetro %s inválido: %q", name, raw)
	}

	return value, nil
}
