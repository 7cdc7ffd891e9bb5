package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		err := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w).Encode(map[string]string{
			"service":   "marketing-automation-api",
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
		if err != nil {
			logrus.WithError(err).Warn("healthcheck: error writing response")
		}
	})
}
