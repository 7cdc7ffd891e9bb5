package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-automation-api/internal/scheduler"
	"github.com/vfg2006/marketing-automation-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeWorkflow = "workflow"
	CronJobTypeEvents   = "events"
	CronJobTypeAll      = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	WorkflowRunner *scheduler.WorkflowRunner
	EventSweeper   *scheduler.EventSweeper
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeWorkflow:
			if services.WorkflowRunner == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Processador de workflows não disponível", nil)
				return
			}
			services.WorkflowRunner.TriggerManualSync()

		case CronJobTypeEvents:
			if services.EventSweeper == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Processador de eventos não disponível", nil)
				return
			}
			services.EventSweeper.TriggerManualSync()

		case CronJobTypeAll:
			if services.WorkflowRunner != nil {
				services.WorkflowRunner.TriggerManualSync()
			}
			if services.EventSweeper != nil {
				services.EventSweeper.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: workflow, events, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"workflow": services.WorkflowRunner.GetStatus(),
			"events":   services.EventSweeper.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
