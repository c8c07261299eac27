package handler

import (
	"context"
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/returns-insights-api/pkg/apiErrors"
	"github.com/vfg2006/returns-insights-api/pkg/log"
)

const CronJobTypeSessionReaper = "session-reaper"

// CronJob é um job agendado que também pode ser disparado pela API
type CronJob interface {
	TriggerManualSync(ctx context.Context) error
	GetStatus() map[string]any
}

// CronJobServices indexa os jobs pelo tipo usado na URL
type CronJobServices map[string]CronJob

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		job, ok := services[cronType]
		if !ok || job == nil {
			apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Tipo de cron job inválido", map[string][]string{"accepted": services.types()})
			return
		}

		if err := job.TriggerManualSync(r.Context()); err != nil {
			logger.WithError(err).Warn("cron: execução manual recusada")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logger.WithField("cron_type", cronType).Info("cron: execução manual iniciada")
		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, job := range services {
			if job != nil {
				status[name] = job.GetStatus()
			}
		}
		writeJSON(w, r, http.StatusOK, status)
	}
}

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s))
	for name := range s {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}
