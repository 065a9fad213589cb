package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/revenue-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
)

// Tipos aceitos em /v1/cron/:type/run
const (
	CronJobTypeWarmup = "warmup"
	CronJobTypeCache  = "cache"
	CronJobTypeAll    = "all"
)

// WarmupRunner é o subconjunto do serviço de aquecimento usado pelos handlers
type WarmupRunner interface {
	TriggerManualSync()
	ClearCache()
	GetStatus() map[string]any
}

func RunCronJob(warmup WarmupRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}
		if warmup == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de aquecimento não disponível", nil)
			return
		}

		switch cronType {
		case CronJobTypeWarmup:
			warmup.TriggerManualSync()
		case CronJobTypeCache:
			warmup.ClearCache()
		case CronJobTypeAll:
			// Limpa antes para que o aquecimento recarregue tudo do warehouse
			warmup.ClearCache()
			warmup.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", map[string]any{
				"valid_types": []string{CronJobTypeWarmup, CronJobTypeCache, CronJobTypeAll},
			})
			return
		}

		logger.WithField("type", cronType).Info("cron: execução manual solicitada")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		writeJSON(w, r, map[string]string{
			"message": "Execução iniciada",
			"type":    cronType,
		})
	}
}

const cronStatusPath = "status"

func GetCronStatus(warmup WarmupRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if httprouter.ParamsFromContext(r.Context()).ByName("type") != cronStatusPath {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", nil)
			return
		}
		if warmup == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de aquecimento não disponível", nil)
			return
		}

		writeJSON(w, r, map[string]any{
			CronJobTypeWarmup: warmup.GetStatus(),
		})
	}
}
