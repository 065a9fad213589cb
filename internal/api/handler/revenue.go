package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/exploring"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/reporting"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
)

func GetARRTrend(reporter reporting.Reporter, explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, filter, ok := windowAndFilter(w, r, explorer)
		if !ok {
			return
		}

		rows, err := reporter.ARRTrend(r.Context(), window, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar a tendência de ARR")
			return
		}

		writeJSON(w, r, rows)
	})
}

func GetRetentionTrend(reporter reporting.Reporter, explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, filter, ok := windowAndFilter(w, r, explorer)
		if !ok {
			return
		}

		rows, err := reporter.RetentionTrend(r.Context(), window, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar a tendência de retenção")
			return
		}

		writeJSON(w, r, rows)
	})
}

func GetMovementSummary(reporter reporting.Reporter, explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, filter, ok := windowAndFilter(w, r, explorer)
		if !ok {
			return
		}

		rows, err := reporter.MovementSummary(r.Context(), window, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar o resumo de movimentos")
			return
		}

		writeJSON(w, r, rows)
	})
}

// GetTopMovers retorna as maiores expansões e contrações do último mês da janela
func GetTopMovers(cfg *config.Config, reporter reporting.Reporter, explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, filter, ok := windowAndFilter(w, r, explorer)
		if !ok {
			return
		}

		limit, err := parseLimit(r, cfg.Thresholds.TopMoversLimit)
		if err != nil {
			writeParamError(w, r, err)
			return
		}

		movers, err := reporter.TopMovers(r.Context(), window, filter, limit)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar as maiores movimentações")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"window": window.String(),
			"limit":  limit,
		}).Debug("top-movers: consulta concluída")

		writeJSON(w, r, movers)
	})
}
