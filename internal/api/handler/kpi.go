package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/exploring"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/kpi"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
)

// GetKPIs retorna o resumo dos cards com alertas e valores de retenção para exibição
func GetKPIs(summarizer kpi.Summarizer, explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, filter, ok := windowAndFilter(w, r, explorer)
		if !ok {
			return
		}

		snapshot, err := summarizer.Summarize(r.Context(), window, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular os KPIs")
			return
		}

		if len(snapshot.SectionErrors) > 0 {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"window":   window.String(),
				"sections": snapshot.SectionErrors,
			}).Warn("kpis: resumo parcial")
		}

		writeJSON(w, r, snapshot)
	})
}

func GetRetentionQuality(summarizer kpi.Summarizer, explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, filter, ok := windowAndFilter(w, r, explorer)
		if !ok {
			return
		}

		report, err := summarizer.RetentionQuality(r.Context(), window, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao avaliar a qualidade da retenção")
			return
		}

		writeJSON(w, r, report)
	})
}
