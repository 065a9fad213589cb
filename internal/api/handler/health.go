package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/exploring"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/reporting"
)

// GetHealthSnapshot retorna as contas ordenadas da menor para a maior nota, com a distribuição por status
func GetHealthSnapshot(reporter reporting.Reporter, explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, filter, ok := windowAndFilter(w, r, explorer)
		if !ok {
			return
		}

		snapshot, err := reporter.HealthSnapshot(r.Context(), window, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar a saúde das contas")
			return
		}

		writeJSON(w, r, snapshot)
	})
}
