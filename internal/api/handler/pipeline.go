package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/exploring"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/kpi"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/reporting"
)

type CoverageResponse struct {
	Coverage   *domain.PipelineCoverage `json:"coverage"`
	Assessment string                   `json:"assessment"`
	TargetX    float64                  `json:"target_x"`
}

func GetClosedRevenue(reporter reporting.Reporter, explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, filter, ok := windowAndFilter(w, r, explorer)
		if !ok {
			return
		}

		rows, err := reporter.ClosedRevenueMonthly(r.Context(), window, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar a receita fechada")
			return
		}

		writeJSON(w, r, rows)
	})
}

func GetPipelineCoverage(cfg *config.Config, reporter reporting.Reporter, explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, filter, ok := windowAndFilter(w, r, explorer)
		if !ok {
			return
		}

		coverage, err := reporter.PipelineCoverage(r.Context(), window, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar a cobertura de pipeline")
			return
		}

		if coverage == nil {
			coverage = &domain.PipelineCoverage{}
		}

		target := cfg.Thresholds.PipelineCoverageTargetX
		writeJSON(w, r, CoverageResponse{
			Coverage:   coverage,
			Assessment: kpi.AssessPipelineCoverage(coverage.CoverageRatio, target),
			TargetX:    target,
		})
	})
}

// GetOpenPipelineByStage não depende da janela: o pipeline aberto é sempre o atual
func GetOpenPipelineByStage(reporter reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rows, err := reporter.OpenPipelineByStage(r.Context(), parseFilter(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar o pipeline por estágio")
			return
		}

		writeJSON(w, r, rows)
	})
}

func GetStageDynamics(reporter reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dynamics, err := reporter.StageDynamics(r.Context(), parseFilter(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar a dinâmica de estágios")
			return
		}

		writeJSON(w, r, dynamics)
	})
}
