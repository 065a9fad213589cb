package handler

import (
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/revenue-intelligence-api/internal/api/handler/router"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/authenticating"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/evidence"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/exploring"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/kpi"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/narrating"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/reporting"
	"github.com/vfg2006/revenue-intelligence-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck(clock clockwork.Clock) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(clock),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Explorer(explorer exploring.Explorer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/filters",
			Method:      http.MethodGet,
			Handler:     GetFilterDomains(explorer),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/date-bounds",
			Method:      http.MethodGet,
			Handler:     GetDateBounds(explorer),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts",
			Method:      http.MethodGet,
			Handler:     ListAccounts(explorer),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/mrr",
			Method:      http.MethodGet,
			Handler:     GetAccountMRR(explorer),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/opportunities",
			Method:      http.MethodGet,
			Handler:     GetAccountOpportunities(explorer),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/tickets",
			Method:      http.MethodGet,
			Handler:     GetAccountTickets(explorer),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/quality/checks",
			Method:      http.MethodGet,
			Handler:     GetSanityChecks(explorer),
			Middlewares: middlewares{middleware.AdminOrAnalyst()},
		},
		{
			Path:        "/v1/quality/tables",
			Method:      http.MethodGet,
			Handler:     GetResolvedTables(explorer),
			Middlewares: middlewares{middleware.AdminOrAnalyst()},
		},
	}
}

func Metrics(cfg *config.Config, reporter reporting.Reporter, summarizer kpi.Summarizer, explorer exploring.Explorer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/kpis",
			Method:      http.MethodGet,
			Handler:     GetKPIs(summarizer, explorer),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/revenue/arr",
			Method:      http.MethodGet,
			Handler:     GetARRTrend(reporter, explorer),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/revenue/retention",
			Method:      http.MethodGet,
			Handler:     GetRetentionTrend(reporter, explorer),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/revenue/movement",
			Method:      http.MethodGet,
			Handler:     GetMovementSummary(reporter, explorer),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/revenue/movers",
			Method:      http.MethodGet,
			Handler:     GetTopMovers(cfg, reporter, explorer),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/pipeline/closed",
			Method:      http.MethodGet,
			Handler:     GetClosedRevenue(reporter, explorer),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/pipeline/coverage",
			Method:      http.MethodGet,
			Handler:     GetPipelineCoverage(cfg, reporter, explorer),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/pipeline/stages",
			Method:      http.MethodGet,
			Handler:     GetOpenPipelineByStage(reporter),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/pipeline/stage-dynamics",
			Method:      http.MethodGet,
			Handler:     GetStageDynamics(reporter),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/health",
			Method:      http.MethodGet,
			Handler:     GetHealthSnapshot(reporter, explorer),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/quality/retention",
			Method:      http.MethodGet,
			Handler:     GetRetentionQuality(summarizer, explorer),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Narrative(builder evidence.Builder, narrator narrating.Narrator, explorer exploring.Explorer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/evidence-pack",
			Method:      http.MethodGet,
			Handler:     GetEvidencePack(builder, explorer),
			Middlewares: middlewares{middleware.AdminOrAnalyst()},
		},
		{
			Path:        "/v1/narrative/executive",
			Method:      http.MethodPost,
			Handler:     PostExecutiveNarrative(narrator, explorer),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/narrative/ask",
			Method:      http.MethodPost,
			Handler:     PostAsk(narrator, explorer),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/narrative/agent",
			Method:      http.MethodPost,
			Handler:     PostAgentRun(narrator, explorer),
			Middlewares: middlewares{middleware.AdminOrAnalyst()},
		},
	}
}

func CronJobs(warmup WarmupRunner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(warmup),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		// O httprouter não aceita segmento fixo ao lado de :type, então status é um valor do parâmetro
		{
			Path:        "/v1/cron/:type",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(warmup),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}
