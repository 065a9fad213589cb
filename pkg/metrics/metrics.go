// Package metrics expõe as métricas Prometheus da API
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WarehouseQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "revenue_intelligence_warehouse_query_duration_seconds",
		Help:    "Duração das consultas ao warehouse.",
		Buckets: prometheus.DefBuckets,
	}, []string{"query", "result"})

	TableProbes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "revenue_intelligence_table_probes_total", Help: "Total de testes de existência de tabelas candidatas.",
	}, []string{"dataset", "result"})

	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "revenue_intelligence_cache_lookups_total", Help: "Total de consultas ao cache por função.",
	}, []string{"fn", "result"})

	CompletionCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "revenue_intelligence_completion_calls_total", Help: "Total de chamadas ao modelo hospedado.",
	}, []string{"generator", "result"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "revenue_intelligence_http_request_duration_seconds",
		Help:    "Duração das requisições HTTP.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})

	WarmupRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "revenue_intelligence_warmup_runs_total", Help: "Total de execuções do aquecimento de cache.",
	}, []string{"result"})
)
