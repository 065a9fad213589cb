package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/exploring"
	"github.com/vfg2006/revenue-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxMoversLimit = 100

var (
	errInvalidDate   = errors.New("data inválida, use o formato YYYY-MM-DD")
	errInvertedRange = errors.New("a data final é anterior à data inicial")
	errInvalidLimit  = errors.New("limit deve ser um inteiro positivo")
)

// parseWindow lê start/end da query; os limites ausentes vêm das datas do MRR
func parseWindow(r *http.Request, explorer exploring.Explorer) (domain.Window, error) {
	query := r.URL.Query()

	start, err := parseDate(query.Get("start"))
	if err != nil {
		return domain.Window{}, err
	}
	end, err := parseDate(query.Get("end"))
	if err != nil {
		return domain.Window{}, err
	}

	if start.IsZero() || end.IsZero() {
		bounds, err := explorer.DateBounds(r.Context())
		if err != nil {
			return domain.Window{}, errors.Wrap(err, "erro ao obter limites de datas")
		}
		if start.IsZero() {
			start = bounds.MinMonth
		}
		if end.IsZero() {
			end = bounds.MaxMonth
		}
	}

	window := domain.NewWindow(start, end)
	if !window.Valid() {
		return domain.Window{}, errInvertedRange
	}
	return window, nil
}

func parseDate(value string) (time.Time, error) {
	t, err := utils.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	if t == nil {
		return time.Time{}, nil
	}
	return *t, nil
}

// parseFilter aceita parâmetros repetidos (?segment=a&segment=b) ou separados por vírgula
func parseFilter(r *http.Request) domain.AccountFilter {
	query := r.URL.Query()
	return domain.AccountFilter{
		Segments:   splitValues(query["segment"]),
		Regions:    splitValues(query["region"]),
		Industries: splitValues(query["industry"]),
		RepTeams:   splitValues(query["rep_team"]),
		RepRegions: splitValues(query["rep_region"]),
	}.Normalized()
}

func splitValues(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, strings.Split(v, ",")...)
	}
	return out
}

func parseLimit(r *http.Request, fallback int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, errInvalidLimit
	}
	if limit > maxMoversLimit {
		limit = maxMoversLimit
	}
	return limit, nil
}

// writeParamError traduz erros de parâmetros; falhas ao consultar as datas seguem o mapeamento de serviço
func writeParamError(w http.ResponseWriter, r *http.Request, err error) {
	switch errors.Cause(err) {
	case errInvalidDate, errInvalidLimit:
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errInvertedRange:
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	default:
		writeServiceError(w, r, err, "Erro ao resolver o período consultado")
	}
}

// writeServiceError mapeia os erros do warehouse para os códigos da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger := log.ForContext(r.Context()).WithError(err).WithField("path", r.URL.Path)

	var missing *repository.MissingTablesError
	switch {
	case errors.As(err, &missing):
		logger.Error("Tabelas obrigatórias ausentes no warehouse")
		apiErrors.WriteError(w, apiErrors.ErrRequiredDatasetMissing, missing.Error(), missing.Datasets)
	case errors.Is(err, repository.ErrDatasetUnavailable):
		logger.Warn("Dataset opcional não disponível")
		apiErrors.WriteError(w, apiErrors.ErrOptionalDatasetUnavailable, "Dataset não disponível neste warehouse", nil)
	default:
		logger.Error(message)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, message, nil)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// windowAndFilter agrupa a leitura dos parâmetros comuns às rotas de métricas
func windowAndFilter(w http.ResponseWriter, r *http.Request, explorer exploring.Explorer) (domain.Window, domain.AccountFilter, bool) {
	window, err := parseWindow(r, explorer)
	if err != nil {
		writeParamError(w, r, err)
		return domain.Window{}, domain.AccountFilter{}, false
	}
	return window, parseFilter(r), true
}
