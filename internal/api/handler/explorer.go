package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/exploring"
	"github.com/vfg2006/revenue-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
)

func GetFilterDomains(explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		domains, err := explorer.FilterDomains(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar os valores de filtro")
			return
		}

		writeJSON(w, r, domains)
	})
}

func GetDateBounds(explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bounds, err := explorer.DateBounds(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar os limites de datas")
			return
		}

		writeJSON(w, r, bounds)
	})
}

func ListAccounts(explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accounts, err := explorer.ListAccounts(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar as contas")
			return
		}

		writeJSON(w, r, accounts)
	})
}

func accountID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimSpace(httprouter.ParamsFromContext(r.Context()).ByName("id"))
	if id == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não informado", nil)
		return "", false
	}
	return id, true
}

func GetAccountMRR(explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := accountID(w, r)
		if !ok {
			return
		}

		window, err := parseWindow(r, explorer)
		if err != nil {
			writeParamError(w, r, err)
			return
		}

		rows, err := explorer.AccountMRR(r.Context(), id, window)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar o MRR da conta")
			return
		}

		writeJSON(w, r, rows)
	})
}

func GetAccountOpportunities(explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := accountID(w, r)
		if !ok {
			return
		}

		rows, err := explorer.AccountOpportunities(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar as oportunidades da conta")
			return
		}

		writeJSON(w, r, rows)
	})
}

func GetAccountTickets(explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := accountID(w, r)
		if !ok {
			return
		}

		rows, err := explorer.AccountTickets(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar os tickets da conta")
			return
		}

		writeJSON(w, r, rows)
	})
}

// GetSanityChecks reporta cada verificação com seu próprio erro, sem falhar a resposta inteira
func GetSanityChecks(explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		checks, err := explorer.SanityChecks(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao executar as verificações de dados")
			return
		}

		writeJSON(w, r, checks)
	})
}

// GetResolvedTables lista o mapeamento mesmo quando faltam tabelas obrigatórias
func GetResolvedTables(explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		listing, err := explorer.ResolvedTables(r.Context())
		if err != nil && len(listing) == 0 {
			writeServiceError(w, r, err, "Erro ao resolver as tabelas")
			return
		}
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("quality-tables: mapeamento incompleto")
		}

		writeJSON(w, r, listing)
	})
}
