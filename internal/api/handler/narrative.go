package handler

import (
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/evidence"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/exploring"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/narrating"
	"github.com/vfg2006/revenue-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
)

type AskRequest struct {
	Question string `json:"question"`
}

type AgentRequest struct {
	Goal string `json:"goal"`
}

// GetEvidencePack devolve exatamente os bytes enviados ao modelo
func GetEvidencePack(builder evidence.Builder, explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, filter, ok := windowAndFilter(w, r, explorer)
		if !ok {
			return
		}

		pack, packJSON, err := builder.Build(r.Context(), window, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar o pacote de evidências")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Pack-ID", pack.PackID)
		if _, err := w.Write(packJSON); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("evidence-pack: erro ao escrever resposta")
		}
	})
}

func PostExecutiveNarrative(narrator narrating.Narrator, explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, filter, ok := windowAndFilter(w, r, explorer)
		if !ok {
			return
		}

		narrative, err := narrator.ExecutiveNarrative(r.Context(), window, filter)
		if err != nil {
			writeNarrativeError(w, r, err)
			return
		}

		writeJSON(w, r, narrative)
	})
}

func PostAsk(narrator narrating.Narrator, explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req AskRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		window, filter, ok := windowAndFilter(w, r, explorer)
		if !ok {
			return
		}

		answer, err := narrator.Ask(r.Context(), window, filter, req.Question)
		if err != nil {
			writeNarrativeError(w, r, err)
			return
		}

		writeJSON(w, r, answer)
	})
}

func PostAgentRun(narrator narrating.Narrator, explorer exploring.Explorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req AgentRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		window, filter, ok := windowAndFilter(w, r, explorer)
		if !ok {
			return
		}

		run, err := narrator.RunAgent(r.Context(), window, filter, req.Goal)
		if err != nil {
			writeNarrativeError(w, r, err)
			return
		}

		writeJSON(w, r, run)
	})
}

// decodeBody aceita corpo vazio; a validação do conteúdo fica com o serviço
func decodeBody(r *http.Request, target any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(target)
	if err == io.EOF {
		return nil
	}
	return errors.Wrap(err, "erro ao decodificar corpo da requisição")
}

func writeNarrativeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, narrating.ErrEmptyQuestion):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O campo question é obrigatório", nil)
	case errors.Is(err, narrating.ErrEmptyGoal):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O campo goal é obrigatório", nil)
	default:
		writeServiceError(w, r, err, "Erro ao montar o pacote de evidências")
	}
}
