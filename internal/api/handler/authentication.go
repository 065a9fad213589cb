package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/authenticating"
	"github.com/vfg2006/revenue-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
)

// Login troca as credenciais do cliente por um token JWT
func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		resp, err := service.Login(req.ClientID, req.ClientSecret)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("client_id", req.ClientID).Info("login: token emitido")
		writeJSON(w, r, resp)
	}
}

func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		if authErr.ClientID != "" {
			logger = logger.WithField("client_id", authErr.ClientID)
		}
		logger.Warn("login: falha de autenticação")

		// Cliente inexistente e segredo errado recebem a mesma mensagem
		message := "Falha na autenticação"
		if authenticating.IsCredentialsError(err) {
			message = "Credenciais inválidas"
		}
		apiErrors.WriteError(w, authErr.Code, message, nil)
		return
	}

	logger.Error("login: erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar login", nil)
}
