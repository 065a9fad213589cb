// Package authenticating emite e valida os tokens dos clientes da API
package authenticating

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	Login(clientID, secret string) (*domain.LoginResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	clients  map[string]domain.APIClient
	secret   []byte
	tokenTTL time.Duration
	clock    clockwork.Clock
}

func NewService(cfg *config.Config, clock clockwork.Clock) (Authenticator, error) {
	clients, err := ParseClients(cfg.Auth.Clients)
	if err != nil {
		return nil, err
	}

	if len(clients) == 0 {
		logrus.Warn("Nenhum cliente da API configurado, login sempre será recusado")
	}

	return &Service{
		clients:  clients,
		secret:   []byte(cfg.SecretKey),
		tokenTTL: cfg.Auth.TokenTTL,
		clock:    clock,
	}, nil
}

// ParseClients interpreta entradas no formato client_id:role:bcrypt_hash
func ParseClients(entries []string) (map[string]domain.APIClient, error) {
	clients := make(map[string]domain.APIClient, len(entries))

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.SplitN(entry, ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[2] == "" {
			return nil, fmt.Errorf("%w: esperado client_id:role:hash", ErrInvalidClientConfig)
		}

		role, err := strconv.Atoi(parts[1])
		if err != nil || role < domain.RoleAdmin || role > domain.RoleViewer {
			return nil, fmt.Errorf("%w: perfil inválido para o cliente %s", ErrInvalidClientConfig, parts[0])
		}

		clients[parts[0]] = domain.APIClient{
			ID:         parts[0],
			RoleID:     role,
			SecretHash: parts[2],
		}
	}

	return clients, nil
}

func (s *Service) Login(clientID, secret string) (*domain.LoginResponse, error) {
	// Validação de entrada
	if clientID == "" || secret == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "client_id e client_secret são obrigatórios")
	}

	client, ok := s.clients[clientID]
	if !ok {
		return nil, NewClientAuthError(ErrClientNotFound, apiErrors.ErrInvalidCredentials, clientID, "Cliente não encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.SecretHash), []byte(secret)); err != nil {
		return nil, NewClientAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, clientID, "Segredo incorreto")
	}

	expiresAt := s.clock.Now().Add(s.tokenTTL)
	token, err := s.generateJWT(client, expiresAt)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return &domain.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		RoleID:    client.RoleID,
	}, nil
}

func (s *Service) generateJWT(client domain.APIClient, expiresAt time.Time) (string, error) {
	claims := domain.Claims{
		ClientID:     client.ID,
		ClientRoleID: client.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   client.ID,
			IssuedAt:  jwt.NewNumericDate(s.clock.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "claims inválidas")
	}

	// Cliente removido da configuração perde o acesso mesmo com token válido
	if _, exists := s.clients[claims.ClientID]; !exists {
		return nil, NewClientAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, claims.ClientID, "cliente não configurado")
	}

	return claims, nil
}
