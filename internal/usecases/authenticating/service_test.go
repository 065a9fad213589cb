package authenticating

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, clock clockwork.Clock) Authenticator {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3gr3do"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		SecretKey: "chave-de-teste",
		Auth: config.Auth{
			Clients:  []string{"board-app:2:" + string(hash)},
			TokenTTL: time.Hour,
		},
	}

	service, err := NewService(cfg, clock)
	require.NoError(t, err)
	return service
}

func TestParseClients(t *testing.T) {
	tests := []struct {
		name     string
		entries  []string
		expected map[string]domain.APIClient
		hasError bool
	}{
		{
			name:    "Hash com dois pontos é mantido inteiro",
			entries: []string{"admin:1:$2a$10$abc:def", " "},
			expected: map[string]domain.APIClient{
				"admin": {ID: "admin", RoleID: 1, SecretHash: "$2a$10$abc:def"},
			},
		},
		{
			name:     "Entrada sem hash é inválida",
			entries:  []string{"admin:1"},
			hasError: true,
		},
		{
			name:     "Perfil fora da faixa é inválido",
			entries:  []string{"admin:9:$2a$10$abc"},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clients, err := ParseClients(tt.entries)

			if tt.hasError {
				assert.ErrorIs(t, err, ErrInvalidClientConfig)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, clients)
		})
	}
}

func TestService_Login(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC))
	service := newTestService(t, clock)

	tests := []struct {
		name         string
		clientID     string
		secret       string
		expectedErr  error
		expectedCode string
	}{
		{name: "Dados ausentes", clientID: "", secret: "x", expectedErr: ErrMissingRequiredData, expectedCode: apiErrors.ErrMissingRequiredData},
		{name: "Cliente desconhecido", clientID: "outro", secret: "s3gr3do", expectedErr: ErrClientNotFound, expectedCode: apiErrors.ErrInvalidCredentials},
		{name: "Segredo incorreto", clientID: "board-app", secret: "errado", expectedErr: ErrInvalidCredentials, expectedCode: apiErrors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(tt.clientID, tt.secret)

			assert.ErrorIs(t, err, tt.expectedErr)
			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.expectedCode, authErr.Code)
			assert.True(t, IsCredentialsError(err) || tt.expectedErr == ErrMissingRequiredData)
		})
	}

	t.Run("Credenciais válidas geram token com o perfil do cliente", func(t *testing.T) {
		resp, err := service.Login("board-app", "s3gr3do")

		require.NoError(t, err)
		assert.Equal(t, domain.RoleAnalyst, resp.RoleID)
		assert.Equal(t, clock.Now().Add(time.Hour), resp.ExpiresAt)

		claims, err := service.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "board-app", claims.ClientID)
		assert.Equal(t, domain.RoleAnalyst, claims.ClientRoleID)
	})
}

func TestService_ValidateToken(t *testing.T) {
	t.Run("Token expirado é recusado", func(t *testing.T) {
		clock := clockwork.NewFakeClockAt(time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC))
		service := newTestService(t, clock)

		resp, err := service.Login("board-app", "s3gr3do")
		require.NoError(t, err)

		clock.Advance(2 * time.Hour)

		_, err = service.ValidateToken(resp.Token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("Token assinado com outra chave é recusado", func(t *testing.T) {
		clock := clockwork.NewFakeClockAt(time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC))
		issuer := newTestService(t, clock).(*Service)
		issuer.secret = []byte("outra-chave")

		resp, err := issuer.Login("board-app", "s3gr3do")
		require.NoError(t, err)

		_, err = newTestService(t, clock).ValidateToken(resp.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Texto qualquer não é token", func(t *testing.T) {
		_, err := newTestService(t, clockwork.NewRealClock()).ValidateToken("abc")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
