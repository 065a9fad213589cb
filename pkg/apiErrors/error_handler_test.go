package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{name: "Token expirado", code: ErrExpiredToken, expected: http.StatusUnauthorized},
		{name: "Privilégio insuficiente", code: ErrInsufficientPrivilege, expected: http.StatusForbidden},
		{name: "Formato inválido", code: ErrInvalidFormat, expected: http.StatusBadRequest},
		{name: "Tabela obrigatória ausente", code: ErrRequiredDatasetMissing, expected: http.StatusServiceUnavailable},
		{name: "Tabela opcional indisponível", code: ErrOptionalDatasetUnavailable, expected: http.StatusNotFound},
		{name: "Código desconhecido vira erro interno", code: "XYZ_999", expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusOf(tt.code))
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrRequiredDatasetMissing, "tabelas obrigatórias não encontradas", []string{"FCT_MRR"})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Code    string   `json:"code"`
		Message string   `json:"message"`
		Details []string `json:"details"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, ErrRequiredDatasetMissing, body.Code)
	assert.Equal(t, "tabelas obrigatórias não encontradas", body.Message)
	assert.Equal(t, []string{"FCT_MRR"}, body.Details)
}

func TestWriteErrorSemDetalhes(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrInvalidToken, "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"code":"AUTH_006"}`, rec.Body.String())
}
