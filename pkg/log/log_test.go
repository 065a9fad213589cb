package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		expected string
	}{
		{name: "Usa o ID recebido no cabeçalho", incoming: "abc-123", expected: "abc-123"},
		{name: "Remove espaços do ID recebido", incoming: "  abc-123 ", expected: "abc-123"},
		{name: "Gera UUID quando não há ID", incoming: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, id := WithCorrelationID(context.Background(), tt.incoming)

			if tt.expected != "" {
				assert.Equal(t, tt.expected, id)
			} else {
				assert.Len(t, id, 36)
			}
			assert.Equal(t, id, GetCorrelationID(ctx))
		})
	}
}

func TestGetCorrelationIDSemValor(t *testing.T) {
	assert.Equal(t, "", GetCorrelationID(context.Background()))
}

func TestKeepField(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	assert.True(t, keepField("dataset"))
	assert.True(t, keepField("client_id"))
	assert.False(t, keepField("user_agent"))

	t.Setenv("APP_ENV", "production")
	assert.True(t, keepField("user_agent"))
}
