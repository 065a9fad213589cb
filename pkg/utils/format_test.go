package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    *float64
		expected string
	}{
		{name: "Valor nulo deve exibir placeholder", value: nil, expected: "—"},
		{name: "Bilhões", value: Float64Ptr(1_234_000_000), expected: "$1.23B"},
		{name: "Milhões", value: Float64Ptr(4_500_000), expected: "$4.50M"},
		{name: "Milhares com separador", value: Float64Ptr(12_345.4), expected: "$12,345"},
		{name: "Valores pequenos com centavos", value: Float64Ptr(999.994), expected: "$999.99"},
		{name: "Negativos mantêm o sinal antes do símbolo", value: Float64Ptr(-30), expected: "-$30.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.value))
		})
	}
}

func TestMetricForLLM(t *testing.T) {
	tests := []struct {
		name     string
		value    *float64
		label    string
		kind     MetricKind
		expected string
	}{
		{name: "Ausente vira frase explícita", value: nil, label: "NRR", kind: KindPct, expected: "NRR data not available for selected period"},
		{name: "Percentual com duas casas", value: Float64Ptr(92.5), label: "NRR", kind: KindPct, expected: "92.50%"},
		{name: "Múltiplo de cobertura", value: Float64Ptr(3), label: "Pipeline Coverage", kind: KindX, expected: "3.00x"},
		{name: "Moeda", value: Float64Ptr(2_400_000), label: "ARR", kind: KindCurrency, expected: "$2.40M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MetricForLLM(tt.value, tt.label, tt.kind))
		})
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.1235, Round(0.123456, 4))
	assert.Equal(t, -50.0, RoundWithTwoDecimalPlace(-50.004))
	assert.Equal(t, 0.0, Round(0, 2))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("")
	assert.NoError(t, err)
	assert.Nil(t, date)

	date, err = ParseDate("2024-03-15")
	assert.NoError(t, err)
	assert.Equal(t, "2024-03-15", *FormatDate(date))

	_, err = ParseDate("15/03/2024")
	assert.Error(t, err)
}
