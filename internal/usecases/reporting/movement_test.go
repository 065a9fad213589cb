package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

func month(m time.Month) time.Time {
	return time.Date(2024, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestClassifyMovement(t *testing.T) {
	tests := []struct {
		name     string
		prev     *float64
		current  float64
		expected domain.MovementType
	}{
		{name: "Sem mês anterior e MRR positivo é New", prev: nil, current: 100, expected: domain.MovementNew},
		{name: "Sem mês anterior e MRR zero é Flat", prev: nil, current: 0, expected: domain.MovementFlat},
		{name: "MRR anterior positivo e atual zero é Churn", prev: utils.Float64Ptr(50), current: 0, expected: domain.MovementChurn},
		{name: "Aumento é Expansion", prev: utils.Float64Ptr(50), current: 80, expected: domain.MovementExpansion},
		{name: "Reativação a partir de zero é Expansion", prev: utils.Float64Ptr(0), current: 80, expected: domain.MovementExpansion},
		{name: "Queda sem zerar é Contraction", prev: utils.Float64Ptr(80), current: 50, expected: domain.MovementContraction},
		{name: "Mesmo valor é Flat", prev: utils.Float64Ptr(80), current: 80, expected: domain.MovementFlat},
		{name: "Zero para zero é Flat", prev: utils.Float64Ptr(0), current: 0, expected: domain.MovementFlat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.ClassifyMovement(tt.prev, tt.current))
		})
	}
}

func TestSummarizeMovement(t *testing.T) {
	t.Run("Conta que cai de 50 para 0 deve gerar Churn com variação de -50", func(t *testing.T) {
		rows := []domain.AccountMonthMRR{
			{AccountID: "A1", Month: month(1), TotalMRR: 50, PrevMRR: nil},
			{AccountID: "A1", Month: month(2), TotalMRR: 0, PrevMRR: utils.Float64Ptr(50)},
		}

		summary := SummarizeMovement(rows)

		require.Len(t, summary, 2)
		assert.Equal(t, domain.MovementSummary{MovementType: domain.MovementChurn, RowsCount: 1, NetMRRChange: -50}, summary[0])
		assert.Equal(t, domain.MovementSummary{MovementType: domain.MovementNew, RowsCount: 1, NetMRRChange: 50}, summary[1])
	})

	t.Run("Toda linha deve cair em exatamente uma categoria", func(t *testing.T) {
		rows := []domain.AccountMonthMRR{
			{AccountID: "A1", TotalMRR: 10, PrevMRR: nil},
			{AccountID: "A2", TotalMRR: 0, PrevMRR: utils.Float64Ptr(10)},
			{AccountID: "A3", TotalMRR: 20, PrevMRR: utils.Float64Ptr(10)},
			{AccountID: "A4", TotalMRR: 5, PrevMRR: utils.Float64Ptr(10)},
			{AccountID: "A5", TotalMRR: 10, PrevMRR: utils.Float64Ptr(10)},
			{AccountID: "A6", TotalMRR: 0, PrevMRR: nil},
		}

		summary := SummarizeMovement(rows)

		total := 0
		for _, s := range summary {
			total += s.RowsCount
		}
		assert.Equal(t, len(rows), total)

		types := make([]domain.MovementType, 0, len(summary))
		for _, s := range summary {
			types = append(types, s.MovementType)
		}
		assert.Equal(t, []domain.MovementType{
			domain.MovementChurn,
			domain.MovementContraction,
			domain.MovementExpansion,
			domain.MovementFlat,
			domain.MovementNew,
		}, types)
	})

	t.Run("Sem linhas deve retornar lista vazia", func(t *testing.T) {
		assert.Empty(t, SummarizeMovement(nil))
	})
}

func TestRankMovers(t *testing.T) {
	candidates := []domain.Mover{
		{AccountID: "A1", MRRDelta: 10},
		{AccountID: "A2", MRRDelta: -40},
		{AccountID: "A3", MRRDelta: 25},
		{AccountID: "A4", MRRDelta: 0},
		{AccountID: "A5", MRRDelta: -5},
		{AccountID: "A0", MRRDelta: 25},
	}

	tests := []struct {
		name                 string
		limit                int
		expectedExpansions   []string
		expectedContractions []string
	}{
		{
			name:                 "Deve ordenar por delta e desempatar pelo ID da conta",
			limit:                3,
			expectedExpansions:   []string{"A0", "A3", "A1"},
			expectedContractions: []string{"A2", "A5", "A4"},
		},
		{
			name:                 "Limite maior que a lista retorna todas as contas",
			limit:                10,
			expectedExpansions:   []string{"A0", "A3", "A1", "A4", "A5", "A2"},
			expectedContractions: []string{"A2", "A5", "A4", "A1", "A0", "A3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movers := RankMovers(candidates, tt.limit)

			assert.Equal(t, tt.expectedExpansions, ids(movers.Expansions))
			assert.Equal(t, tt.expectedContractions, ids(movers.Contractions))
		})
	}

	t.Run("Não deve alterar a ordem da lista original", func(t *testing.T) {
		RankMovers(candidates, 2)
		assert.Equal(t, "A1", candidates[0].AccountID)
	})
}

func ids(movers []domain.Mover) []string {
	out := make([]string, 0, len(movers))
	for _, m := range movers {
		out = append(out, m.AccountID)
	}
	return out
}
