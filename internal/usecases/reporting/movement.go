package reporting

import (
	"sort"

	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

// SummarizeMovement classifica cada linha conta/mês e soma a variação de MRR por categoria.
// A saída é ordenada pelo nome da categoria.
func SummarizeMovement(rows []domain.AccountMonthMRR) []domain.MovementSummary {
	byType := make(map[domain.MovementType]*domain.MovementSummary)

	for _, row := range rows {
		movement := domain.ClassifyMovement(row.PrevMRR, row.TotalMRR)

		prev := 0.0
		if row.PrevMRR != nil {
			prev = *row.PrevMRR
		}

		summary, ok := byType[movement]
		if !ok {
			summary = &domain.MovementSummary{MovementType: movement}
			byType[movement] = summary
		}
		summary.RowsCount++
		summary.NetMRRChange += row.TotalMRR - prev
	}

	out := make([]domain.MovementSummary, 0, len(byType))
	for _, summary := range byType {
		summary.NetMRRChange = utils.RoundWithTwoDecimalPlace(summary.NetMRRChange)
		out = append(out, *summary)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].MovementType < out[j].MovementType
	})

	return out
}

// RankMovers separa as maiores expansões (delta decrescente) e contrações (delta crescente).
// Empates são desfeitos pelo ID da conta.
func RankMovers(candidates []domain.Mover, limit int) domain.TopMovers {
	expansions := make([]domain.Mover, len(candidates))
	copy(expansions, candidates)
	sort.SliceStable(expansions, func(i, j int) bool {
		if expansions[i].MRRDelta != expansions[j].MRRDelta {
			return expansions[i].MRRDelta > expansions[j].MRRDelta
		}
		return expansions[i].AccountID < expansions[j].AccountID
	})

	contractions := make([]domain.Mover, len(candidates))
	copy(contractions, candidates)
	sort.SliceStable(contractions, func(i, j int) bool {
		if contractions[i].MRRDelta != contractions[j].MRRDelta {
			return contractions[i].MRRDelta < contractions[j].MRRDelta
		}
		return contractions[i].AccountID < contractions[j].AccountID
	})

	return domain.TopMovers{
		Expansions:   head(expansions, limit),
		Contractions: head(contractions, limit),
	}
}

func head(movers []domain.Mover, limit int) []domain.Mover {
	if limit >= 0 && len(movers) > limit {
		return movers[:limit]
	}
	return movers
}
