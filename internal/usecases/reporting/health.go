package reporting

import (
	"sort"

	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

// ScoreHealth calcula o score de saúde de uma conta a partir dos sinais do último mês
func ScoreHealth(signal domain.HealthSignal, weights config.Health) domain.HealthRow {
	cur, prev := signal.TotalMRR, signal.PrevMRR
	lost := prev > 0 && cur == 0

	score := weights.BaseScore
	switch {
	case cur > prev:
		score += weights.GrowthBonus
	case cur < prev:
		score -= weights.DeclinePenalty
	}
	if lost {
		score -= weights.LostPenalty
	}
	switch {
	case signal.TicketCnt90d >= weights.TicketsHigh:
		score -= weights.TicketsHighPenalty
	case signal.TicketCnt90d >= weights.TicketsMedium:
		score -= weights.TicketsMediumPenalty
	}
	score = clamp(score, 0, 100)

	var status domain.HealthStatus
	switch {
	case lost:
		status = domain.HealthLost
	case prev == 0 && cur == 0:
		status = domain.HealthStable
	case signal.TicketCnt90d >= weights.TicketsHigh:
		status = domain.HealthHighRisk
	case cur < prev:
		status = domain.HealthAtRisk
	case cur > prev:
		status = domain.HealthGrowing
	default:
		status = domain.HealthStable
	}

	var mom *float64
	if prev != 0 {
		mom = utils.Float64Ptr(utils.Round((cur-prev)/prev, 4))
	}

	tickets := signal.TicketCnt90d
	return domain.HealthRow{
		AccountID:    signal.AccountID,
		AccountName:  signal.AccountName,
		Segment:      signal.Segment,
		Region:       signal.Region,
		Industry:     signal.Industry,
		Month:        signal.Month,
		TotalMRR:     utils.Float64Ptr(cur),
		PrevMRR:      utils.Float64Ptr(prev),
		MoMMRRPct:    mom,
		MRRAvg3m:     utils.Float64Ptr(signal.MRRAvg3m),
		TicketCnt90d: &tickets,
		HealthScore:  utils.Float64Ptr(score),
		HealthStatus: status,
		Source:       domain.HealthSourceFallback,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SortHealthRows ordena pelo score crescente (contas mais arriscadas primeiro), nulos no fim
func SortHealthRows(rows []domain.HealthRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].HealthScore, rows[j].HealthScore
		switch {
		case a == nil && b == nil:
			return rows[i].AccountID < rows[j].AccountID
		case a == nil:
			return false
		case b == nil:
			return true
		case *a != *b:
			return *a < *b
		default:
			return rows[i].AccountID < rows[j].AccountID
		}
	})
}

// HealthDistribution conta as contas por status, do mais frequente para o menos frequente
func HealthDistribution(rows []domain.HealthRow) []domain.HealthDistribution {
	counts := make(map[domain.HealthStatus]int)
	for _, row := range rows {
		counts[row.HealthStatus]++
	}

	out := make([]domain.HealthDistribution, 0, len(counts))
	for status, count := range counts {
		out = append(out, domain.HealthDistribution{HealthStatus: status, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].HealthStatus < out[j].HealthStatus
	})

	return out
}
