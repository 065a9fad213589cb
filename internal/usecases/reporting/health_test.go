package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

var defaultWeights = config.Health{
	BaseScore:            70,
	GrowthBonus:          15,
	DeclinePenalty:       15,
	LostPenalty:          50,
	TicketsHigh:          8,
	TicketsHighPenalty:   20,
	TicketsMedium:        4,
	TicketsMediumPenalty: 10,
	TicketWindowDays:     90,
}

func TestScoreHealth(t *testing.T) {
	tests := []struct {
		name           string
		signal         domain.HealthSignal
		expectedScore  float64
		expectedStatus domain.HealthStatus
		expectedMoM    *float64
	}{
		{
			name:           "Conta crescendo sem tickets",
			signal:         domain.HealthSignal{TotalMRR: 120, PrevMRR: 100},
			expectedScore:  85,
			expectedStatus: domain.HealthGrowing,
			expectedMoM:    utils.Float64Ptr(0.2),
		},
		{
			name:           "Conta em queda",
			signal:         domain.HealthSignal{TotalMRR: 80, PrevMRR: 100},
			expectedScore:  55,
			expectedStatus: domain.HealthAtRisk,
			expectedMoM:    utils.Float64Ptr(-0.2),
		},
		{
			name:           "Conta perdida recebe as duas penalidades",
			signal:         domain.HealthSignal{TotalMRR: 0, PrevMRR: 100},
			expectedScore:  5,
			expectedStatus: domain.HealthLost,
			expectedMoM:    utils.Float64Ptr(-1),
		},
		{
			name:           "Muitos tickets tornam a conta de alto risco",
			signal:         domain.HealthSignal{TotalMRR: 100, PrevMRR: 100, TicketCnt90d: 8},
			expectedScore:  50,
			expectedStatus: domain.HealthHighRisk,
			expectedMoM:    utils.Float64Ptr(0),
		},
		{
			name:           "Tickets moderados só reduzem o score",
			signal:         domain.HealthSignal{TotalMRR: 110, PrevMRR: 100, TicketCnt90d: 4},
			expectedScore:  75,
			expectedStatus: domain.HealthGrowing,
			expectedMoM:    utils.Float64Ptr(0.1),
		},
		{
			name:           "Dois meses zerados é estável e sem variação percentual",
			signal:         domain.HealthSignal{TotalMRR: 0, PrevMRR: 0, TicketCnt90d: 10},
			expectedScore:  50,
			expectedStatus: domain.HealthStable,
			expectedMoM:    nil,
		},
		{
			name:           "Conta nova sem mês anterior cresce e não tem variação percentual",
			signal:         domain.HealthSignal{TotalMRR: 50, PrevMRR: 0},
			expectedScore:  85,
			expectedStatus: domain.HealthGrowing,
			expectedMoM:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := ScoreHealth(tt.signal, defaultWeights)

			require.NotNil(t, row.HealthScore)
			assert.Equal(t, tt.expectedScore, *row.HealthScore)
			assert.Equal(t, tt.expectedStatus, row.HealthStatus)
			assert.Equal(t, tt.expectedMoM, row.MoMMRRPct)
			assert.Equal(t, domain.HealthSourceFallback, row.Source)
		})
	}
}

func TestScoreHealth_Clamp(t *testing.T) {
	weights := defaultWeights
	weights.LostPenalty = 200

	row := ScoreHealth(domain.HealthSignal{TotalMRR: 0, PrevMRR: 10, TicketCnt90d: 20}, weights)
	assert.Equal(t, 0.0, *row.HealthScore)

	weights = defaultWeights
	weights.GrowthBonus = 100
	row = ScoreHealth(domain.HealthSignal{TotalMRR: 10, PrevMRR: 5}, weights)
	assert.Equal(t, 100.0, *row.HealthScore)
}

func TestSortHealthRowsAndDistribution(t *testing.T) {
	rows := []domain.HealthRow{
		{AccountID: "A1", HealthScore: utils.Float64Ptr(85), HealthStatus: domain.HealthGrowing},
		{AccountID: "A2", HealthScore: nil, HealthStatus: domain.HealthStable},
		{AccountID: "A3", HealthScore: utils.Float64Ptr(5), HealthStatus: domain.HealthLost},
		{AccountID: "A4", HealthScore: utils.Float64Ptr(85), HealthStatus: domain.HealthGrowing},
	}

	SortHealthRows(rows)

	assert.Equal(t, []string{"A3", "A1", "A4", "A2"}, []string{rows[0].AccountID, rows[1].AccountID, rows[2].AccountID, rows[3].AccountID})
	assert.Equal(t, []domain.HealthDistribution{
		{HealthStatus: domain.HealthGrowing, Count: 2},
		{HealthStatus: domain.HealthLost, Count: 1},
		{HealthStatus: domain.HealthStable, Count: 1},
	}, HealthDistribution(rows))
}
