package analyzing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/pkg/apiErrors"
)

func simulationBundle() domain.MetricsBundle {
	return domain.MetricsBundle{
		TotalSales:      200,
		ProductRevenue:  dec("20000"),
		ReturnedOrders:  15,
		FinancialImpact: dec("-1234.56"),
	}
}

func TestSimulate(t *testing.T) {
	tests := []struct {
		name        string
		reduction   float64
		wantReturns int
		wantImpact  string
		wantSavings string
	}{
		{"sem redução reproduz o atual", 0, 15, "-1234.56", "0"},
		{"redução total zera devoluções", 100, 0, "0", "1234.56"},
		{"redução de 50%", 50, 7, "-617.28", "617.28"},
		{"redução de 10% arredonda para baixo", 10, 13, "-1111.104", "123.456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, err := Simulate(simulationBundle(), tt.reduction)
			require.NoError(t, err)

			assert.Equal(t, 15, sim.Current.Returns)
			assert.True(t, dec("-1234.56").Equal(sim.Current.Impact))
			assert.Equal(t, tt.wantReturns, sim.Simulated.Returns)
			assert.True(t, dec(tt.wantImpact).Equal(sim.Simulated.Impact), "got %s", sim.Simulated.Impact)
			assert.True(t, dec(tt.wantSavings).Equal(sim.Savings), "got %s", sim.Savings)
			assert.True(t, sim.Savings.GreaterThanOrEqual(dec("0")))
			assert.True(t, sim.Savings.Equal(sim.Current.Impact.Abs().Sub(sim.Simulated.Impact.Abs())))
			assert.Equal(t, 200, sim.TotalSales)
			assert.Equal(t, 7.5, sim.Current.RatePct)
		})
	}
}

func TestSimulate_SavingsNeverNegative(t *testing.T) {
	for r := 0.0; r <= 100; r += 2.5 {
		sim, err := Simulate(simulationBundle(), r)
		require.NoError(t, err)
		assert.True(t, sim.Savings.GreaterThanOrEqual(dec("0")), "r=%v", r)
		assert.LessOrEqual(t, sim.Simulated.Returns, sim.Current.Returns)
	}
}

func TestSimulate_InvalidReduction(t *testing.T) {
	for _, r := range []float64{-1, 100.5} {
		_, err := Simulate(simulationBundle(), r)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidSimulation))

		var analysisErr *AnalysisError
		require.True(t, errors.As(err, &analysisErr))
		assert.Equal(t, apiErrors.ErrInvalidRequest, analysisErr.Code)
	}
}
