package analyzing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/pkg/utils"
)

var hundred = decimal.NewFromInt(100)

// Simulate projeta uma redução de reductionPct% nas devoluções sobre as métricas atuais.
// Savings é a perda evitada, em módulo, e nunca é negativa.
func Simulate(bundle domain.MetricsBundle, reductionPct float64) (domain.Simulation, error) {
	req := domain.SimulationRequest{ReductionPct: reductionPct}
	if err := req.Validate(); err != nil {
		return domain.Simulation{}, NewAnalysisError(ErrInvalidSimulation, err.Error())
	}

	factor := hundred.Sub(decimal.NewFromFloat(reductionPct)).Div(hundred)

	current := domain.Scenario{
		Returns: bundle.ReturnedOrders,
		RatePct: utils.RoundWithOneDecimalPlace(utils.Percentage(bundle.ReturnedOrders, bundle.TotalSales)),
		Impact:  bundle.FinancialImpact,
	}

	simReturns := int(decimal.NewFromInt(int64(bundle.ReturnedOrders)).Mul(factor).Floor().IntPart())
	simulated := domain.Scenario{
		Returns: simReturns,
		RatePct: utils.RoundWithOneDecimalPlace(utils.Percentage(simReturns, bundle.TotalSales)),
		Impact:  bundle.FinancialImpact.Mul(factor),
	}

	return domain.Simulation{
		ReductionPct:   reductionPct,
		TotalSales:     bundle.TotalSales,
		ProductRevenue: bundle.ProductRevenue,
		Current:        current,
		Simulated:      simulated,
		Savings:        current.Impact.Abs().Sub(simulated.Impact.Abs()),
	}, nil
}
