package domain

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

type SimulationRequest struct {
	ReductionPct float64 `json:"reduction_pct"`
}

func (r SimulationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ReductionPct, validation.Min(0.0), validation.Max(100.0)),
	)
}

type Scenario struct {
	Returns int             `json:"returns"`
	RatePct float64         `json:"rate_pct"`
	Impact  decimal.Decimal `json:"impact"`
}

// Simulation projeta uma redução percentual das devoluções sobre as métricas atuais
type Simulation struct {
	ReductionPct   float64         `json:"reduction_pct"`
	TotalSales     int             `json:"total_sales"`
	ProductRevenue decimal.Decimal `json:"product_revenue"`
	Current        Scenario        `json:"current"`
	Simulated      Scenario        `json:"simulated"`
	Savings        decimal.Decimal `json:"savings"`
}
