package domain

import "github.com/shopspring/decimal"

const (
	AdsAdvertised = "Com Publicidade"
	AdsOrganic    = "Orgânico"
)

type ShippingRow struct {
	Method  string          `json:"method"`
	Sales   int             `json:"sales"`
	Returns int             `json:"returns"`
	RatePct float64         `json:"rate_pct"`
	Impact  decimal.Decimal `json:"impact"`
}

type AdsRow struct {
	Kind    string          `json:"kind"`
	Sales   int             `json:"sales"`
	Returns int             `json:"returns"`
	RatePct float64         `json:"rate_pct"`
	Revenue decimal.Decimal `json:"revenue"`
	Impact  decimal.Decimal `json:"impact"`
}

type ReasonRow struct {
	Reason  string  `json:"reason"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// RiskClass classifica um SKU pela taxa de devolução
type RiskClass string

const (
	RiskCritical  RiskClass = "Crítica"
	RiskAttention RiskClass = "Atenção"
	RiskNeutral   RiskClass = "Neutra"
)

type SKURow struct {
	SKU        string          `json:"sku"`
	Sales      int             `json:"sales"`
	Returns    int             `json:"returns"`
	RatePct    float64         `json:"rate_pct"`
	Impact     decimal.Decimal `json:"impact"`
	Refund     decimal.Decimal `json:"refund"`
	ReturnCost decimal.Decimal `json:"return_cost"`
	RiskScore  float64         `json:"risk_score"`
	Class      RiskClass       `json:"class"`
}

// SKUSort define a ordenação da visão de SKUs
type SKUSort string

const (
	SKUSortReturns SKUSort = "returns"
	SKUSortRate    SKUSort = "rate"
	SKUSortLoss    SKUSort = "loss"
	SKUSortRisk    SKUSort = "risk"
)

type SKUReport struct {
	Rows         []SKURow `json:"rows"`
	TotalReturns int      `json:"total_returns"`
	Top10Share   float64  `json:"top10_share"`
	Top20Share   float64  `json:"top20_share"`
}
