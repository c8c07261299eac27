package domain

type SalesQuality struct {
	Rows              int     `json:"rows"`
	MissingOrderIDPct float64 `json:"missing_order_id_pct"`
	MissingDatePct    float64 `json:"missing_date_pct"`
	MissingRevenuePct float64 `json:"missing_revenue_pct"`
	MissingSKUPct     float64 `json:"missing_sku_pct"`
}

type ReturnQuality struct {
	Rows             int     `json:"rows"`
	MissingStatePct  float64 `json:"missing_state_pct"`
	MissingReasonPct float64 `json:"missing_reason_pct"`
}

// QualityReport resume o preenchimento das planilhas carregadas
type QualityReport struct {
	Sales               SalesQuality  `json:"sales"`
	ChannelA            ReturnQuality `json:"channel_a"`
	ChannelB            ReturnQuality `json:"channel_b"`
	LogisticCostMissing bool          `json:"logistic_cost_missing"`
}
