package domain

import "time"

// Overview reúne todas as visões de um mesmo conjunto de filtros, usado no relatório e no export
type Overview struct {
	Filters       Filters          `json:"filters"`
	ReferenceDate time.Time        `json:"reference_date"`
	WindowStart   time.Time        `json:"window_start"`
	Counts        DatasetCounts    `json:"counts"`
	Metrics       MetricsBundle    `json:"metrics"`
	Windows       []WindowMetrics  `json:"windows"`
	Channels      []ChannelMetrics `json:"channels"`
	Shipping      []ShippingRow    `json:"shipping"`
	Ads           []AdsRow         `json:"ads"`
	Reasons       []ReasonRow      `json:"reasons"`
	SKUs          SKUReport        `json:"skus"`
	Quality       QualityReport    `json:"quality"`
}
