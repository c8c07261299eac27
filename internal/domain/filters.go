package domain

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// WindowOptions são as janelas de análise aceitas, em dias
var WindowOptions = []int{30, 60, 90, 120, 150, 180}

const (
	DefaultWindowDays  = 180
	DefaultTopSKUCount = 10
)

type Filters struct {
	WindowDays    int           `json:"window_days"`
	Channel       ChannelFilter `json:"channel"`
	AdsOnly       bool          `json:"ads_only"`
	TopSKUs       bool          `json:"top_skus"`
	TopSKUCount   int           `json:"top_sku_count,omitempty"`
	ReferenceDate *time.Time    `json:"reference_date,omitempty"` // sobrescreve a data de referência do dataset
}

func DefaultFilters() Filters {
	return Filters{
		WindowDays:  DefaultWindowDays,
		Channel:     ChannelAll,
		TopSKUCount: DefaultTopSKUCount,
	}
}

func (f Filters) Validate() error {
	windows := make([]interface{}, 0, len(WindowOptions))
	for _, w := range WindowOptions {
		windows = append(windows, w)
	}

	return validation.ValidateStruct(&f,
		validation.Field(&f.WindowDays, validation.Required, validation.In(windows...)),
		validation.Field(&f.Channel, validation.Required, validation.In(ChannelAll, ChannelOnlyA, ChannelOnlyB)),
		validation.Field(&f.TopSKUCount, validation.Min(1)),
	)
}

// TopN retorna a quantidade de SKUs usada pelo filtro de top SKUs
func (f Filters) TopN() int {
	if f.TopSKUCount <= 0 {
		return DefaultTopSKUCount
	}
	return f.TopSKUCount
}
