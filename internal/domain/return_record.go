package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ReturnRecord é uma linha normalizada de uma das abas de devoluções
type ReturnRecord struct {
	OrderID            string          `json:"order_id"`
	Channel            Channel         `json:"channel"`
	State              string          `json:"state"`
	Status             string          `json:"status"`
	Reason             string          `json:"reason"`
	RefundAmount       decimal.Decimal `json:"refund_amount"`
	ReturnShippingCost decimal.Decimal `json:"return_shipping_cost"`
	ProductRevenue     decimal.Decimal `json:"product_revenue"`
	HasLogisticCost    bool            `json:"-"`
}

// StateText retorna o texto usado na classificação: o estado, ou a descrição do status quando o estado está vazio
func (r ReturnRecord) StateText() string {
	if strings.TrimSpace(r.State) != "" {
		return r.State
	}
	return r.Status
}

// ReturnColumns registra quais colunas existiam em uma aba de devoluções
type ReturnColumns struct {
	OrderID            bool `json:"order_id"`
	State              bool `json:"state"`
	Status             bool `json:"status"`
	Reason             bool `json:"reason"`
	RefundAmount       bool `json:"refund_amount"`
	ReturnShippingCost bool `json:"return_shipping_cost"`
	ProductRevenue     bool `json:"product_revenue"`
	LogisticCost       bool `json:"logistic_cost"`
}
