package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord é uma linha normalizada da planilha de vendas
type SaleRecord struct {
	OrderID         string          `json:"order_id"`
	SaleDate        *time.Time      `json:"sale_date,omitempty"`
	SKU             string          `json:"sku"`
	Units           int             `json:"units"`
	ProductRevenue  decimal.Decimal `json:"product_revenue"`
	ShippingRevenue decimal.Decimal `json:"shipping_revenue"`
	RevenueMissing  bool            `json:"-"` // célula de receita vazia ou inválida
	ShippingMethod  string          `json:"shipping_method"`
	Advertised      bool            `json:"advertised"`
}

func (s SaleRecord) TotalRevenue() decimal.Decimal {
	return s.ProductRevenue.Add(s.ShippingRevenue)
}

// InWindow indica se a data da venda está entre start e end (inclusive).
// Vendas sem data nunca entram em uma janela.
func (s SaleRecord) InWindow(start, end time.Time) bool {
	if s.SaleDate == nil {
		return false
	}
	return !s.SaleDate.Before(start) && !s.SaleDate.After(end)
}

// SalesColumns registra quais colunas opcionais existiam na planilha de vendas
type SalesColumns struct {
	OrderID         bool `json:"order_id"`
	SaleDate        bool `json:"sale_date"`
	SKU             bool `json:"sku"`
	Units           bool `json:"units"`
	ProductRevenue  bool `json:"product_revenue"`
	ShippingRevenue bool `json:"shipping_revenue"`
	ShippingMethod  bool `json:"shipping_method"`
	Advertised      bool `json:"advertised"`
}
