package analyzing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/returns-insights-api/internal/domain"
)

func TestComputeMetrics_EndToEnd(t *testing.T) {
	sales := make([]domain.SaleRecord, 0, 100)
	for i := 0; i < 100; i++ {
		sales = append(sales, newSale(fmt.Sprintf("%d", 1000+i), "SKU", "100"))
	}

	var returnsA, returnsB []domain.ReturnRecord
	for i := 0; i < 10; i++ {
		order := fmt.Sprintf("%d", 1000+i)
		if i%2 == 0 {
			returnsA = append(returnsA, newReturn(order, domain.ChannelA, "50"))
		} else {
			returnsB = append(returnsB, newReturn(order, domain.ChannelB, "50"))
		}
	}
	// pedido com dois registros de devolução
	returnsB = append(returnsB, newReturn("1000", domain.ChannelB, "50"))

	index := BuildReturnIndex(returnsA, returnsB)
	bundle := ComputeMetrics(sales, index, DefaultMetricsOptions())

	assert.Equal(t, 100, bundle.TotalSales)
	assert.Equal(t, 100, bundle.TotalUnits)
	assert.Equal(t, 10, bundle.ReturnedOrders)
	assert.InDelta(t, 0.1, bundle.ReturnRate, 1e-9)

	expected := dec("0")
	for _, rec := range append(returnsA, returnsB...) {
		expected = expected.Add(ResolveRefund(rec, domain.SaleRecord{}))
	}
	assert.True(t, expected.Neg().Equal(bundle.FinancialImpact), "got %s", bundle.FinancialImpact)
	assert.True(t, dec("-550").Equal(bundle.FinancialImpact))
	assert.True(t, bundle.TotalLoss.Equal(bundle.FinancialImpact))

	// receita devolvida conta uma vez por pedido
	assert.True(t, dec("1000").Equal(bundle.ReturnedRevenue), "got %s", bundle.ReturnedRevenue)
	assert.Equal(t, 11, bundle.Healthy+bundle.Critical+bundle.Neutral)
}

func TestComputeMetrics_RefundFallback(t *testing.T) {
	sales := []domain.SaleRecord{newSale("1", "A", "120.00")}
	index := BuildReturnIndex([]domain.ReturnRecord{newReturn("1", domain.ChannelA, "0")})

	bundle := ComputeMetrics(sales, index, DefaultMetricsOptions())

	assert.True(t, dec("-120").Equal(bundle.FinancialImpact), "got %s", bundle.FinancialImpact)
}

func TestComputeMetrics_Empty(t *testing.T) {
	bundle := ComputeMetrics(nil, BuildReturnIndex(), DefaultMetricsOptions())

	assert.Equal(t, 0, bundle.TotalSales)
	assert.Equal(t, 0.0, bundle.ReturnRate)
	assert.True(t, bundle.FinancialImpact.IsZero())
	assert.Equal(t, domain.PartialLossShippingCost, bundle.PartialLossStrategy)
}

func TestComputeMetrics_PartialLoss(t *testing.T) {
	sales := []domain.SaleRecord{newSale("1", "A", "100"), newSale("2", "B", "100")}
	r1 := newReturn("1", domain.ChannelA, "-100")
	r1.ReturnShippingCost = dec("-12.50")
	r2 := newReturn("2", domain.ChannelB, "50")
	r2.ReturnShippingCost = dec("7.50")
	index := BuildReturnIndex([]domain.ReturnRecord{r1, r2})

	tests := []struct {
		name     string
		opts     MetricsOptions
		want     string
		strategy domain.PartialLossStrategy
	}{
		{"custo de envio", DefaultMetricsOptions(), "-20", domain.PartialLossShippingCost},
		{"percentual do reembolso", MetricsOptions{PartialLoss: domain.PartialLossRefundRatio, PartialLossRatio: 0.22}, "-33", domain.PartialLossRefundRatio},
		{"estratégia desconhecida usa custo de envio", MetricsOptions{PartialLoss: "outra"}, "-20", domain.PartialLossShippingCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle := ComputeMetrics(sales, index, tt.opts)
			assert.True(t, dec(tt.want).Equal(bundle.PartialLoss), "got %s", bundle.PartialLoss)
			assert.Equal(t, tt.strategy, bundle.PartialLossStrategy)
			assert.True(t, dec("-150").Equal(bundle.FinancialImpact))
		})
	}
}

func TestComputeMetrics_HealthTally(t *testing.T) {
	sales := []domain.SaleRecord{newSale("1", "A", "10"), newSale("2", "A", "10"), newSale("3", "A", "10")}
	healthy := newReturn("1", domain.ChannelA, "10")
	healthy.State = "Reembolsamos o dinheiro"
	critical := newReturn("2", domain.ChannelA, "20")
	critical.State = "Venda cancelada"
	neutral := newReturn("3", domain.ChannelA, "30")

	bundle := ComputeMetrics(sales, BuildReturnIndex([]domain.ReturnRecord{healthy, critical, neutral}), DefaultMetricsOptions())

	assert.Equal(t, 1, bundle.Healthy)
	assert.Equal(t, 1, bundle.Critical)
	assert.Equal(t, 1, bundle.Neutral)
	assert.True(t, dec("-10").Equal(bundle.HealthyImpact))
	assert.True(t, dec("-20").Equal(bundle.CriticalImpact))
	assert.True(t, dec("-60").Equal(bundle.FinancialImpact))
}

func TestComputeMetrics_RateProperties(t *testing.T) {
	ds := propertyDataset()

	for _, window := range domain.WindowOptions {
		for _, channel := range []domain.ChannelFilter{domain.ChannelAll, domain.ChannelOnlyA, domain.ChannelOnlyB} {
			for _, adsOnly := range []bool{false, true} {
				f := domain.DefaultFilters()
				f.WindowDays = window
				f.Channel = channel
				f.AdsOnly = adsOnly

				view := ApplyFilters(ds, f)
				bundle := ComputeMetrics(view.Sales, view.Index, DefaultMetricsOptions())

				require.GreaterOrEqual(t, bundle.ReturnRate, 0.0)
				require.LessOrEqual(t, bundle.ReturnRate, 1.0)
				if bundle.TotalSales == 0 {
					require.Equal(t, 0.0, bundle.ReturnRate)
				} else {
					require.InDelta(t, float64(bundle.ReturnedOrders)/float64(bundle.TotalSales), bundle.ReturnRate, 1e-12)
				}

				// pedidos devolvidos distintos batem com as chaves do índice presentes nas vendas
				keys := make(map[string]struct{})
				for _, sale := range view.Sales {
					if view.Index.Has(sale.OrderID) {
						keys[sale.OrderID] = struct{}{}
					}
				}
				require.Equal(t, len(keys), bundle.ReturnedOrders)
				require.True(t, bundle.FinancialImpact.LessThanOrEqual(dec("0")))
			}
		}
	}
}

// propertyDataset espalha vendas por 200 dias com devoluções nos dois canais
func propertyDataset() *domain.Dataset {
	var sales []domain.SaleRecord
	var returnsA, returnsB []domain.ReturnRecord
	for i := 0; i < 200; i++ {
		order := fmt.Sprintf("%d", 5000+i)
		s := newSale(order, fmt.Sprintf("SKU-%d", i%7), "80")
		s.SaleDate = daysAgo(i)
		s.Advertised = i%3 == 0
		sales = append(sales, s)

		switch {
		case i%5 == 0:
			returnsA = append(returnsA, newReturn(order, domain.ChannelA, "-40"))
		case i%7 == 0:
			returnsB = append(returnsB, newReturn(order, domain.ChannelB, "0"), newReturn(order, domain.ChannelB, "15"))
		}
	}
	// venda repetida do mesmo pedido e devolução sem venda
	sales = append(sales, sales[0])
	returnsA = append(returnsA, newReturn("999999", domain.ChannelA, "10"))

	return newDataset(sales, returnsA, returnsB)
}
