package ingesting

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/returns-insights-api/infrastructure/spreadsheet"
	"github.com/vfg2006/returns-insights-api/infrastructure/spreadsheet/mocks"
	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var loadTime = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func salesRows() [][]string {
	return [][]string{
		{"Relatório de vendas"},
		{},
		{"N.º de venda ", "Data da venda", "SKU", "Unidades", "Receita por produtos (BRL)", "Receita por envio (BRL)", "Forma de entrega", "Venda por publicidade"},
		{"2000001", "24 de fevereiro de 2026 22:51 hs.", "ABC-1", "2", "120,00", "15,50", "Mercado Envios Full", "Sim"},
		{"2000002", "10 de janeiro de 2026 10:00 hs.", "", "", "", "", "", "Não"},
		{"2000003.0", "sem data", "XYZ-9", "1", "R$ 1.000,00", "0", "Correios", ""},
	}
}

func returnsMatrizRows() [][]string {
	return [][]string{
		{"N.º de venda", "Estado", "Descrição do status", "Motivo do resultado", "Cancelamentos e reembolsos (BRL)", "Custos de envio (BRL)"},
		{"2000001", "Reembolsamos o dinheiro ao comprador", "", "Produto com defeito", "0", "-12,30"},
	}
}

func returnsFullRows() [][]string {
	return [][]string{
		{"N.º de venda", "Estado", "Motivo do resultado", "Cancelamentos e reembolsos (BRL)", "Custo de envio com base nas medidas e peso declarados"},
		{"2000003", "Venda cancelada", "", "-1000", "25"},
		{"2000003", "Em mediação", "", "abc", ""},
	}
}

func newTestService(sales, returns spreadsheet.Workbook, openErr error) *Service {
	return &Service{
		open: func(name string, r io.Reader) (spreadsheet.Workbook, error) {
			if openErr != nil && strings.HasPrefix(name, "vendas") {
				return nil, openErr
			}
			if strings.HasPrefix(name, "vendas") {
				return sales, nil
			}
			return returns, nil
		},
		now: func() time.Time { return loadTime },
	}
}

func TestService_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	salesWb := mocks.NewMockWorkbook(ctrl)
	salesWb.EXPECT().SheetNames().Return([]string{"Resumo", "Vendas BR"})
	salesWb.EXPECT().Rows("Vendas BR").Return(salesRows(), nil)
	salesWb.EXPECT().Close().Return(nil)

	returnsWb := mocks.NewMockWorkbook(ctrl)
	returnsWb.EXPECT().SheetNames().Return([]string{"Devoluções Full", "Devoluções Matriz"})
	returnsWb.EXPECT().Rows("Devoluções Matriz").Return(returnsMatrizRows(), nil)
	returnsWb.EXPECT().Rows("Devoluções Full").Return(returnsFullRows(), nil)
	returnsWb.EXPECT().Close().Return(nil)

	service := newTestService(salesWb, returnsWb, nil)

	ds, err := service.Load(context.Background(),
		Upload{Name: "vendas.xlsx", Reader: strings.NewReader("")},
		Upload{Name: "devolucoes.xlsx", Reader: strings.NewReader("")},
	)
	require.NoError(t, err)
	require.NotNil(t, ds)

	// Vendas
	require.Len(t, ds.Sales, 3)
	first := ds.Sales[0]
	assert.Equal(t, "2000001", first.OrderID)
	assert.Equal(t, "ABC-1", first.SKU)
	assert.Equal(t, 2, first.Units)
	assert.True(t, decimal.RequireFromString("120").Equal(first.ProductRevenue))
	assert.True(t, decimal.RequireFromString("15.5").Equal(first.ShippingRevenue))
	assert.True(t, first.Advertised)
	assert.False(t, first.RevenueMissing)
	assert.Equal(t, "Mercado Envios Full", first.ShippingMethod)

	second := ds.Sales[1]
	assert.Equal(t, 1, second.Units)
	assert.True(t, second.RevenueMissing)
	assert.False(t, second.Advertised)
	assert.Equal(t, "", second.SKU)

	third := ds.Sales[2]
	assert.Equal(t, "2000003", third.OrderID)
	assert.Nil(t, third.SaleDate)
	assert.True(t, decimal.RequireFromString("1000").Equal(third.ProductRevenue))

	assert.True(t, ds.SalesColumns.ShippingMethod)
	assert.True(t, ds.SalesColumns.Advertised)
	assert.Equal(t, time.Date(2026, time.February, 24, 22, 51, 0, 0, time.UTC), ds.ReferenceDate)
	assert.Equal(t, loadTime, ds.LoadedAt)

	// Devoluções
	require.Len(t, ds.ReturnsA, 1)
	assert.Equal(t, domain.ChannelA, ds.ReturnsA[0].Channel)
	assert.True(t, ds.ReturnsA[0].RefundAmount.IsZero())
	assert.True(t, decimal.RequireFromString("-12.3").Equal(ds.ReturnsA[0].ReturnShippingCost))
	assert.True(t, ds.ReturnColumnsA.Reason)
	assert.False(t, ds.ReturnColumnsA.LogisticCost)

	require.Len(t, ds.ReturnsB, 2)
	assert.Equal(t, domain.ChannelB, ds.ReturnsB[0].Channel)
	assert.True(t, ds.ReturnsB[0].HasLogisticCost)
	assert.False(t, ds.ReturnsB[1].HasLogisticCost)
	assert.True(t, ds.ReturnsB[1].RefundAmount.IsZero())
	assert.True(t, ds.ReturnColumnsB.LogisticCost)

	// Amostra bruta com colunas numéricas convertidas
	assert.Equal(t, "N.º de venda", ds.SalesRaw.Header[0])
	assert.Equal(t, "120", ds.SalesRaw.Rows[0][4])
	assert.Equal(t, "0", ds.ReturnsRawB.Rows[1][3])
}

func TestService_Load_SalesOpenError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	returnsWb := mocks.NewMockWorkbook(ctrl)
	returnsWb.EXPECT().SheetNames().Return([]string{"Matriz"}).AnyTimes()
	returnsWb.EXPECT().Rows(gomock.Any()).Return(returnsMatrizRows(), nil).AnyTimes()
	returnsWb.EXPECT().Close().Return(nil).AnyTimes()

	service := newTestService(nil, returnsWb, spreadsheet.ErrUnsupportedFormat)

	ds, err := service.Load(context.Background(),
		Upload{Name: "vendas.pdf", Reader: strings.NewReader("")},
		Upload{Name: "devolucoes.xlsx", Reader: strings.NewReader("")},
	)
	assert.Nil(t, ds)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSalesFile))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, apiErrors.ErrUnsupportedFile, parseErr.Code)
	assert.Equal(t, "vendas.pdf", parseErr.File)
}

func TestService_Load_ReturnsWithoutSheets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	salesWb := mocks.NewMockWorkbook(ctrl)
	salesWb.EXPECT().SheetNames().Return([]string{"Vendas BR"}).AnyTimes()
	salesWb.EXPECT().Rows("Vendas BR").Return(salesRows(), nil).AnyTimes()
	salesWb.EXPECT().Close().Return(nil).AnyTimes()

	returnsWb := mocks.NewMockWorkbook(ctrl)
	returnsWb.EXPECT().SheetNames().Return(nil)
	returnsWb.EXPECT().Close().Return(nil)

	service := newTestService(salesWb, returnsWb, nil)

	_, err := service.Load(context.Background(),
		Upload{Name: "vendas.xlsx", Reader: strings.NewReader("")},
		Upload{Name: "devolucoes.xlsx", Reader: strings.NewReader("")},
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReturnsFile))
	assert.True(t, errors.Is(err, ErrNoSheets))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, apiErrors.ErrParseReturns, parseErr.Code)
}

func TestService_Load_EmptySalesSheet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	salesWb := mocks.NewMockWorkbook(ctrl)
	salesWb.EXPECT().SheetNames().Return([]string{"Plan1"})
	salesWb.EXPECT().Rows("Plan1").Return([][]string{}, nil)
	salesWb.EXPECT().Close().Return(nil)

	returnsWb := mocks.NewMockWorkbook(ctrl)
	returnsWb.EXPECT().SheetNames().Return([]string{"Matriz"}).AnyTimes()
	returnsWb.EXPECT().Rows(gomock.Any()).Return(returnsMatrizRows(), nil).AnyTimes()
	returnsWb.EXPECT().Close().Return(nil).AnyTimes()

	service := newTestService(salesWb, returnsWb, nil)

	_, err := service.Load(context.Background(),
		Upload{Name: "vendas.xlsx", Reader: strings.NewReader("")},
		Upload{Name: "devolucoes.xlsx", Reader: strings.NewReader("")},
	)
	assert.True(t, errors.Is(err, ErrEmptySheet))
}
