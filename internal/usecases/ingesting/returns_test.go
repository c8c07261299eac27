package ingesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/returns-insights-api/infrastructure/spreadsheet/mocks"
	"github.com/vfg2006/returns-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestReadReturnSheet_HeaderRow(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]string
		orderID string
		hasCols bool
	}{
		{
			name: "Cabeçalho na primeira linha",
			rows: [][]string{
				{"N.º de venda", "Estado"},
				{"2000001", "Venda cancelada"},
			},
			orderID: "2000001",
			hasCols: true,
		},
		{
			name: "Título acima do cabeçalho",
			rows: [][]string{
				{"Devoluções Full"},
				{},
				{"N.º de venda", "Estado"},
				{"2000002", "Venda cancelada"},
			},
			orderID: "2000002",
			hasCols: true,
		},
		{
			name: "Sem número de venda usa a primeira linha",
			rows: [][]string{
				{"Pedido", "Estado"},
				{"2000003", "Venda cancelada"},
			},
			orderID: "",
			hasCols: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			wb := mocks.NewMockWorkbook(ctrl)
			wb.EXPECT().Rows("Full").Return(tt.rows, nil)

			table, err := readReturnSheet(wb, "Full", domain.ChannelB)
			require.NoError(t, err)
			require.Len(t, table.records, 1)

			assert.Equal(t, tt.hasCols, table.columns.OrderID)
			assert.True(t, table.columns.State)
			assert.Equal(t, tt.orderID, table.records[0].OrderID)
			assert.Equal(t, domain.ChannelB, table.records[0].Channel)
		})
	}
}
