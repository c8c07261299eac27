package analyzing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/returns-insights-api/internal/domain"
)

func TestClassifyHealth(t *testing.T) {
	tests := []struct {
		name   string
		state  string
		status string
		want   domain.HealthClass
	}{
		{"produto revendido", "Colocamos o produto à venda novamente", "", domain.HealthHealthy},
		{"devolvido ao comprador", "Devolvemos o produto ao comprador", "", domain.HealthHealthy},
		{"reembolso concluído", "Reembolsamos o dinheiro ao comprador", "", domain.HealthHealthy},
		{"venda cancelada", "Venda cancelada", "", domain.HealthCritical},
		{"em mediação", "Em mediação com o comprador", "", domain.HealthCritical},
		{"reclamação aberta", "Reclamação aberta", "", domain.HealthCritical},
		{"em revisão", "Produto em revisão", "", domain.HealthCritical},
		{"estado desconhecido", "A caminho", "", domain.HealthNeutral},
		{"estado vazio", "", "", domain.HealthNeutral},
		{"estado vazio usa status", "", "Venda cancelada pelo comprador", domain.HealthCritical},
		{"estado tem prioridade sobre status", "A caminho", "Venda cancelada", domain.HealthNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := domain.ReturnRecord{State: tt.state, Status: tt.status}
			assert.Equal(t, tt.want, ClassifyHealth(rec))
		})
	}
}

func TestDeriveReason(t *testing.T) {
	tests := []struct {
		name string
		rec  domain.ReturnRecord
		want string
	}{
		{"motivo informado", domain.ReturnRecord{Reason: "  Produto com defeito ", State: "Venda cancelada"}, "Produto com defeito"},
		{"reembolso ao vendedor", domain.ReturnRecord{State: "Te demos o dinheiro"}, ReasonRefundToSeller},
		{"reembolso ao vendedor pelo status", domain.ReturnRecord{Status: "Te demos o dinheiro da venda"}, ReasonRefundToSeller},
		{"reembolso ao comprador", domain.ReturnRecord{State: "Reembolso para o comprador"}, ReasonRefundToBuyer},
		{"reembolsamos no status", domain.ReturnRecord{Status: "Reembolsamos o comprador"}, ReasonRefundToBuyer},
		{"mediação", domain.ReturnRecord{State: "Finalizada em mediação"}, ReasonMediation},
		{"cancelada", domain.ReturnRecord{Status: "Venda cancelada"}, ReasonCancelled},
		{"não entregue", domain.ReturnRecord{State: "Devolução não entregue"}, ReasonNotCompleted},
		{"não foi feita", domain.ReturnRecord{State: "A devolução não foi feita"}, ReasonNotCompleted},
		{"enviamos de volta", domain.ReturnRecord{State: "Enviamos de volta ao comprador"}, ReasonReturnedToBuyer},
		{"devolvemos ao comprador", domain.ReturnRecord{State: "Devolvemos o produto ao comprador"}, ReasonReturnedToBuyer},
		{"devolvido", domain.ReturnRecord{State: "Produto devolvido"}, ReasonReturnCompleted},
		{"devolução finalizada", domain.ReturnRecord{State: "Devolução finalizada"}, ReasonReturnCompleted},
		{"sem correspondência", domain.ReturnRecord{State: "A caminho"}, ReasonOther},
		{"tudo vazio", domain.ReturnRecord{}, ReasonOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveReason(tt.rec))
		})
	}
}

func TestTruncateLabel(t *testing.T) {
	long := strings.Repeat("ã", 60)
	assert.Equal(t, 50, len([]rune(truncateLabel(long))))
	assert.Equal(t, "curto", truncateLabel("curto"))
}

func TestBuildReturnIndex(t *testing.T) {
	a := []domain.ReturnRecord{newReturn("1", domain.ChannelA, "10"), newReturn("", domain.ChannelA, "5")}
	b := []domain.ReturnRecord{newReturn("1", domain.ChannelB, "20"), newReturn("2", domain.ChannelB, "30")}

	idx := BuildReturnIndex(a, nil, b)

	assert.Len(t, idx, 2)
	assert.Len(t, idx.Lookup("1"), 2)
	assert.True(t, idx.Has("2"))
	assert.False(t, idx.Has(""))
	assert.False(t, idx.Has("3"))
}

func TestResolveRefund(t *testing.T) {
	tests := []struct {
		name        string
		refund      string
		saleRevenue string
		rowRevenue  string
		want        string
	}{
		{"usa o reembolso", "-80", "120", "90", "80"},
		{"reembolso zero usa a receita da venda", "0", "120", "90", "120"},
		{"sem receita na venda usa a linha da devolução", "0", "0", "90", "90"},
		{"tudo zero", "0", "0", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := domain.ReturnRecord{RefundAmount: dec(tt.refund), ProductRevenue: dec(tt.rowRevenue)}
			sale := domain.SaleRecord{ProductRevenue: dec(tt.saleRevenue)}
			assert.True(t, dec(tt.want).Equal(ResolveRefund(rec, sale)), "got %s", ResolveRefund(rec, sale))
		})
	}
}
