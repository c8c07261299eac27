package analyzing

import (
	"strings"

	"github.com/vfg2006/returns-insights-api/internal/domain"
	"golang.org/x/text/unicode/norm"
)

const (
	ReasonRefundToSeller  = "Reembolso ao Vendedor"
	ReasonRefundToBuyer   = "Reembolso ao Comprador"
	ReasonMediation       = "Finalizado via Mediação"
	ReasonCancelled       = "Venda Cancelada"
	ReasonNotCompleted    = "Devolução não realizada"
	ReasonReturnedToBuyer = "Produto devolvido ao comprador"
	ReasonReturnCompleted = "Devolução Concluída"
	ReasonOther           = "Outros Motivos de Devolução"
	maxReasonLabelRunes   = 50
)

var (
	healthyPhrases = []string{
		"colocamos o produto à venda novamente",
		"devolvemos o produto ao comprador",
		"reembolsamos o dinheiro",
	}
	criticalPhrases = []string{
		"cancelada",
		"mediação",
		"reclamação",
		"revisão",
	}
)

func lowerText(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

func containsAny(text string, phrases ...string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// ClassifyHealth classifica a devolução pelo texto de estado. Texto vazio ou desconhecido é Neutra.
func ClassifyHealth(rec domain.ReturnRecord) domain.HealthClass {
	text := lowerText(rec.StateText())
	switch {
	case text == "":
		return domain.HealthNeutral
	case containsAny(text, healthyPhrases...):
		return domain.HealthHealthy
	case containsAny(text, criticalPhrases...):
		return domain.HealthCritical
	default:
		return domain.HealthNeutral
	}
}

// DeriveReason retorna o motivo informado ou, quando vazio, infere um motivo pelo estado.
// A primeira regra que casar vence.
func DeriveReason(rec domain.ReturnRecord) string {
	if reason := strings.TrimSpace(rec.Reason); reason != "" {
		return reason
	}

	state := lowerText(rec.State)
	status := lowerText(rec.Status)

	switch {
	case strings.Contains(state, "te demos o dinheiro") || strings.Contains(status, "te demos o dinheiro"):
		return ReasonRefundToSeller
	case strings.Contains(state, "reembolso") || strings.Contains(status, "reembolsamos"):
		return ReasonRefundToBuyer
	case strings.Contains(state, "mediação") || strings.Contains(status, "mediação"):
		return ReasonMediation
	case strings.Contains(state, "cancelada") || strings.Contains(status, "cancelada"):
		return ReasonCancelled
	case containsAny(state, "não entregue", "não foi feita"):
		return ReasonNotCompleted
	case containsAny(state, "enviamos de volta", "devolvemos o produto ao comprador"):
		return ReasonReturnedToBuyer
	case containsAny(state, "devolvido", "devolução finalizada"):
		return ReasonReturnCompleted
	default:
		return ReasonOther
	}
}

// truncateLabel corta o rótulo em maxReasonLabelRunes caracteres
func truncateLabel(label string) string {
	runes := []rune(label)
	if len(runes) <= maxReasonLabelRunes {
		return label
	}
	return string(runes[:maxReasonLabelRunes])
}
