package domain

// Channel identifica a origem logística de uma devolução
type Channel string

const (
	ChannelA Channel = "A" // Matriz, envio pelo próprio vendedor
	ChannelB Channel = "B" // Full, envio pela plataforma
)

// Label retorna o nome usado nos relatórios
func (c Channel) Label() string {
	switch c {
	case ChannelA:
		return "Matriz"
	case ChannelB:
		return "Full"
	default:
		return string(c)
	}
}

// ChannelFilter seleciona quais canais de devolução entram na análise
type ChannelFilter string

const (
	ChannelAll   ChannelFilter = "all"
	ChannelOnlyA ChannelFilter = "A"
	ChannelOnlyB ChannelFilter = "B"
)

func (f ChannelFilter) Includes(c Channel) bool {
	switch f {
	case ChannelOnlyA:
		return c == ChannelA
	case ChannelOnlyB:
		return c == ChannelB
	default:
		return true
	}
}
