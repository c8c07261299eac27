package domain

// ReturnIndex agrupa os registros de devolução pelo número da venda
type ReturnIndex map[string][]ReturnRecord

// Has indica se o pedido tem ao menos uma devolução. Pedido sem número nunca casa.
func (idx ReturnIndex) Has(orderID string) bool {
	if orderID == "" {
		return false
	}
	_, ok := idx[orderID]
	return ok
}

func (idx ReturnIndex) Lookup(orderID string) []ReturnRecord {
	if orderID == "" {
		return nil
	}
	return idx[orderID]
}
