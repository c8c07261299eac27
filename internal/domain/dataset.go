package domain

import "time"

// RawTable guarda o conteúdo bruto de uma aba, usado nas amostras do export
type RawTable struct {
	Header []string
	Rows   [][]string
	// Numeric marca as colunas convertidas para número, na ordem do Header
	Numeric []bool
}

// IsNumeric indica se a coluna foi convertida para número
func (t RawTable) IsNumeric(col int) bool {
	return col < len(t.Numeric) && t.Numeric[col]
}

// Dataset é o resultado tipado do parse das duas planilhas.
// Não deve ser alterado depois de construído.
type Dataset struct {
	Sales           []SaleRecord
	ReturnsA        []ReturnRecord
	ReturnsB        []ReturnRecord
	SalesColumns    SalesColumns
	ReturnColumnsA  ReturnColumns
	ReturnColumnsB  ReturnColumns
	SalesRaw        RawTable
	ReturnsRawA     RawTable
	ReturnsRawB     RawTable
	ReferenceDate   time.Time
	LoadedAt        time.Time
	SalesFileName   string
	ReturnsFileName string
}

// Returns concatena as devoluções dos dois canais em um novo slice
func (d *Dataset) Returns() []ReturnRecord {
	all := make([]ReturnRecord, 0, len(d.ReturnsA)+len(d.ReturnsB))
	all = append(all, d.ReturnsA...)
	all = append(all, d.ReturnsB...)
	return all
}

// HasReasonColumn indica se alguma das abas de devolução tem a coluna de motivo
func (d *Dataset) HasReasonColumn() bool {
	return d.ReturnColumnsA.Reason || d.ReturnColumnsB.Reason
}

type DatasetCounts struct {
	Sales           int       `json:"sales"`
	ReturnsA        int       `json:"returns_a"`
	ReturnsB        int       `json:"returns_b"`
	ReferenceDate   time.Time `json:"reference_date"`
	LoadedAt        time.Time `json:"loaded_at"`
	SalesFileName   string    `json:"sales_file_name"`
	ReturnsFileName string    `json:"returns_file_name"`
}

func (d *Dataset) Counts() DatasetCounts {
	return DatasetCounts{
		Sales:           len(d.Sales),
		ReturnsA:        len(d.ReturnsA),
		ReturnsB:        len(d.ReturnsB),
		ReferenceDate:   d.ReferenceDate,
		LoadedAt:        d.LoadedAt,
		SalesFileName:   d.SalesFileName,
		ReturnsFileName: d.ReturnsFileName,
	}
}
