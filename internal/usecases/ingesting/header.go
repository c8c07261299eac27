package ingesting

import "strings"

// findHeaderRow retorna a primeira linha em que todas as chaves aparecem em alguma célula.
// Sem correspondência, assume a linha 0.
func findHeaderRow(rows [][]string, keys []string) int {
	for idx, row := range rows {
		if rowHasAllKeys(row, keys) {
			return idx
		}
	}
	return 0
}

func rowHasAllKeys(row []string, keys []string) bool {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = normalizeCell(cell)
	}

	for _, key := range keys {
		found := false
		for _, cell := range cells {
			if strings.Contains(cell, key) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// selectSalesSheet procura a aba "Vendas BR"; sem correspondência usa a primeira
func selectSalesSheet(sheets []string) string {
	for _, sheet := range sheets {
		lower := normalizeCell(sheet)
		if strings.Contains(lower, "vendas") && strings.Contains(lower, "br") {
			return sheet
		}
	}
	return sheets[0]
}

// selectReturnSheets escolhe as abas dos canais Matriz e Full pelo nome,
// caindo para a primeira e a segunda aba livres quando o nome não é encontrado.
func selectReturnSheets(sheets []string) (matriz string, full string) {
	for _, sheet := range sheets {
		lower := normalizeCell(sheet)
		switch {
		case matriz == "" && strings.Contains(lower, "matriz"):
			matriz = sheet
		case full == "" && strings.Contains(lower, "full"):
			full = sheet
		}
	}

	free := make([]string, 0, len(sheets))
	for _, sheet := range sheets {
		if sheet != matriz && sheet != full {
			free = append(free, sheet)
		}
	}

	if matriz == "" && len(free) > 0 {
		matriz, free = free[0], free[1:]
	}
	if full == "" && len(free) > 0 {
		full = free[0]
	}

	return matriz, full
}

// splitTable separa o cabeçalho das linhas de dados, descartando linhas totalmente vazias
func splitTable(rows [][]string, headerIdx int) ([]string, [][]string) {
	if headerIdx >= len(rows) {
		return nil, nil
	}

	header := make([]string, len(rows[headerIdx]))
	for i, h := range rows[headerIdx] {
		header[i] = strings.TrimSpace(h)
	}

	data := make([][]string, 0, len(rows)-headerIdx-1)
	for _, row := range rows[headerIdx+1:] {
		empty := true
		for _, cell := range row {
			if !isBlank(cell) {
				empty = false
				break
			}
		}
		if !empty {
			data = append(data, row)
		}
	}

	return header, data
}
