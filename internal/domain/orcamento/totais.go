package orcamento

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/galindoptbr/orcamentos-app/internal/domain/entity"
)

// ParseValor converte o texto livre de quantidade/valor unitário em decimal.
// Texto vazio ou não numérico conta como 0 — nunca falha, para que a
// pré-visualização continue renderizável com entrada parcial do utilizador.
func ParseValor(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// TotalTrabalho calcula o total de uma linha: parse(quantidade) * parse(valorUnitario).
func TotalTrabalho(t entity.OrcamentoTrabalho) decimal.Decimal {
	return ParseValor(t.Quantidade).Mul(ParseValor(t.ValorUnitario))
}

// TotalItem soma os totais de todos os trabalhos de um item (uma parte do processo).
func TotalItem(item entity.OrcamentoItem) decimal.Decimal {
	total := decimal.Zero
	for _, t := range item.Trabalhos {
		total = total.Add(TotalTrabalho(t))
	}
	return total
}

// TotalOrcamento soma os totais de todos os itens. É o cálculo autoritativo:
// executa-se antes de cada persistência e o campo Total gravado tem de ser
// igual a este valor no momento do save.
func TotalOrcamento(o *entity.Orcamento) decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Itens {
		total = total.Add(TotalItem(item))
	}
	return total
}
