package orcamento

import (
	"fmt"
	"strings"

	"github.com/galindoptbr/orcamentos-app/internal/domain/entity"
)

// Identidade fixa da empresa no cabeçalho do documento (não é configurável).
const (
	EmpresaNome     = "Paulo Jorge Peixoto Pinto"
	EmpresaMorada   = "Rua Do Monte Nº16 4760-196 Gavião, V.N.Famalicão"
	EmpresaNIF      = "231376960"
	EmpresaTelefone = "916918979"
	EmpresaEmail    = "re9interiores@outlook.pt"
)

// Rodapé fixo, anexado incondicionalmente a todos os documentos.
const (
	RodapeIVA        = "Acresce IVA à taxa legal"
	RodapePagamento  = "50% do valor total no início da obra, 30% antes das pinturas e o restante no final da mesma."
	RodapeValidade   = "Orçamento válido por 30 dias"
	DescricaoSemNome = "Trabalho sem nome"

	// NumeroRascunho aparece no lugar do número quando o orçamento ainda não foi salvo.
	NumeroRascunho = "RASCUNHO"
)

// LinhaDocumento é uma linha da tabela, já numerada e formatada para exibição.
type LinhaDocumento struct {
	Numero        string // numeração hierárquica: "2.1", "2.2", ...
	Descricao     string
	Unidade       string
	Quantidade    string // texto cru tal como editado
	ValorUnitario string // 2 casas decimais
	Total         string // 2 casas decimais
}

// SeccaoDocumento é uma secção do documento (uma parte do processo).
type SeccaoDocumento struct {
	Numero         string // sequencial 1-based pela posição: "1", "2", ...
	Nome           string
	Linhas         []LinhaDocumento
	Subtotal       string // 2 casas decimais
	RotuloSubtotal string // "Total {nome da secção}"
}

// Documento é o modelo de renderização: a projeção de um Orcamento em
// secções numeradas com subtotais e total geral, independente do backend
// de PDF. Toda a lógica de numeração e formatação vive aqui para poder ser
// testada sem gerar bytes.
type Documento struct {
	Numero     string // número do orçamento ou NumeroRascunho
	Data       string // dd/mm/aaaa
	Cliente    entity.Cliente
	Seccoes    []SeccaoDocumento
	TotalGeral string // 2 casas decimais, sempre presente (0.00 sem secções)
}

// NovoDocumento projeta um orçamento (completo ou parcial) no modelo de
// renderização. Tolera orçamentos incompletos: itens vazios, cliente vazio e
// numéricos não parseáveis produzem zeros/placeholders, nunca erro.
//
// As secções seguem a ordem de Itens e as linhas a ordem de Trabalhos; a
// numeração deriva exclusivamente da posição na sequência, nunca de IDs.
func NovoDocumento(o *entity.Orcamento) Documento {
	doc := Documento{
		Numero:  NumeroRascunho,
		Cliente: o.Cliente,
	}
	if o.Numero != "" {
		doc.Numero = o.Numero
	}
	if !o.Data.IsZero() {
		doc.Data = o.Data.Format("02/01/2006")
	}

	for i, item := range o.Itens {
		sec := SeccaoDocumento{
			Numero:         fmt.Sprintf("%d", i+1),
			Nome:           item.ParteNome,
			RotuloSubtotal: "Total " + item.ParteNome,
		}
		for j, t := range item.Trabalhos {
			sec.Linhas = append(sec.Linhas, LinhaDocumento{
				Numero:        fmt.Sprintf("%d.%d", i+1, j+1),
				Descricao:     descricaoOuPlaceholder(t.Descricao),
				Unidade:       t.Unidade,
				Quantidade:    t.Quantidade,
				ValorUnitario: ParseValor(t.ValorUnitario).StringFixed(2),
				Total:         TotalTrabalho(t).StringFixed(2),
			})
		}
		sec.Subtotal = TotalItem(item).StringFixed(2)
		doc.Seccoes = append(doc.Seccoes, sec)
	}

	doc.TotalGeral = o.Total.StringFixed(2)
	return doc
}

func descricaoOuPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return DescricaoSemNome
	}
	return s
}
