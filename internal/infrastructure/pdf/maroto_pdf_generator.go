// Package pdf implementa a geração do documento de orçamento em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: ORÇAMENTO Nº + Data  │  Empresa + NIF + contactos  │
//	│  CLIENTE: Nome / Morada / NIF                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  [banda amarela]  1. NOME DA SECÇÃO                         │
//	│  ITEM | DESIGNAÇÃO DOS TRABALHOS | UNID. | QUANT. | UNIT. | TOTAL │
//	│  1.1  | ...                                                 │
//	│                               Total da secção:     X.XX €   │
//	│  ...                                                        │
//	│  TOTAL:                                            X.XX €   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: IVA + condições de pagamento + validade            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appo "github.com/galindoptbr/orcamentos-app/internal/application/orcamento"
	"github.com/galindoptbr/orcamentos-app/internal/domain/orcamento"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorDark   = &props.Color{Red: 40, Green: 40, Blue: 40}
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorYellow = &props.Color{Red: 250, Green: 204, Blue: 21}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appo.DocumentoPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa orcamento.DocumentoPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GerarPDF gera o PDF do documento e devolve os seus bytes.
func (g *MarotoPDFGenerator) GerarPDF(_ context.Context, doc orcamento.Documento) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orçamento "+doc.Numero, true).
		WithAuthor(orcamento.EmpresaNome, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorDark, Thickness: 0.5}))
	m.AddRows(clienteRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorDark, Thickness: 0.3}))

	for _, sec := range doc.Seccoes {
		m.AddRows(seccaoBandRow(sec))
		m.AddRows(tableHeaderRow())
		for _, r := range tableLinhaRows(sec.Linhas) {
			m.AddRows(r)
		}
		m.AddRows(subtotalRow(sec))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorDark, Thickness: 0.3}))
	m.AddRows(totalGeralRow(doc))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(rodapeRows()...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secções ───────────────────────────────────────────────────────────────────

// headerRow: número e data (esq), identidade da empresa (dir).
func headerRow(doc orcamento.Documento) core.Row {
	return row.New(24).Add(
		col.New(6).Add(
			text.New("ORÇAMENTO", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorDark, Top: 1,
			}),
			text.New("Nº "+doc.Numero, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 9,
			}),
			text.New("Data: "+doc.Data, props.Text{
				Size: 8, Top: 16, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New(orcamento.EmpresaNome, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New(orcamento.EmpresaMorada, props.Text{
				Size: 7, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New("NIF: "+orcamento.EmpresaNIF, props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Tel: %s   |   %s", orcamento.EmpresaTelefone, orcamento.EmpresaEmail), props.Text{
				Size: 8, Align: align.Right, Top: 17, Color: colorGray,
			}),
		),
	)
}

// clienteRow: dados do cliente.
func clienteRow(doc orcamento.Documento) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorDark, Top: 1,
			}),
			text.New(doc.Cliente.Nome, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Morada: %s   |   NIF: %s",
				nonEmpty(doc.Cliente.Morada, "—"),
				nonEmpty(doc.Cliente.NIF, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// seccaoBandRow: banda amarela com o número e o nome da parte do processo.
func seccaoBandRow(sec orcamento.SeccaoDocumento) core.Row {
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorYellow}).Add(
		col.New(12).Add(
			text.New(sec.Numero+". "+sec.Nome, props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorDark, Top: 2, Left: 2,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de trabalhos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a,
			Color: colorDark, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("ITEM", 1, align.Center),
		h("DESIGNAÇÃO DOS TRABALHOS", 5, align.Left),
		h("UNID.", 1, align.Center),
		h("QUANT.", 1, align.Center),
		h("UNIT.", 2, align.Right),
		h("TOTAL", 2, align.Right),
	)
}

// tableLinhaRows: uma fila por linha de trabalho da secção.
func tableLinhaRows(linhas []orcamento.LinhaDocumento) []core.Row {
	result := make([]core.Row, 0, len(linhas))
	for _, l := range linhas {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				l.Numero,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.Descricao,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				l.Unidade,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				l.Quantidade,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				l.ValorUnitario+" €",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				l.Total+" €",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// subtotalRow: subtotal da secção alinhado à direita.
func subtotalRow(sec orcamento.SeccaoDocumento) core.Row {
	return row.New(7).Add(
		col.New(8).Add(text.New(sec.RotuloSubtotal+":", props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 2,
		})),
		col.New(4).Add(text.New(sec.Subtotal+" €", props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// totalGeralRow: total geral do orçamento.
func totalGeralRow(doc orcamento.Documento) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorDark, Top: 2, Right: 2,
		})),
		col.New(4).Add(text.New(doc.TotalGeral+" €", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorDark, Top: 2, Right: 1,
		})),
	)
}

// rodapeRows: condições fixas anexadas a todos os orçamentos.
func rodapeRows() []core.Row {
	linha := func(s string) core.Row {
		return row.New(5).Add(
			col.New(12).Add(text.New(s, props.Text{
				Size: 7, Color: colorGray, Top: 1,
			})),
		)
	}
	return []core.Row{
		linha(orcamento.RodapeIVA),
		linha("Condições de pagamento: " + orcamento.RodapePagamento),
		linha(orcamento.RodapeValidade),
	}
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
