package orcamento

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/galindoptbr/orcamentos-app/internal/application/dto"
	"github.com/galindoptbr/orcamentos-app/internal/domain"
	"github.com/galindoptbr/orcamentos-app/internal/domain/entity"
	domorcamento "github.com/galindoptbr/orcamentos-app/internal/domain/orcamento"
	"github.com/galindoptbr/orcamentos-app/internal/domain/repository"
	"github.com/galindoptbr/orcamentos-app/pkg/texto"
)

// PDFUseCase exporta orçamentos como documento imprimível.
type PDFUseCase struct {
	orcamentoRepo repository.OrcamentoRepository
	trabalhoRepo  repository.TrabalhoRepository
	generator     DocumentoPDFGenerator
}

// NewPDFUseCase constrói o caso de uso.
func NewPDFUseCase(
	orcamentoRepo repository.OrcamentoRepository,
	trabalhoRepo repository.TrabalhoRepository,
	generator DocumentoPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		orcamentoRepo: orcamentoRepo,
		trabalhoRepo:  trabalhoRepo,
		generator:     generator,
	}
}

// DownloadPDF gera o PDF de um orçamento salvo.
//
// Retorna (bytes, filename, nil) em sucesso; domain.ErrNotFound se o
// orçamento não existe. O nome do ficheiro deriva do número do orçamento
// ou, na falta dele, do nome do cliente normalizado.
func (uc *PDFUseCase) DownloadPDF(ctx context.Context, id string) (pdfBytes []byte, filename string, err error) {
	o, err := uc.orcamentoRepo.GetByID(id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obter orçamento: %w", err)
	}
	if o == nil {
		return nil, "", domain.ErrNotFound
	}

	doc := domorcamento.NovoDocumento(o)
	pdfBytes, err = uc.generator.GerarPDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: geração falhou: %w", err)
	}
	return pdfBytes, nomeFicheiro(o), nil
}

// PreviaPDF gera o PDF de um orçamento ainda não salvo (pré-visualização).
// Nada é persistido: o documento sai com o marcador de rascunho no lugar do
// número e o total é calculado ao vivo. Tal como no save, as descrições são
// re-resolvidas do catálogo no momento da exportação.
func (uc *PDFUseCase) PreviaPDF(ctx context.Context, in dto.SalvarOrcamentoRequest) ([]byte, error) {
	o := &entity.Orcamento{
		Cliente: in.Cliente,
		Data:    time.Now(),
		Itens:   in.Itens,
	}
	for i := range o.Itens {
		for j := range o.Itens[i].Trabalhos {
			linha := &o.Itens[i].Trabalhos[j]
			t, err := uc.trabalhoRepo.GetByID(linha.TrabalhoID)
			if err != nil {
				return nil, fmt.Errorf("pdf: resolver descrição: %w", err)
			}
			if t != nil && strings.TrimSpace(t.Descricao) != "" {
				linha.Descricao = t.Descricao
			}
		}
	}
	o.Total = domorcamento.TotalOrcamento(o)

	doc := domorcamento.NovoDocumento(o)
	pdfBytes, err := uc.generator.GerarPDF(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("pdf: geração falhou: %w", err)
	}
	return pdfBytes, nil
}

// nomeFicheiro deriva o nome do ficheiro de download.
func nomeFicheiro(o *entity.Orcamento) string {
	if o.Numero != "" {
		return fmt.Sprintf("orcamento-%s.pdf", o.Numero)
	}
	if slug := texto.Slug(o.Cliente.Nome); slug != "" {
		return fmt.Sprintf("orcamento-%s.pdf", slug)
	}
	return "orcamento-cliente.pdf"
}
