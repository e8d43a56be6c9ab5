package orcamento

import (
	"context"

	domorcamento "github.com/galindoptbr/orcamentos-app/internal/domain/orcamento"
)

// DocumentoPDFGenerator porto para a geração do documento imprimível a
// partir do modelo de renderização já numerado e formatado.
type DocumentoPDFGenerator interface {
	GerarPDF(ctx context.Context, doc domorcamento.Documento) ([]byte, error)
}
