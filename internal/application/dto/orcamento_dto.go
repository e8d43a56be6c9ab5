package dto

import (
	"github.com/shopspring/decimal"

	"github.com/galindoptbr/orcamentos-app/internal/domain/entity"
)

// SalvarOrcamentoRequest body para POST /api/orcamentos e PUT /api/orcamentos/:id.
// Os campos quantidade e valorUnitario viajam como texto, tal como foram
// digitados; o servidor sanitiza e recalcula os totais antes de persistir.
type SalvarOrcamentoRequest struct {
	Cliente entity.Cliente         `json:"cliente"`
	Itens   []entity.OrcamentoItem `json:"itens"`
}

// OrcamentoResponse orçamento completo nas respostas.
// O layout dos itens é o contrato de gravação: parteId, parteNome,
// trabalhos[{trabalhoId, nome, descricao, quantidade, unidade, valorUnitario}].
type OrcamentoResponse struct {
	ID      string                 `json:"id"`
	Numero  string                 `json:"numero,omitempty"`
	Cliente entity.Cliente         `json:"cliente"`
	Data    string                 `json:"data"` // ISO-8601
	Itens   []entity.OrcamentoItem `json:"itens"`
	Total   decimal.Decimal        `json:"total"`
}

// OrcamentoResumo linha do listado GET /api/orcamentos.
type OrcamentoResumo struct {
	ID          string          `json:"id"`
	Numero      string          `json:"numero,omitempty"`
	ClienteNome string          `json:"clienteNome"`
	Data        string          `json:"data"`
	Total       decimal.Decimal `json:"total"`
}
