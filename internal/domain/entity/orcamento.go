package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cliente dados do cliente de um orçamento.
type Cliente struct {
	Nome   string `json:"nome"`
	Morada string `json:"morada"`
	NIF    string `json:"nif"`
}

// OrcamentoTrabalho é a cópia editável de um Trabalho dentro de um orçamento.
// Quantidade e ValorUnitario ficam como texto para preservar a entrada parcial
// do utilizador durante a edição; só são convertidos a número no momento de
// agregar/renderizar (texto inválido ou vazio conta como 0).
type OrcamentoTrabalho struct {
	TrabalhoID    string `json:"trabalhoId"`
	Nome          string `json:"nome"`
	Descricao     string `json:"descricao"`
	Quantidade    string `json:"quantidade"`
	Unidade       string `json:"unidade"`
	ValorUnitario string `json:"valorUnitario"`
}

// OrcamentoItem agrupa os trabalhos adicionados para uma parte do processo.
// Um item sem trabalhos nunca é persistido: remover o último trabalho remove
// o item inteiro.
type OrcamentoItem struct {
	ParteID   string              `json:"parteId"`
	ParteNome string              `json:"parteNome"`
	Trabalhos []OrcamentoTrabalho `json:"trabalhos"`
}

// Orcamento é o agregado raiz. Numero é atribuído uma única vez, no primeiro
// save, e nunca regenerado. Total é um snapshot derivado, recalculado em cada
// save; entre saves o valor vivo é o da agregação, não o persistido.
//
// A ordem de Itens e de Trabalhos é a ordem de inserção e é preservada de
// ponta a ponta (edição, persistência, renderização) — nunca se reordena.
type Orcamento struct {
	ID        string          `json:"id"`
	Numero    string          `json:"numero,omitempty"`
	Cliente   Cliente         `json:"cliente"`
	Data      time.Time       `json:"data"`
	Itens     []OrcamentoItem `json:"itens"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
