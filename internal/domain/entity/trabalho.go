package entity

import "time"

// Trabalho é uma entrada de catálogo: uma unidade de trabalho contratável
// dentro de uma parte do processo. ParteProcessoID é uma referência (relação,
// não posse); a parte pode ser apagada sem afetar orçamentos já salvos.
type Trabalho struct {
	ID               string    `json:"id"`
	ParteProcessoID  string    `json:"parteProcessoId"`
	Nome             string    `json:"nome,omitempty"`
	Descricao        string    `json:"descricao"`
	Unidade          string    `json:"unidade"`
	QuantidadePadrao int       `json:"quantidadePadrao"`
	CreatedAt        time.Time `json:"createdAt"`
}
