package entity

import "time"

// ParteProcesso representa uma categoria de trabalho do catálogo
// (ex.: "Pintura", "Carpintaria"). A identidade é o ID; o nome é apenas
// para exibição e não é garantidamente único.
type ParteProcesso struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Descricao string    `json:"descricao,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
