package dto

// CreateParteRequest body para POST /api/partes.
type CreateParteRequest struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
}

// ParteResponse parte do processo nas respostas.
type ParteResponse struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
}

// CreateTrabalhoRequest body para POST /api/trabalhos.
type CreateTrabalhoRequest struct {
	ParteProcessoID  string `json:"parteProcessoId"`
	Nome             string `json:"nome,omitempty"`
	Descricao        string `json:"descricao"`
	Unidade          string `json:"unidade"`
	QuantidadePadrao int    `json:"quantidadePadrao,omitempty"`
}

// TrabalhoResponse trabalho de catálogo nas respostas.
type TrabalhoResponse struct {
	ID               string `json:"id"`
	ParteProcessoID  string `json:"parteProcessoId"`
	Nome             string `json:"nome,omitempty"`
	Descricao        string `json:"descricao"`
	Unidade          string `json:"unidade"`
	QuantidadePadrao int    `json:"quantidadePadrao"`
}
