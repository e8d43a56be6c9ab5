package dto

// ErrorResponse resposta de erro padrão da API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
