package repository

import "github.com/galindoptbr/orcamentos-app/internal/domain/entity"

// OrcamentoRepository define o porto de persistência para Orcamento.
//
// Os métodos de numeração existem para o serviço de numeração anual:
// UltimoNumeroNoIntervalo faz a consulta lexical descendente no intervalo
// [AAAA-001, AAAA-999] e ContarPorAno é o fallback para dados legados sem
// número. Se qualquer um falhar, o save inteiro falha — nunca se persiste
// um orçamento novo sem número.
type OrcamentoRepository interface {
	Create(o *entity.Orcamento) error
	Update(o *entity.Orcamento) error
	GetByID(id string) (*entity.Orcamento, error)
	List() ([]*entity.Orcamento, error)
	Delete(id string) error
	UltimoNumeroNoIntervalo(min, max string) (string, error)
	ContarPorAno(ano int) (int, error)
}
