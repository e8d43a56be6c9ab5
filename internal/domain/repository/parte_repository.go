package repository

import "github.com/galindoptbr/orcamentos-app/internal/domain/entity"

// ParteProcessoRepository define o porto de persistência para ParteProcesso.
type ParteProcessoRepository interface {
	Create(parte *entity.ParteProcesso) error
	GetByID(id string) (*entity.ParteProcesso, error)
	List() ([]*entity.ParteProcesso, error)
	Delete(id string) error
}
