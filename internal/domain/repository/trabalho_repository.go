package repository

import "github.com/galindoptbr/orcamentos-app/internal/domain/entity"

// TrabalhoRepository define o porto de persistência para Trabalho (catálogo).
type TrabalhoRepository interface {
	Create(trabalho *entity.Trabalho) error
	GetByID(id string) (*entity.Trabalho, error)
	List() ([]*entity.Trabalho, error)
	ListByParte(parteID string) ([]*entity.Trabalho, error)
	Delete(id string) error
}
