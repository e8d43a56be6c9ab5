package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/galindoptbr/orcamentos-app/internal/domain"
	"github.com/galindoptbr/orcamentos-app/internal/domain/entity"
	"github.com/galindoptbr/orcamentos-app/internal/domain/repository"
)

var _ repository.ParteProcessoRepository = (*ParteProcessoRepo)(nil)

// ParteProcessoRepo implementação do porto ParteProcessoRepository sobre
// PostgreSQL (usável com pool ou tx).
type ParteProcessoRepo struct {
	q Querier
}

// NewParteProcessoRepository constrói o adaptador de persistência para
// partes do processo. Passar pool ou tx (Querier).
func NewParteProcessoRepository(q Querier) *ParteProcessoRepo {
	return &ParteProcessoRepo{q: q}
}

// Create persiste uma nova parte do processo.
func (r *ParteProcessoRepo) Create(parte *entity.ParteProcesso) error {
	query := `
		INSERT INTO partes_processo (id, nome, descricao, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		parte.ID, parte.Nome, parte.Descricao, parte.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert parte: %w", err)
	}
	return nil
}

// GetByID obtém uma parte por ID. Devolve (nil, nil) se não existir.
func (r *ParteProcessoRepo) GetByID(id string) (*entity.ParteProcesso, error) {
	query := `
		SELECT id, nome, descricao, created_at
		FROM partes_processo WHERE id = $1`
	var p entity.ParteProcesso
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nome, &p.Descricao, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get parte: %w", err)
	}
	return &p, nil
}

// List lista as partes por ordem de criação.
func (r *ParteProcessoRepo) List() ([]*entity.ParteProcesso, error) {
	query := `
		SELECT id, nome, descricao, created_at
		FROM partes_processo ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list partes: %w", err)
	}
	defer rows.Close()
	var list []*entity.ParteProcesso
	for rows.Next() {
		var p entity.ParteProcesso
		if err := rows.Scan(&p.ID, &p.Nome, &p.Descricao, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan parte: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete remove uma parte por ID. Os trabalhos associados caem com o
// ON DELETE CASCADE do schema.
func (r *ParteProcessoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM partes_processo WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete parte: %w", err)
	}
	return nil
}
