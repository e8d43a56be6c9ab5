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

var _ repository.TrabalhoRepository = (*TrabalhoRepo)(nil)

// TrabalhoRepo implementação do porto TrabalhoRepository sobre PostgreSQL
// (usável com pool ou tx).
type TrabalhoRepo struct {
	q Querier
}

// NewTrabalhoRepository constrói o adaptador de persistência para modelos de
// trabalho. Passar pool ou tx (Querier).
func NewTrabalhoRepository(q Querier) *TrabalhoRepo {
	return &TrabalhoRepo{q: q}
}

// Create persiste um novo modelo de trabalho.
func (r *TrabalhoRepo) Create(trabalho *entity.Trabalho) error {
	query := `
		INSERT INTO trabalhos (id, parte_processo_id, nome, descricao, unidade, quantidade_padrao, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		trabalho.ID, trabalho.ParteProcessoID, trabalho.Nome, trabalho.Descricao,
		trabalho.Unidade, trabalho.QuantidadePadrao, trabalho.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert trabalho: %w", err)
	}
	return nil
}

// GetByID obtém um trabalho por ID. Devolve (nil, nil) se não existir.
func (r *TrabalhoRepo) GetByID(id string) (*entity.Trabalho, error) {
	query := `
		SELECT id, parte_processo_id, nome, descricao, unidade, quantidade_padrao, created_at
		FROM trabalhos WHERE id = $1`
	var t entity.Trabalho
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.ParteProcessoID, &t.Nome, &t.Descricao, &t.Unidade, &t.QuantidadePadrao, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trabalho: %w", err)
	}
	return &t, nil
}

// List lista todos os trabalhos do catálogo.
func (r *TrabalhoRepo) List() ([]*entity.Trabalho, error) {
	query := `
		SELECT id, parte_processo_id, nome, descricao, unidade, quantidade_padrao, created_at
		FROM trabalhos ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list trabalhos: %w", err)
	}
	defer rows.Close()
	return scanTrabalhos(rows)
}

// ListByParte lista os trabalhos de uma parte do processo.
func (r *TrabalhoRepo) ListByParte(parteID string) ([]*entity.Trabalho, error) {
	query := `
		SELECT id, parte_processo_id, nome, descricao, unidade, quantidade_padrao, created_at
		FROM trabalhos WHERE parte_processo_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, parteID)
	if err != nil {
		return nil, fmt.Errorf("list trabalhos por parte: %w", err)
	}
	defer rows.Close()
	return scanTrabalhos(rows)
}

func scanTrabalhos(rows pgx.Rows) ([]*entity.Trabalho, error) {
	var list []*entity.Trabalho
	for rows.Next() {
		var t entity.Trabalho
		if err := rows.Scan(&t.ID, &t.ParteProcessoID, &t.Nome, &t.Descricao,
			&t.Unidade, &t.QuantidadePadrao, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan trabalho: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete remove um trabalho por ID.
func (r *TrabalhoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM trabalhos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete trabalho: %w", err)
	}
	return nil
}
