package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/galindoptbr/orcamentos-app/internal/domain"
	"github.com/galindoptbr/orcamentos-app/internal/domain/entity"
	"github.com/galindoptbr/orcamentos-app/internal/domain/repository"
)

var _ repository.OrcamentoRepository = (*OrcamentoRepo)(nil)

// OrcamentoRepo implementação do porto OrcamentoRepository sobre PostgreSQL
// (usável com pool ou tx).
//
// As secções do orçamento (itens) são persistidas como JSONB: o documento é
// uma cópia imutável do que o cliente aprovou, com a ordem de inserção
// preservada, e nunca é consultado linha a linha pelo SQL. O número fica numa
// coluna própria com índice para a consulta lexical da numeração anual.
type OrcamentoRepo struct {
	q Querier
}

// NewOrcamentoRepository constrói o adaptador de persistência de orçamentos.
// Passar pool ou tx (Querier).
func NewOrcamentoRepository(q Querier) *OrcamentoRepo {
	return &OrcamentoRepo{q: q}
}

// Create persiste um novo orçamento. O número já vem atribuído.
func (r *OrcamentoRepo) Create(o *entity.Orcamento) error {
	itens, err := json.Marshal(o.Itens)
	if err != nil {
		return fmt.Errorf("marshal itens: %w", err)
	}
	query := `
		INSERT INTO orcamentos (id, numero, cliente_nome, cliente_morada, cliente_nif, data, itens, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.q.Exec(context.Background(), query,
		o.ID, o.Numero, o.Cliente.Nome, o.Cliente.Morada, o.Cliente.NIF,
		o.Data, itens, o.Total, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert orcamento: %w", err)
	}
	return nil
}

// Update atualiza um orçamento existente. Número e data de criação não mudam.
func (r *OrcamentoRepo) Update(o *entity.Orcamento) error {
	itens, err := json.Marshal(o.Itens)
	if err != nil {
		return fmt.Errorf("marshal itens: %w", err)
	}
	query := `
		UPDATE orcamentos
		SET cliente_nome = $2, cliente_morada = $3, cliente_nif = $4, itens = $5, total = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		o.ID, o.Cliente.Nome, o.Cliente.Morada, o.Cliente.NIF, itens, o.Total, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update orcamento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtém um orçamento por ID. Devolve (nil, nil) se não existir.
func (r *OrcamentoRepo) GetByID(id string) (*entity.Orcamento, error) {
	query := `
		SELECT id, numero, cliente_nome, cliente_morada, cliente_nif, data, itens, total, created_at, updated_at
		FROM orcamentos WHERE id = $1`
	o, err := scanOrcamento(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orcamento: %w", err)
	}
	return o, nil
}

// List lista os orçamentos do mais recente para o mais antigo.
func (r *OrcamentoRepo) List() ([]*entity.Orcamento, error) {
	query := `
		SELECT id, numero, cliente_nome, cliente_morada, cliente_nif, data, itens, total, created_at, updated_at
		FROM orcamentos ORDER BY data DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list orcamentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Orcamento
	for rows.Next() {
		o, err := scanOrcamento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan orcamento: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// Delete remove um orçamento por ID.
func (r *OrcamentoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orcamentos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete orcamento: %w", err)
	}
	return nil
}

// UltimoNumeroNoIntervalo devolve o maior número no intervalo lexical
// [min, max], ou "" se não houver nenhum. Com o formato de largura fixa
// AAAA-NNN a ordem lexical coincide com a ordem numérica.
func (r *OrcamentoRepo) UltimoNumeroNoIntervalo(min, max string) (string, error) {
	query := `
		SELECT numero FROM orcamentos
		WHERE numero >= $1 AND numero <= $2
		ORDER BY numero DESC LIMIT 1`
	var numero string
	err := r.q.QueryRow(context.Background(), query, min, max).Scan(&numero)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("ultimo numero: %w", err)
	}
	return numero, nil
}

// ContarPorAno conta os orçamentos cuja data cai no ano indicado.
func (r *OrcamentoRepo) ContarPorAno(ano int) (int, error) {
	query := `SELECT count(*) FROM orcamentos WHERE date_part('year', data) = $1`
	var n int
	if err := r.q.QueryRow(context.Background(), query, ano).Scan(&n); err != nil {
		return 0, fmt.Errorf("contar por ano: %w", err)
	}
	return n, nil
}

// scanOrcamento lê uma linha completa, desserializando a coluna JSONB de itens.
func scanOrcamento(row pgx.Row) (*entity.Orcamento, error) {
	var o entity.Orcamento
	var itens []byte
	err := row.Scan(
		&o.ID, &o.Numero, &o.Cliente.Nome, &o.Cliente.Morada, &o.Cliente.NIF,
		&o.Data, &itens, &o.Total, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(itens) > 0 {
		if err := json.Unmarshal(itens, &o.Itens); err != nil {
			return nil, fmt.Errorf("unmarshal itens: %w", err)
		}
	}
	return &o, nil
}
