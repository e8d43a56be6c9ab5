package orcamento_test

import (
	"errors"
	"sort"

	"github.com/galindoptbr/orcamentos-app/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória dos portos de persistência. Imitam o contrato dos
// adaptadores reais: GetByID devolve (nil, nil) quando não existe e
// UltimoNumeroNoIntervalo faz a comparação lexical no intervalo pedido.
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrcamentoRepo struct {
	orcamentos map[string]*entity.Orcamento
	criados    int
	erro       error // se definido, todas as operações falham com este erro
}

func newFakeOrcamentoRepo() *fakeOrcamentoRepo {
	return &fakeOrcamentoRepo{orcamentos: make(map[string]*entity.Orcamento)}
}

func (r *fakeOrcamentoRepo) Create(o *entity.Orcamento) error {
	if r.erro != nil {
		return r.erro
	}
	copia := *o
	r.orcamentos[o.ID] = &copia
	r.criados++
	return nil
}

func (r *fakeOrcamentoRepo) Update(o *entity.Orcamento) error {
	if r.erro != nil {
		return r.erro
	}
	if _, ok := r.orcamentos[o.ID]; !ok {
		return errors.New("orçamento inexistente")
	}
	copia := *o
	r.orcamentos[o.ID] = &copia
	return nil
}

func (r *fakeOrcamentoRepo) GetByID(id string) (*entity.Orcamento, error) {
	if r.erro != nil {
		return nil, r.erro
	}
	o, ok := r.orcamentos[id]
	if !ok {
		return nil, nil
	}
	copia := *o
	return &copia, nil
}

func (r *fakeOrcamentoRepo) List() ([]*entity.Orcamento, error) {
	if r.erro != nil {
		return nil, r.erro
	}
	var out []*entity.Orcamento
	for _, o := range r.orcamentos {
		copia := *o
		out = append(out, &copia)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Data.After(out[j].Data) })
	return out, nil
}

func (r *fakeOrcamentoRepo) Delete(id string) error {
	if r.erro != nil {
		return r.erro
	}
	delete(r.orcamentos, id)
	return nil
}

func (r *fakeOrcamentoRepo) UltimoNumeroNoIntervalo(min, max string) (string, error) {
	if r.erro != nil {
		return "", r.erro
	}
	ultimo := ""
	for _, o := range r.orcamentos {
		if o.Numero >= min && o.Numero <= max && o.Numero > ultimo {
			ultimo = o.Numero
		}
	}
	return ultimo, nil
}

func (r *fakeOrcamentoRepo) ContarPorAno(ano int) (int, error) {
	if r.erro != nil {
		return 0, r.erro
	}
	n := 0
	for _, o := range r.orcamentos {
		if o.Data.Year() == ano {
			n++
		}
	}
	return n, nil
}

type fakeTrabalhoRepo struct {
	trabalhos map[string]*entity.Trabalho
}

func newFakeTrabalhoRepo(trabalhos ...*entity.Trabalho) *fakeTrabalhoRepo {
	r := &fakeTrabalhoRepo{trabalhos: make(map[string]*entity.Trabalho)}
	for _, t := range trabalhos {
		r.trabalhos[t.ID] = t
	}
	return r
}

func (r *fakeTrabalhoRepo) Create(t *entity.Trabalho) error {
	r.trabalhos[t.ID] = t
	return nil
}

func (r *fakeTrabalhoRepo) GetByID(id string) (*entity.Trabalho, error) {
	t, ok := r.trabalhos[id]
	if !ok {
		return nil, nil
	}
	return t, nil
}

func (r *fakeTrabalhoRepo) List() ([]*entity.Trabalho, error) {
	var out []*entity.Trabalho
	for _, t := range r.trabalhos {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTrabalhoRepo) ListByParte(parteID string) ([]*entity.Trabalho, error) {
	var out []*entity.Trabalho
	for _, t := range r.trabalhos {
		if t.ParteProcessoID == parteID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTrabalhoRepo) Delete(id string) error {
	delete(r.trabalhos, id)
	return nil
}

type fakeParteRepo struct {
	partes map[string]*entity.ParteProcesso
}

func newFakeParteRepo(partes ...*entity.ParteProcesso) *fakeParteRepo {
	r := &fakeParteRepo{partes: make(map[string]*entity.ParteProcesso)}
	for _, p := range partes {
		r.partes[p.ID] = p
	}
	return r
}

func (r *fakeParteRepo) Create(p *entity.ParteProcesso) error {
	r.partes[p.ID] = p
	return nil
}

func (r *fakeParteRepo) GetByID(id string) (*entity.ParteProcesso, error) {
	p, ok := r.partes[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *fakeParteRepo) List() ([]*entity.ParteProcesso, error) {
	var out []*entity.ParteProcesso
	for _, p := range r.partes {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeParteRepo) Delete(id string) error {
	delete(r.partes, id)
	return nil
}
