package orcamento

import (
	"time"

	"github.com/galindoptbr/orcamentos-app/internal/application/dto"
	"github.com/galindoptbr/orcamentos-app/internal/domain"
	"github.com/galindoptbr/orcamentos-app/internal/domain/entity"
	"github.com/galindoptbr/orcamentos-app/internal/domain/repository"
)

// UseCase operações de orçamento sobre o repositório: listar, obter,
// criar, atualizar e apagar. Criar e atualizar reproduzem o payload
// submetido através de um Editor, para que as invariantes de edição
// (idempotência de duplicados, sanitização de entrada, re-resolução de
// descrições, recálculo do total, numeração) valham também no caminho HTTP.
type UseCase struct {
	orcamentoRepo repository.OrcamentoRepository
	parteRepo     repository.ParteProcessoRepository
	trabalhoRepo  repository.TrabalhoRepository
	numerador     *Numerador
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	orcamentoRepo repository.OrcamentoRepository,
	parteRepo repository.ParteProcessoRepository,
	trabalhoRepo repository.TrabalhoRepository,
	numerador *Numerador,
) *UseCase {
	return &UseCase{
		orcamentoRepo: orcamentoRepo,
		parteRepo:     parteRepo,
		trabalhoRepo:  trabalhoRepo,
		numerador:     numerador,
	}
}

// List lista os orçamentos salvos (resumo por linha).
func (uc *UseCase) List() ([]*dto.OrcamentoResumo, error) {
	list, err := uc.orcamentoRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrcamentoResumo, 0, len(list))
	for _, o := range list {
		out = append(out, &dto.OrcamentoResumo{
			ID:          o.ID,
			Numero:      o.Numero,
			ClienteNome: o.Cliente.Nome,
			Data:        o.Data.Format(time.RFC3339),
			Total:       o.Total,
		})
	}
	return out, nil
}

// Get obtém um orçamento completo por ID.
func (uc *UseCase) Get(id string) (*dto.OrcamentoResponse, error) {
	o, err := uc.orcamentoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(o), nil
}

// Criar monta um editor novo, reproduz o payload e salva. O número é
// atribuído pelo Numerador no momento do save.
func (uc *UseCase) Criar(in dto.SalvarOrcamentoRequest) (*dto.OrcamentoResponse, error) {
	editor := NewEditor(uc.orcamentoRepo, uc.trabalhoRepo, uc.numerador)
	if err := uc.reproduzir(editor, in); err != nil {
		return nil, err
	}
	o, err := editor.Salvar(time.Now())
	if err != nil {
		return nil, err
	}
	return toResponse(o), nil
}

// Atualizar carrega o orçamento existente para edição, substitui o estado
// pelo payload submetido e salva no mesmo registo — id, número e data de
// criação permanecem inalterados.
func (uc *UseCase) Atualizar(id string, in dto.SalvarOrcamentoRequest) (*dto.OrcamentoResponse, error) {
	editor := NewEditor(uc.orcamentoRepo, uc.trabalhoRepo, uc.numerador)
	if err := editor.CarregarParaEdicao(id); err != nil {
		return nil, err
	}
	for _, item := range editor.Itens() {
		editor.DesselecionarParte(item.ParteID)
	}
	if err := uc.reproduzir(editor, in); err != nil {
		return nil, err
	}
	o, err := editor.Salvar(time.Now())
	if err != nil {
		return nil, err
	}
	return toResponse(o), nil
}

// Delete apaga um orçamento. Apagar nunca renumera os restantes.
func (uc *UseCase) Delete(id string) error {
	o, err := uc.orcamentoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}
	return uc.orcamentoRepo.Delete(id)
}

// reproduzir aplica o payload submetido ao editor, na ordem de chegada.
// Partes e trabalhos de catálogo entretanto apagados não invalidam o
// orçamento: a linha submetida traz a sua própria cópia de nome/unidade e o
// editor usa-a como template sintético.
func (uc *UseCase) reproduzir(editor *Editor, in dto.SalvarOrcamentoRequest) error {
	editor.SetCliente(in.Cliente)
	for _, item := range in.Itens {
		parte, err := uc.parteRepo.GetByID(item.ParteID)
		if err != nil {
			return err
		}
		if parte == nil {
			parte = &entity.ParteProcesso{ID: item.ParteID, Nome: item.ParteNome}
		}
		editor.SelecionarParte(*parte)
		for _, linha := range item.Trabalhos {
			template, err := uc.trabalhoRepo.GetByID(linha.TrabalhoID)
			if err != nil {
				return err
			}
			if template == nil {
				template = &entity.Trabalho{
					ID:        linha.TrabalhoID,
					Nome:      linha.Nome,
					Descricao: linha.Descricao,
					Unidade:   linha.Unidade,
				}
			}
			editor.AdicionarTrabalho(item.ParteID, *template)
			for campo, valor := range map[string]string{
				CampoNome:          linha.Nome,
				CampoQuantidade:    linha.Quantidade,
				CampoUnidade:       linha.Unidade,
				CampoValorUnitario: linha.ValorUnitario,
			} {
				if err := editor.AtualizarTrabalho(item.ParteID, linha.TrabalhoID, campo, valor); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func toResponse(o *entity.Orcamento) *dto.OrcamentoResponse {
	return &dto.OrcamentoResponse{
		ID:      o.ID,
		Numero:  o.Numero,
		Cliente: o.Cliente,
		Data:    o.Data.Format(time.RFC3339),
		Itens:   o.Itens,
		Total:   o.Total,
	}
}
