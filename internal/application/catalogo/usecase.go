package catalogo

import (
	"time"

	"github.com/google/uuid"

	"github.com/galindoptbr/orcamentos-app/internal/application/dto"
	"github.com/galindoptbr/orcamentos-app/internal/domain"
	"github.com/galindoptbr/orcamentos-app/internal/domain/entity"
	"github.com/galindoptbr/orcamentos-app/internal/domain/repository"
)

// UseCase administração do catálogo: partes do processo e trabalhos.
// O catálogo é só leitura do ponto de vista dos orçamentos; aqui vivem as
// operações simples de criação e remoção.
type UseCase struct {
	parteRepo    repository.ParteProcessoRepository
	trabalhoRepo repository.TrabalhoRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(parteRepo repository.ParteProcessoRepository, trabalhoRepo repository.TrabalhoRepository) *UseCase {
	return &UseCase{parteRepo: parteRepo, trabalhoRepo: trabalhoRepo}
}

// CreateParte cria uma parte do processo. Nome é obrigatório.
func (uc *UseCase) CreateParte(in dto.CreateParteRequest) (*dto.ParteResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	parte := &entity.ParteProcesso{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		Descricao: in.Descricao,
		CreatedAt: time.Now(),
	}
	if err := uc.parteRepo.Create(parte); err != nil {
		return nil, err
	}
	return &dto.ParteResponse{ID: parte.ID, Nome: parte.Nome, Descricao: parte.Descricao}, nil
}

// ListPartes lista todas as partes do processo.
func (uc *UseCase) ListPartes() ([]*dto.ParteResponse, error) {
	list, err := uc.parteRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ParteResponse, 0, len(list))
	for _, p := range list {
		out = append(out, &dto.ParteResponse{ID: p.ID, Nome: p.Nome, Descricao: p.Descricao})
	}
	return out, nil
}

// DeleteParte apaga uma parte. Os trabalhos que a referenciam mantêm a
// referência pendurada; orçamentos já salvos não são tocados.
func (uc *UseCase) DeleteParte(id string) error {
	parte, err := uc.parteRepo.GetByID(id)
	if err != nil {
		return err
	}
	if parte == nil {
		return domain.ErrNotFound
	}
	return uc.parteRepo.Delete(id)
}

// CreateTrabalho cria um trabalho de catálogo sob uma parte existente.
// Parte, descrição e unidade são obrigatórios; quantidade padrão mínima 1.
func (uc *UseCase) CreateTrabalho(in dto.CreateTrabalhoRequest) (*dto.TrabalhoResponse, error) {
	if in.ParteProcessoID == "" || in.Descricao == "" || in.Unidade == "" {
		return nil, domain.ErrInvalidInput
	}
	parte, err := uc.parteRepo.GetByID(in.ParteProcessoID)
	if err != nil {
		return nil, err
	}
	if parte == nil {
		return nil, domain.ErrNotFound
	}
	quantidade := in.QuantidadePadrao
	if quantidade <= 0 {
		quantidade = 1
	}
	trabalho := &entity.Trabalho{
		ID:               uuid.New().String(),
		ParteProcessoID:  in.ParteProcessoID,
		Nome:             in.Nome,
		Descricao:        in.Descricao,
		Unidade:          in.Unidade,
		QuantidadePadrao: quantidade,
		CreatedAt:        time.Now(),
	}
	if err := uc.trabalhoRepo.Create(trabalho); err != nil {
		return nil, err
	}
	return toTrabalhoResponse(trabalho), nil
}

// ListTrabalhos lista trabalhos, opcionalmente filtrados por parte.
func (uc *UseCase) ListTrabalhos(parteID string) ([]*dto.TrabalhoResponse, error) {
	var (
		list []*entity.Trabalho
		err  error
	)
	if parteID != "" {
		list, err = uc.trabalhoRepo.ListByParte(parteID)
	} else {
		list, err = uc.trabalhoRepo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TrabalhoResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTrabalhoResponse(t))
	}
	return out, nil
}

// DeleteTrabalho apaga um trabalho do catálogo. Linhas de orçamentos já
// salvos guardam a sua própria cópia e não mudam retroativamente.
func (uc *UseCase) DeleteTrabalho(id string) error {
	trabalho, err := uc.trabalhoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if trabalho == nil {
		return domain.ErrNotFound
	}
	return uc.trabalhoRepo.Delete(id)
}

func toTrabalhoResponse(t *entity.Trabalho) *dto.TrabalhoResponse {
	return &dto.TrabalhoResponse{
		ID:               t.ID,
		ParteProcessoID:  t.ParteProcessoID,
		Nome:             t.Nome,
		Descricao:        t.Descricao,
		Unidade:          t.Unidade,
		QuantidadePadrao: t.QuantidadePadrao,
	}
}
