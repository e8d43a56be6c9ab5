package orcamento

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/galindoptbr/orcamentos-app/internal/domain"
	"github.com/galindoptbr/orcamentos-app/internal/domain/entity"
	domorcamento "github.com/galindoptbr/orcamentos-app/internal/domain/orcamento"
	"github.com/galindoptbr/orcamentos-app/internal/domain/repository"
)

// Campos editáveis de um trabalho dentro do editor.
const (
	CampoNome          = "nome"
	CampoQuantidade    = "quantidade"
	CampoUnidade       = "unidade"
	CampoValorUnitario = "valorUnitario"
)

// UnidadePadrao usada quando o trabalho de catálogo não define unidade.
const UnidadePadrao = "unid"

// Editor mantém o orçamento em composição: seleção de partes, adição e
// edição de trabalhos, sempre em memória. Nada toca o repositório até
// Salvar; uma falha de save deixa o estado em memória intacto.
//
// Modelo mono-sessão: um editor manipula um orçamento de cada vez e não há
// estado mutável partilhado entre editores, portanto não há locking interno.
// O chamador é responsável por não disparar um segundo Salvar do mesmo
// orçamento enquanto um está pendente (risco de numeração dupla).
type Editor struct {
	orcamentoRepo repository.OrcamentoRepository
	trabalhoRepo  repository.TrabalhoRepository
	numerador     *Numerador

	orcamentoID  string // vazio = orçamento novo
	numero       string // congelado no primeiro save, nunca regenerado
	data         time.Time
	criadoEm     time.Time
	cliente      entity.Cliente
	itens        []entity.OrcamentoItem
	partesNomes  map[string]string // parteID -> nome, para grupos criados nesta sessão
	selecionadas []string          // ordem de seleção das partes
}

// NewEditor constrói um editor para um orçamento novo.
func NewEditor(
	orcamentoRepo repository.OrcamentoRepository,
	trabalhoRepo repository.TrabalhoRepository,
	numerador *Numerador,
) *Editor {
	return &Editor{
		orcamentoRepo: orcamentoRepo,
		trabalhoRepo:  trabalhoRepo,
		numerador:     numerador,
		partesNomes:   make(map[string]string),
	}
}

// SetCliente define os dados do cliente.
func (e *Editor) SetCliente(c entity.Cliente) { e.cliente = c }

// Cliente devolve os dados do cliente atuais.
func (e *Editor) Cliente() entity.Cliente { return e.cliente }

// Numero devolve o número congelado do orçamento (vazio antes do primeiro save).
func (e *Editor) Numero() string { return e.numero }

// SelecionarParte marca a parte como selecionada. Não cria grupo: o grupo
// nasce quando o primeiro trabalho é adicionado, para que nunca exista um
// grupo persistível com zero trabalhos.
func (e *Editor) SelecionarParte(parte entity.ParteProcesso) {
	e.partesNomes[parte.ID] = parte.Nome
	if !e.ParteSelecionada(parte.ID) {
		e.selecionadas = append(e.selecionadas, parte.ID)
	}
}

// DesselecionarParte desmarca a parte e remove o grupo dela com todos os
// trabalhos (remoção total, sem esconder). Voltar a selecionar começa com a
// lista de trabalhos vazia — nada ressuscita.
func (e *Editor) DesselecionarParte(parteID string) {
	for i, id := range e.selecionadas {
		if id == parteID {
			e.selecionadas = append(e.selecionadas[:i], e.selecionadas[i+1:]...)
			break
		}
	}
	for i, item := range e.itens {
		if item.ParteID == parteID {
			e.itens = append(e.itens[:i], e.itens[i+1:]...)
			break
		}
	}
}

// ParteSelecionada indica se a parte está selecionada.
func (e *Editor) ParteSelecionada(parteID string) bool {
	for _, id := range e.selecionadas {
		if id == parteID {
			return true
		}
	}
	return false
}

// AdicionarTrabalho acrescenta um trabalho do catálogo ao grupo da parte,
// criando o grupo (e selecionando a parte) se necessário. A linha nasce com
// nome/descrição/unidade copiados do catálogo, quantidade = quantidade
// padrão (ou 1) e valor unitário "0".
//
// Idempotente: se já existe linha para este trabalho no grupo, não faz nada —
// duplicados exatos por parte são impossíveis por construção, não por
// validação.
func (e *Editor) AdicionarTrabalho(parteID string, t entity.Trabalho) {
	item := e.buscarItem(parteID)
	if item != nil {
		for _, existente := range item.Trabalhos {
			if existente.TrabalhoID == t.ID {
				return
			}
		}
	}

	quantidade := "1"
	if t.QuantidadePadrao > 0 {
		quantidade = strconv.Itoa(t.QuantidadePadrao)
	}
	unidade := t.Unidade
	if unidade == "" {
		unidade = UnidadePadrao
	}
	linha := entity.OrcamentoTrabalho{
		TrabalhoID:    t.ID,
		Nome:          t.Nome,
		Descricao:     t.Descricao,
		Quantidade:    quantidade,
		Unidade:       unidade,
		ValorUnitario: "0",
	}

	if item != nil {
		item.Trabalhos = append(item.Trabalhos, linha)
		return
	}
	if !e.ParteSelecionada(parteID) {
		e.selecionadas = append(e.selecionadas, parteID)
	}
	e.itens = append(e.itens, entity.OrcamentoItem{
		ParteID:   parteID,
		ParteNome: e.nomeDaParte(parteID),
		Trabalhos: []entity.OrcamentoTrabalho{linha},
	})
}

// AtualizarTrabalho edita um campo de uma linha. A entrada é sanitizada
// antes de chegar ao estado: quantidade só aceita dígitos (quantidades
// decimais ficam proibidas por construção) e valor unitário só dígitos e um
// único ponto decimal.
func (e *Editor) AtualizarTrabalho(parteID, trabalhoID, campo, valor string) error {
	item := e.buscarItem(parteID)
	if item == nil {
		return domain.ErrNotFound
	}
	for i := range item.Trabalhos {
		if item.Trabalhos[i].TrabalhoID != trabalhoID {
			continue
		}
		switch campo {
		case CampoNome:
			item.Trabalhos[i].Nome = valor
		case CampoQuantidade:
			item.Trabalhos[i].Quantidade = sanitizarQuantidade(valor)
		case CampoUnidade:
			item.Trabalhos[i].Unidade = valor
		case CampoValorUnitario:
			item.Trabalhos[i].ValorUnitario = sanitizarValor(valor)
		default:
			return domain.ErrInvalidInput
		}
		return nil
	}
	return domain.ErrNotFound
}

// RemoverTrabalho remove a linha do grupo. Se o grupo ficar vazio é removido
// e a parte fica desselecionada (política única: presença de grupo e estado
// de seleção nunca divergem).
func (e *Editor) RemoverTrabalho(parteID, trabalhoID string) {
	for i := range e.itens {
		if e.itens[i].ParteID != parteID {
			continue
		}
		trabalhos := e.itens[i].Trabalhos
		for j := range trabalhos {
			if trabalhos[j].TrabalhoID == trabalhoID {
				e.itens[i].Trabalhos = append(trabalhos[:j], trabalhos[j+1:]...)
				break
			}
		}
		if len(e.itens[i].Trabalhos) == 0 {
			e.DesselecionarParte(parteID)
		}
		return
	}
}

// Itens devolve uma cópia dos itens na ordem de inserção.
func (e *Editor) Itens() []entity.OrcamentoItem {
	out := make([]entity.OrcamentoItem, len(e.itens))
	for i, item := range e.itens {
		out[i] = item
		out[i].Trabalhos = append([]entity.OrcamentoTrabalho(nil), item.Trabalhos...)
	}
	return out
}

// Total calcula o total vivo do orçamento em composição.
func (e *Editor) Total() decimal.Decimal {
	o := entity.Orcamento{Itens: e.itens}
	return domorcamento.TotalOrcamento(&o)
}

// CarregarParaEdicao busca um orçamento persistido e reconstrói o estado do
// editor (grupos, linhas, cliente, partes selecionadas). O número congelado
// é preservado e nunca regenerado.
func (e *Editor) CarregarParaEdicao(id string) error {
	o, err := e.orcamentoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}
	e.orcamentoID = o.ID
	e.numero = o.Numero
	e.data = o.Data
	e.criadoEm = o.CreatedAt
	e.cliente = o.Cliente
	e.itens = nil
	e.selecionadas = nil
	for _, item := range o.Itens {
		e.partesNomes[item.ParteID] = item.ParteNome
		e.selecionadas = append(e.selecionadas, item.ParteID)
		copia := item
		copia.Trabalhos = append([]entity.OrcamentoTrabalho(nil), item.Trabalhos...)
		e.itens = append(e.itens, copia)
	}
	return nil
}

// Salvar valida, resolve descrições, recalcula o total e persiste.
//
// Validação local, antes de qualquer interação com o repositório: nome de
// cliente não vazio e pelo menos um trabalho entre todos os grupos; caso
// contrário domain.ErrInvalidInput (falha de validação, não de store).
//
// Num orçamento novo pede o número ao Numerador e insere; se a numeração
// falhar, nada é persistido. Num orçamento em edição atualiza o registo
// existente com id, número e data inalterados.
//
// A descrição de cada linha é re-resolvida ao vivo do catálogo neste
// momento, sobrepondo a cópia feita na adição; se o trabalho de catálogo já
// não existir (ou tiver descrição vazia), vale a cópia da linha.
func (e *Editor) Salvar(now time.Time) (*entity.Orcamento, error) {
	if strings.TrimSpace(e.cliente.Nome) == "" || e.totalLinhas() == 0 {
		return nil, domain.ErrInvalidInput
	}

	itens := e.Itens()
	for i := range itens {
		for j := range itens[i].Trabalhos {
			linha := &itens[i].Trabalhos[j]
			t, err := e.trabalhoRepo.GetByID(linha.TrabalhoID)
			if err != nil {
				return nil, err
			}
			if t != nil && strings.TrimSpace(t.Descricao) != "" {
				linha.Descricao = t.Descricao
			}
			// Campos nunca persistem vazios no contrato de gravação.
			if linha.Quantidade == "" {
				linha.Quantidade = "0"
			}
			if linha.ValorUnitario == "" {
				linha.ValorUnitario = "0"
			}
			if linha.Unidade == "" {
				linha.Unidade = UnidadePadrao
			}
		}
	}

	o := &entity.Orcamento{
		ID:      e.orcamentoID,
		Numero:  e.numero,
		Cliente: e.cliente,
		Data:    e.data,
		Itens:   itens,
	}
	o.Total = domorcamento.TotalOrcamento(o)

	if e.orcamentoID == "" {
		numero, err := e.numerador.ProximoNumero(now)
		if err != nil {
			return nil, err
		}
		o.ID = uuid.New().String()
		o.Numero = numero
		o.Data = now
		o.CreatedAt = now
		o.UpdatedAt = now
		if err := e.orcamentoRepo.Create(o); err != nil {
			return nil, err
		}
	} else {
		o.CreatedAt = e.criadoEm
		o.UpdatedAt = now
		if err := e.orcamentoRepo.Update(o); err != nil {
			return nil, err
		}
	}

	e.orcamentoID = o.ID
	e.numero = o.Numero
	e.data = o.Data
	e.criadoEm = o.CreatedAt
	return o, nil
}

func (e *Editor) buscarItem(parteID string) *entity.OrcamentoItem {
	for i := range e.itens {
		if e.itens[i].ParteID == parteID {
			return &e.itens[i]
		}
	}
	return nil
}

func (e *Editor) nomeDaParte(parteID string) string {
	if nome, ok := e.partesNomes[parteID]; ok && nome != "" {
		return nome
	}
	return parteID
}

func (e *Editor) totalLinhas() int {
	n := 0
	for _, item := range e.itens {
		n += len(item.Trabalhos)
	}
	return n
}

// sanitizarQuantidade remove tudo o que não for dígito.
func sanitizarQuantidade(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// sanitizarValor mantém dígitos e o primeiro ponto decimal.
func sanitizarValor(s string) string {
	var b strings.Builder
	ponto := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !ponto:
			ponto = true
			b.WriteRune(r)
		}
	}
	return b.String()
}
