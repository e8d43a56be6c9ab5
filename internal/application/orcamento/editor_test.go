package orcamento_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apporcamento "github.com/galindoptbr/orcamentos-app/internal/application/orcamento"
	"github.com/galindoptbr/orcamentos-app/internal/domain"
	"github.com/galindoptbr/orcamentos-app/internal/domain/entity"
)

var (
	parteDemolicoes = entity.ParteProcesso{ID: "p1", Nome: "Demolições"}
	partePinturas   = entity.ParteProcesso{ID: "p2", Nome: "Pinturas"}

	trabalhoParedes = entity.Trabalho{
		ID: "t1", ParteProcessoID: "p1",
		Descricao: "Demolição de paredes", Unidade: "m2", QuantidadePadrao: 1,
	}
	trabalhoEntulho = entity.Trabalho{
		ID: "t2", ParteProcessoID: "p1",
		Descricao: "Transporte de entulho", Unidade: "vg", QuantidadePadrao: 1,
	}
	trabalhoPintura = entity.Trabalho{
		ID: "t3", ParteProcessoID: "p2",
		Descricao: "Pintura de paredes", Unidade: "m2", QuantidadePadrao: 10,
	}
)

func editorDeTeste(t *testing.T) (*apporcamento.Editor, *fakeOrcamentoRepo, *fakeTrabalhoRepo) {
	t.Helper()
	orcRepo := newFakeOrcamentoRepo()
	trabRepo := newFakeTrabalhoRepo(&trabalhoParedes, &trabalhoEntulho, &trabalhoPintura)
	numerador := apporcamento.NewNumerador(orcRepo)
	return apporcamento.NewEditor(orcRepo, trabRepo, numerador), orcRepo, trabRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Seleção de partes e gestão de grupos
// ──────────────────────────────────────────────────────────────────────────────

func TestEditor_SelecionarNaoCriaGrupoVazio(t *testing.T) {
	editor, _, _ := editorDeTeste(t)

	editor.SelecionarParte(parteDemolicoes)

	assert.True(t, editor.ParteSelecionada("p1"))
	assert.Empty(t, editor.Itens(), "o grupo só nasce com o primeiro trabalho")
}

func TestEditor_AdicionarTrabalhoCriaGrupoESeleciona(t *testing.T) {
	editor, _, _ := editorDeTeste(t)

	editor.SelecionarParte(parteDemolicoes)
	editor.AdicionarTrabalho("p1", trabalhoParedes)

	itens := editor.Itens()
	require.Len(t, itens, 1)
	assert.Equal(t, "p1", itens[0].ParteID)
	assert.Equal(t, "Demolições", itens[0].ParteNome)
	require.Len(t, itens[0].Trabalhos, 1)

	linha := itens[0].Trabalhos[0]
	assert.Equal(t, "Demolição de paredes", linha.Descricao)
	assert.Equal(t, "m2", linha.Unidade)
	assert.Equal(t, "1", linha.Quantidade)
	assert.Equal(t, "0", linha.ValorUnitario)
}

func TestEditor_AdicionarTrabalhoUsaQuantidadePadrao(t *testing.T) {
	editor, _, _ := editorDeTeste(t)

	editor.SelecionarParte(partePinturas)
	editor.AdicionarTrabalho("p2", trabalhoPintura)

	assert.Equal(t, "10", editor.Itens()[0].Trabalhos[0].Quantidade)
}

func TestEditor_AdicionarTrabalhoIdempotente(t *testing.T) {
	editor, _, _ := editorDeTeste(t)

	editor.SelecionarParte(parteDemolicoes)
	editor.AdicionarTrabalho("p1", trabalhoParedes)
	editor.AdicionarTrabalho("p1", trabalhoParedes)
	editor.AdicionarTrabalho("p1", trabalhoParedes)

	require.Len(t, editor.Itens(), 1)
	assert.Len(t, editor.Itens()[0].Trabalhos, 1, "adições repetidas não duplicam a linha")
}

func TestEditor_DesselecionarRemoveGrupoENadaRessuscita(t *testing.T) {
	editor, _, _ := editorDeTeste(t)

	editor.SelecionarParte(parteDemolicoes)
	editor.AdicionarTrabalho("p1", trabalhoParedes)
	editor.AdicionarTrabalho("p1", trabalhoEntulho)

	editor.DesselecionarParte("p1")
	assert.False(t, editor.ParteSelecionada("p1"))
	assert.Empty(t, editor.Itens())

	// Voltar a selecionar começa do zero
	editor.SelecionarParte(parteDemolicoes)
	assert.Empty(t, editor.Itens(), "os trabalhos removidos não voltam")
}

func TestEditor_RemoverUltimoTrabalhoDesselecionaParte(t *testing.T) {
	editor, _, _ := editorDeTeste(t)

	editor.SelecionarParte(parteDemolicoes)
	editor.AdicionarTrabalho("p1", trabalhoParedes)
	editor.RemoverTrabalho("p1", "t1")

	assert.Empty(t, editor.Itens(), "grupo vazio é removido")
	assert.False(t, editor.ParteSelecionada("p1"), "seleção acompanha o grupo")
}

func TestEditor_OrdemDeInsercaoPreservada(t *testing.T) {
	editor, _, _ := editorDeTeste(t)

	editor.AdicionarTrabalho("p2", trabalhoPintura)
	editor.AdicionarTrabalho("p1", trabalhoParedes)
	editor.AdicionarTrabalho("p1", trabalhoEntulho)

	itens := editor.Itens()
	require.Len(t, itens, 2)
	assert.Equal(t, "p2", itens[0].ParteID, "grupos na ordem do primeiro trabalho")
	assert.Equal(t, "p1", itens[1].ParteID)
	assert.Equal(t, "t1", itens[1].Trabalhos[0].TrabalhoID)
	assert.Equal(t, "t2", itens[1].Trabalhos[1].TrabalhoID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edição de campos e sanitização de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestEditor_SanitizacaoDeQuantidade(t *testing.T) {
	editor, _, _ := editorDeTeste(t)
	editor.AdicionarTrabalho("p1", trabalhoParedes)

	require.NoError(t, editor.AtualizarTrabalho("p1", "t1", apporcamento.CampoQuantidade, "12a3"))
	assert.Equal(t, "123", editor.Itens()[0].Trabalhos[0].Quantidade)

	require.NoError(t, editor.AtualizarTrabalho("p1", "t1", apporcamento.CampoQuantidade, "4.5"))
	assert.Equal(t, "45", editor.Itens()[0].Trabalhos[0].Quantidade,
		"quantidades decimais ficam proibidas por construção")
}

func TestEditor_SanitizacaoDeValorUnitario(t *testing.T) {
	editor, _, _ := editorDeTeste(t)
	editor.AdicionarTrabalho("p1", trabalhoParedes)

	require.NoError(t, editor.AtualizarTrabalho("p1", "t1", apporcamento.CampoValorUnitario, "12.50€"))
	assert.Equal(t, "12.50", editor.Itens()[0].Trabalhos[0].ValorUnitario)

	require.NoError(t, editor.AtualizarTrabalho("p1", "t1", apporcamento.CampoValorUnitario, "1.2.3"))
	assert.Equal(t, "1.23", editor.Itens()[0].Trabalhos[0].ValorUnitario,
		"apenas o primeiro ponto decimal sobrevive")
}

func TestEditor_AtualizarTrabalhoInexistente(t *testing.T) {
	editor, _, _ := editorDeTeste(t)
	editor.AdicionarTrabalho("p1", trabalhoParedes)

	err := editor.AtualizarTrabalho("p1", "t9", apporcamento.CampoNome, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = editor.AtualizarTrabalho("p9", "t1", apporcamento.CampoNome, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEditor_CampoDesconhecido(t *testing.T) {
	editor, _, _ := editorDeTeste(t)
	editor.AdicionarTrabalho("p1", trabalhoParedes)

	err := editor.AtualizarTrabalho("p1", "t1", "cor", "azul")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEditor_TotalVivo(t *testing.T) {
	editor, _, _ := editorDeTeste(t)

	editor.AdicionarTrabalho("p1", trabalhoParedes)
	require.NoError(t, editor.AtualizarTrabalho("p1", "t1", apporcamento.CampoQuantidade, "2"))
	require.NoError(t, editor.AtualizarTrabalho("p1", "t1", apporcamento.CampoValorUnitario, "10.00"))

	editor.AdicionarTrabalho("p1", trabalhoEntulho)
	require.NoError(t, editor.AtualizarTrabalho("p1", "t2", apporcamento.CampoValorUnitario, "35.00"))

	assert.Equal(t, "55.00", editor.Total().StringFixed(2))
}

// ──────────────────────────────────────────────────────────────────────────────
// Salvar: validação, numeração, coerções e round-trip de edição
// ──────────────────────────────────────────────────────────────────────────────

func TestEditor_SalvarValidaClienteETrabalhos(t *testing.T) {
	agora := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("sem nome de cliente", func(t *testing.T) {
		editor, orcRepo, _ := editorDeTeste(t)
		editor.AdicionarTrabalho("p1", trabalhoParedes)
		editor.SetCliente(entity.Cliente{Nome: "   "})

		_, err := editor.Salvar(agora)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Zero(t, orcRepo.criados, "nada persiste quando a validação falha")
	})

	t.Run("sem trabalhos", func(t *testing.T) {
		editor, orcRepo, _ := editorDeTeste(t)
		editor.SetCliente(entity.Cliente{Nome: "Maria Silva"})
		editor.SelecionarParte(parteDemolicoes)

		_, err := editor.Salvar(agora)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Zero(t, orcRepo.criados)
	})
}

func TestEditor_SalvarNovoAtribuiNumeroETotal(t *testing.T) {
	editor, orcRepo, _ := editorDeTeste(t)
	agora := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

	editor.SetCliente(entity.Cliente{Nome: "Maria Silva", NIF: "123456789"})
	editor.AdicionarTrabalho("p1", trabalhoParedes)
	require.NoError(t, editor.AtualizarTrabalho("p1", "t1", apporcamento.CampoQuantidade, "2"))
	require.NoError(t, editor.AtualizarTrabalho("p1", "t1", apporcamento.CampoValorUnitario, "10.00"))

	o, err := editor.Salvar(agora)
	require.NoError(t, err)

	assert.Equal(t, "2025-001", o.Numero)
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, agora, o.Data)
	assert.Equal(t, "20.00", o.Total.StringFixed(2))
	assert.Equal(t, 1, orcRepo.criados)
}

func TestEditor_SalvarCoercoesDeCamposVazios(t *testing.T) {
	editor, orcRepo, _ := editorDeTeste(t)
	agora := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

	editor.SetCliente(entity.Cliente{Nome: "Maria Silva"})
	editor.AdicionarTrabalho("p1", trabalhoParedes)
	require.NoError(t, editor.AtualizarTrabalho("p1", "t1", apporcamento.CampoQuantidade, ""))
	require.NoError(t, editor.AtualizarTrabalho("p1", "t1", apporcamento.CampoUnidade, ""))

	o, err := editor.Salvar(agora)
	require.NoError(t, err)

	linha := o.Itens[0].Trabalhos[0]
	assert.Equal(t, "0", linha.Quantidade, "quantidade vazia persiste como 0")
	assert.Equal(t, apporcamento.UnidadePadrao, linha.Unidade, "unidade vazia persiste como unid")

	persistido, err := orcRepo.GetByID(o.ID)
	require.NoError(t, err)
	require.NotNil(t, persistido)
	assert.True(t, persistido.Total.Equal(o.Total))
}

func TestEditor_SalvarPreservaPrecisaoCompletaDoTotal(t *testing.T) {
	editor, orcRepo, _ := editorDeTeste(t)
	agora := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

	editor.SetCliente(entity.Cliente{Nome: "Maria Silva"})
	editor.AdicionarTrabalho("p1", trabalhoParedes)
	require.NoError(t, editor.AtualizarTrabalho("p1", "t1", apporcamento.CampoQuantidade, "3"))
	require.NoError(t, editor.AtualizarTrabalho("p1", "t1", apporcamento.CampoValorUnitario, "5.555"))

	o, err := editor.Salvar(agora)
	require.NoError(t, err)

	// O total gravado é a agregação exata, sem arredondamento de exibição
	assert.Equal(t, "16.665", o.Total.String())

	persistido, err := orcRepo.GetByID(o.ID)
	require.NoError(t, err)
	require.NotNil(t, persistido)
	assert.True(t, persistido.Total.Equal(o.Total),
		"o snapshot persistido tem de continuar igual à agregação")
}

func TestEditor_SalvarResolveDescricaoDoCatalogoAoVivo(t *testing.T) {
	editor, _, trabRepo := editorDeTeste(t)
	agora := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

	editor.SetCliente(entity.Cliente{Nome: "Maria Silva"})
	editor.AdicionarTrabalho("p1", trabalhoParedes)

	// A descrição do catálogo muda depois da adição da linha
	trabRepo.trabalhos["t1"] = &entity.Trabalho{
		ID: "t1", ParteProcessoID: "p1",
		Descricao: "Demolição de paredes interiores", Unidade: "m2",
	}

	o, err := editor.Salvar(agora)
	require.NoError(t, err)
	assert.Equal(t, "Demolição de paredes interiores", o.Itens[0].Trabalhos[0].Descricao,
		"a descrição gravada é a do catálogo no momento do save")
}

func TestEditor_SalvarMantemCopiaQuandoTrabalhoApagadoDoCatalogo(t *testing.T) {
	editor, _, trabRepo := editorDeTeste(t)
	agora := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

	editor.SetCliente(entity.Cliente{Nome: "Maria Silva"})
	editor.AdicionarTrabalho("p1", trabalhoParedes)
	require.NoError(t, trabRepo.Delete("t1"))

	o, err := editor.Salvar(agora)
	require.NoError(t, err)
	assert.Equal(t, "Demolição de paredes", o.Itens[0].Trabalhos[0].Descricao,
		"vale a cópia feita na adição")
}

func TestEditor_RoundTripDeEdicao(t *testing.T) {
	editor, orcRepo, _ := editorDeTeste(t)
	agora := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

	editor.SetCliente(entity.Cliente{Nome: "Maria Silva"})
	editor.AdicionarTrabalho("p1", trabalhoParedes)
	require.NoError(t, editor.AtualizarTrabalho("p1", "t1", apporcamento.CampoValorUnitario, "10.00"))
	salvo, err := editor.Salvar(agora)
	require.NoError(t, err)

	// Nova sessão de edição sobre o orçamento persistido
	editor2 := apporcamento.NewEditor(orcRepo, newFakeTrabalhoRepo(&trabalhoParedes, &trabalhoPintura), apporcamento.NewNumerador(orcRepo))
	require.NoError(t, editor2.CarregarParaEdicao(salvo.ID))

	assert.Equal(t, "Maria Silva", editor2.Cliente().Nome)
	assert.True(t, editor2.ParteSelecionada("p1"))
	require.Len(t, editor2.Itens(), 1)

	editor2.AdicionarTrabalho("p2", trabalhoPintura)
	require.NoError(t, editor2.AtualizarTrabalho("p2", "t3", apporcamento.CampoValorUnitario, "12.50"))
	depois := agora.Add(48 * time.Hour)
	atualizado, err := editor2.Salvar(depois)
	require.NoError(t, err)

	assert.Equal(t, salvo.ID, atualizado.ID)
	assert.Equal(t, salvo.Numero, atualizado.Numero, "o número congela no primeiro save")
	assert.Equal(t, salvo.Data, atualizado.Data, "a data original não muda na edição")
	assert.Equal(t, depois, atualizado.UpdatedAt)
	assert.Equal(t, "135.00", atualizado.Total.StringFixed(2))
	assert.Equal(t, 1, orcRepo.criados, "a edição não cria um segundo registo")
}

func TestEditor_CarregarParaEdicaoInexistente(t *testing.T) {
	editor, _, _ := editorDeTeste(t)
	err := editor.CarregarParaEdicao("nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEditor_FalhaDeNumeracaoNaoPersisteNada(t *testing.T) {
	editor, orcRepo, _ := editorDeTeste(t)
	agora := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

	// Ano esgotado
	orcRepo.orcamentos["cheio"] = &entity.Orcamento{ID: "cheio", Numero: "2025-999", Data: agora}

	editor.SetCliente(entity.Cliente{Nome: "Maria Silva"})
	editor.AdicionarTrabalho("p1", trabalhoParedes)

	_, err := editor.Salvar(agora)
	assert.ErrorIs(t, err, domain.ErrNumberingExhausted)
	assert.Zero(t, orcRepo.criados)

	// O estado em memória fica intacto e um retry é possível
	assert.Len(t, editor.Itens(), 1)
}
