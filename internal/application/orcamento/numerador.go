package orcamento

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/galindoptbr/orcamentos-app/internal/domain"
	"github.com/galindoptbr/orcamentos-app/internal/domain/repository"
)

// Numerador atribui o identificador humano sequencial de um orçamento novo,
// no formato AAAA-NNN (ano corrente, hífen, sequência de 3 dígitos com zeros
// à esquerda). A sequência é por ano civil e nunca reutiliza números de
// orçamentos apagados.
//
// Limitação conhecida: dois saves quase simultâneos em sessões diferentes
// podem receber o mesmo número (não há lock entre clientes). Aceite como
// fraqueza documentada, não corrigida aqui.
type Numerador struct {
	repo repository.OrcamentoRepository
}

// NewNumerador constrói o serviço.
func NewNumerador(repo repository.OrcamentoRepository) *Numerador {
	return &Numerador{repo: repo}
}

// ProximoNumero calcula o próximo número para o ano de now.
//
//  1. Procura o maior número existente no intervalo lexical
//     [AAAA-001, AAAA-999] e incrementa o sufixo.
//  2. Sem números nesse ano (dados legados anteriores à numeração), usa
//     contagem de orçamentos com Data nesse ano + 1.
//
// Quando o último número do ano já é AAAA-999 retorna
// domain.ErrNumberingExhausted: a janela lexical de 3 dígitos fica intacta
// e o save é rejeitado em vez de gerar um número fora do intervalo.
// Se a consulta ao repositório falhar, o erro propaga e nada é persistido.
func (n *Numerador) ProximoNumero(now time.Time) (string, error) {
	ano := now.Year()
	min := fmt.Sprintf("%04d-001", ano)
	max := fmt.Sprintf("%04d-999", ano)

	ultimo, err := n.repo.UltimoNumeroNoIntervalo(min, max)
	if err != nil {
		return "", fmt.Errorf("numerador: consultar último número: %w", err)
	}
	if ultimo != "" {
		seq, err := parseSequencia(ultimo)
		if err != nil {
			return "", fmt.Errorf("numerador: número persistido malformado %q: %w", ultimo, err)
		}
		if seq >= 999 {
			return "", domain.ErrNumberingExhausted
		}
		return fmt.Sprintf("%04d-%03d", ano, seq+1), nil
	}

	count, err := n.repo.ContarPorAno(ano)
	if err != nil {
		return "", fmt.Errorf("numerador: contar orçamentos do ano: %w", err)
	}
	if count >= 999 {
		return "", domain.ErrNumberingExhausted
	}
	return fmt.Sprintf("%04d-%03d", ano, count+1), nil
}

// parseSequencia extrai o sufixo numérico de um número AAAA-NNN.
func parseSequencia(numero string) (int, error) {
	i := strings.LastIndex(numero, "-")
	if i < 0 || i == len(numero)-1 {
		return 0, fmt.Errorf("sem sufixo de sequência")
	}
	return strconv.Atoi(numero[i+1:])
}
