// seed gera um script SQL para popular o catálogo inicial de partes do
// processo e modelos de trabalho.
//
// Uso: go run ./cmd/seed
// Escreve: internal/infrastructure/postgres/migrations/002_seed_catalogo.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type trabalho struct {
	descricao  string
	unidade    string
	quantidade int
}

type parte struct {
	nome      string
	trabalhos []trabalho
}

// Catálogo base de uma empresa de remodelação de interiores.
var catalogo = []parte{
	{nome: "Demolições", trabalhos: []trabalho{
		{"Demolição de paredes em alvenaria", "m2", 1},
		{"Remoção de pavimento existente", "m2", 1},
		{"Transporte de entulho a vazadouro", "vg", 1},
	}},
	{nome: "Alvenarias", trabalhos: []trabalho{
		{"Execução de paredes em tijolo furado", "m2", 1},
		{"Regularização de paredes com reboco", "m2", 1},
	}},
	{nome: "Pladur", trabalhos: []trabalho{
		{"Execução de teto falso em pladur", "m2", 1},
		{"Execução de parede divisória em pladur", "m2", 1},
		{"Sanca de iluminação indireta", "ml", 1},
	}},
	{nome: "Eletricidade", trabalhos: []trabalho{
		{"Abertura e fecho de roços para tubagem", "ml", 1},
		{"Instalação de ponto de luz", "unid", 1},
		{"Instalação de tomada", "unid", 1},
		{"Substituição de quadro elétrico", "unid", 1},
	}},
	{nome: "Canalização", trabalhos: []trabalho{
		{"Substituição de rede de águas em multicamada", "vg", 1},
		{"Instalação de ponto de água", "unid", 1},
		{"Substituição de rede de esgotos", "vg", 1},
	}},
	{nome: "Revestimentos", trabalhos: []trabalho{
		{"Fornecimento e assentamento de cerâmico em pavimento", "m2", 1},
		{"Fornecimento e assentamento de cerâmico em parede", "m2", 1},
		{"Fornecimento e aplicação de pavimento flutuante", "m2", 1},
	}},
	{nome: "Pinturas", trabalhos: []trabalho{
		{"Pintura de paredes interiores (2 demãos)", "m2", 1},
		{"Pintura de tetos (2 demãos)", "m2", 1},
		{"Aplicação de primário", "m2", 1},
	}},
	{nome: "Carpintarias", trabalhos: []trabalho{
		{"Fornecimento e montagem de porta interior", "unid", 1},
		{"Fornecimento e montagem de rodapé", "ml", 1},
	}},
}

func main() {
	outPath := filepath.Join("internal", "infrastructure", "postgres", "migrations", "002_seed_catalogo.sql")

	var b strings.Builder
	b.WriteString("-- Catálogo inicial de partes do processo e modelos de trabalho.\n")
	b.WriteString("-- Gerado por: go run ./cmd/seed\n\n")

	for _, p := range catalogo {
		parteID := uuid.New().String()
		b.WriteString(fmt.Sprintf(
			"INSERT INTO partes_processo (id, nome) VALUES ('%s', '%s') ON CONFLICT (id) DO NOTHING;\n",
			parteID, sqlEscape(p.nome),
		))
		for _, t := range p.trabalhos {
			b.WriteString(fmt.Sprintf(
				"INSERT INTO trabalhos (id, parte_processo_id, descricao, unidade, quantidade_padrao) VALUES ('%s', '%s', '%s', '%s', %d) ON CONFLICT (id) DO NOTHING;\n",
				uuid.New().String(), parteID, sqlEscape(t.descricao), t.unidade, t.quantidade,
			))
		}
		b.WriteString("\n")
	}

	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "escrever %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("escrito %s (%d partes)\n", outPath, len(catalogo))
}

func sqlEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
