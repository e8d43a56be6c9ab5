// Package texto utilitários de normalização de texto para nomes de ficheiro.
package texto

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slug normaliza um texto livre para uso em nomes de ficheiro: remove
// acentos (NFD + remoção de marcas combinantes), baixa para minúsculas e
// troca tudo o que não for letra ou dígito por hífen.
// Ex.: "Ana Gonçalves" -> "ana-goncalves".
func Slug(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	sem, _, err := transform.String(t, s)
	if err != nil {
		sem = s
	}

	var b strings.Builder
	ultimoHifen := true // evita hífen inicial
	for _, r := range strings.ToLower(sem) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			ultimoHifen = false
		default:
			if !ultimoHifen {
				b.WriteRune('-')
				ultimoHifen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
