package table

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone, elimina marcas diacríticas y recompone.
// "FeedMe Médellín" y "feedme medellin" quedan comparables.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza un string para comparación: minúsculas y sin acentos.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// FoldContains indica si s contiene needle ya normalizado con Fold.
func FoldContains(s, foldedNeedle string) bool {
	return strings.Contains(Fold(s), foldedNeedle)
}
