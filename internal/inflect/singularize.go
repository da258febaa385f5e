// Package inflect reduces Portuguese plural nouns to their singular form.
// Tool names derived from API paths depend on these exact rewrite rules,
// so the rule table must not be "improved" without renaming every tool.
package inflect

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// invariable holds words that keep their trailing "s" in the singular.
var invariable = map[string]bool{
	"parabens": true,
	"lapis":    true,
	"virus":    true,
	"atlas":    true,
	"pires":    true,
	"bonus":    true,
	"cais":     true,
	"oculos":   true,
	"onibus":   true,
}

// accentStripper decomposes characters and removes combining marks,
// turning e.g. "proposições" into "proposicoes".
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize strips accents and lower-cases a word.
func Normalize(word string) string {
	stripped, _, err := transform.String(accentStripper, strings.TrimSpace(word))
	if err != nil {
		stripped = strings.TrimSpace(word)
	}
	return strings.ToLower(stripped)
}

// Singularize returns the singular form of a Portuguese plural noun.
// The input is normalized (accents stripped, lower-cased) first; the
// ordered suffix rules below are then tried top to bottom and only the
// first match rewrites the word. Words not matching any rule are assumed
// already singular or irregular and returned normalized.
func Singularize(word string) string {
	w := Normalize(word)

	if invariable[w] {
		return w
	}

	switch {
	case strings.HasSuffix(w, "ns"):
		// armazens -> armazem
		return strings.TrimSuffix(w, "ns") + "m"
	case strings.HasSuffix(w, "zes"):
		// raizes -> raiz
		return strings.TrimSuffix(w, "es")
	case strings.HasSuffix(w, "ses"):
		// meses -> mes
		return strings.TrimSuffix(w, "es")
	case strings.HasSuffix(w, "oes"):
		// proposicoes -> proposicao
		return strings.TrimSuffix(w, "oes") + "ao"
	case strings.HasSuffix(w, "aos"):
		// orgaos -> orgao
		return strings.TrimSuffix(w, "aos") + "ao"
	case strings.HasSuffix(w, "aes"):
		// caes -> cao
		return strings.TrimSuffix(w, "aes") + "ao"
	case strings.HasSuffix(w, "les"):
		// papeles -> papel (rare, but the rule precedes the vowel cases)
		return strings.TrimSuffix(w, "es")
	case hasVowelBefore(w, "is", "aeou"):
		// jornais -> jornal, papeis -> papel
		return strings.TrimSuffix(w, "is") + "l"
	case strings.HasSuffix(w, "is"):
		// barris -> barril
		return strings.TrimSuffix(w, "is") + "il"
	case hasVowelBefore(w, "s", "aiou"):
		// despesas -> despesa, deputados -> deputado
		return strings.TrimSuffix(w, "s")
	case strings.HasSuffix(w, "tores"), strings.HasSuffix(w, "lores"), strings.HasSuffix(w, "dores"):
		// relatores -> relator
		return strings.TrimSuffix(w, "es")
	case strings.HasSuffix(w, "vores"):
		// arvores -> arvore
		return strings.TrimSuffix(w, "s")
	case strings.HasSuffix(w, "tes"):
		// frentes -> frente
		return strings.TrimSuffix(w, "s")
	}

	return w
}

// hasVowelBefore reports whether w ends in suffix immediately preceded by
// one of the given vowels.
func hasVowelBefore(w, suffix, vowels string) bool {
	if !strings.HasSuffix(w, suffix) {
		return false
	}
	rest := strings.TrimSuffix(w, suffix)
	if rest == "" {
		return false
	}
	return strings.ContainsRune(vowels, rune(rest[len(rest)-1]))
}
