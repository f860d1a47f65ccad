package orderparse

import (
	"regexp"
	"strings"
)

// Product alias fallback: names commonly shortened or garbled in speech.
// Compound forms are tested before the bare "เย็น" rule so they stay
// reachable. Tried only when no catalog product matched directly.

var redTeaAliasRe = regexp.MustCompile(`แดงเย็น|แร่เย็น|แร์เย็น`)

// matchProductAlias tries the ordered alias rules against the remaining
// text. On a hit the alias keyword is consumed and the resolved name is
// returned: the catalog's exact name when the target is recognizable there,
// otherwise the alias's canonical label verbatim, since an approximate
// label beats discarding the utterance.
func matchProductAlias(w *worktext, products []string) (matchRec, bool) {
	left := w.leftover()
	if left == "" {
		return matchRec{}, false
	}

	if strings.HasPrefix(left, "เขียว") {
		return consumeAlias(w, "เขียว", "ชาเขียว", products)
	}
	if m := redTeaAliasRe.FindString(left); m != "" {
		return consumeAlias(w, m, "ชาแดงเย็น", products)
	}
	if idx := strings.Index(left, "เย็น"); idx >= 0 && !strings.HasSuffix(left[:idx], "ชา") {
		return consumeAlias(w, "เย็น", "ชาเย็น", products)
	}
	if left == "โกโก้" {
		return consumeAlias(w, "โกโก้", "โกโก้", products)
	}
	if strings.HasPrefix(left, "โลโก้") {
		return consumeAlias(w, "โลโก้", "โลโก้", products)
	}
	return matchRec{}, false
}

func consumeAlias(w *worktext, keyword, target string, products []string) (matchRec, bool) {
	off, ok := w.consumeSubstring(keyword)
	if !ok {
		return matchRec{}, false
	}
	if name, ok := aliasCatalogName(products, target); ok {
		return matchRec{name: name, off: off}, true
	}
	return matchRec{name: target, off: off}, true
}

// aliasCatalogName resolves an alias target to the catalog's exact spelling:
// an exact entry, an entry the target is a prefix of, or an entry whose
// trailing vowel-consonant cluster is the only difference.
func aliasCatalogName(products []string, target string) (string, bool) {
	for _, p := range products {
		if p == target {
			return p, true
		}
	}
	for _, p := range products {
		if strings.HasPrefix(p, target) {
			return p, true
		}
	}
	if head := trimFinalCluster(target); head != "" {
		for _, p := range products {
			if strings.HasPrefix(p, head) {
				return p, true
			}
		}
	}
	return "", false
}

// trimFinalCluster drops the final consonant and its surrounding vowel and
// tone marks from a Thai word.
func trimFinalCluster(s string) string {
	r := []rune(s)
	n := len(r)
	for n > 0 && isThaiMark(r[n-1]) {
		n--
	}
	if n > 0 {
		n--
	}
	for n > 0 && isThaiMark(r[n-1]) {
		n--
	}
	return string(r[:n])
}

func isThaiMark(r rune) bool {
	return (r >= 'ะ' && r <= 'ฺ') || (r >= '็' && r <= '๎') || r == 'ๅ'
}
