package orderparse

import (
	"sort"
	"strings"
)

// worktext holds the chunk text as an ordered list of unconsumed fragments,
// each keeping its byte offset in the original chunk string. Matches consume
// a range by splitting the fragment, so earlier removals never glue
// unrelated text together and never shift later offsets.
type worktext struct {
	spans []span
}

type span struct {
	text string
	off  int
}

func newWorktext(s string) *worktext {
	return &worktext{spans: []span{{text: s, off: 0}}}
}

// consume removes byte range [start,end) of span i, splitting it in two.
func (w *worktext) consume(i, start, end int) {
	s := w.spans[i]
	var repl []span
	if left := s.text[:start]; strings.TrimSpace(left) != "" {
		lt := strings.TrimLeft(left, " ")
		repl = append(repl, span{text: strings.TrimRight(lt, " "), off: s.off + (len(left) - len(lt))})
	}
	if right := s.text[end:]; strings.TrimSpace(right) != "" {
		rt := strings.TrimLeft(right, " ")
		repl = append(repl, span{text: strings.TrimRight(rt, " "), off: s.off + end + (len(right) - len(rt))})
	}
	w.spans = append(w.spans[:i], append(repl, w.spans[i+1:]...)...)
}

// consumeSubstring removes the first occurrence of sub, reporting its offset.
func (w *worktext) consumeSubstring(sub string) (int, bool) {
	for i, s := range w.spans {
		if idx := strings.Index(s.text, sub); idx >= 0 {
			off := s.off + idx
			w.consume(i, idx, idx+len(sub))
			return off, true
		}
	}
	return 0, false
}

// leftover joins the surviving fragments.
func (w *worktext) leftover() string {
	parts := make([]string, 0, len(w.spans))
	for _, s := range w.spans {
		parts = append(parts, s.text)
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(strings.Join(parts, " "), " "))
}

// words lists the whitespace-delimited words of all fragments with offsets.
func (w *worktext) words() []span {
	var out []span
	for _, s := range w.spans {
		rest := s.text
		base := s.off
		for rest != "" {
			trimmed := strings.TrimLeft(rest, " ")
			base += len(rest) - len(trimmed)
			rest = trimmed
			if rest == "" {
				break
			}
			end := strings.IndexByte(rest, ' ')
			if end < 0 {
				end = len(rest)
			}
			out = append(out, span{text: rest[:end], off: base})
			base += end
			rest = rest[end:]
		}
	}
	return out
}

func (w *worktext) consumeWord(word span) {
	for i, s := range w.spans {
		if word.off >= s.off && word.off+len(word.text) <= s.off+len(s.text) {
			start := word.off - s.off
			w.consume(i, start, start+len(word.text))
			return
		}
	}
}

// matchRec is one recognized topping or product with its position in the
// chunk, used to restore spoken order in the output.
type matchRec struct {
	name string
	off  int
}

type candidate struct {
	name  string
	key   string
	runes int
}

// toppingCandidates returns catalog toppings sorted longest-first; ties keep
// catalog order.
func toppingCandidates(toppings []Topping) []candidate {
	cands := make([]candidate, 0, len(toppings))
	for _, t := range toppings {
		if t.Name == "" {
			continue
		}
		cands = append(cands, candidate{name: t.Name, key: phoneticKey(t.Name), runes: len([]rune(t.Name))})
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].runes > cands[j].runes })
	return cands
}

func productCandidates(products []string) []candidate {
	cands := make([]candidate, 0, len(products))
	for _, p := range products {
		if p == "" {
			continue
		}
		cands = append(cands, candidate{name: p, runes: len([]rune(p))})
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].runes > cands[j].runes })
	return cands
}

// findTopping locates the best topping match left in the text: an exact
// substring of the longest candidate first, then a fuzzy window whose
// phonetic key equals a candidate's.
func findTopping(w *worktext, cands []candidate) (matchRec, bool) {
	for _, c := range cands {
		for i, s := range w.spans {
			if idx := strings.Index(s.text, c.name); idx >= 0 {
				rec := matchRec{name: c.name, off: s.off + idx}
				w.consume(i, idx, idx+len(c.name))
				return rec, true
			}
		}
	}
	for _, c := range cands {
		if rec, ok := fuzzyFind(w, c); ok {
			return rec, true
		}
	}
	return matchRec{}, false
}

// fuzzyFind slides a window of the candidate's rune length (then one shorter,
// then one longer) over each fragment, comparing phonetic keys.
func fuzzyFind(w *worktext, c candidate) (matchRec, bool) {
	for i, s := range w.spans {
		runes := []rune(s.text)
		offs := runeByteOffsets(s.text)
		for _, wl := range []int{c.runes, c.runes - 1, c.runes + 1} {
			if wl < 1 || wl > len(runes) {
				continue
			}
			for start := 0; start+wl <= len(runes); start++ {
				window := string(runes[start : start+wl])
				if phoneticKey(window) == c.key {
					rec := matchRec{name: c.name, off: s.off + offs[start]}
					w.consume(i, offs[start], offs[start+wl])
					return rec, true
				}
			}
		}
	}
	return matchRec{}, false
}

func runeByteOffsets(s string) []int {
	offs := make([]int, 0, len(s)+1)
	for i := range s {
		offs = append(offs, i)
	}
	return append(offs, len(s))
}

// resolveChunk runs the per-chunk pipeline and appends the chunk's items to
// the running list. A chunk holding only sweetness or toppings amends the
// most recently emitted item instead of creating a new one.
func resolveChunk(ch rawChunk, cat Catalog, slots []sweetSlot, items []Item) []Item {
	// Recover sweetness from placeholder markers; the first marker wins.
	sweet := ""
	hadSweet := false
	qty := ch.qty
	for _, r := range ch.text {
		if slot, ok := slotForMarker(slots, r); ok {
			sweet = slot.label
			hadSweet = true
			if slot.forceOne {
				qty = 1
			}
			break
		}
	}
	text := stripMarkers(ch.text)

	// Strip topping-announcing verbs, transliterate Latin loanwords, and fix
	// common mis-transcriptions.
	text = toppingVerbRe.ReplaceAllString(text, " ")
	text = bareToppingWordRe.ReplaceAllString(text, " ")
	for _, e := range translitEntries {
		text = e.re.ReplaceAllString(text, e.thai)
	}
	for _, re := range translitGlueRes {
		text = re.ReplaceAllString(text, "$1$2")
	}
	for _, a := range wordAliases {
		text = strings.ReplaceAll(text, a.from, a.to)
	}
	text = strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))

	w := newWorktext(text)

	// Topping extraction to fixpoint: removals fragment the text, so keep
	// scanning until no catalog topping matches anywhere.
	toppingCands := toppingCandidates(cat.Toppings)
	var found []matchRec
	for len(toppingCands) > 0 {
		rec, ok := findTopping(w, toppingCands)
		if !ok {
			break
		}
		found = append(found, rec)
	}

	// Suffix sweep: a word may be just the tail of a compound topping name.
	for _, word := range w.words() {
		if len([]rune(word.text)) < 2 {
			continue
		}
		wk := phoneticKey(word.text)
		for _, t := range cat.Toppings {
			if t.Name == "" || wk == "" {
				continue
			}
			if strings.HasSuffix(phoneticKey(t.Name), wk) {
				found = append(found, matchRec{name: t.Name, off: word.off})
				w.consumeWord(word)
				break
			}
		}
	}

	// Orphaned transliteration vocabulary is noise once a topping matched.
	if len(found) > 0 {
		for _, word := range w.words() {
			if translitWords[strings.ToLower(word.text)] {
				w.consumeWord(word)
			}
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].off < found[j].off })
	tops := make([]string, 0, len(found))
	for _, f := range found {
		tops = append(tops, f.name)
	}

	// Product match: longest catalog name first, repeated so a chunk naming
	// several drinks without numbers still yields every drink.
	prodCands := productCandidates(cat.Products)
	var prods []matchRec
	for len(prodCands) > 0 {
		rec, ok := func() (matchRec, bool) {
			for _, c := range prodCands {
				for i, s := range w.spans {
					if idx := strings.Index(s.text, c.name); idx >= 0 {
						rec := matchRec{name: c.name, off: s.off + idx}
						w.consume(i, idx, idx+len(c.name))
						return rec, true
					}
				}
			}
			return matchRec{}, false
		}()
		if !ok {
			break
		}
		prods = append(prods, rec)
	}

	if len(prods) == 0 {
		if rec, ok := matchProductAlias(w, cat.Products); ok {
			prods = append(prods, rec)
		}
	}

	if len(prods) > 0 {
		sort.Slice(prods, func(i, j int) bool { return prods[i].off < prods[j].off })
		// The drink closest to the number owns the chunk's quantity,
		// toppings, and sweetness; earlier drinks default to one cup.
		for i, p := range prods {
			it := Item{MenuName: p.name, Quantity: 1, Toppings: []string{}}
			if i == len(prods)-1 {
				it.Quantity = qty
				it.Toppings = tops
				it.Sweetness = sweet
			}
			items = append(items, it)
		}
		return items
	}

	if left := w.leftover(); left != "" {
		// Best effort: keep the utterance as an uncatalogued menu name.
		items = append(items, Item{MenuName: left, Quantity: qty, Toppings: tops, Sweetness: sweet})
		return items
	}

	// Sweetness or toppings spoken as their own breath group modify the
	// preceding drink.
	if (hadSweet || len(tops) > 0) && len(items) > 0 {
		last := &items[len(items)-1]
		if hadSweet {
			last.Sweetness = sweet
		}
		last.Toppings = append(last.Toppings, tops...)
		return items
	}

	raw := strings.TrimSpace(stripMarkers(ch.text))
	if raw == "" {
		// Nothing to name this chunk with; the whole-utterance fallback in
		// Parse covers the case where no chunk produced an item.
		return items
	}
	items = append(items, Item{MenuName: raw, Quantity: qty, Toppings: tops, Sweetness: sweet})
	return items
}
