// Package orderparse turns one colloquial Thai order utterance into
// structured line items using the shop's live catalog. It is a deterministic
// rule pipeline: filler removal, sweetness extraction, name-then-number
// chunking, then per-chunk resolution of toppings and products with phonetic
// fuzzy matching. Parsing never fails: noisy speech-to-text input degrades to
// a best-effort item that the operator reviews before confirming.
package orderparse

import "strings"

// Topping is one catalog topping with its add-on price.
type Topping struct {
	Name  string
	Price float64
}

// Catalog is the snapshot of active menu data at parse time. The caller
// fetches it fresh per call; Parse never caches or mutates it.
type Catalog struct {
	Products []string
	Toppings []Topping
}

// Item is one resolved order line. MenuName is a catalog product name when
// one matched, otherwise the best-effort leftover text. Sweetness is empty
// when none was spoken.
type Item struct {
	MenuName  string
	Quantity  int
	Toppings  []string
	Sweetness string
}

// Parse converts an utterance into ordered line items. It is a pure function
// of its arguments and safe for concurrent use. An utterance that is empty,
// or that normalizes to nothing, yields zero items; any other input yields
// at least one.
func Parse(utterance string, cat Catalog) []Item {
	cleaned := normalizeText(utterance)
	if cleaned == "" {
		return nil
	}

	withMarkers, slots := extractSweetness(cleaned)
	chunks := splitChunks(withMarkers)

	var items []Item
	for _, ch := range chunks {
		items = resolveChunk(ch, cat, slots, items)
	}

	if len(items) == 0 {
		name := cleaned
		if name == "" {
			name = strings.TrimSpace(utterance)
		}
		if name == "" {
			name = fallbackName
		}
		sweet := ""
		if len(slots) > 0 {
			sweet = slots[0].label
		}
		items = append(items, Item{MenuName: name, Quantity: 1, Toppings: []string{}, Sweetness: sweet})
	}
	return items
}
