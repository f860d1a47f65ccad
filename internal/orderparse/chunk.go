package orderparse

import (
	"strconv"
	"strings"
)

// rawChunk is one name+quantity span, the unit the resolver consumes.
type rawChunk struct {
	text string
	qty  int
}

// splitChunks cuts the marker-bearing text into ordered chunks using the
// name-then-number grammar: the longest run of non-digit characters followed
// by a digit run claims that number as its quantity, and an optional cup
// unit word after the digits is consumed. Trailing text without a number
// becomes its own chunk with quantity one, as does the whole string when it
// carries no digits at all. A digit run with no name in front of it is
// discarded.
func splitChunks(text string) []rawChunk {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	matches := qtyRe.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return []rawChunk{{text: text, qty: 1}}
	}

	var chunks []rawChunk
	prev := 0
	for _, m := range matches {
		name := strings.TrimSpace(text[prev:m[0]])
		prev = m[1]
		if name == "" {
			continue
		}
		qty, _ := strconv.Atoi(text[m[2]:m[3]])
		if qty < 1 {
			qty = 1
		}
		chunks = append(chunks, rawChunk{text: name, qty: qty})
	}
	if tail := strings.TrimSpace(text[prev:]); tail != "" {
		chunks = append(chunks, rawChunk{text: tail, qty: 1})
	}
	return chunks
}
