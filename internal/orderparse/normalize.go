package orderparse

import "strings"

// normalizeText strips filler words and collapses whitespace. Private-use
// runes are dropped up front so sweetness placeholder markers, which are
// allocated from that plane, can never collide with real input.
func normalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= markerBase && r <= markerMax {
			continue
		}
		b.WriteRune(r)
	}
	out := b.String()
	for _, w := range fillerWords {
		out = strings.ReplaceAll(out, w, "")
	}
	out = whitespaceRe.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// phoneticKey reduces a Thai string to a comparison key approximating how
// speech recognition confuses it: tone marks dropped, กร read as คร, and the
// final consonant collapsed onto its stop-sound class.
func phoneticKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if toneMarks[r] {
			continue
		}
		b.WriteRune(r)
	}
	out := strings.ReplaceAll(b.String(), "กร", "คร")
	runes := []rune(out)
	if n := len(runes); n > 0 {
		switch {
		case finalStopB[runes[n-1]]:
			runes[n-1] = 'บ'
		case finalStopD[runes[n-1]]:
			runes[n-1] = 'ด'
		}
	}
	return string(runes)
}
