package orderparse

import (
	"strconv"
	"strings"
)

// Placeholder markers live in the Unicode private-use area. normalizeText
// removes any such rune from raw input before extraction, so a marker in the
// working text always denotes exactly one extracted sweetness slot.
const (
	markerBase rune = ''
	markerMax  rune = ''
)

// sweetSlot is one extracted sweetness phrase awaiting reattachment to the
// chunk that contains its marker.
type sweetSlot struct {
	label    string
	forceOne bool
}

// extractSweetness detects sweetness phrases, replacing each with a unique
// marker rune, and returns the rewritten text plus the slots in left-to-right
// order. It runs before chunk splitting so that a percentage such as
// "หวาน50" is never misread as a cup count.
//
// Disambiguation for the bare "หวาน" keyword:
//   - an explicit %/เปอร์เซ็นต์ suffix always means a percentage
//   - a bare number above percentThreshold is an implied percentage and
//     forces the owning chunk's quantity to one
//   - a bare number at or below the threshold is assumed to be a quantity;
//     the digits are re-emitted after the marker for the chunk grammar
func extractSweetness(text string) (string, []sweetSlot) {
	var slots []sweetSlot
	var b strings.Builder
	rest := text
	for {
		loc := sweetRe.FindStringSubmatchIndex(rest)
		if loc == nil {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:loc[0]])

		matched := rest[loc[0]:loc[1]]
		num := submatch(rest, loc, 1)
		suffix := submatch(rest, loc, 2)
		marker := markerBase + rune(len(slots))

		slot := sweetSlot{}
		switch matched {
		case sweetNoSyrup, sweetNone, sweetLess, sweetExtra, sweetNormal, sweetAdd:
			slot.label = matched
			b.WriteRune(marker)
		default:
			switch {
			case num == "":
				slot.label = sweetBare
				b.WriteRune(marker)
			case suffix != "":
				slot.label = sweetBare + num + "%"
				b.WriteRune(marker)
			default:
				n, _ := strconv.Atoi(num)
				if n > percentThreshold {
					slot.label = sweetBare + num + "%"
					slot.forceOne = true
					b.WriteRune(marker)
				} else {
					// Ambiguous small number: keep it as a quantity.
					slot.label = sweetBare
					b.WriteRune(marker)
					b.WriteString(num)
				}
			}
		}
		slots = append(slots, slot)
		rest = rest[loc[1]:]
	}
	return b.String(), slots
}

func submatch(s string, loc []int, group int) string {
	if loc[2*group] < 0 {
		return ""
	}
	return s[loc[2*group]:loc[2*group+1]]
}

// slotForMarker maps a marker rune back to its slot, if any.
func slotForMarker(slots []sweetSlot, r rune) (sweetSlot, bool) {
	idx := int(r - markerBase)
	if idx < 0 || idx >= len(slots) {
		return sweetSlot{}, false
	}
	return slots[idx], true
}

// stripMarkers removes every placeholder marker from s.
func stripMarkers(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= markerBase && r <= markerMax {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
