package orderparse

import "regexp"

// Rule tables for the Thai order parser. Everything here is built once at
// package init and treated as immutable; Parse never mutates these.

// fillerWords are polite particles and order verbs that carry no meaning for
// item resolution. They are removed as plain substrings, in this order.
var fillerWords = []string{
	"เอา", "ขอ", "หน่อย", "ครับ", "ค่ะ", "นะ", "ด้วย", "กับ", "และ",
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Sweetness keywords. Longer and more specific phrases are listed before the
// bare "หวาน" alternative so they win under the regexp engine's ordered
// alternation. The bare form may carry a number and an optional percent
// suffix, which drives the quantity-vs-percentage disambiguation.
const (
	sweetNoSyrup = "ไม่ใส่น้ำตาล"
	sweetNone    = "ไม่หวาน"
	sweetLess    = "หวานน้อย"
	sweetExtra   = "หวานมาก"
	sweetNormal  = "หวานปกติ"
	sweetAdd     = "เพิ่มหวาน"
	sweetBare    = "หวาน"
)

var sweetRe = regexp.MustCompile(`ไม่ใส่น้ำตาล|ไม่หวาน|หวานน้อย|หวานมาก|หวานปกติ|เพิ่มหวาน|หวาน\s*([0-9]+)?\s*(%|เปอร์เซ็นต์)?`)

// percentThreshold: a bare number after "หวาน" above this value cannot be a
// cup count and is read as an implied percentage.
const percentThreshold = 10

// Chunk grammar: a run of digits, optionally followed by a cup unit word.
var qtyRe = regexp.MustCompile(`([0-9]+)\s*(?:แก้ว(?:นึง|หนึ่ง|ค่ะ|ครับ)?)?`)

// toppingVerbRe strips verb phrases that announce a topping. The topping
// name itself is never part of the match.
var toppingVerbRe = regexp.MustCompile(`(?:เพิ่ม|บวก|ใส่|พร้อม|ท็อปปิ้ง|ท็อป)\s*(?:ท็อปปิ้ง|(?i:topping))?`)

var bareToppingWordRe = regexp.MustCompile(`(?i)\btopping\b`)

// translitEntries map Latin topping vocabulary, as heard by speech
// recognition, to Thai phonetic equivalents. Longer alternatives come first.
var translitEntries = []struct {
	re   *regexp.Regexp
	thai string
}{
	{regexp.MustCompile(`(?i)\b(?:popping|pop)\b`), "ป๊อป"},
	{regexp.MustCompile(`(?i)\b(?:strawberry|straw)\b`), "สตรอ"},
	{regexp.MustCompile(`(?i)\bapple\b`), "แอปเปิ้ล"},
	{regexp.MustCompile(`(?i)\btaro\b`), "เผือก"},
	{regexp.MustCompile(`(?i)\bmatcha\b`), "มัทฉะ"},
}

// translitGlueRes collapse the space between a Thai consonant and a
// transliterated word so "มุก ป๊อป" and "มุกป๊อป" read the same. Spaces
// between unrelated words are untouched.
var translitGlueRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(translitEntries))
	for _, e := range translitEntries {
		res = append(res, regexp.MustCompile(`([ก-ฮ]) (`+regexp.QuoteMeta(e.thai)+`)`))
	}
	return res
}()

// translitWords are the standalone leftover forms (both scripts) swept away
// after at least one topping has been recognized.
var translitWords = map[string]bool{
	"pop": true, "popping": true, "strawberry": true, "straw": true,
	"apple": true, "taro": true, "matcha": true,
	"ป๊อป": true, "สตรอ": true, "แอปเปิ้ล": true, "เผือก": true, "มัทฉะ": true,
}

// wordAliases fix common speech-recognition mis-transcriptions. Applied as
// literal substitutions, in order.
var wordAliases = []struct{ from, to string }{
	{"กรีน", "ครีม"},
	{"กรีม", "ครีม"},
	{"ชีค", "ชีส"},
	{"ชี่", "ชีส"},
}

// Phonetic normalization tables: tone marks dropped by speech recognition,
// and final stop consonants that collapse to the same sound.
var toneMarks = map[rune]bool{
	'็': true, // ็
	'่': true, // ่
	'้': true, // ้
	'๊': true, // ๊
	'๋': true, // ๋
	'๎': true, // ๎
}

var finalStopB = map[rune]bool{
	'ป': true, 'บ': true, 'พ': true, 'ภ': true, 'ผ': true,
	'ก': true, 'ข': true, 'ค': true, 'ฆ': true,
}

var finalStopD = map[rune]bool{
	'ด': true, 'ต': true, 'ถ': true, 'ท': true,
	'ฏ': true, 'ฐ': true, 'ฑ': true, 'ฒ': true,
}

// fallbackName is the last-resort menu name when nothing at all survives.
const fallbackName = "unknown name"
