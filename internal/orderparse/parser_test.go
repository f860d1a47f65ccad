package orderparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teaCatalog() Catalog {
	return Catalog{
		Products: []string{"ชาเย็น", "ชาเขียว", "ชาไทย", "ชาแดงเย็น", "โกโก้", "กาแฟ", "ชานม"},
		Toppings: []Topping{
			{Name: "ไข่มุก", Price: 5},
			{Name: "ครีมชีส", Price: 10},
			{Name: "เผือก", Price: 5},
		},
	}
}

func TestParse_EmptyUtterance(t *testing.T) {
	assert.Empty(t, Parse("", teaCatalog()))
}

func TestParse_FillerOnlyUtterance(t *testing.T) {
	// Normalizes to nothing, so no items at all.
	assert.Empty(t, Parse("ขอ หน่อย ครับ", teaCatalog()))
}

func TestParse_GluedNamesAndQuantities(t *testing.T) {
	items := Parse("ชาเย็น2แก้วกาแฟ3แก้ว", Catalog{Products: []string{"ชาเย็น", "กาแฟ"}})

	require.Len(t, items, 2)
	assert.Equal(t, Item{MenuName: "ชาเย็น", Quantity: 2, Toppings: []string{}}, items[0])
	assert.Equal(t, Item{MenuName: "กาแฟ", Quantity: 3, Toppings: []string{}}, items[1])
}

func TestParse_TwoNamesNoQuantities(t *testing.T) {
	items := Parse("ชาไทย โกโก้", Catalog{Products: []string{"ชาไทย", "โกโก้"}})

	require.Len(t, items, 2)
	assert.Equal(t, "ชาไทย", items[0].MenuName)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, "โกโก้", items[1].MenuName)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestParse_SweetnessKeywordWithQuantity(t *testing.T) {
	items := Parse("ชาเขียวหวานน้อย 2", Catalog{Products: []string{"ชาเขียว"}})

	require.Len(t, items, 1)
	assert.Equal(t, Item{MenuName: "ชาเขียว", Quantity: 2, Toppings: []string{}, Sweetness: "หวานน้อย"}, items[0])
}

func TestParse_ToppingWithVerbPrefix(t *testing.T) {
	items := Parse("โกโก้ เพิ่มครีมชีส 1", Catalog{
		Products: []string{"โกโก้"},
		Toppings: []Topping{{Name: "ครีมชีส", Price: 10}},
	})

	require.Len(t, items, 1)
	assert.Equal(t, Item{MenuName: "โกโก้", Quantity: 1, Toppings: []string{"ครีมชีส"}}, items[0])
}

func TestParse_ImpliedPercentForcesQuantityOne(t *testing.T) {
	items := Parse("ชาเย็นหวาน50", Catalog{Products: []string{"ชาเย็น"}})

	require.Len(t, items, 1)
	assert.Equal(t, Item{MenuName: "ชาเย็น", Quantity: 1, Toppings: []string{}, Sweetness: "หวาน50%"}, items[0])
}

func TestParse_ImpliedPercentOverridesExplicitCount(t *testing.T) {
	// Rule B wins even when the chunk carries its own digits.
	items := Parse("ชาเย็นหวาน50 3แก้ว", Catalog{Products: []string{"ชาเย็น"}})

	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, "หวาน50%", items[0].Sweetness)
}

func TestParse_ExplicitPercentKeepsQuantity(t *testing.T) {
	items := Parse("ชาเย็นหวาน30% 2แก้ว", Catalog{Products: []string{"ชาเย็น"}})

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "หวาน30%", items[0].Sweetness)
}

func TestParse_SmallNumberAfterSweetIsQuantity(t *testing.T) {
	items := Parse("ชาเย็นหวาน5", Catalog{Products: []string{"ชาเย็น"}})

	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, "หวาน", items[0].Sweetness)
}

func TestParse_SweetnessOnlyUtteranceFallsBack(t *testing.T) {
	items := Parse("หวานน้อย", Catalog{Products: []string{"ชาเย็น"}})

	require.Len(t, items, 1)
	assert.Equal(t, "หวานน้อย", items[0].MenuName)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, "หวานน้อย", items[0].Sweetness)
}

func TestParse_TrailingSweetnessAttachesToPreviousItem(t *testing.T) {
	items := Parse("ชาเย็น 2 หวานน้อย", Catalog{Products: []string{"ชาเย็น"}})

	require.Len(t, items, 1)
	assert.Equal(t, "ชาเย็น", items[0].MenuName)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "หวานน้อย", items[0].Sweetness)
}

func TestParse_TrailingToppingAttachesToPreviousItem(t *testing.T) {
	items := Parse("ชานม 2 ใส่ไข่มุก", teaCatalog())

	require.Len(t, items, 1)
	assert.Equal(t, "ชานม", items[0].MenuName)
	assert.Equal(t, []string{"ไข่มุก"}, items[0].Toppings)
}

func TestParse_FuzzyToppingMatch(t *testing.T) {
	// Speech recognition swapped the final stop consonant.
	items := Parse("ชาเย็น ไข่มุข", teaCatalog())

	require.Len(t, items, 1)
	assert.Equal(t, "ชาเย็น", items[0].MenuName)
	assert.Equal(t, []string{"ไข่มุก"}, items[0].Toppings)
}

func TestParse_SuffixOnlyToppingWord(t *testing.T) {
	// Only the tail of the compound topping name was spoken.
	items := Parse("ชาเย็น มุก", teaCatalog())

	require.Len(t, items, 1)
	assert.Equal(t, "ชาเย็น", items[0].MenuName)
	assert.Equal(t, []string{"ไข่มุก"}, items[0].Toppings)
}

func TestParse_TranslitLoanwordAndOrphanNoise(t *testing.T) {
	items := Parse("ชานม ไข่มุก pop", teaCatalog())

	require.Len(t, items, 1)
	assert.Equal(t, "ชานม", items[0].MenuName)
	assert.Equal(t, []string{"ไข่มุก"}, items[0].Toppings)
}

func TestParse_WordAliasFixesTranscription(t *testing.T) {
	items := Parse("โกโก้ เพิ่มกรีนชีค", teaCatalog())

	require.Len(t, items, 1)
	assert.Equal(t, "โกโก้", items[0].MenuName)
	assert.Equal(t, []string{"ครีมชีส"}, items[0].Toppings)
}

func TestParse_MultipleToppingsLeftmostOrder(t *testing.T) {
	items := Parse("ชานม ไข่มุก ครีมชีส", teaCatalog())

	require.Len(t, items, 1)
	assert.Equal(t, []string{"ไข่มุก", "ครีมชีส"}, items[0].Toppings)
}

func TestParse_DuplicateToppingSpokenTwice(t *testing.T) {
	items := Parse("ชานม ไข่มุก ไข่มุก", teaCatalog())

	require.Len(t, items, 1)
	assert.Equal(t, []string{"ไข่มุก", "ไข่มุก"}, items[0].Toppings)
}

func TestParse_ProductAliasShortForm(t *testing.T) {
	items := Parse("เย็น 2", Catalog{Products: []string{"ชาเย็น"}})

	require.Len(t, items, 1)
	assert.Equal(t, "ชาเย็น", items[0].MenuName)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestParse_ProductAliasRedTea(t *testing.T) {
	items := Parse("แดงเย็น", Catalog{Products: []string{"ชาแดงเย็น"}})

	require.Len(t, items, 1)
	assert.Equal(t, "ชาแดงเย็น", items[0].MenuName)
}

func TestParse_ProductAliasGreenPrefix(t *testing.T) {
	items := Parse("เขียวหวานน้อย 1", Catalog{Products: []string{"ชาเขียว"}})

	require.Len(t, items, 1)
	assert.Equal(t, "ชาเขียว", items[0].MenuName)
	assert.Equal(t, "หวานน้อย", items[0].Sweetness)
}

func TestParse_AliasNameNotInCatalogKeptVerbatim(t *testing.T) {
	// The alias label survives even when the catalog has no such product;
	// an approximate name beats dropping the order.
	items := Parse("โกโก้", Catalog{Products: []string{"ชาเย็น"}})

	require.Len(t, items, 1)
	assert.Equal(t, "โกโก้", items[0].MenuName)
}

func TestParse_UnknownTextBecomesBestEffortItem(t *testing.T) {
	items := Parse("น้ำแดงโซดา 2", Catalog{Products: []string{"ชาเย็น"}})

	require.Len(t, items, 1)
	assert.Equal(t, "น้ำแดงโซดา", items[0].MenuName)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestParse_FillersStripped(t *testing.T) {
	items := Parse("ขอชาเย็น 2 แก้วครับ", Catalog{Products: []string{"ชาเย็น"}})

	require.Len(t, items, 1)
	assert.Equal(t, "ชาเย็น", items[0].MenuName)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestParse_Deterministic(t *testing.T) {
	cat := teaCatalog()
	first := Parse("ชาเย็น 2 ไข่มุก หวานน้อย โกโก้ 1", cat)
	second := Parse("ชาเย็น 2 ไข่มุก หวานน้อย โกโก้ 1", cat)
	assert.Equal(t, first, second)
}

func TestParse_InvariantsHold(t *testing.T) {
	cat := teaCatalog()
	utterances := []string{
		"ชาเย็น2แก้วกาแฟ3แก้ว",
		"อะไรก็ไม่รู้ 99",
		"หวาน80",
		"เอา ขอ ชาไทย",
		"pop pop pop",
		"ชาเขียวหวานน้อย ไข่มุก 2 โกโก้",
	}
	for _, u := range utterances {
		items := Parse(u, cat)
		assert.NotEmpty(t, items, "utterance %q", u)
		for _, it := range items {
			assert.GreaterOrEqual(t, it.Quantity, 1, "utterance %q", u)
			assert.NotEmpty(t, it.MenuName, "utterance %q", u)
		}
	}
}

func TestParse_DoesNotMutateCatalog(t *testing.T) {
	cat := teaCatalog()
	wantProducts := append([]string(nil), cat.Products...)
	wantToppings := append([]Topping(nil), cat.Toppings...)

	Parse("ชาเย็น ไข่มุก 2 โกโก้ ครีมชีส", cat)

	assert.Equal(t, wantProducts, cat.Products)
	assert.Equal(t, wantToppings, cat.Toppings)
}
