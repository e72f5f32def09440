package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItems_FourteenInCatalogOrder(t *testing.T) {
	items := Items()
	require.Len(t, items, 14)
	assert.Equal(t, 14, ItemCount())

	for i, item := range items {
		assert.Equal(t, ChecklistItemID(i+1), item.ID, "item %d out of order", i)
		assert.NotEmpty(t, item.Text)
		assert.NotEmpty(t, item.Slug)
	}
	assert.Equal(t, "Vérifier la bonne référence des électrodes", items[0].Text)
	assert.Equal(t, "Vérifier les paramètres de ragéage des électrodes (Fréquence et paramètre rodage)", items[13].Text)
}

func TestItems_ReturnsCopy(t *testing.T) {
	items := Items()
	items[0].Text = "mutated"
	assert.Equal(t, "Vérifier la bonne référence des électrodes", Items()[0].Text)
}

func TestItems_UniqueSlugsAndTexts(t *testing.T) {
	slugs := map[string]bool{}
	texts := map[string]bool{}
	for _, item := range Items() {
		assert.False(t, slugs[item.Slug], "duplicate slug %q", item.Slug)
		assert.False(t, texts[item.Text], "duplicate text %q", item.Text)
		slugs[item.Slug] = true
		texts[item.Text] = true
	}
}

func TestItem_LookupMiss(t *testing.T) {
	for _, id := range []ChecklistItemID{0, -1, 15, 99} {
		_, err := Item(id)
		assert.ErrorIs(t, err, ErrUnknownItem, "id %d", id)
	}
}

func TestMustItem_PanicsOnMiss(t *testing.T) {
	assert.Panics(t, func() { MustItem(42) })
	assert.NotPanics(t, func() { MustItem(CheckWaterFlow) })
}

func TestItemBySlug(t *testing.T) {
	item, err := ItemBySlug("water_flow")
	require.NoError(t, err)
	assert.Equal(t, CheckWaterFlow, item.ID)

	_, err = ItemBySlug("nope")
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestChecklistItemID_StringAndText(t *testing.T) {
	assert.Equal(t, "pressure_current", CheckPressureCurrent.String())
	assert.Equal(t, "Contrôler Pression et Intensité", CheckPressureCurrent.Text())
	assert.Equal(t, "item(77)", ChecklistItemID(77).String())
	assert.Empty(t, ChecklistItemID(77).Text())
}
