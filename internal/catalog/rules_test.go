package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuda85/family-ops-sub001/internal/model"
)

func TestMatchRuleCompoundBeforeShort(t *testing.T) {
	// "תפוח אדמה" (potato) must not be swallowed by "תפוח" (apple), and
	// "סבון כלים" (dish soap) must not land in personal care.
	cases := []struct {
		name string
		want model.Category
	}{
		{"תפוח אדמה", model.CategoryVegetables},
		{"תפוחי אדמה אדומים", model.CategoryVegetables},
		{"תפוח פינק ליידי", model.CategoryFruits},
		{"סבון כלים פיירי", model.CategoryCleaning},
		{"סבון ידיים", model.CategoryPersonal},
		{"נייר טואלט", model.CategoryCleaning},
	}
	for _, c := range cases {
		got, ok := MatchRule(c.name)
		require.True(t, ok, "name=%s", c.name)
		assert.Equal(t, c.want, got, "name=%s", c.name)
	}
}

func TestMatchRuleCategories(t *testing.T) {
	cases := []struct {
		name string
		want model.Category
	}{
		{"עגבניות שרי", model.CategoryVegetables},
		{"בננה", model.CategoryFruits},
		{"חלב תנובה 3%", model.CategoryDairy},
		{"חזה עוף טרי", model.CategoryMeat},
		{"לחם אחיד פרוס", model.CategoryBakery},
		{"שניצל תירס", model.CategoryFrozen},
		{"קוקה קולה", model.CategoryDrinks},
		{"במבה אסם", model.CategorySnacks},
		{"אבקת כביסה", model.CategoryCleaning},
		{"שמפו לילדים", model.CategoryPersonal},
		{"חיתולים מידה 4", model.CategoryBaby},
		{"אורז בסמטי", model.CategoryPantry},
	}
	for _, c := range cases {
		got, ok := MatchRule(c.name)
		require.True(t, ok, "name=%s", c.name)
		assert.Equal(t, c.want, got, "name=%s", c.name)
	}
}

func TestMatchRuleFoldsFinalLetters(t *testing.T) {
	// Plural forms turn a keyword's final letter into its regular form
	// ("מלפפון" → "מלפפונים"); matching must ignore the distinction.
	cases := []struct {
		name string
		want model.Category
	}{
		{"מלפפונים", model.CategoryVegetables}, // final nun in keyword
		{"לימונים", model.CategoryFruits},
		{"שזיפים", model.CategoryFruits}, // final pe
		{"מיצים קטנים", model.CategoryDrinks}, // final tsadi
		{"חטיפים מלוחים", model.CategorySnacks},
		{"סבונים", model.CategoryPersonal},
	}
	for _, c := range cases {
		got, ok := MatchRule(c.name)
		require.True(t, ok, "name=%s", c.name)
		assert.Equal(t, c.want, got, "name=%s", c.name)
	}
}

func TestMatchRuleCaseInsensitive(t *testing.T) {
	got, ok := MatchRule("  Tomato Paste ")
	require.True(t, ok)
	assert.Equal(t, model.CategoryVegetables, got)
}

func TestMatchRuleNoMatch(t *testing.T) {
	_, ok := MatchRule("דבר שלא קיים")
	assert.False(t, ok)

	_, ok = MatchRule("   ")
	assert.False(t, ok)
}

func TestDefaultItemsAreWellFormed(t *testing.T) {
	familyID := uuid.New()
	items := DefaultItems(familyID)
	require.Greater(t, len(items), 250)

	seen := map[string]bool{}
	covered := map[model.Category]bool{}
	for _, item := range items {
		assert.Equal(t, familyID, item.FamilyID)
		assert.NotEmpty(t, item.Name)
		assert.False(t, seen[item.Name], "duplicate seed item: %s", item.Name)
		seen[item.Name] = true
		assert.True(t, item.Category.Valid(), "item=%s category=%s", item.Name, item.Category)
		assert.True(t, item.DefaultUnit.Valid(), "item=%s unit=%s", item.Name, item.DefaultUnit)
		assert.Greater(t, item.DefaultQuantity, 0.0, "item=%s", item.Name)
		assert.False(t, item.Custom)
		covered[item.Category] = true
	}

	// Every display category ships with at least one staple.
	for _, cat := range model.CategoryOrder {
		assert.True(t, covered[cat], "category %s has no seed items", cat)
	}
}
