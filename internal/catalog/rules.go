// Package catalog holds the catalog reference data: the ordered free-text
// categorization rule table and the default seed item set. Both are treated
// as versioned data, not code — rule order is part of the contract.
package catalog

import (
	"strings"

	"github.com/yuda85/family-ops-sub001/internal/model"
)

// Rule maps a substring keyword to a category. Rules are evaluated in slice
// order, first match wins.
type Rule struct {
	Keyword  string
	Category model.Category
}

// rules is the categorization table. ORDER IS SIGNIFICANT: several
// categories share substrings, so the more specific keyword must come first
// ("תפוח אדמה" before "תפוח", "סבון כלים" before "סבון", "מי פה" after "מיץ").
// Append-only; never reorder existing entries without pinning tests.
var rules = []Rule{
	// Compound terms that would otherwise be shadowed by a shorter keyword.
	{"תפוח אדמה", model.CategoryVegetables},
	{"תפוחי אדמה", model.CategoryVegetables},
	{"סבון כלים", model.CategoryCleaning},
	{"נוזל כלים", model.CategoryCleaning},
	{"נייר טואלט", model.CategoryCleaning},
	{"מגבוני תינוק", model.CategoryBaby},

	// Vegetables
	{"עגבני", model.CategoryVegetables},
	{"מלפפון", model.CategoryVegetables},
	{"חסה", model.CategoryVegetables},
	{"גזר", model.CategoryVegetables},
	{"בצל", model.CategoryVegetables},
	{"שום", model.CategoryVegetables},
	{"פלפל", model.CategoryVegetables},
	{"קישוא", model.CategoryVegetables},
	{"חציל", model.CategoryVegetables},
	{"כרוב", model.CategoryVegetables},
	{"תרד", model.CategoryVegetables},
	{"ברוקולי", model.CategoryVegetables},
	{"פטרי", model.CategoryVegetables},
	{"בטטה", model.CategoryVegetables},
	{"סלרי", model.CategoryVegetables},
	{"צנונית", model.CategoryVegetables},
	{"פטרוזיליה", model.CategoryVegetables},
	{"כוסברה", model.CategoryVegetables},
	{"שמיר", model.CategoryVegetables},
	{"tomato", model.CategoryVegetables},
	{"cucumber", model.CategoryVegetables},
	{"lettuce", model.CategoryVegetables},
	{"carrot", model.CategoryVegetables},
	{"onion", model.CategoryVegetables},
	{"potato", model.CategoryVegetables},

	// Fruits
	{"תפוח", model.CategoryFruits},
	{"בננה", model.CategoryFruits},
	{"תפוז", model.CategoryFruits},
	{"לימון", model.CategoryFruits},
	{"ענבים", model.CategoryFruits},
	{"אבטיח", model.CategoryFruits},
	{"מלון", model.CategoryFruits},
	{"אפרסק", model.CategoryFruits},
	{"אגס", model.CategoryFruits},
	{"תות", model.CategoryFruits},
	{"מנגו", model.CategoryFruits},
	{"אננס", model.CategoryFruits},
	{"רימון", model.CategoryFruits},
	{"נקטרינה", model.CategoryFruits},
	{"שזיף", model.CategoryFruits},
	{"apple", model.CategoryFruits},
	{"banana", model.CategoryFruits},
	{"orange", model.CategoryFruits},
	{"grape", model.CategoryFruits},

	// Dairy
	{"חלב", model.CategoryDairy},
	{"גבינה", model.CategoryDairy},
	{"גבינת", model.CategoryDairy},
	{"יוגורט", model.CategoryDairy},
	{"קוטג", model.CategoryDairy},
	{"שמנת", model.CategoryDairy},
	{"חמאה", model.CategoryDairy},
	{"ביצים", model.CategoryDairy},
	{"לבן", model.CategoryDairy},
	{"מעדן", model.CategoryDairy},
	{"milk", model.CategoryDairy},
	{"cheese", model.CategoryDairy},
	{"yogurt", model.CategoryDairy},
	{"butter", model.CategoryDairy},
	{"egg", model.CategoryDairy},

	// Meat & fish
	{"עוף", model.CategoryMeat},
	{"הודו", model.CategoryMeat},
	{"בשר", model.CategoryMeat},
	{"סלמון", model.CategoryMeat},
	{"דג", model.CategoryMeat},
	{"נקניק", model.CategoryMeat},
	{"המבורגר", model.CategoryMeat},
	{"קבב", model.CategoryMeat},
	{"chicken", model.CategoryMeat},
	{"beef", model.CategoryMeat},
	{"fish", model.CategoryMeat},

	// Bakery
	{"לחם", model.CategoryBakery},
	{"פיתה", model.CategoryBakery},
	{"פיתות", model.CategoryBakery},
	{"לחמני", model.CategoryBakery},
	{"חלה", model.CategoryBakery},
	{"בגט", model.CategoryBakery},
	{"קרואסון", model.CategoryBakery},
	{"עוגה", model.CategoryBakery},
	{"bread", model.CategoryBakery},
	{"pita", model.CategoryBakery},

	// Frozen
	{"קפוא", model.CategoryFrozen},
	{"שניצל", model.CategoryFrozen},
	{"גלידה", model.CategoryFrozen},
	{"ארטיק", model.CategoryFrozen},
	{"frozen", model.CategoryFrozen},
	{"ice cream", model.CategoryFrozen},

	// Drinks
	{"מים", model.CategoryDrinks},
	{"מיץ", model.CategoryDrinks},
	{"קולה", model.CategoryDrinks},
	{"סודה", model.CategoryDrinks},
	{"בירה", model.CategoryDrinks},
	{"יין", model.CategoryDrinks},
	{"קפה", model.CategoryDrinks},
	{"תה", model.CategoryDrinks},
	{"juice", model.CategoryDrinks},
	{"coffee", model.CategoryDrinks},
	{"water", model.CategoryDrinks},

	// Snacks
	{"חטיף", model.CategorySnacks},
	{"במבה", model.CategorySnacks},
	{"ביסלי", model.CategorySnacks},
	{"שוקולד", model.CategorySnacks},
	{"עוגיות", model.CategorySnacks},
	{"צ'יפס", model.CategorySnacks},
	{"מסטיק", model.CategorySnacks},
	{"סוכרי", model.CategorySnacks},
	{"chips", model.CategorySnacks},
	{"chocolate", model.CategorySnacks},
	{"cookie", model.CategorySnacks},

	// Cleaning
	{"אקונומיקה", model.CategoryCleaning},
	{"אבקת כביסה", model.CategoryCleaning},
	{"מרכך כביסה", model.CategoryCleaning},
	{"שקיות זבל", model.CategoryCleaning},
	{"מטלי", model.CategoryCleaning},
	{"ניקוי", model.CategoryCleaning},
	{"ספוג", model.CategoryCleaning},
	{"detergent", model.CategoryCleaning},
	{"bleach", model.CategoryCleaning},

	// Personal care
	{"שמפו", model.CategoryPersonal},
	{"מרכך שיער", model.CategoryPersonal},
	{"משחת שיניים", model.CategoryPersonal},
	{"מברשת שיניים", model.CategoryPersonal},
	{"דאודורנט", model.CategoryPersonal},
	{"סבון", model.CategoryPersonal},
	{"תחבושות", model.CategoryPersonal},
	{"shampoo", model.CategoryPersonal},
	{"toothpaste", model.CategoryPersonal},

	// Baby
	{"חיתול", model.CategoryBaby},
	{"מטרנה", model.CategoryBaby},
	{"מגבונים", model.CategoryBaby},
	{"בקבוק תינוק", model.CategoryBaby},
	{"מוצץ", model.CategoryBaby},
	{"diaper", model.CategoryBaby},

	// Pantry staples last — generic words like "שמן" ("oil") appear inside
	// many product names, so pantry must not shadow the sections above.
	{"אורז", model.CategoryPantry},
	{"פסטה", model.CategoryPantry},
	{"קמח", model.CategoryPantry},
	{"סוכר", model.CategoryPantry},
	{"מלח", model.CategoryPantry},
	{"שמן", model.CategoryPantry},
	{"קטשופ", model.CategoryPantry},
	{"מיונז", model.CategoryPantry},
	{"חומוס", model.CategoryPantry},
	{"טחינה", model.CategoryPantry},
	{"טונה", model.CategoryPantry},
	{"תבלין", model.CategoryPantry},
	{"שימורי", model.CategoryPantry},
	{"עדשים", model.CategoryPantry},
	{"קוסקוס", model.CategoryPantry},
	{"פתיתים", model.CategoryPantry},
	{"דבש", model.CategoryPantry},
	{"rice", model.CategoryPantry},
	{"pasta", model.CategoryPantry},
	{"flour", model.CategoryPantry},
	{"sugar", model.CategoryPantry},
	{"oil", model.CategoryPantry},
}

// Rules returns the rule table in evaluation order.
func Rules() []Rule { return rules }

// finalForms folds Hebrew final letters into their regular forms, so a
// keyword like "מלפפון" (final nun) still matches inside the plural
// "מלפפונים" (regular nun).
var finalForms = strings.NewReplacer("ך", "כ", "ם", "מ", "ן", "נ", "ף", "פ", "ץ", "צ")

// normalizedRules is the rule table with keywords lowered and final-form
// folded, in the same evaluation order as rules.
var normalizedRules = func() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{Keyword: Normalize(r.Keyword), Category: r.Category}
	}
	return out
}()

// Normalize prepares a product name for substring matching: trimmed,
// lowercased, Hebrew final letters folded to their regular forms.
func Normalize(name string) string {
	return finalForms.Replace(strings.ToLower(strings.TrimSpace(name)))
}

// MatchRule scans the rule table in order and returns the category of the
// first keyword contained in name. Matching is case-insensitive and
// ignores the regular/final letter distinction.
func MatchRule(name string) (model.Category, bool) {
	normalized := Normalize(name)
	if normalized == "" {
		return "", false
	}
	for _, r := range normalizedRules {
		if strings.Contains(normalized, r.Keyword) {
			return r.Category, true
		}
	}
	return "", false
}
